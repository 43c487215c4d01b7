package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthhub/internal/domain/entity"
	domainerrors "healthhub/internal/domain/errors"
	"healthhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase authenticates a single known token.
type stubAuthUsecase struct {
	usecase.AuthUsecase

	token string
	user  *entity.User
	err   error
}

func (s *stubAuthUsecase) Authenticate(_ context.Context, token string) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if token != s.token {
		return nil, domainerrors.ErrTokenInvalid
	}

	return s.user, nil
}

func runAuth(t *testing.T, uc usecase.AuthUsecase, header string) (echo.Context, bool, error) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/medicines", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	c := echo.New().NewContext(req, httptest.NewRecorder())

	called := false
	mw := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: uc, Logger: slog.Default()})
	err := mw.Authenticate(func(echo.Context) error {
		called = true

		return nil
	})(c)

	return c, called, err
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	user := &entity.User{ID: "u-1", Email: "a@example.com"}
	uc := &stubAuthUsecase{token: "good", user: user}

	t.Run("valid bearer token", func(t *testing.T) {
		c, called, err := runAuth(t, uc, "Bearer good")
		require.NoError(t, err)
		assert.True(t, called)

		got, ok := GetUser(c)
		assert.True(t, ok)
		assert.Same(t, user, got)
	})

	t.Run("scheme is case-insensitive", func(t *testing.T) {
		_, called, err := runAuth(t, uc, "bearer good")
		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("missing header", func(t *testing.T) {
		_, called, err := runAuth(t, uc, "")
		assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
		assert.False(t, called)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		_, called, err := runAuth(t, uc, "Basic Zm9vOmJhcg==")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidTokenFormat)
		assert.False(t, called)
	})

	t.Run("bad token", func(t *testing.T) {
		_, called, err := runAuth(t, uc, "Bearer forged")
		assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
		assert.False(t, called)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := runAuth(t, &stubAuthUsecase{err: domainerrors.ErrUserNotFound}, "Bearer good")
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

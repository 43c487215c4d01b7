package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestGetRequestID_StableOnceGenerated(t *testing.T) {
	c := newEchoContext()

	first := GetRequestID(c)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}

func TestRequestIDAndLoggerInContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Nil(t, GetLogger(ctx))

	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))

	logger := slog.New(slog.DiscardHandler)
	ctx = WithLogger(WithRequestID(ctx, "req-2"), logger)
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Same(t, logger, GetLoggerOrDefault(ctx, fallback))
}

func TestUserRoundTrip(t *testing.T) {
	c := newEchoContext()

	_, ok := GetUser(c)
	assert.False(t, ok)

	user := &entity.User{ID: "u-1"}
	SetUser(c, user)

	got, ok := GetUser(c)
	assert.True(t, ok)
	assert.Same(t, user, got)
}

// Package middleware contains the API-specific echo middleware: bearer authentication
// and the central error handler.
package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "healthhub/internal/delivery/context"
	"healthhub/internal/domain/entity"
	domainerrors "healthhub/internal/domain/errors"
	"healthhub/internal/errors"
	"healthhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerScheme = "bearer"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthMiddleware resolves the bearer token of a request to its user.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// Authenticate rejects the request with 401 unless it carries a valid bearer token
// of an existing user. The user is stored on the echo context for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
		if authHeader == "" {
			return errors.WithStack(domainerrors.ErrNotAuthenticated)
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		token = strings.TrimSpace(token)
		if !found || !strings.EqualFold(scheme, bearerScheme) || token == "" {
			return errors.WithStack(domainerrors.ErrInvalidTokenFormat)
		}

		ctx := c.Request().Context()
		user, err := m.authUC.Authenticate(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Authentication failed", slog.Any("error", err))

			return err
		}

		deliverycontext.SetUser(c, user)

		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", user.ID))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, reqLogger)))

		return next(c)
	}
}

// GetUser returns the user set by Authenticate.
func GetUser(c echo.Context) (*entity.User, bool) {
	return deliverycontext.GetUser(c)
}

package context

import (
	"healthhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetUser stores the authenticated caller in echo.Context.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyUser), user)
}

// GetUser returns the authenticated caller, if the auth middleware ran.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeyUser)).(*entity.User)

	return user, ok && user != nil
}

package handler

import (
	"healthhub/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving requests
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}

// APIRoot identifies the API
func APIRoot(c echo.Context) error {
	return response.Message(c, "Medication management API")
}

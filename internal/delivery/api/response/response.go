// Package response renders API responses. Successful bodies are written as-is;
// failures share one error envelope.
package response

import (
	"net/http"

	deliverycontext "healthhub/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Detail    string `json:"detail"`            // User-friendly error message
	Code      string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Details   any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
	RequestID string `json:"request_id"`        // Request tracking ID
}

// MessageResponse is the body of endpoints that only confirm an action.
type MessageResponse struct {
	Message string `json:"message"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// OK returns a 200 response
func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data)
}

// Message returns a 200 response carrying only a message
func Message(c echo.Context, message string) error {
	return OK(c, MessageResponse{Message: message})
}

// PNG returns a 200 response with a PNG image body
func PNG(c echo.Context, data []byte) error {
	return c.Blob(http.StatusOK, "image/png", data)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}
	if s, ok := details.(string); ok && s == "" {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Detail:    message,
		Code:      errorCode,
		Details:   details,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

package handler

import (
	"healthhub/internal/delivery/api/response"
	"healthhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EmergencyCardHandlerParams holds dependencies for EmergencyCardHandler, injected by Fx.
type EmergencyCardHandlerParams struct {
	fx.In

	EmergencyCardUC usecase.EmergencyCardUsecase
}

// EmergencyCardHandler serves the caller's emergency card
type EmergencyCardHandler struct {
	emergencyCardUC usecase.EmergencyCardUsecase
}

// NewEmergencyCardHandler is the constructor for EmergencyCardHandler
func NewEmergencyCardHandler(params EmergencyCardHandlerParams) *EmergencyCardHandler {
	return &EmergencyCardHandler{emergencyCardUC: params.EmergencyCardUC}
}

// Card returns the emergency card as JSON
func (h *EmergencyCardHandler) Card(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	card, err := h.emergencyCardUC.Card(c.Request().Context(), user)
	if err != nil {
		return err
	}

	return response.OK(c, card)
}

// QRCode returns the emergency card as a PNG QR code
func (h *EmergencyCardHandler) QRCode(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	png, err := h.emergencyCardUC.CardQR(c.Request().Context(), user)
	if err != nil {
		return err
	}

	return response.PNG(c, png)
}

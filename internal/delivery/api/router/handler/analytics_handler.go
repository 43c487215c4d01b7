package handler

import (
	"healthhub/internal/delivery/api/response"
	"healthhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AnalyticsHandlerParams holds dependencies for AnalyticsHandler, injected by Fx.
type AnalyticsHandlerParams struct {
	fx.In

	AnalyticsUC usecase.AnalyticsUsecase
}

// AnalyticsHandler serves read-only reports
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler
func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUC: params.AnalyticsUC}
}

// Adherence returns the caller's 30-day adherence report
func (h *AnalyticsHandler) Adherence(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	report, err := h.analyticsUC.Adherence(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return response.OK(c, report)
}

// UpcomingExpiries returns the caller's medicines expiring within 30 days
func (h *AnalyticsHandler) UpcomingExpiries(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	medicines, err := h.analyticsUC.UpcomingExpiries(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return response.OK(c, medicines)
}

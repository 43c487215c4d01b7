package handler

import (
	"log/slog"

	"healthhub/internal/delivery/api/response"
	"healthhub/internal/domain/entity"
	"healthhub/internal/types"
	"healthhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthRecordHandlerParams holds dependencies for HealthRecordHandler, injected by Fx.
type HealthRecordHandlerParams struct {
	fx.In

	HealthRecordUC usecase.HealthRecordUsecase
	Logger         *slog.Logger
}

// HealthRecordHandler serves dose history
type HealthRecordHandler struct {
	healthRecordUC usecase.HealthRecordUsecase
	logger         *slog.Logger
}

// NewHealthRecordHandler is the constructor for HealthRecordHandler
func NewHealthRecordHandler(params HealthRecordHandlerParams) *HealthRecordHandler {
	return &HealthRecordHandler{
		healthRecordUC: params.HealthRecordUC,
		logger:         params.Logger,
	}
}

// HealthRecordRequest represents the request body for logging a dose
type HealthRecordRequest struct {
	MedicineID string          `json:"medicine_id" validate:"required"`
	Status     string          `json:"status" validate:"required,oneof=taken missed delayed"`
	Notes      *string         `json:"notes"`
	TakenAt    *types.FlexTime `json:"taken_at"`
}

// List returns the caller's dose history, newest first
func (h *HealthRecordHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	records, err := h.healthRecordUC.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return response.OK(c, records)
}

// Create logs a dose
func (h *HealthRecordHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req HealthRecordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	record, err := h.healthRecordUC.LogDose(c.Request().Context(), user.ID, usecase.LogDoseInput{
		MedicineID: req.MedicineID,
		Status:     entity.RecordStatus(req.Status),
		Notes:      req.Notes,
		TakenAt:    types.TimePtr(req.TakenAt),
	})
	if err != nil {
		return err
	}

	return response.OK(c, record)
}

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

// MedicineHandlerParams holds dependencies for MedicineHandler, injected by Fx.
type MedicineHandlerParams struct {
	fx.In

	MedicineUC usecase.MedicineUsecase
	Logger     *slog.Logger
}

// MedicineHandler serves the caller's medicine cabinet
type MedicineHandler struct {
	medicineUC usecase.MedicineUsecase
	logger     *slog.Logger
}

// NewMedicineHandler is the constructor for MedicineHandler
func NewMedicineHandler(params MedicineHandlerParams) *MedicineHandler {
	return &MedicineHandler{
		medicineUC: params.MedicineUC,
		logger:     params.Logger,
	}
}

// MedicineRequest is the body of create and update. Update replaces every field.
type MedicineRequest struct {
	Name              string            `json:"name" validate:"required,max=255"`
	Dosage            string            `json:"dosage" validate:"required,max=255"`
	Frequency         string            `json:"frequency" validate:"required,max=255"`
	Instructions      *string           `json:"instructions"`
	StockQuantity     int               `json:"stock_quantity" validate:"gte=0"`
	ExpiryDate        *types.FlexTime   `json:"expiry_date"`
	Category          string            `json:"category" validate:"omitempty,max=100"`
	PrescriptionImage *string           `json:"prescription_image"`
	Reminders         []entity.Reminder `json:"reminders"`
}

func (r *MedicineRequest) toInput() usecase.MedicineInput {
	return usecase.MedicineInput{
		Name:              r.Name,
		Dosage:            r.Dosage,
		Frequency:         r.Frequency,
		Instructions:      r.Instructions,
		StockQuantity:     r.StockQuantity,
		ExpiryDate:        types.TimePtr(r.ExpiryDate),
		Category:          r.Category,
		PrescriptionImage: r.PrescriptionImage,
		Reminders:         r.Reminders,
	}
}

// List returns the caller's medicines
func (h *MedicineHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	medicines, err := h.medicineUC.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return response.OK(c, medicines)
}

// Create adds a medicine to the caller's cabinet
func (h *MedicineHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req MedicineRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	medicine, err := h.medicineUC.Create(c.Request().Context(), user.ID, req.toInput())
	if err != nil {
		return err
	}

	return response.OK(c, medicine)
}

// Get returns one of the caller's medicines
func (h *MedicineHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	medicine, err := h.medicineUC.Get(c.Request().Context(), user.ID, c.Param("id"))
	if err != nil {
		return err
	}

	return response.OK(c, medicine)
}

// Update replaces one of the caller's medicines
func (h *MedicineHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req MedicineRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	medicine, err := h.medicineUC.Update(c.Request().Context(), user.ID, c.Param("id"), req.toInput())
	if err != nil {
		return err
	}

	return response.OK(c, medicine)
}

// Delete removes one of the caller's medicines
func (h *MedicineHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.medicineUC.Delete(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		return err
	}

	return response.Message(c, "Medicine deleted successfully")
}

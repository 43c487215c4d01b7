package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "healthhub/internal/delivery/context"
	"healthhub/internal/domain/entity"
	domainerrors "healthhub/internal/domain/errors"
	"healthhub/internal/domain/repository"
	"healthhub/internal/errors"
	"healthhub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// medicineService implements the MedicineUsecase interface.
type medicineService struct {
	medicineRepo repository.MedicineRepository
	logger       *slog.Logger
	now          func() time.Time
}

// MedicineServiceParams holds dependencies for MedicineService, injected by Fx.
type MedicineServiceParams struct {
	fx.In

	MedicineRepo repository.MedicineRepository
	Logger       *slog.Logger
}

// NewMedicineService is the constructor for medicineService.
func NewMedicineService(params MedicineServiceParams) usecase.MedicineUsecase {
	return &medicineService{
		medicineRepo: params.MedicineRepo,
		logger:       params.Logger,
		now:          utcNow,
	}
}

func (srv *medicineService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *medicineService) List(ctx context.Context, userID string) ([]*entity.Medicine, error) {
	medicines, err := srv.medicineRepo.ListByUser(ctx, userID, usecase.MedicineListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list medicines")
	}

	return medicines, nil
}

func (srv *medicineService) Create(ctx context.Context, userID string, input usecase.MedicineInput) (*entity.Medicine, error) {
	now := srv.now()
	medicine := &entity.Medicine{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyMedicineInput(medicine, input)

	if err := srv.medicineRepo.Create(ctx, medicine); err != nil {
		return nil, errors.Wrap(err, "failed to create medicine")
	}

	srv.log(ctx).Info("Medicine created", slog.String("medicine_id", medicine.ID), slog.String("user_id", userID))

	return medicine, nil
}

func (srv *medicineService) Get(ctx context.Context, userID, medicineID string) (*entity.Medicine, error) {
	medicine, err := srv.medicineRepo.FindByIDForUser(ctx, medicineID, userID)
	if err != nil {
		return nil, translateMedicineError(err, "get medicine")
	}

	return medicine, nil
}

// Update replaces every client field of the medicine and keeps its identity and creation time.
func (srv *medicineService) Update(
	ctx context.Context,
	userID, medicineID string,
	input usecase.MedicineInput,
) (*entity.Medicine, error) {
	medicine, err := srv.medicineRepo.FindByIDForUser(ctx, medicineID, userID)
	if err != nil {
		return nil, translateMedicineError(err, "update medicine")
	}

	applyMedicineInput(medicine, input)
	medicine.UpdatedAt = srv.now()

	if err := srv.medicineRepo.Update(ctx, medicine); err != nil {
		return nil, translateMedicineError(err, "update medicine")
	}

	srv.log(ctx).Debug("Medicine updated", slog.String("medicine_id", medicine.ID))

	return medicine, nil
}

func (srv *medicineService) Delete(ctx context.Context, userID, medicineID string) error {
	if err := srv.medicineRepo.DeleteForUser(ctx, medicineID, userID); err != nil {
		return translateMedicineError(err, "delete medicine")
	}

	srv.log(ctx).Info("Medicine deleted", slog.String("medicine_id", medicineID), slog.String("user_id", userID))

	return nil
}

func applyMedicineInput(medicine *entity.Medicine, input usecase.MedicineInput) {
	medicine.Name = input.Name
	medicine.Dosage = input.Dosage
	medicine.Frequency = input.Frequency
	medicine.Instructions = input.Instructions
	medicine.StockQuantity = input.StockQuantity
	medicine.ExpiryDate = input.ExpiryDate
	medicine.PrescriptionImage = input.PrescriptionImage

	medicine.Category = strings.TrimSpace(input.Category)
	if medicine.Category == "" {
		medicine.Category = entity.DefaultMedicineCategory
	}

	medicine.Reminders = input.Reminders
	if medicine.Reminders == nil {
		medicine.Reminders = []entity.Reminder{}
	}
}

func translateMedicineError(err error, action string) error {
	if errors.Is(err, repository.ErrMedicineNotFound) {
		return errors.Wrap(domainerrors.ErrMedicineNotFound, action)
	}

	return errors.Wrap(err, "failed to "+action)
}

package impl

import (
	"context"
	"log/slog"
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

// healthRecordService implements the HealthRecordUsecase interface.
type healthRecordService struct {
	recordRepo repository.HealthRecordRepository
	logger     *slog.Logger
	now        func() time.Time
}

// HealthRecordServiceParams holds dependencies for HealthRecordService, injected by Fx.
type HealthRecordServiceParams struct {
	fx.In

	RecordRepo repository.HealthRecordRepository
	Logger     *slog.Logger
}

// NewHealthRecordService is the constructor for healthRecordService.
func NewHealthRecordService(params HealthRecordServiceParams) usecase.HealthRecordUsecase {
	return &healthRecordService{
		recordRepo: params.RecordRepo,
		logger:     params.Logger,
		now:        utcNow,
	}
}

func (srv *healthRecordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *healthRecordService) List(ctx context.Context, userID string) ([]*entity.HealthRecord, error) {
	records, err := srv.recordRepo.ListByUser(ctx, userID, usecase.HealthRecordListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list health records")
	}

	return records, nil
}

// LogDose appends a dose record. The medicine ID is stored as given.
func (srv *healthRecordService) LogDose(ctx context.Context, userID string, input usecase.LogDoseInput) (*entity.HealthRecord, error) {
	if !input.Status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("status must be one of taken, missed, delayed"), "log dose")
	}

	now := srv.now()
	takenAt := now
	if input.TakenAt != nil {
		takenAt = input.TakenAt.UTC()
	}

	record := &entity.HealthRecord{
		ID:         uuid.NewString(),
		UserID:     userID,
		MedicineID: input.MedicineID,
		TakenAt:    takenAt,
		Status:     input.Status,
		Notes:      input.Notes,
		CreatedAt:  now,
	}

	if err := srv.recordRepo.Create(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to create health record")
	}

	srv.log(ctx).Debug("Dose logged",
		slog.String("record_id", record.ID),
		slog.String("medicine_id", record.MedicineID),
		slog.String("status", string(record.Status)),
	)

	return record, nil
}

package usecase

import (
	"context"
	"time"

	"healthhub/internal/domain/entity"
)

// HealthRecordListLimit caps how many records a listing returns.
const HealthRecordListLimit = 1000

// LogDoseInput describes one dose event. TakenAt defaults to the current time.
type LogDoseInput struct {
	MedicineID string
	Status     entity.RecordStatus
	Notes      *string
	TakenAt    *time.Time
}

// HealthRecordUsecase records and lists dose events.
type HealthRecordUsecase interface {
	List(ctx context.Context, userID string) ([]*entity.HealthRecord, error)
	LogDose(ctx context.Context, userID string, input LogDoseInput) (*entity.HealthRecord, error)
}

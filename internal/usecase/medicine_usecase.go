package usecase

import (
	"context"
	"time"

	"healthhub/internal/domain/entity"
)

// MedicineListLimit caps how many medicines a listing returns.
const MedicineListLimit = 1000

// MedicineInput holds every client-writable medicine field. Update replaces all of them.
type MedicineInput struct {
	Name              string
	Dosage            string
	Frequency         string
	Instructions      *string
	StockQuantity     int
	ExpiryDate        *time.Time
	Category          string
	PrescriptionImage *string
	Reminders         []entity.Reminder
}

// MedicineUsecase manages the caller's medicine cabinet. Other users' medicines are never visible.
type MedicineUsecase interface {
	List(ctx context.Context, userID string) ([]*entity.Medicine, error)
	Create(ctx context.Context, userID string, input MedicineInput) (*entity.Medicine, error)
	Get(ctx context.Context, userID, medicineID string) (*entity.Medicine, error)
	Update(ctx context.Context, userID, medicineID string, input MedicineInput) (*entity.Medicine, error)
	Delete(ctx context.Context, userID, medicineID string) error
}

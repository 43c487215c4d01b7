package repository

import (
	"context"
	"errors"
	"time"

	"healthhub/internal/domain/entity"
)

// ErrMedicineNotFound is returned when no medicine matches both the ID and the owner.
var ErrMedicineNotFound = errors.New("medicine not found")

// MedicineRepository persists medicines. Every lookup is scoped to an owner.
type MedicineRepository interface {
	Create(ctx context.Context, medicine *entity.Medicine) error

	// FindByIDForUser returns ErrMedicineNotFound unless the medicine exists and belongs to userID.
	FindByIDForUser(ctx context.Context, id, userID string) (*entity.Medicine, error)

	// ListByUser returns at most limit medicines in creation order.
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Medicine, error)

	// Update replaces the medicine matching medicine.ID and medicine.UserID.
	Update(ctx context.Context, medicine *entity.Medicine) error

	// DeleteForUser removes the medicine, or returns ErrMedicineNotFound if nothing matched.
	DeleteForUser(ctx context.Context, id, userID string) error

	// ListExpiringBetween returns medicines with expiry_date in [from, to], soonest first.
	ListExpiringBetween(ctx context.Context, userID string, from, to time.Time, limit int) ([]*entity.Medicine, error)
}

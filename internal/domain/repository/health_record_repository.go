package repository

import (
	"context"
	"time"

	"healthhub/internal/domain/entity"
)

// HealthRecordRepository persists dose records. Records are append-only.
type HealthRecordRepository interface {
	Create(ctx context.Context, record *entity.HealthRecord) error

	// ListByUser returns at most limit records, newest taken_at first.
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.HealthRecord, error)

	// ListByUserSince returns at most limit records with taken_at >= since.
	ListByUserSince(ctx context.Context, userID string, since time.Time, limit int) ([]*entity.HealthRecord, error)
}

package store

import (
	"context"
	"time"

	"healthhub/internal/domain/entity"
	domainerrors "healthhub/internal/domain/errors"
	"healthhub/internal/domain/repository"
	"healthhub/internal/errors"
	"healthhub/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// healthRecordRepository implements the repository.HealthRecordRepository interface using GORM.
type healthRecordRepository struct {
	db *gorm.DB
}

// NewHealthRecordRepository is the constructor for healthRecordRepository.
func NewHealthRecordRepository(db *gorm.DB) repository.HealthRecordRepository {
	return &healthRecordRepository{db: db}
}

func (repo *healthRecordRepository) Create(ctx context.Context, record *entity.HealthRecord) error {
	recordM := fromHealthRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create health record")
	}

	record.CreatedAt = recordM.CreatedAt

	return nil
}

func (repo *healthRecordRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.HealthRecord, error) {
	var recordModels []*model.HealthRecordModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("taken_at DESC").
		Limit(limit).
		Find(&recordModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list health records")
	}

	return toHealthRecordDomains(recordModels), nil
}

func (repo *healthRecordRepository) ListByUserSince(
	ctx context.Context,
	userID string,
	since time.Time,
	limit int,
) ([]*entity.HealthRecord, error) {
	var recordModels []*model.HealthRecordModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND taken_at >= ?", userID, since.UTC()).
		Order("taken_at DESC").
		Limit(limit).
		Find(&recordModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list health records since")
	}

	return toHealthRecordDomains(recordModels), nil
}

// --- Mapper Functions ---

func toHealthRecordDomain(data *model.HealthRecordModel) *entity.HealthRecord {
	if data == nil {
		return nil
	}

	return &entity.HealthRecord{
		ID:         data.ID,
		UserID:     data.UserID,
		MedicineID: data.MedicineID,
		TakenAt:    data.TakenAt.UTC(),
		Status:     entity.RecordStatus(data.Status),
		Notes:      data.Notes,
		CreatedAt:  data.CreatedAt.UTC(),
	}
}

func toHealthRecordDomains(data []*model.HealthRecordModel) []*entity.HealthRecord {
	records := make([]*entity.HealthRecord, 0, len(data))
	for _, recordM := range data {
		records = append(records, toHealthRecordDomain(recordM))
	}

	return records
}

func fromHealthRecordDomain(data *entity.HealthRecord) *model.HealthRecordModel {
	if data == nil {
		return nil
	}

	return &model.HealthRecordModel{
		ID:         data.ID,
		UserID:     data.UserID,
		MedicineID: data.MedicineID,
		TakenAt:    data.TakenAt.UTC(),
		Status:     string(data.Status),
		Notes:      data.Notes,
		CreatedAt:  data.CreatedAt,
	}
}

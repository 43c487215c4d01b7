package store

import (
	"context"
	"time"

	"healthhub/internal/domain/entity"
	domainerrors "healthhub/internal/domain/errors"
	"healthhub/internal/domain/repository"
	"healthhub/internal/errors"
	"healthhub/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// medicineRepository implements the repository.MedicineRepository interface using GORM.
type medicineRepository struct {
	db *gorm.DB
}

// NewMedicineRepository is the constructor for medicineRepository.
func NewMedicineRepository(db *gorm.DB) repository.MedicineRepository {
	return &medicineRepository{db: db}
}

func (repo *medicineRepository) Create(ctx context.Context, medicine *entity.Medicine) error {
	medicineM := fromMedicineDomain(medicine)

	if err := repo.db.WithContext(ctx).Create(medicineM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create medicine")
	}

	medicine.CreatedAt = medicineM.CreatedAt
	medicine.UpdatedAt = medicineM.UpdatedAt

	return nil
}

func (repo *medicineRepository) FindByIDForUser(ctx context.Context, id, userID string) (*entity.Medicine, error) {
	var medicineM model.MedicineModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&medicineM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMedicineNotFound
		}

		return nil, errors.Wrap(err, "failed to find medicine")
	}

	return toMedicineDomain(&medicineM), nil
}

func (repo *medicineRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Medicine, error) {
	var medicineModels []*model.MedicineModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Limit(limit).
		Find(&medicineModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list medicines")
	}

	return toMedicineDomains(medicineModels), nil
}

func (repo *medicineRepository) Update(ctx context.Context, medicine *entity.Medicine) error {
	medicineM := fromMedicineDomain(medicine)
	if medicineM.UpdatedAt.IsZero() {
		medicineM.UpdatedAt = time.Now().UTC()
	}

	result := repo.db.WithContext(ctx).
		Model(&model.MedicineModel{}).
		Where("id = ? AND user_id = ?", medicine.ID, medicine.UserID).
		Updates(map[string]any{
			"name":               medicineM.Name,
			"dosage":             medicineM.Dosage,
			"frequency":          medicineM.Frequency,
			"instructions":       medicineM.Instructions,
			"stock_quantity":     medicineM.StockQuantity,
			"expiry_date":        medicineM.ExpiryDate,
			"category":           medicineM.Category,
			"prescription_image": medicineM.PrescriptionImage,
			"reminders":          medicineM.Reminders,
			"updated_at":         medicineM.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update medicine")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMedicineNotFound
	}

	medicine.UpdatedAt = medicineM.UpdatedAt

	return nil
}

func (repo *medicineRepository) DeleteForUser(ctx context.Context, id, userID string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.MedicineModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete medicine")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMedicineNotFound
	}

	return nil
}

func (repo *medicineRepository) ListExpiringBetween(
	ctx context.Context,
	userID string,
	from, to time.Time,
	limit int,
) ([]*entity.Medicine, error) {
	var medicineModels []*model.MedicineModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("expiry_date IS NOT NULL").
		Where("expiry_date >= ? AND expiry_date <= ?", from.UTC(), to.UTC()).
		Order("expiry_date ASC").
		Limit(limit).
		Find(&medicineModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list expiring medicines")
	}

	return toMedicineDomains(medicineModels), nil
}

// --- Mapper Functions ---

func toMedicineDomain(data *model.MedicineModel) *entity.Medicine {
	if data == nil {
		return nil
	}

	reminders := make([]entity.Reminder, 0, len(data.Reminders))
	for _, r := range data.Reminders {
		reminders = append(reminders, entity.Reminder(r))
	}

	return &entity.Medicine{
		ID:                data.ID,
		UserID:            data.UserID,
		Name:              data.Name,
		Dosage:            data.Dosage,
		Frequency:         data.Frequency,
		Instructions:      data.Instructions,
		StockQuantity:     data.StockQuantity,
		ExpiryDate:        utcPtr(data.ExpiryDate),
		Category:          data.Category,
		PrescriptionImage: data.PrescriptionImage,
		Reminders:         reminders,
		CreatedAt:         data.CreatedAt.UTC(),
		UpdatedAt:         data.UpdatedAt.UTC(),
	}
}

func toMedicineDomains(data []*model.MedicineModel) []*entity.Medicine {
	medicines := make([]*entity.Medicine, 0, len(data))
	for _, medicineM := range data {
		medicines = append(medicines, toMedicineDomain(medicineM))
	}

	return medicines
}

func fromMedicineDomain(data *entity.Medicine) *model.MedicineModel {
	if data == nil {
		return nil
	}

	reminders := make([]map[string]any, 0, len(data.Reminders))
	for _, r := range data.Reminders {
		reminders = append(reminders, map[string]any(r))
	}

	return &model.MedicineModel{
		ID:                data.ID,
		UserID:            data.UserID,
		Name:              data.Name,
		Dosage:            data.Dosage,
		Frequency:         data.Frequency,
		Instructions:      data.Instructions,
		StockQuantity:     data.StockQuantity,
		ExpiryDate:        utcPtr(data.ExpiryDate),
		Category:          data.Category,
		PrescriptionImage: data.PrescriptionImage,
		Reminders:         datatypes.NewJSONSlice(reminders),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

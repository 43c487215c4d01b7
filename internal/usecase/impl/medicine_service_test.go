package impl

import (
	"context"
	"testing"

	"healthhub/internal/domain/entity"
	domainerrors "healthhub/internal/domain/errors"
	"healthhub/internal/domain/repository"
	mockRepo "healthhub/internal/mocks/repository"
	"healthhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type medicineServiceFixtures struct {
	service      *medicineService
	medicineRepo *mockRepo.MockMedicineRepository
}

func createTestMedicineService(t *testing.T) medicineServiceFixtures {
	medicineRepo := mockRepo.NewMockMedicineRepository(t)
	srv := NewMedicineService(MedicineServiceParams{
		MedicineRepo: medicineRepo,
		Logger:       newDiscardLogger(),
	}).(*medicineService)
	srv.now = fixedClock

	return medicineServiceFixtures{service: srv, medicineRepo: medicineRepo}
}

func TestMedicineService_Create_DefaultsAndOwnership(t *testing.T) {
	fx := createTestMedicineService(t)
	ctx := context.Background()

	fx.medicineRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Medicine")).Return(nil)

	med, err := fx.service.Create(ctx, "owner", usecase.MedicineInput{
		Name:      "Aspirin",
		Dosage:    "100mg",
		Frequency: "daily",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, med.ID)
	assert.Equal(t, "owner", med.UserID)
	assert.Equal(t, entity.DefaultMedicineCategory, med.Category)
	assert.Equal(t, 0, med.StockQuantity)
	assert.NotNil(t, med.Reminders)
	assert.Equal(t, fixedNow, med.CreatedAt)
	assert.Equal(t, fixedNow, med.UpdatedAt)
}

func TestMedicineService_Get_OtherOwnerIsNotFound(t *testing.T) {
	fx := createTestMedicineService(t)
	ctx := context.Background()

	fx.medicineRepo.EXPECT().FindByIDForUser(ctx, "m-1", "intruder").Return(nil, repository.ErrMedicineNotFound)

	_, err := fx.service.Get(ctx, "intruder", "m-1")
	assert.ErrorIs(t, err, domainerrors.ErrMedicineNotFound)
}

func TestMedicineService_Update_ReplacesFields(t *testing.T) {
	fx := createTestMedicineService(t)
	ctx := context.Background()

	existing := &entity.Medicine{
		ID:           "m-1",
		UserID:       "owner",
		Name:         "Old",
		Category:     "pain",
		Instructions: strPtr("with water"),
		CreatedAt:    fixedNow.AddDate(0, -1, 0),
	}
	fx.medicineRepo.EXPECT().FindByIDForUser(ctx, "m-1", "owner").Return(existing, nil)
	fx.medicineRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(m *entity.Medicine) bool {
			return m.Name == "New" && m.Instructions == nil && m.Category == entity.DefaultMedicineCategory
		})).
		Return(nil)

	med, err := fx.service.Update(ctx, "owner", "m-1", usecase.MedicineInput{Name: "New", Dosage: "5mg", Frequency: "weekly"})
	require.NoError(t, err)
	assert.Equal(t, "m-1", med.ID)
	assert.Equal(t, fixedNow, med.UpdatedAt)
	assert.Equal(t, fixedNow.AddDate(0, -1, 0), med.CreatedAt)
}

func TestMedicineService_Update_NotOwned(t *testing.T) {
	fx := createTestMedicineService(t)
	ctx := context.Background()

	fx.medicineRepo.EXPECT().FindByIDForUser(ctx, "m-1", "intruder").Return(nil, repository.ErrMedicineNotFound)

	_, err := fx.service.Update(ctx, "intruder", "m-1", usecase.MedicineInput{Name: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrMedicineNotFound)
}

func TestMedicineService_Delete(t *testing.T) {
	fx := createTestMedicineService(t)
	ctx := context.Background()

	fx.medicineRepo.EXPECT().DeleteForUser(ctx, "m-1", "owner").Return(nil)
	fx.medicineRepo.EXPECT().DeleteForUser(ctx, "m-1", "intruder").Return(repository.ErrMedicineNotFound)

	require.NoError(t, fx.service.Delete(ctx, "owner", "m-1"))
	assert.ErrorIs(t, fx.service.Delete(ctx, "intruder", "m-1"), domainerrors.ErrMedicineNotFound)
}

func TestMedicineService_List_UsesLimit(t *testing.T) {
	fx := createTestMedicineService(t)
	ctx := context.Background()

	fx.medicineRepo.EXPECT().ListByUser(ctx, "owner", usecase.MedicineListLimit).Return([]*entity.Medicine{{ID: "m-1"}}, nil)

	list, err := fx.service.List(ctx, "owner")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

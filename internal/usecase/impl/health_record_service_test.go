package impl

import (
	"context"
	"testing"
	"time"

	"healthhub/internal/domain/entity"
	domainerrors "healthhub/internal/domain/errors"
	mockRepo "healthhub/internal/mocks/repository"
	"healthhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestHealthRecordService(t *testing.T) (*healthRecordService, *mockRepo.MockHealthRecordRepository) {
	recordRepo := mockRepo.NewMockHealthRecordRepository(t)
	srv := NewHealthRecordService(HealthRecordServiceParams{
		RecordRepo: recordRepo,
		Logger:     newDiscardLogger(),
	}).(*healthRecordService)
	srv.now = fixedClock

	return srv, recordRepo
}

func TestHealthRecordService_LogDose_DefaultsTakenAt(t *testing.T) {
	srv, recordRepo := createTestHealthRecordService(t)
	ctx := context.Background()

	recordRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.HealthRecord")).Return(nil)

	record, err := srv.LogDose(ctx, "owner", usecase.LogDoseInput{
		MedicineID: "does-not-exist",
		Status:     entity.RecordStatusTaken,
	})
	require.NoError(t, err)
	assert.Equal(t, fixedNow, record.TakenAt)
	assert.Equal(t, "does-not-exist", record.MedicineID)
	assert.Equal(t, "owner", record.UserID)
}

func TestHealthRecordService_LogDose_KeepsGivenTakenAt(t *testing.T) {
	srv, recordRepo := createTestHealthRecordService(t)
	ctx := context.Background()
	takenAt := time.Date(2025, 4, 14, 20, 0, 0, 0, time.FixedZone("CEST", 2*60*60))

	recordRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	record, err := srv.LogDose(ctx, "owner", usecase.LogDoseInput{
		MedicineID: "m-1",
		Status:     entity.RecordStatusDelayed,
		TakenAt:    &takenAt,
		Notes:      strPtr("late"),
	})
	require.NoError(t, err)
	assert.True(t, takenAt.Equal(record.TakenAt))
	assert.Equal(t, time.UTC, record.TakenAt.Location())
	assert.Equal(t, "late", *record.Notes)
}

func TestHealthRecordService_LogDose_RejectsUnknownStatus(t *testing.T) {
	srv, _ := createTestHealthRecordService(t)

	_, err := srv.LogDose(context.Background(), "owner", usecase.LogDoseInput{MedicineID: "m-1", Status: "skipped"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestHealthRecordService_List(t *testing.T) {
	srv, recordRepo := createTestHealthRecordService(t)
	ctx := context.Background()

	recordRepo.EXPECT().ListByUser(ctx, "owner", usecase.HealthRecordListLimit).Return([]*entity.HealthRecord{}, nil)

	records, err := srv.List(ctx, "owner")
	require.NoError(t, err)
	assert.Empty(t, records)
}

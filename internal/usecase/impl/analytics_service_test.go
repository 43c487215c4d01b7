package impl

import (
	"context"
	"testing"

	"healthhub/internal/domain/entity"
	mockRepo "healthhub/internal/mocks/repository"
	"healthhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records(statuses ...entity.RecordStatus) []*entity.HealthRecord {
	out := make([]*entity.HealthRecord, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, &entity.HealthRecord{Status: s})
	}

	return out
}

func TestComputeAdherence(t *testing.T) {
	tests := []struct {
		name    string
		records []*entity.HealthRecord
		want    usecase.AdherenceReport
	}{
		{
			name:    "no records",
			records: nil,
			want:    usecase.AdherenceReport{PeriodDays: 30},
		},
		{
			name:    "three taken one missed",
			records: records(entity.RecordStatusTaken, entity.RecordStatusTaken, entity.RecordStatusTaken, entity.RecordStatusMissed),
			want:    usecase.AdherenceReport{AdherenceRate: 75.0, TotalDoses: 4, TakenDoses: 3, MissedDoses: 1, PeriodDays: 30},
		},
		{
			name:    "delayed counts against adherence",
			records: records(entity.RecordStatusTaken, entity.RecordStatusDelayed, entity.RecordStatusTaken),
			want:    usecase.AdherenceReport{AdherenceRate: 66.7, TotalDoses: 3, TakenDoses: 2, MissedDoses: 1, PeriodDays: 30},
		},
		{
			name:    "all taken",
			records: records(entity.RecordStatusTaken, entity.RecordStatusTaken),
			want:    usecase.AdherenceReport{AdherenceRate: 100, TotalDoses: 2, TakenDoses: 2, PeriodDays: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, *computeAdherence(tt.records))
		})
	}
}

func createTestAnalyticsService(t *testing.T) (*analyticsService, *mockRepo.MockHealthRecordRepository, *mockRepo.MockMedicineRepository) {
	recordRepo := mockRepo.NewMockHealthRecordRepository(t)
	medicineRepo := mockRepo.NewMockMedicineRepository(t)
	srv := NewAnalyticsService(AnalyticsServiceParams{
		RecordRepo:   recordRepo,
		MedicineRepo: medicineRepo,
		Logger:       newDiscardLogger(),
	}).(*analyticsService)
	srv.now = fixedClock

	return srv, recordRepo, medicineRepo
}

func TestAnalyticsService_Adherence_QueriesLast30Days(t *testing.T) {
	srv, recordRepo, _ := createTestAnalyticsService(t)
	ctx := context.Background()

	recordRepo.EXPECT().
		ListByUserSince(ctx, "owner", fixedNow.Add(-usecase.AdherencePeriod), usecase.AdherenceRecordLimit).
		Return(records(entity.RecordStatusTaken, entity.RecordStatusMissed), nil)

	report, err := srv.Adherence(ctx, "owner")
	require.NoError(t, err)
	assert.InDelta(t, 50.0, report.AdherenceRate, 0.0001)
	assert.Equal(t, 1, report.MissedDoses)
}

func TestAnalyticsService_UpcomingExpiries_Window(t *testing.T) {
	srv, _, medicineRepo := createTestAnalyticsService(t)
	ctx := context.Background()

	medicineRepo.EXPECT().
		ListExpiringBetween(ctx, "owner", fixedNow, fixedNow.Add(usecase.ExpiryHorizon), usecase.ExpiryListLimit).
		Return([]*entity.Medicine{{ID: "m-1"}}, nil)

	medicines, err := srv.UpcomingExpiries(ctx, "owner")
	require.NoError(t, err)
	assert.Len(t, medicines, 1)
}

package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	deliverycontext "healthhub/internal/delivery/context"
	"healthhub/internal/domain/entity"
	"healthhub/internal/domain/repository"
	"healthhub/internal/errors"
	"healthhub/internal/usecase"

	"go.uber.org/fx"
)

// analyticsService implements the AnalyticsUsecase interface.
type analyticsService struct {
	recordRepo   repository.HealthRecordRepository
	medicineRepo repository.MedicineRepository
	logger       *slog.Logger
	now          func() time.Time
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	RecordRepo   repository.HealthRecordRepository
	MedicineRepo repository.MedicineRepository
	Logger       *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		recordRepo:   params.RecordRepo,
		medicineRepo: params.MedicineRepo,
		logger:       params.Logger,
		now:          utcNow,
	}
}

func (srv *analyticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Adherence reports the share of taken doses among the records of the last 30 days.
func (srv *analyticsService) Adherence(ctx context.Context, userID string) (*usecase.AdherenceReport, error) {
	since := srv.now().Add(-usecase.AdherencePeriod)

	records, err := srv.recordRepo.ListByUserSince(ctx, userID, since, usecase.AdherenceRecordLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load records for adherence")
	}

	report := computeAdherence(records)
	srv.log(ctx).Debug("Adherence computed",
		slog.String("user_id", userID),
		slog.Int("total_doses", report.TotalDoses),
		slog.Float64("adherence_rate", report.AdherenceRate),
	)

	return report, nil
}

// UpcomingExpiries lists medicines expiring between now and 30 days from now, soonest first.
func (srv *analyticsService) UpcomingExpiries(ctx context.Context, userID string) ([]*entity.Medicine, error) {
	now := srv.now()

	medicines, err := srv.medicineRepo.ListExpiringBetween(ctx, userID, now, now.Add(usecase.ExpiryHorizon), usecase.ExpiryListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list upcoming expiries")
	}

	return medicines, nil
}

// computeAdherence counts every status other than taken as missed.
func computeAdherence(records []*entity.HealthRecord) *usecase.AdherenceReport {
	total := len(records)
	taken := 0
	for _, record := range records {
		if record.Status == entity.RecordStatusTaken {
			taken++
		}
	}

	rate := 0.0
	if total > 0 {
		rate = math.Round(float64(taken)/float64(total)*100*10) / 10
	}

	return &usecase.AdherenceReport{
		AdherenceRate: rate,
		TotalDoses:    total,
		TakenDoses:    taken,
		MissedDoses:   total - taken,
		PeriodDays:    usecase.AdherencePeriodDays,
	}
}

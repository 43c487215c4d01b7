package usecase

import (
	"context"
	"time"

	"healthhub/internal/domain/entity"
)

const (
	// AdherencePeriod is the look-back window of the adherence report.
	AdherencePeriod = 30 * 24 * time.Hour
	// AdherencePeriodDays is AdherencePeriod in days, as reported to clients.
	AdherencePeriodDays = 30
	// AdherenceRecordLimit caps how many records the report reads.
	AdherenceRecordLimit = 1000

	// ExpiryHorizon is how far ahead upcoming expiries look.
	ExpiryHorizon = 30 * 24 * time.Hour
	// ExpiryListLimit caps how many upcoming expiries are returned.
	ExpiryListLimit = 100
)

// AdherenceReport summarizes dose records over the adherence period.
type AdherenceReport struct {
	AdherenceRate float64 `json:"adherence_rate"`
	TotalDoses    int     `json:"total_doses"`
	TakenDoses    int     `json:"taken_doses"`
	MissedDoses   int     `json:"missed_doses"`
	PeriodDays    int     `json:"period_days"`
}

// AnalyticsUsecase computes read-only reports over the caller's data.
type AnalyticsUsecase interface {
	Adherence(ctx context.Context, userID string) (*AdherenceReport, error)
	UpcomingExpiries(ctx context.Context, userID string) ([]*entity.Medicine, error)
}

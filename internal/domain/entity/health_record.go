package entity

import "time"

// RecordStatus is the outcome of a scheduled dose.
type RecordStatus string

const (
	RecordStatusTaken   RecordStatus = "taken"
	RecordStatusMissed  RecordStatus = "missed"
	RecordStatusDelayed RecordStatus = "delayed"
)

// IsValid checks if the status is a known value.
func (s RecordStatus) IsValid() bool {
	switch s {
	case RecordStatusTaken, RecordStatusMissed, RecordStatusDelayed:
		return true
	default:
		return false
	}
}

// HealthRecord logs one dose event. Records are immutable once written.
// MedicineID is not checked against the medicines collection.
type HealthRecord struct {
	ID         string       `json:"id"`
	UserID     string       `json:"user_id"`
	MedicineID string       `json:"medicine_id"`
	TakenAt    time.Time    `json:"taken_at"`
	Status     RecordStatus `json:"status"`
	Notes      *string      `json:"notes"`
	CreatedAt  time.Time    `json:"created_at"`
}

package model

import "time"

// HealthRecordModel mirrors the 'health_records' table.
type HealthRecordModel struct {
	ID         string    `gorm:"type:varchar(36);primaryKey"`
	UserID     string    `gorm:"type:varchar(36);not null;index:idx_health_records_user_taken_at,priority:1"`
	MedicineID string    `gorm:"type:varchar(36);not null"`
	TakenAt    time.Time `gorm:"not null;index:idx_health_records_user_taken_at,priority:2"`
	Status     string    `gorm:"type:varchar(16);not null"`
	Notes      *string   `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (HealthRecordModel) TableName() string {
	return "health_records"
}

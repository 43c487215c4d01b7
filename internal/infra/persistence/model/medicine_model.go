package model

import (
	"time"

	"gorm.io/datatypes"
)

// MedicineModel mirrors the 'medicines' table.
type MedicineModel struct {
	ID                string                              `gorm:"type:varchar(36);primaryKey"`
	UserID            string                              `gorm:"type:varchar(36);not null;index:idx_medicines_user_id"`
	Name              string                              `gorm:"type:varchar(255);not null"`
	Dosage            string                              `gorm:"type:varchar(255);not null"`
	Frequency         string                              `gorm:"type:varchar(255);not null"`
	Instructions      *string                             `gorm:"type:text"`
	StockQuantity     int                                 `gorm:"not null"`
	ExpiryDate        *time.Time                          `gorm:"column:expiry_date"`
	Category          string                              `gorm:"type:varchar(100);not null"`
	PrescriptionImage *string                             `gorm:"type:text"`
	Reminders         datatypes.JSONSlice[map[string]any] `gorm:"column:reminders"`
	CreatedAt         time.Time                           `gorm:"not null"`
	UpdatedAt         time.Time                           `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (MedicineModel) TableName() string {
	return "medicines"
}

// Package model contains the GORM persistence models. Each model mirrors one table.
package model

import (
	"time"

	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. IDs are assigned by the application.
type UserModel struct {
	ID                string                                 `gorm:"type:varchar(36);primaryKey"`
	Email             string                                 `gorm:"type:varchar(255);uniqueIndex:idx_users_email;not null"`
	PasswordHash      string                                 `gorm:"type:varchar(255);not null"`
	FullName          string                                 `gorm:"type:varchar(255);not null"`
	Phone             *string                                `gorm:"type:varchar(50)"`
	DateOfBirth       *time.Time                             `gorm:"column:date_of_birth"`
	BloodType         *string                                `gorm:"type:varchar(10)"`
	Allergies         datatypes.JSONSlice[string]            `gorm:"column:allergies"`
	EmergencyContacts datatypes.JSONSlice[map[string]string] `gorm:"column:emergency_contacts"`
	FamilyMembers     datatypes.JSONSlice[string]            `gorm:"column:family_members"`
	Role              string                                 `gorm:"type:varchar(32);not null"`
	CreatedAt         time.Time                              `gorm:"not null"`
	UpdatedAt         time.Time                              `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

package model

import "time"

// FamilyInviteModel mirrors the 'family_invites' table.
type FamilyInviteModel struct {
	ID           string    `gorm:"type:varchar(36);primaryKey"`
	InviterID    string    `gorm:"type:varchar(36);not null;index:idx_family_invites_inviter_id"`
	InviteeEmail string    `gorm:"type:varchar(255);not null;index:idx_family_invites_invitee_email"`
	Role         string    `gorm:"type:varchar(32);not null"`
	Status       string    `gorm:"type:varchar(16);not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (FamilyInviteModel) TableName() string {
	return "family_invites"
}

// All lists every model, in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&MedicineModel{},
		&HealthRecordModel{},
		&FamilyInviteModel{},
	}
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"
)

// EmergencyContact is a free-form contact card, typically name, phone and relation.
type EmergencyContact map[string]string

// User is an account holder. Users link to each other through FamilyMembers.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	FullName     string `json:"full_name"`

	Phone       *string    `json:"phone"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	BloodType   *string    `json:"blood_type"`

	// Allergies and EmergencyContacts are printed on the emergency card.
	Allergies         []string           `json:"allergies"`
	EmergencyContacts []EmergencyContact `json:"emergency_contacts"`

	// FamilyMembers holds IDs of linked users, without duplicates.
	FamilyMembers []string `json:"family_members"`

	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasFamilyMember reports whether memberID is already linked to the user.
func (u *User) HasFamilyMember(memberID string) bool {
	return slices.Contains(u.FamilyMembers, memberID)
}

// AddFamilyMember links memberID to the user. It reports false when the link already existed.
func (u *User) AddFamilyMember(memberID string) bool {
	if memberID == "" || memberID == u.ID || u.HasFamilyMember(memberID) {
		return false
	}
	u.FamilyMembers = append(u.FamilyMembers, memberID)

	return true
}

// FamilyMemberView is the redacted profile a user sees for a linked family member.
type FamilyMemberView struct {
	ID        string   `json:"id"`
	FullName  string   `json:"full_name"`
	Email     string   `json:"email"`
	BloodType *string  `json:"blood_type"`
	Allergies []string `json:"allergies"`
}

// FamilyView returns the redacted profile of the user.
func (u *User) FamilyView() FamilyMemberView {
	return FamilyMemberView{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		BloodType: u.BloodType,
		Allergies: nonNil(u.Allergies),
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}

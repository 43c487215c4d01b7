// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"healthhub/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open an account.
type RegisterInput struct {
	Email             string
	Password          string
	FullName          string
	Phone             *string
	DateOfBirth       *time.Time
	BloodType         *string
	Allergies         []string
	EmergencyContacts []entity.EmergencyContact
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput carries a partial profile update. Nil fields are left unchanged.
type UpdateProfileInput struct {
	FullName          *string
	Phone             *string
	DateOfBirth       *time.Time
	BloodType         *string
	Allergies         []string
	EmergencyContacts []entity.EmergencyContact
}

// --- Output DTOs ---

// AuthOutput returns the session token issued for the user.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase covers account registration, login, token resolution and the caller's profile.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// Authenticate resolves a bearer token to the user it was issued for.
	Authenticate(ctx context.Context, token string) (*entity.User, error)

	UpdateProfile(ctx context.Context, user *entity.User, input UpdateProfileInput) (*entity.User, error)
}

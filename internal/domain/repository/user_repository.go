// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"healthhub/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when creating a user whose email already exists.
	ErrEmailTaken = errors.New("email already taken")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByIDs retrieves every user whose ID is in ids. Unknown IDs are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*entity.User, error)

	// Create persists a new user. Returns ErrEmailTaken on a duplicate email.
	Create(ctx context.Context, user *entity.User) error

	// Update writes the mutable profile fields. It never touches the family member list.
	Update(ctx context.Context, user *entity.User) error

	// AddFamilyMember links memberID to userID under a row lock and reports
	// whether a new link was written.
	AddFamilyMember(ctx context.Context, userID, memberID string) (bool, error)
}

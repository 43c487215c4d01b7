package repository

import (
	"context"

	"healthhub/internal/domain/entity"
)

// FamilyInviteRepository persists invitation attempts.
type FamilyInviteRepository interface {
	Create(ctx context.Context, invite *entity.FamilyInvite) error

	// ListByInviter returns at most limit invites sent by inviterID, newest first.
	ListByInviter(ctx context.Context, inviterID string, limit int) ([]*entity.FamilyInvite, error)
}

package usecase

import (
	"context"

	"healthhub/internal/domain/entity"
)

// FamilyInviteListLimit caps how many sent invites a listing returns.
const FamilyInviteListLimit = 100

// InviteInput names the person to invite. Role defaults to family_member.
type InviteInput struct {
	InviteeEmail string
	Role         entity.Role
}

// InviteOutput reports whether the invitee already had an account and was linked.
type InviteOutput struct {
	Invite *entity.FamilyInvite
	Linked bool
}

// FamilyUsecase links accounts into a family.
type FamilyUsecase interface {
	Invite(ctx context.Context, inviter *entity.User, input InviteInput) (*InviteOutput, error)
	Members(ctx context.Context, user *entity.User) ([]entity.FamilyMemberView, error)
	SentInvites(ctx context.Context, userID string) ([]*entity.FamilyInvite, error)
}

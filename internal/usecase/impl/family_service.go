package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "healthhub/internal/delivery/context"
	"healthhub/internal/domain/entity"
	"healthhub/internal/domain/repository"
	"healthhub/internal/errors"
	"healthhub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// familyService implements the FamilyUsecase interface.
type familyService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	inviteRepo repository.FamilyInviteRepository
	logger     *slog.Logger
	now        func() time.Time
}

// FamilyServiceParams holds dependencies for FamilyService, injected by Fx.
type FamilyServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	InviteRepo repository.FamilyInviteRepository
	Logger     *slog.Logger
}

// NewFamilyService is the constructor for familyService.
func NewFamilyService(params FamilyServiceParams) usecase.FamilyUsecase {
	return &familyService{
		txManager:  params.TxManager,
		userRepo:   params.UserRepo,
		inviteRepo: params.InviteRepo,
		logger:     params.Logger,
		now:        utcNow,
	}
}

func (srv *familyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Invite records the invitation and, when the invitee already has an account,
// links both users to each other. All writes share one transaction.
func (srv *familyService) Invite(ctx context.Context, inviter *entity.User, input usecase.InviteInput) (*usecase.InviteOutput, error) {
	role := input.Role
	if role == "" {
		role = entity.RoleFamilyMember
	}

	invite := &entity.FamilyInvite{
		ID:           uuid.NewString(),
		InviterID:    inviter.ID,
		InviteeEmail: normalizeEmail(input.InviteeEmail),
		Role:         role,
		Status:       entity.InviteStatusPending,
		CreatedAt:    srv.now(),
	}

	linked := false
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewFamilyInviteRepository().Create(ctx, invite); err != nil {
			return errors.Wrap(err, "failed to record family invite")
		}

		var err error
		linked, err = srv.linkExistingUser(ctx, repoFactory.NewUserRepository(), inviter.ID, invite.InviteeEmail)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Family invite failed",
			slog.String("inviter_id", inviter.ID),
			slog.String("invitee_email", invite.InviteeEmail),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute family invite transaction")
	}

	srv.log(ctx).Info("Family invite recorded",
		slog.String("invite_id", invite.ID),
		slog.String("inviter_id", inviter.ID),
		slog.Bool("linked", linked),
	)

	return &usecase.InviteOutput{Invite: invite, Linked: linked}, nil
}

// linkExistingUser adds inviter and invitee to each other's family. It reports false
// when no account uses the email or when the email is the inviter's own.
// Rows are locked in ID order so concurrent invites between the same pair cannot deadlock.
func (srv *familyService) linkExistingUser(
	ctx context.Context,
	userRepo repository.UserRepository,
	inviterID, inviteeEmail string,
) (bool, error) {
	invitee, err := userRepo.FindByEmail(ctx, inviteeEmail)
	if errors.Is(err, repository.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to look up invitee")
	}
	if invitee.ID == inviterID {
		return false, nil
	}

	links := [2][2]string{{inviterID, invitee.ID}, {invitee.ID, inviterID}}
	if invitee.ID < inviterID {
		links[0], links[1] = links[1], links[0]
	}
	for _, link := range links {
		if _, err := userRepo.AddFamilyMember(ctx, link[0], link[1]); err != nil {
			return false, errors.Wrapf(err, "failed to link %s to %s", link[1], link[0])
		}
	}

	return true, nil
}

// Members resolves the user's family member IDs to redacted profiles.
func (srv *familyService) Members(ctx context.Context, user *entity.User) ([]entity.FamilyMemberView, error) {
	if len(user.FamilyMembers) == 0 {
		return []entity.FamilyMemberView{}, nil
	}

	members, err := srv.userRepo.FindByIDs(ctx, user.FamilyMembers)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load family members")
	}

	views := make([]entity.FamilyMemberView, 0, len(members))
	for _, member := range members {
		views = append(views, member.FamilyView())
	}

	return views, nil
}

func (srv *familyService) SentInvites(ctx context.Context, userID string) ([]*entity.FamilyInvite, error) {
	invites, err := srv.inviteRepo.ListByInviter(ctx, userID, usecase.FamilyInviteListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list family invites")
	}

	return invites, nil
}

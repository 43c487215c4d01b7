package impl

import (
	"context"
	"testing"

	"healthhub/internal/domain/entity"
	"healthhub/internal/domain/repository"
	mockRepo "healthhub/internal/mocks/repository"
	"healthhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// familyServiceFixtures holds all test dependencies for family service tests.
type familyServiceFixtures struct {
	service    *familyService
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	userRepo   *mockRepo.MockUserRepository
	inviteRepo *mockRepo.MockFamilyInviteRepository
	txUserRepo *mockRepo.MockUserRepository
	txInvites  *mockRepo.MockFamilyInviteRepository
}

func createTestFamilyService(t *testing.T) familyServiceFixtures {
	f := familyServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		factory:    mockRepo.NewMockRepositoryFactory(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
		inviteRepo: mockRepo.NewMockFamilyInviteRepository(t),
		txUserRepo: mockRepo.NewMockUserRepository(t),
		txInvites:  mockRepo.NewMockFamilyInviteRepository(t),
	}

	srv := NewFamilyService(FamilyServiceParams{
		TxManager:  f.txManager,
		UserRepo:   f.userRepo,
		InviteRepo: f.inviteRepo,
		Logger:     newDiscardLogger(),
	}).(*familyService)
	srv.now = fixedClock
	f.service = srv

	return f
}

// expectTransaction runs the transactional callback against the fixture's factory.
func (f familyServiceFixtures) expectTransaction(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
	f.factory.EXPECT().NewFamilyInviteRepository().Return(f.txInvites).Maybe()
	f.factory.EXPECT().NewUserRepository().Return(f.txUserRepo).Maybe()
}

func TestFamilyService_Invite_LinksExistingUser(t *testing.T) {
	fx := createTestFamilyService(t)
	ctx := context.Background()
	fx.expectTransaction(ctx)

	inviter := &entity.User{ID: "u-a", Email: "a@example.com", FamilyMembers: []string{}}
	invitee := &entity.User{ID: "u-b", Email: "b@example.com", FamilyMembers: []string{}}

	fx.txInvites.EXPECT().
		Create(ctx, mock.MatchedBy(func(inv *entity.FamilyInvite) bool {
			return inv.InviterID == "u-a" &&
				inv.InviteeEmail == "b@example.com" &&
				inv.Role == entity.RoleFamilyMember &&
				inv.Status == entity.InviteStatusPending
		})).
		Return(nil)
	fx.txUserRepo.EXPECT().FindByEmail(ctx, "b@example.com").Return(invitee, nil)
	first := fx.txUserRepo.EXPECT().AddFamilyMember(ctx, "u-a", "u-b").Return(true, nil).Call
	fx.txUserRepo.EXPECT().AddFamilyMember(ctx, "u-b", "u-a").Return(true, nil).NotBefore(first)

	out, err := fx.service.Invite(ctx, inviter, usecase.InviteInput{InviteeEmail: "B@example.com"})
	require.NoError(t, err)
	assert.True(t, out.Linked)
	assert.Equal(t, "b@example.com", out.Invite.InviteeEmail)
}

func TestFamilyService_Invite_UnknownEmailOnlyRecordsInvite(t *testing.T) {
	fx := createTestFamilyService(t)
	ctx := context.Background()
	fx.expectTransaction(ctx)

	inviter := &entity.User{ID: "u-a"}

	fx.txInvites.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.txUserRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)

	out, err := fx.service.Invite(ctx, inviter, usecase.InviteInput{InviteeEmail: "new@example.com", Role: entity.RoleAdmin})
	require.NoError(t, err)
	assert.False(t, out.Linked)
	assert.Equal(t, entity.RoleAdmin, out.Invite.Role)
}

func TestFamilyService_Invite_AlreadyLinkedStillReportsLinked(t *testing.T) {
	fx := createTestFamilyService(t)
	ctx := context.Background()
	fx.expectTransaction(ctx)

	fx.txInvites.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.txUserRepo.EXPECT().FindByEmail(ctx, "b@example.com").Return(&entity.User{ID: "u-b", FamilyMembers: []string{"u-a"}}, nil)
	fx.txUserRepo.EXPECT().AddFamilyMember(ctx, "u-a", "u-b").Return(false, nil)
	fx.txUserRepo.EXPECT().AddFamilyMember(ctx, "u-b", "u-a").Return(false, nil)

	out, err := fx.service.Invite(ctx, &entity.User{ID: "u-a"}, usecase.InviteInput{InviteeEmail: "b@example.com"})
	require.NoError(t, err)
	assert.True(t, out.Linked)
}

func TestFamilyService_Invite_SelfInviteDoesNotLink(t *testing.T) {
	fx := createTestFamilyService(t)
	ctx := context.Background()
	fx.expectTransaction(ctx)

	fx.txInvites.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.txUserRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(&entity.User{ID: "u-a"}, nil)

	out, err := fx.service.Invite(ctx, &entity.User{ID: "u-a", Email: "a@example.com"}, usecase.InviteInput{InviteeEmail: "a@example.com"})
	require.NoError(t, err)
	assert.False(t, out.Linked)
}

func TestFamilyService_Invite_SecondWriteFailurePropagates(t *testing.T) {
	fx := createTestFamilyService(t)
	ctx := context.Background()
	fx.expectTransaction(ctx)

	errWrite := errors.New("write failed")

	fx.txInvites.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.txUserRepo.EXPECT().FindByEmail(ctx, "b@example.com").Return(&entity.User{ID: "u-b"}, nil)
	fx.txUserRepo.EXPECT().AddFamilyMember(ctx, "u-a", "u-b").Return(true, nil)
	fx.txUserRepo.EXPECT().AddFamilyMember(ctx, "u-b", "u-a").Return(false, errWrite)

	_, err := fx.service.Invite(ctx, &entity.User{ID: "u-a"}, usecase.InviteInput{InviteeEmail: "b@example.com"})
	assert.ErrorIs(t, err, errWrite)
}

func TestFamilyService_Invite_LocksLowerIDFirst(t *testing.T) {
	fx := createTestFamilyService(t)
	ctx := context.Background()
	fx.expectTransaction(ctx)

	fx.txInvites.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.txUserRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(&entity.User{ID: "u-a"}, nil)
	first := fx.txUserRepo.EXPECT().AddFamilyMember(ctx, "u-a", "u-z").Return(true, nil).Call
	fx.txUserRepo.EXPECT().AddFamilyMember(ctx, "u-z", "u-a").Return(true, nil).NotBefore(first)

	out, err := fx.service.Invite(ctx, &entity.User{ID: "u-z"}, usecase.InviteInput{InviteeEmail: "a@example.com"})
	require.NoError(t, err)
	assert.True(t, out.Linked)
}

func TestFamilyService_Members(t *testing.T) {
	t.Run("empty list skips the query", func(t *testing.T) {
		fx := createTestFamilyService(t)

		members, err := fx.service.Members(context.Background(), &entity.User{ID: "u-a"})
		require.NoError(t, err)
		assert.NotNil(t, members)
		assert.Empty(t, members)
	})

	t.Run("resolves redacted profiles", func(t *testing.T) {
		fx := createTestFamilyService(t)
		ctx := context.Background()
		bloodType := "B+"

		fx.userRepo.EXPECT().FindByIDs(ctx, []string{"u-b"}).Return([]*entity.User{{
			ID:           "u-b",
			Email:        "b@example.com",
			FullName:     "Bea",
			PasswordHash: "secret",
			BloodType:    &bloodType,
		}}, nil)

		members, err := fx.service.Members(ctx, &entity.User{ID: "u-a", FamilyMembers: []string{"u-b"}})
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, "Bea", members[0].FullName)
		assert.Equal(t, "B+", *members[0].BloodType)
		assert.NotNil(t, members[0].Allergies)
	})
}

func TestFamilyService_SentInvites(t *testing.T) {
	fx := createTestFamilyService(t)
	ctx := context.Background()

	fx.inviteRepo.EXPECT().ListByInviter(ctx, "u-a", usecase.FamilyInviteListLimit).Return([]*entity.FamilyInvite{{ID: "inv-1"}}, nil)

	invites, err := fx.service.SentInvites(ctx, "u-a")
	require.NoError(t, err)
	assert.Len(t, invites, 1)
}

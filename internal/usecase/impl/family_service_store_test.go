package impl

import (
	"context"
	"testing"

	"healthhub/config"
	"healthhub/internal/domain/entity"
	"healthhub/internal/domain/repository"
	"healthhub/internal/infra/persistence/store"
	"healthhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// storeFixture wires the family and auth services to a private SQLite database.
type storeFixture struct {
	db      *gorm.DB
	users   repository.UserRepository
	invites repository.FamilyInviteRepository
	family  usecase.FamilyUsecase
	auth    usecase.AuthUsecase
}

func newStoreFixture(t *testing.T) storeFixture {
	t.Helper()

	logger := newDiscardLogger()
	db, err := store.Open(config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		DSN:          ":memory:",
		MaxOpenConns: 1,
	}, logger, false)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background(), db, config.DriverSQLite))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	users := store.NewUserRepository(db)
	invites := store.NewFamilyInviteRepository(db)

	return storeFixture{
		db:      db,
		users:   users,
		invites: invites,
		family: NewFamilyService(FamilyServiceParams{
			TxManager:  store.NewTransactionManager(db),
			UserRepo:   users,
			InviteRepo: invites,
			Logger:     logger,
		}),
		auth: NewAuthService(AuthServiceParams{
			UserRepo: users,
			Logger:   logger,
		}),
	}
}

func (f storeFixture) createUser(t *testing.T, id, email string) *entity.User {
	t.Helper()

	user := &entity.User{
		ID:           id,
		Email:        email,
		PasswordHash: "hash",
		FullName:     "User " + id,
		Role:         entity.RoleUser,
		CreatedAt:    fixedNow,
		UpdatedAt:    fixedNow,
	}
	require.NoError(t, f.users.Create(context.Background(), user))

	return user
}

func TestFamilyService_Invite_RollsBackWhenSecondLinkFails(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()

	inviter := f.createUser(t, "user-a", "a@example.com")
	f.createUser(t, "user-b", "b@example.com")

	require.NoError(t, f.db.Exec(`CREATE TRIGGER fail_link_user_b BEFORE UPDATE ON users
		WHEN NEW.id = 'user-b'
		BEGIN SELECT RAISE(ABORT, 'forced failure'); END`).Error)

	_, err := f.family.Invite(ctx, inviter, usecase.InviteInput{InviteeEmail: "b@example.com"})
	require.Error(t, err)

	for _, id := range []string{"user-a", "user-b"} {
		got, err := f.users.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, got.FamilyMembers, id)
	}

	sent, err := f.invites.ListByInviter(ctx, "user-a", usecase.FamilyInviteListLimit)
	require.NoError(t, err)
	assert.Empty(t, sent)
}

func TestFamilyService_Invite_SurvivesStaleProfileUpdate(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()

	inviter := f.createUser(t, "user-a", "a@example.com")
	f.createUser(t, "user-b", "b@example.com")

	inviteeSnapshot, err := f.users.FindByID(ctx, "user-b")
	require.NoError(t, err)

	out, err := f.family.Invite(ctx, inviter, usecase.InviteInput{InviteeEmail: "b@example.com"})
	require.NoError(t, err)
	require.True(t, out.Linked)

	bloodType := "O+"
	_, err = f.auth.UpdateProfile(ctx, inviteeSnapshot, usecase.UpdateProfileInput{BloodType: &bloodType})
	require.NoError(t, err)

	invitee, err := f.users.FindByID(ctx, "user-b")
	require.NoError(t, err)
	require.NotNil(t, invitee.BloodType)
	assert.Equal(t, "O+", *invitee.BloodType)
	assert.Equal(t, []string{"user-a"}, invitee.FamilyMembers)

	reloaded, err := f.users.FindByID(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, []string{"user-b"}, reloaded.FamilyMembers)
}

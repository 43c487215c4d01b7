package impl

import (
	"context"
	"testing"
	"time"

	"healthhub/internal/domain/entity"
	domainerrors "healthhub/internal/domain/errors"
	"healthhub/internal/domain/repository"
	"healthhub/internal/domain/service"
	mockRepo "healthhub/internal/mocks/repository"
	mockSvc "healthhub/internal/mocks/service"
	"healthhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      *authService
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	srv := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	}).(*authService)
	srv.now = fixedClock

	return authServiceFixtures{
		service:      srv,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("s3cret").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "alice@example.com" &&
				u.PasswordHash == "hashed" &&
				u.Role == entity.RoleUser &&
				u.FamilyMembers != nil && len(u.FamilyMembers) == 0 &&
				u.Allergies != nil && len(u.Allergies) == 0 &&
				u.EmergencyContacts != nil && len(u.EmergencyContacts) == 0 &&
				u.BloodType == nil &&
				u.CreatedAt.Equal(fixedNow)
		})).
		Return(nil)
	fx.tokenService.EXPECT().IssueToken(mock.AnythingOfType("string"), "alice@example.com").Return("jwt-token", nil)

	out, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email:    "  Alice@Example.com ",
		Password: "s3cret",
		FullName: "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", out.Token)
	assert.Equal(t, "alice@example.com", out.User.Email)
	assert.NotEmpty(t, out.User.ID)
	assert.Equal(t, "Alice", out.User.FullName)
}

func TestAuthService_Register_MedicalProfile(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	bloodType := "AB-"
	contacts := []entity.EmergencyContact{{"name": "Sam", "phone": "555-0100"}}

	fx.userRepo.EXPECT().FindByEmail(ctx, "carol@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("s3cret").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.BloodType != nil && *u.BloodType == "AB-" &&
				assert.ObjectsAreEqual([]string{"latex"}, u.Allergies) &&
				assert.ObjectsAreEqual(contacts, u.EmergencyContacts)
		})).
		Return(nil)
	fx.tokenService.EXPECT().IssueToken(mock.AnythingOfType("string"), "carol@example.com").Return("jwt-token", nil)

	out, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email:             "carol@example.com",
		Password:          "s3cret",
		FullName:          "Carol",
		BloodType:         &bloodType,
		Allergies:         []string{"latex"},
		EmergencyContacts: contacts,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"latex"}, out.User.Allergies)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "dup@example.com").Return(&entity.User{ID: "u-1"}, nil)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "dup@example.com", Password: "pw", FullName: "Dup"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAuthService_Register_UniqueViolationRace(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "race@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pw").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrEmailTaken)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "race@example.com", Password: "pw", FullName: "Race"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pw").Return("", errors.New("cost too high"))

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "a@example.com", Password: "pw", FullName: "A"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_Login(t *testing.T) {
	user := &entity.User{ID: "u-1", Email: "bob@example.com", PasswordHash: "hashed"}

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "bob@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("right", "hashed").Return(true)
		fx.tokenService.EXPECT().IssueToken("u-1", "bob@example.com").Return("jwt-token", nil)

		out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "BOB@example.com", Password: "right"})
		require.NoError(t, err)
		assert.Equal(t, "jwt-token", out.Token)
		assert.Equal(t, user, out.User)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "bob@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "bob@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	t.Run("resolves user by email claim", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		user := &entity.User{ID: "u-1", Email: "bob@example.com"}

		fx.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: "u-1", Email: "bob@example.com"}, nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, "bob@example.com").Return(user, nil)

		got, err := fx.service.Authenticate(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("empty token", func(t *testing.T) {
		fx := createTestAuthService(t)

		_, err := fx.service.Authenticate(context.Background(), "")
		assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
	})

	t.Run("expired token passes verifier error through", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.tokenService.EXPECT().ValidateToken("old").Return(nil, errors.Wrap(domainerrors.ErrTokenExpired, "validate"))

		_, err := fx.service.Authenticate(context.Background(), "old")
		assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
	})

	t.Run("deleted user", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: "u-9", Email: "gone@example.com"}, nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, "gone@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Authenticate(ctx, "tok")
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestAuthService_UpdateProfile_PartialUpdate(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	original := &entity.User{
		ID:        "u-1",
		Email:     "bob@example.com",
		FullName:  "Bob",
		Allergies: []string{"dust"},
		UpdatedAt: fixedNow.Add(-time.Hour),
	}

	fx.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.FullName == "Bob" && *u.BloodType == "A-" && u.UpdatedAt.Equal(fixedNow)
		})).
		Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, original, usecase.UpdateProfileInput{BloodType: strPtr("A-")})
	require.NoError(t, err)
	assert.Equal(t, "A-", *updated.BloodType)
	assert.Equal(t, []string{"dust"}, updated.Allergies)
	assert.Nil(t, original.BloodType)
}

// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "healthhub/internal/delivery/context"
	"healthhub/internal/domain/entity"
	domainerrors "healthhub/internal/domain/errors"
	"healthhub/internal/domain/repository"
	"healthhub/internal/domain/service"
	"healthhub/internal/errors"
	"healthhub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          utcNow,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account with the "user" role and signs the caller in.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		srv.log(ctx).Info("Registration rejected, email in use", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "register")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing email")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed.WithDetails(err.Error()), "register")
	}

	now := srv.now()
	user := &entity.User{
		ID:                uuid.NewString(),
		Email:             email,
		PasswordHash:      passwordHash,
		FullName:          strings.TrimSpace(input.FullName),
		Phone:             input.Phone,
		DateOfBirth:       input.DateOfBirth,
		BloodType:         input.BloodType,
		Allergies:         orEmpty(input.Allergies),
		EmergencyContacts: orEmpty(input.EmergencyContacts),
		FamilyMembers:     []string{},
		Role:              entity.RoleUser,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "register")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	token, err := srv.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.String("user_id", user.ID))

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// Login verifies the credentials and issues a new session token.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Login failed, unknown email", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login")
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login failed, password mismatch", slog.String("user_id", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login")
	}

	token, err := srv.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// Authenticate validates the token and loads the user named by its email claim.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "authenticate")
		}

		return nil, errors.Wrap(err, "failed to load token owner")
	}

	return user, nil
}

// UpdateProfile applies the non-nil fields of input to the caller's profile.
func (srv *authService) UpdateProfile(ctx context.Context, user *entity.User, input usecase.UpdateProfileInput) (*entity.User, error) {
	updated := *user

	if input.FullName != nil {
		updated.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.Phone != nil {
		updated.Phone = input.Phone
	}
	if input.DateOfBirth != nil {
		updated.DateOfBirth = input.DateOfBirth
	}
	if input.BloodType != nil {
		updated.BloodType = input.BloodType
	}
	if input.Allergies != nil {
		updated.Allergies = input.Allergies
	}
	if input.EmergencyContacts != nil {
		updated.EmergencyContacts = input.EmergencyContacts
	}
	updated.UpdatedAt = srv.now()

	if err := srv.userRepo.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "update profile")
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Debug("Profile updated", slog.String("user_id", updated.ID))

	return &updated, nil
}

func (srv *authService) issueToken(ctx context.Context, user *entity.User) (string, error) {
	token, err := srv.tokenService.IssueToken(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.String("user_id", user.ID), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrTokenIssueFailed.WithDetails(err.Error()), "issue token")
	}

	return token, nil
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}

// normalizeEmail makes email lookups case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func utcNow() time.Time {
	return time.Now().UTC()
}

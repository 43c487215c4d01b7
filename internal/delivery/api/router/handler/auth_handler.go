// Package handler contains the echo handlers of the REST API. Handlers bind and
// validate requests, call a usecase and shape its result into the response body.
package handler

import (
	"encoding/json"
	"log/slog"

	"healthhub/internal/delivery/api/middleware"
	"healthhub/internal/delivery/api/response"
	"healthhub/internal/delivery/api/validator"
	"healthhub/internal/domain/entity"
	domainerrors "healthhub/internal/domain/errors"
	"healthhub/internal/errors"
	"healthhub/internal/types"
	"healthhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler holds dependencies for account-related handlers
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for opening an account.
// bcrypt only reads the first 72 bytes of a password.
type RegisterRequest struct {
	Email             string                    `json:"email" validate:"required,email"`
	Password          string                    `json:"password" validate:"required,max=72"`
	FullName          string                    `json:"full_name" validate:"required,max=255"`
	Phone             *string                   `json:"phone" validate:"omitempty,max=50"`
	DateOfBirth       *types.FlexTime           `json:"date_of_birth"`
	BloodType         *string                   `json:"blood_type" validate:"omitempty,max=10"`
	Allergies         []string                  `json:"allergies"`
	EmergencyContacts []entity.EmergencyContact `json:"emergency_contacts"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest represents a partial profile update. Omitted fields are kept.
type UpdateProfileRequest struct {
	FullName          *string                   `json:"full_name" validate:"omitempty,min=1,max=255"`
	Phone             *string                   `json:"phone" validate:"omitempty,max=50"`
	DateOfBirth       *types.FlexTime           `json:"date_of_birth"`
	BloodType         *string                   `json:"blood_type" validate:"omitempty,max=10"`
	Allergies         []string                  `json:"allergies"`
	EmergencyContacts []entity.EmergencyContact `json:"emergency_contacts"`
}

// UserSummary is the user block of the registration response.
type UserSummary struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// LoginUser is the user block of the login response.
type LoginUser struct {
	ID                string                    `json:"id"`
	Email             string                    `json:"email"`
	FullName          string                    `json:"full_name"`
	BloodType         *string                   `json:"blood_type"`
	Allergies         []string                  `json:"allergies"`
	EmergencyContacts []entity.EmergencyContact `json:"emergency_contacts"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    LoginUser `json:"user"`
}

// Register handles account registration
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.Register(c.Request().Context(), usecase.RegisterInput{
		Email:             req.Email,
		Password:          req.Password,
		FullName:          req.FullName,
		Phone:             req.Phone,
		DateOfBirth:       types.TimePtr(req.DateOfBirth),
		BloodType:         req.BloodType,
		Allergies:         req.Allergies,
		EmergencyContacts: req.EmergencyContacts,
	})
	if err != nil {
		return err
	}

	return response.OK(c, RegisterResponse{
		Message: "User registered successfully",
		Token:   out.Token,
		User: UserSummary{
			ID:       out.User.ID,
			Email:    out.User.Email,
			FullName: out.User.FullName,
		},
	})
}

// Login handles password login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.OK(c, LoginResponse{
		Message: "Login successful",
		Token:   out.Token,
		User: LoginUser{
			ID:                out.User.ID,
			Email:             out.User.Email,
			FullName:          out.User.FullName,
			BloodType:         out.User.BloodType,
			Allergies:         nonNil(out.User.Allergies),
			EmergencyContacts: nonNil(out.User.EmergencyContacts),
		},
	})
}

// Me returns the caller's full profile
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	return response.OK(c, user)
}

// UpdateMe applies a partial update to the caller's profile
func (h *AuthHandler) UpdateMe(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.authUC.UpdateProfile(c.Request().Context(), user, usecase.UpdateProfileInput{
		FullName:          req.FullName,
		Phone:             req.Phone,
		DateOfBirth:       types.TimePtr(req.DateOfBirth),
		BloodType:         req.BloodType,
		Allergies:         req.Allergies,
		EmergencyContacts: req.EmergencyContacts,
	})
	if err != nil {
		return err
	}

	return response.OK(c, updated)
}

// bindAndValidate decodes the request body into req and checks its validation rules.
// Malformed bodies are reported as INVALID_INPUT. Rule violations and values of
// the wrong JSON type are reported as VALIDATION_FAILED.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		if typeErr, ok := errors.AsType[*json.UnmarshalTypeError](err); ok {
			return validator.TypeMismatch(typeErr)
		}

		details := err.Error()
		if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
			if msg, ok := httpErr.Message.(string); ok {
				details = msg
			}
		}

		return errors.Wrap(domainerrors.ErrInvalidInput.WithDetails(details), "bind request")
	}

	return c.Validate(req)
}

// currentUser returns the user resolved by the auth middleware.
func currentUser(c echo.Context) (*entity.User, error) {
	user, ok := middleware.GetUser(c)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	return user, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}

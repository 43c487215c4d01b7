package handler

import (
	"log/slog"

	"healthhub/internal/delivery/api/response"
	"healthhub/internal/domain/entity"
	"healthhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FamilyHandlerParams holds dependencies for FamilyHandler, injected by Fx.
type FamilyHandlerParams struct {
	fx.In

	FamilyUC usecase.FamilyUsecase
	Logger   *slog.Logger
}

// FamilyHandler serves family linking
type FamilyHandler struct {
	familyUC usecase.FamilyUsecase
	logger   *slog.Logger
}

// NewFamilyHandler is the constructor for FamilyHandler
func NewFamilyHandler(params FamilyHandlerParams) *FamilyHandler {
	return &FamilyHandler{
		familyUC: params.FamilyUC,
		logger:   params.Logger,
	}
}

// InviteRequest represents the request body for inviting a family member.
// Role is a free-form label stored on the invite.
type InviteRequest struct {
	InviteeEmail string `json:"invitee_email" validate:"required,email"`
	Role         string `json:"role" validate:"omitempty,max=32"`
}

// Invite records an invitation and links the invitee if they already have an account
func (h *FamilyHandler) Invite(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req InviteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.familyUC.Invite(c.Request().Context(), user, usecase.InviteInput{
		InviteeEmail: req.InviteeEmail,
		Role:         entity.Role(req.Role),
	})
	if err != nil {
		return err
	}

	if out.Linked {
		return response.Message(c, "Added "+req.InviteeEmail+" to family")
	}

	return response.Message(c, "Invitation sent to "+req.InviteeEmail)
}

// Members lists the caller's linked family members
func (h *FamilyHandler) Members(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	members, err := h.familyUC.Members(c.Request().Context(), user)
	if err != nil {
		return err
	}

	return response.OK(c, members)
}

// Invites lists the invitations the caller has sent
func (h *FamilyHandler) Invites(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	invites, err := h.familyUC.SentInvites(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return response.OK(c, invites)
}

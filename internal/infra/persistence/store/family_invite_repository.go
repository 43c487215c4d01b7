package store

import (
	"context"

	"healthhub/internal/domain/entity"
	domainerrors "healthhub/internal/domain/errors"
	"healthhub/internal/domain/repository"
	"healthhub/internal/errors"
	"healthhub/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// familyInviteRepository implements the repository.FamilyInviteRepository interface using GORM.
type familyInviteRepository struct {
	db *gorm.DB
}

// NewFamilyInviteRepository is the constructor for familyInviteRepository.
func NewFamilyInviteRepository(db *gorm.DB) repository.FamilyInviteRepository {
	return &familyInviteRepository{db: db}
}

func (repo *familyInviteRepository) Create(ctx context.Context, invite *entity.FamilyInvite) error {
	inviteM := fromFamilyInviteDomain(invite)

	if err := repo.db.WithContext(ctx).Create(inviteM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create family invite")
	}

	invite.CreatedAt = inviteM.CreatedAt

	return nil
}

func (repo *familyInviteRepository) ListByInviter(ctx context.Context, inviterID string, limit int) ([]*entity.FamilyInvite, error) {
	var inviteModels []*model.FamilyInviteModel
	err := repo.db.WithContext(ctx).
		Where("inviter_id = ?", inviterID).
		Order("created_at DESC").
		Limit(limit).
		Find(&inviteModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list family invites")
	}

	invites := make([]*entity.FamilyInvite, 0, len(inviteModels))
	for _, inviteM := range inviteModels {
		invites = append(invites, toFamilyInviteDomain(inviteM))
	}

	return invites, nil
}

// --- Mapper Functions ---

func toFamilyInviteDomain(data *model.FamilyInviteModel) *entity.FamilyInvite {
	return &entity.FamilyInvite{
		ID:           data.ID,
		InviterID:    data.InviterID,
		InviteeEmail: data.InviteeEmail,
		Role:         entity.Role(data.Role),
		Status:       entity.InviteStatus(data.Status),
		CreatedAt:    data.CreatedAt.UTC(),
	}
}

func fromFamilyInviteDomain(data *entity.FamilyInvite) *model.FamilyInviteModel {
	return &model.FamilyInviteModel{
		ID:           data.ID,
		InviterID:    data.InviterID,
		InviteeEmail: data.InviteeEmail,
		Role:         string(data.Role),
		Status:       string(data.Status),
		CreatedAt:    data.CreatedAt,
	}
}

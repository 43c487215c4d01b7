package store

import (
	"context"
	"time"

	"healthhub/internal/domain/entity"
	domainerrors "healthhub/internal/domain/errors"
	"healthhub/internal/domain/repository"
	"healthhub/internal/errors"
	"healthhub/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by email.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByIDs retrieves users in the order of ids, skipping unknown IDs.
func (repo *userRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.User, error) {
	if len(ids) == 0 {
		return []*entity.User{}, nil
	}

	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users by ids")
	}

	byID := make(map[string]*model.UserModel, len(userModels))
	for _, userM := range userModels {
		byID[userM.ID] = userM
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, id := range ids {
		if userM, ok := byID[id]; ok {
			users = append(users, toUserDomain(userM))
			delete(byID, id)
		}
	}

	return users, nil
}

// Create persists a new user.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update writes the mutable profile fields of user. The family member list is
// left untouched; it only changes through AddFamilyMember.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if userM.UpdatedAt.IsZero() {
		userM.UpdatedAt = time.Now().UTC()
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"full_name":          userM.FullName,
			"phone":              userM.Phone,
			"date_of_birth":      userM.DateOfBirth,
			"blood_type":         userM.BloodType,
			"allergies":          userM.Allergies,
			"emergency_contacts": userM.EmergencyContacts,
			"updated_at":         userM.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// AddFamilyMember appends memberID to the family list of userID under a row
// lock. It reports false when the member was already linked.
func (repo *userRepository) AddFamilyMember(ctx context.Context, userID, memberID string) (bool, error) {
	var added bool
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var userM model.UserModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", userID).
			First(&userM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to lock user")
		}

		user := toUserDomain(&userM)
		if !user.AddFamilyMember(memberID) {
			return nil
		}

		if err := tx.Model(&model.UserModel{}).
			Where("id = ?", userID).
			Updates(map[string]any{
				"family_members": datatypes.NewJSONSlice(user.FamilyMembers),
				"updated_at":     time.Now().UTC(),
			}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to add family member")
		}
		added = true

		return nil
	})
	if err != nil {
		return false, err
	}

	return added, nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	contacts := make([]entity.EmergencyContact, 0, len(data.EmergencyContacts))
	for _, c := range data.EmergencyContacts {
		contacts = append(contacts, entity.EmergencyContact(c))
	}

	return &entity.User{
		ID:                data.ID,
		Email:             data.Email,
		PasswordHash:      data.PasswordHash,
		FullName:          data.FullName,
		Phone:             data.Phone,
		DateOfBirth:       utcPtr(data.DateOfBirth),
		BloodType:         data.BloodType,
		Allergies:         stringsOrEmpty(data.Allergies),
		EmergencyContacts: contacts,
		FamilyMembers:     stringsOrEmpty(data.FamilyMembers),
		Role:              entity.Role(data.Role),
		CreatedAt:         data.CreatedAt.UTC(),
		UpdatedAt:         data.UpdatedAt.UTC(),
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	contacts := make([]map[string]string, 0, len(data.EmergencyContacts))
	for _, c := range data.EmergencyContacts {
		contacts = append(contacts, map[string]string(c))
	}

	return &model.UserModel{
		ID:                data.ID,
		Email:             data.Email,
		PasswordHash:      data.PasswordHash,
		FullName:          data.FullName,
		Phone:             data.Phone,
		DateOfBirth:       data.DateOfBirth,
		BloodType:         data.BloodType,
		Allergies:         datatypes.NewJSONSlice(stringsOrEmpty(data.Allergies)),
		EmergencyContacts: datatypes.NewJSONSlice(contacts),
		FamilyMembers:     datatypes.NewJSONSlice(stringsOrEmpty(data.FamilyMembers)),
		Role:              string(data.Role),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func stringsOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()

	return &u
}

package postgres

import (
	"context"
	"strings"

	"hbnb/internal/domain/entity"
	"hbnb/internal/domain/repository"
	"hbnb/internal/errors"
	"hbnb/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository bound to the given connection
// or transaction handle.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var m model.UserModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to query user by id")
	}

	return toUserEntity(&m), nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var m model.UserModel
	needle := strings.ToLower(strings.TrimSpace(email))
	if err := r.db.WithContext(ctx).First(&m, "lower(email) = ?", needle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to query user by email")
	}

	return toUserEntity(&m), nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var ms []model.UserModel
	if err := r.db.WithContext(ctx).Find(&ms).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query users")
	}

	users := make([]*entity.User, 0, len(ms))
	for i := range ms {
		users = append(users, toUserEntity(&ms[i]))
	}

	return users, nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	m := toUserModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(err, "user email already exists")
		}

		return errors.Wrap(err, "failed to create user")
	}

	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	m := toUserModel(user)
	result := r.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", m.ID).
		Select("email", "password_hash", "first_name", "last_name", "is_admin", "updated_at").
		Updates(m)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", id)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete user")
	}

	return result.RowsAffected > 0, nil
}

// --- Mappers ---

func toUserEntity(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		IsAdmin:      m.IsAdmin,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toUserModel(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsAdmin:      u.IsAdmin,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

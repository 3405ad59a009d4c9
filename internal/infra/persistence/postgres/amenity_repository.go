package postgres

import (
	"context"

	"hbnb/internal/domain/entity"
	"hbnb/internal/domain/repository"
	"hbnb/internal/errors"
	"hbnb/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// amenityRepository implements repository.AmenityRepository using GORM.
type amenityRepository struct {
	db *gorm.DB
}

// NewAmenityRepository creates an amenity repository bound to the given
// connection or transaction handle.
func NewAmenityRepository(db *gorm.DB) repository.AmenityRepository {
	return &amenityRepository{db: db}
}

func (r *amenityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Amenity, error) {
	var m model.AmenityModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAmenityNotFound
		}

		return nil, errors.Wrap(err, "failed to query amenity by id")
	}

	return toAmenityEntity(&m), nil
}

func (r *amenityRepository) FindByName(ctx context.Context, name string) (*entity.Amenity, error) {
	var m model.AmenityModel
	if err := r.db.WithContext(ctx).First(&m, "LOWER(name) = LOWER(?)", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAmenityNotFound
		}

		return nil, errors.Wrap(err, "failed to query amenity by name")
	}

	return toAmenityEntity(&m), nil
}

func (r *amenityRepository) FindAll(ctx context.Context) ([]*entity.Amenity, error) {
	var ms []model.AmenityModel
	if err := r.db.WithContext(ctx).Find(&ms).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query amenities")
	}

	amenities := make([]*entity.Amenity, 0, len(ms))
	for i := range ms {
		amenities = append(amenities, toAmenityEntity(&ms[i]))
	}

	return amenities, nil
}

func (r *amenityRepository) Create(ctx context.Context, amenity *entity.Amenity) error {
	m := toAmenityModel(amenity)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(err, "amenity name already exists")
		}

		return errors.Wrap(err, "failed to create amenity")
	}

	return nil
}

func (r *amenityRepository) Update(ctx context.Context, amenity *entity.Amenity) error {
	m := toAmenityModel(amenity)
	result := r.db.WithContext(ctx).Model(&model.AmenityModel{}).
		Where("id = ?", m.ID).
		Select("name", "updated_at").
		Updates(m)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update amenity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAmenityNotFound
	}

	return nil
}

func (r *amenityRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&model.AmenityModel{}, "id = ?", id)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete amenity")
	}

	return result.RowsAffected > 0, nil
}

// --- Mappers ---

func toAmenityEntity(m *model.AmenityModel) *entity.Amenity {
	return &entity.Amenity{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toAmenityModel(a *entity.Amenity) *model.AmenityModel {
	return &model.AmenityModel{
		ID:        a.ID,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

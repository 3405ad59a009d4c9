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

// placeRepository implements repository.PlaceRepository using GORM.
// Amenity links live in the place_amenities join table; review ids are
// derived from the reviews table, so the entity's back-reference list is
// always consistent with stored reviews.
type placeRepository struct {
	db *gorm.DB
}

// NewPlaceRepository creates a place repository bound to the given
// connection or transaction handle.
func NewPlaceRepository(db *gorm.DB) repository.PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Place, error) {
	var m model.PlaceModel
	err := r.db.WithContext(ctx).
		Preload("Amenities").
		Preload("Reviews").
		First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlaceNotFound
		}

		return nil, errors.Wrap(err, "failed to query place by id")
	}

	return toPlaceEntity(&m), nil
}

func (r *placeRepository) FindAll(ctx context.Context) ([]*entity.Place, error) {
	var ms []model.PlaceModel
	err := r.db.WithContext(ctx).
		Preload("Amenities").
		Preload("Reviews").
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to query places")
	}

	places := make([]*entity.Place, 0, len(ms))
	for i := range ms {
		places = append(places, toPlaceEntity(&ms[i]))
	}

	return places, nil
}

func (r *placeRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Place, error) {
	var ms []model.PlaceModel
	err := r.db.WithContext(ctx).
		Preload("Amenities").
		Preload("Reviews").
		Find(&ms, "owner_id = ?", ownerID).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to query places by owner")
	}

	places := make([]*entity.Place, 0, len(ms))
	for i := range ms {
		places = append(places, toPlaceEntity(&ms[i]))
	}

	return places, nil
}

func (r *placeRepository) Create(ctx context.Context, place *entity.Place) error {
	m := toPlaceModel(place)
	if err := r.db.WithContext(ctx).Omit("Amenities", "Reviews").Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "place references a missing owner")
		}

		return errors.Wrap(err, "failed to create place")
	}

	if err := r.replaceAmenityLinks(ctx, m, place.AmenityIDs); err != nil {
		return err
	}

	return nil
}

func (r *placeRepository) Update(ctx context.Context, place *entity.Place) error {
	m := toPlaceModel(place)
	result := r.db.WithContext(ctx).Model(&model.PlaceModel{}).
		Where("id = ?", m.ID).
		Select("title", "description", "price", "latitude", "longitude", "owner_id", "updated_at").
		Updates(m)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update place")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlaceNotFound
	}

	return r.replaceAmenityLinks(ctx, m, place.AmenityIDs)
}

func (r *placeRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	m := model.PlaceModel{ID: id}
	if err := r.db.WithContext(ctx).Model(&m).Association("Amenities").Clear(); err != nil {
		return false, errors.Wrap(err, "failed to clear place amenity links")
	}

	result := r.db.WithContext(ctx).Delete(&model.PlaceModel{}, "id = ?", id)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete place")
	}

	return result.RowsAffected > 0, nil
}

// replaceAmenityLinks rewrites the join table rows to match the entity's
// amenity id list.
func (r *placeRepository) replaceAmenityLinks(ctx context.Context, m *model.PlaceModel, amenityIDs []uuid.UUID) error {
	links := make([]model.AmenityModel, 0, len(amenityIDs))
	for _, amenityID := range amenityIDs {
		links = append(links, model.AmenityModel{ID: amenityID})
	}

	if err := r.db.WithContext(ctx).Model(m).Association("Amenities").Replace(links); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "place references a missing amenity")
		}

		return errors.Wrap(err, "failed to replace place amenity links")
	}

	return nil
}

// --- Mappers ---

func toPlaceEntity(m *model.PlaceModel) *entity.Place {
	amenityIDs := make([]uuid.UUID, 0, len(m.Amenities))
	for _, amenity := range m.Amenities {
		amenityIDs = append(amenityIDs, amenity.ID)
	}
	reviewIDs := make([]uuid.UUID, 0, len(m.Reviews))
	for _, review := range m.Reviews {
		reviewIDs = append(reviewIDs, review.ID)
	}

	return &entity.Place{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		OwnerID:     m.OwnerID,
		AmenityIDs:  amenityIDs,
		ReviewIDs:   reviewIDs,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toPlaceModel(p *entity.Place) *model.PlaceModel {
	return &model.PlaceModel{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		OwnerID:     p.OwnerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

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

// reviewRepository implements repository.ReviewRepository using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a review repository bound to the given
// connection or transaction handle.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var m model.ReviewModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to query review by id")
	}

	return toReviewEntity(&m), nil
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	var ms []model.ReviewModel
	if err := r.db.WithContext(ctx).Find(&ms).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query reviews")
	}

	return toReviewEntities(ms), nil
}

func (r *reviewRepository) FindByPlace(ctx context.Context, placeID uuid.UUID) ([]*entity.Review, error) {
	var ms []model.ReviewModel
	if err := r.db.WithContext(ctx).Find(&ms, "place_id = ?", placeID).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query reviews by place")
	}

	return toReviewEntities(ms), nil
}

func (r *reviewRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	var ms []model.ReviewModel
	if err := r.db.WithContext(ctx).Find(&ms, "user_id = ?", userID).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query reviews by user")
	}

	return toReviewEntities(ms), nil
}

func (r *reviewRepository) FindByUserAndPlace(ctx context.Context, userID, placeID uuid.UUID) (*entity.Review, error) {
	var m model.ReviewModel
	err := r.db.WithContext(ctx).First(&m, "user_id = ? AND place_id = ?", userID, placeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to query review by user and place")
	}

	return toReviewEntity(&m), nil
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	m := toReviewModel(review)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(err, "user already reviewed this place")
		}
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "review references a missing user or place")
		}
		if isCheckConstraintViolation(err) {
			return errors.Wrap(err, "review rating out of range")
		}

		return errors.Wrap(err, "failed to create review")
	}

	return nil
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	m := toReviewModel(review)
	result := r.db.WithContext(ctx).Model(&model.ReviewModel{}).
		Where("id = ?", m.ID).
		Select("text", "rating", "updated_at").
		Updates(m)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&model.ReviewModel{}, "id = ?", id)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete review")
	}

	return result.RowsAffected > 0, nil
}

// --- Mappers ---

func toReviewEntity(m *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:        m.ID,
		Text:      m.Text,
		Rating:    m.Rating,
		UserID:    m.UserID,
		PlaceID:   m.PlaceID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toReviewEntities(ms []model.ReviewModel) []*entity.Review {
	reviews := make([]*entity.Review, 0, len(ms))
	for i := range ms {
		reviews = append(reviews, toReviewEntity(&ms[i]))
	}

	return reviews
}

func toReviewModel(r *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:        r.ID,
		Text:      r.Text,
		Rating:    r.Rating,
		UserID:    r.UserID,
		PlaceID:   r.PlaceID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

package memory

import (
	"context"

	"hbnb/internal/domain/entity"
	"hbnb/internal/domain/repository"

	"github.com/google/uuid"
)

// reviewRepository implements repository.ReviewRepository on the memory store.
type reviewRepository struct {
	store    *Store
	withinTx bool
}

// NewReviewRepository creates a standalone review repository over the store.
func NewReviewRepository(store *Store) repository.ReviewRepository {
	return &reviewRepository{store: store}
}

func (r *reviewRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	unlock := r.store.acquireRead(r.withinTx)
	defer unlock()

	review, ok := r.store.reviews[id]
	if !ok {
		return nil, repository.ErrReviewNotFound
	}

	return cloneReview(review), nil
}

func (r *reviewRepository) FindAll(_ context.Context) ([]*entity.Review, error) {
	unlock := r.store.acquireRead(r.withinTx)
	defer unlock()

	reviews := make([]*entity.Review, 0, len(r.store.reviews))
	for _, review := range r.store.reviews {
		reviews = append(reviews, cloneReview(review))
	}

	return reviews, nil
}

func (r *reviewRepository) FindByPlace(_ context.Context, placeID uuid.UUID) ([]*entity.Review, error) {
	unlock := r.store.acquireRead(r.withinTx)
	defer unlock()

	reviews := make([]*entity.Review, 0)
	for _, review := range r.store.reviews {
		if review.PlaceID == placeID {
			reviews = append(reviews, cloneReview(review))
		}
	}

	return reviews, nil
}

func (r *reviewRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	unlock := r.store.acquireRead(r.withinTx)
	defer unlock()

	reviews := make([]*entity.Review, 0)
	for _, review := range r.store.reviews {
		if review.UserID == userID {
			reviews = append(reviews, cloneReview(review))
		}
	}

	return reviews, nil
}

func (r *reviewRepository) FindByUserAndPlace(_ context.Context, userID, placeID uuid.UUID) (*entity.Review, error) {
	unlock := r.store.acquireRead(r.withinTx)
	defer unlock()

	for _, review := range r.store.reviews {
		if review.UserID == userID && review.PlaceID == placeID {
			return cloneReview(review), nil
		}
	}

	return nil, repository.ErrReviewNotFound
}

func (r *reviewRepository) Create(_ context.Context, review *entity.Review) error {
	unlock := r.store.acquireWrite(r.withinTx)
	defer unlock()

	r.store.reviews[review.ID] = cloneReview(review)

	return nil
}

func (r *reviewRepository) Update(_ context.Context, review *entity.Review) error {
	unlock := r.store.acquireWrite(r.withinTx)
	defer unlock()

	if _, ok := r.store.reviews[review.ID]; !ok {
		return repository.ErrReviewNotFound
	}
	r.store.reviews[review.ID] = cloneReview(review)

	return nil
}

func (r *reviewRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	unlock := r.store.acquireWrite(r.withinTx)
	defer unlock()

	if _, ok := r.store.reviews[id]; !ok {
		return false, nil
	}
	delete(r.store.reviews, id)

	return true, nil
}

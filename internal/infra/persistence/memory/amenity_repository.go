package memory

import (
	"context"
	"strings"

	"hbnb/internal/domain/entity"
	"hbnb/internal/domain/repository"

	"github.com/google/uuid"
)

// amenityRepository implements repository.AmenityRepository on the memory store.
type amenityRepository struct {
	store    *Store
	withinTx bool
}

// NewAmenityRepository creates a standalone amenity repository over the store.
func NewAmenityRepository(store *Store) repository.AmenityRepository {
	return &amenityRepository{store: store}
}

func (r *amenityRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Amenity, error) {
	unlock := r.store.acquireRead(r.withinTx)
	defer unlock()

	amenity, ok := r.store.amenities[id]
	if !ok {
		return nil, repository.ErrAmenityNotFound
	}

	return cloneAmenity(amenity), nil
}

func (r *amenityRepository) FindByName(_ context.Context, name string) (*entity.Amenity, error) {
	unlock := r.store.acquireRead(r.withinTx)
	defer unlock()

	for _, amenity := range r.store.amenities {
		if strings.EqualFold(amenity.Name, name) {
			return cloneAmenity(amenity), nil
		}
	}

	return nil, repository.ErrAmenityNotFound
}

func (r *amenityRepository) FindAll(_ context.Context) ([]*entity.Amenity, error) {
	unlock := r.store.acquireRead(r.withinTx)
	defer unlock()

	amenities := make([]*entity.Amenity, 0, len(r.store.amenities))
	for _, amenity := range r.store.amenities {
		amenities = append(amenities, cloneAmenity(amenity))
	}

	return amenities, nil
}

func (r *amenityRepository) Create(_ context.Context, amenity *entity.Amenity) error {
	unlock := r.store.acquireWrite(r.withinTx)
	defer unlock()

	r.store.amenities[amenity.ID] = cloneAmenity(amenity)

	return nil
}

func (r *amenityRepository) Update(_ context.Context, amenity *entity.Amenity) error {
	unlock := r.store.acquireWrite(r.withinTx)
	defer unlock()

	if _, ok := r.store.amenities[amenity.ID]; !ok {
		return repository.ErrAmenityNotFound
	}
	r.store.amenities[amenity.ID] = cloneAmenity(amenity)

	return nil
}

func (r *amenityRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	unlock := r.store.acquireWrite(r.withinTx)
	defer unlock()

	if _, ok := r.store.amenities[id]; !ok {
		return false, nil
	}
	delete(r.store.amenities, id)

	return true, nil
}

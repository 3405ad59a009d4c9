package memory

import (
	"context"

	"hbnb/internal/domain/entity"
	"hbnb/internal/domain/repository"

	"github.com/google/uuid"
)

// placeRepository implements repository.PlaceRepository on the memory store.
type placeRepository struct {
	store    *Store
	withinTx bool
}

// NewPlaceRepository creates a standalone place repository over the store.
func NewPlaceRepository(store *Store) repository.PlaceRepository {
	return &placeRepository{store: store}
}

func (r *placeRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Place, error) {
	unlock := r.store.acquireRead(r.withinTx)
	defer unlock()

	place, ok := r.store.places[id]
	if !ok {
		return nil, repository.ErrPlaceNotFound
	}

	return clonePlace(place), nil
}

func (r *placeRepository) FindAll(_ context.Context) ([]*entity.Place, error) {
	unlock := r.store.acquireRead(r.withinTx)
	defer unlock()

	places := make([]*entity.Place, 0, len(r.store.places))
	for _, place := range r.store.places {
		places = append(places, clonePlace(place))
	}

	return places, nil
}

func (r *placeRepository) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Place, error) {
	unlock := r.store.acquireRead(r.withinTx)
	defer unlock()

	places := make([]*entity.Place, 0)
	for _, place := range r.store.places {
		if place.OwnerID == ownerID {
			places = append(places, clonePlace(place))
		}
	}

	return places, nil
}

func (r *placeRepository) Create(_ context.Context, place *entity.Place) error {
	unlock := r.store.acquireWrite(r.withinTx)
	defer unlock()

	r.store.places[place.ID] = clonePlace(place)

	return nil
}

func (r *placeRepository) Update(_ context.Context, place *entity.Place) error {
	unlock := r.store.acquireWrite(r.withinTx)
	defer unlock()

	if _, ok := r.store.places[place.ID]; !ok {
		return repository.ErrPlaceNotFound
	}
	r.store.places[place.ID] = clonePlace(place)

	return nil
}

func (r *placeRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	unlock := r.store.acquireWrite(r.withinTx)
	defer unlock()

	if _, ok := r.store.places[id]; !ok {
		return false, nil
	}
	delete(r.store.places, id)

	return true, nil
}

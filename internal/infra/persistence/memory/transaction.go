package memory

import (
	"context"

	"hbnb/internal/domain/repository"

	"github.com/pkg/errors"
)

// transactionManager implements repository.TransactionManager for the
// memory store. Execute holds the store's write lock for the whole
// callback and rolls back to a snapshot when the callback fails or
// panics, giving the same all-or-nothing guarantee a database provides.
type transactionManager struct {
	store *Store
}

// NewTransactionManager creates a TransactionManager over the store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

func (m *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) (err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return errors.Wrap(ctxErr, "context cancelled before transaction")
	}

	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	snap := m.store.snapshot()

	defer func() {
		if r := recover(); r != nil {
			m.store.restore(snap)
			err = errors.Errorf("panic during transaction: %v", r)
		}
	}()

	if err := fn(&txRepositoryFactory{store: m.store}); err != nil {
		m.store.restore(snap)

		return err
	}

	return nil
}

// txRepositoryFactory hands out repositories that skip locking because the
// transaction already holds the write lock.
type txRepositoryFactory struct {
	store *Store
}

func (f *txRepositoryFactory) UserRepo() repository.UserRepository {
	return &userRepository{store: f.store, withinTx: true}
}

func (f *txRepositoryFactory) PlaceRepo() repository.PlaceRepository {
	return &placeRepository{store: f.store, withinTx: true}
}

func (f *txRepositoryFactory) AmenityRepo() repository.AmenityRepository {
	return &amenityRepository{store: f.store, withinTx: true}
}

func (f *txRepositoryFactory) ReviewRepo() repository.ReviewRepository {
	return &reviewRepository{store: f.store, withinTx: true}
}

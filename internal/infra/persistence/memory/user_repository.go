package memory

import (
	"context"
	"strings"

	"hbnb/internal/domain/entity"
	"hbnb/internal/domain/repository"

	"github.com/google/uuid"
)

// userRepository implements repository.UserRepository on the memory store.
type userRepository struct {
	store    *Store
	withinTx bool
}

// NewUserRepository creates a standalone user repository over the store.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	unlock := r.store.acquireRead(r.withinTx)
	defer unlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	unlock := r.store.acquireRead(r.withinTx)
	defer unlock()

	needle := strings.ToLower(strings.TrimSpace(email))
	for _, user := range r.store.users {
		if strings.ToLower(user.Email) == needle {
			return cloneUser(user), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *userRepository) FindAll(_ context.Context) ([]*entity.User, error) {
	unlock := r.store.acquireRead(r.withinTx)
	defer unlock()

	users := make([]*entity.User, 0, len(r.store.users))
	for _, user := range r.store.users {
		users = append(users, cloneUser(user))
	}

	return users, nil
}

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	unlock := r.store.acquireWrite(r.withinTx)
	defer unlock()

	r.store.users[user.ID] = cloneUser(user)

	return nil
}

func (r *userRepository) Update(_ context.Context, user *entity.User) error {
	unlock := r.store.acquireWrite(r.withinTx)
	defer unlock()

	if _, ok := r.store.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	r.store.users[user.ID] = cloneUser(user)

	return nil
}

func (r *userRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	unlock := r.store.acquireWrite(r.withinTx)
	defer unlock()

	if _, ok := r.store.users[id]; !ok {
		return false, nil
	}
	delete(r.store.users, id)

	return true, nil
}

// Package memory provides a fully in-process implementation of the
// persistence interfaces. It backs tests and local development, where a
// real database would only add friction.
//
// One coarse RWMutex guards all four buckets. Plain reads and writes
// through the repositories take the lock per call; TransactionManager
// holds the write lock for the whole callback and restores a snapshot on
// error, so a failed multi-write sequence leaves no partial state behind.
package memory

import (
	"maps"
	"slices"
	"sync"

	"hbnb/internal/domain/entity"

	"github.com/google/uuid"
)

// Store is the shared bucket container behind every memory repository.
type Store struct {
	mu sync.RWMutex

	users     map[uuid.UUID]*entity.User
	places    map[uuid.UUID]*entity.Place
	amenities map[uuid.UUID]*entity.Amenity
	reviews   map[uuid.UUID]*entity.Review
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:     make(map[uuid.UUID]*entity.User),
		places:    make(map[uuid.UUID]*entity.Place),
		amenities: make(map[uuid.UUID]*entity.Amenity),
		reviews:   make(map[uuid.UUID]*entity.Review),
	}
}

// snapshot captures the current bucket maps. Entities are stored as
// private clones and never mutated in place, so a shallow map copy is a
// complete rollback point.
type snapshot struct {
	users     map[uuid.UUID]*entity.User
	places    map[uuid.UUID]*entity.Place
	amenities map[uuid.UUID]*entity.Amenity
	reviews   map[uuid.UUID]*entity.Review
}

func (s *Store) snapshot() snapshot {
	return snapshot{
		users:     maps.Clone(s.users),
		places:    maps.Clone(s.places),
		amenities: maps.Clone(s.amenities),
		reviews:   maps.Clone(s.reviews),
	}
}

func (s *Store) restore(snap snapshot) {
	s.users = snap.users
	s.places = snap.places
	s.amenities = snap.amenities
	s.reviews = snap.reviews
}

// acquireRead takes the read lock unless the caller already holds the
// write lock through a running transaction. It returns the unlock func.
func (s *Store) acquireRead(withinTx bool) func() {
	if withinTx {
		return func() {}
	}
	s.mu.RLock()

	return s.mu.RUnlock
}

// acquireWrite takes the write lock unless a transaction already holds it.
func (s *Store) acquireWrite(withinTx bool) func() {
	if withinTx {
		return func() {}
	}
	s.mu.Lock()

	return s.mu.Unlock
}

// Clone helpers. Every entity crossing the store boundary is copied in
// both directions, so callers can never alias stored state.

func cloneUser(u *entity.User) *entity.User {
	clone := *u

	return &clone
}

func clonePlace(p *entity.Place) *entity.Place {
	clone := *p
	clone.AmenityIDs = slices.Clone(p.AmenityIDs)
	clone.ReviewIDs = slices.Clone(p.ReviewIDs)

	return &clone
}

func cloneAmenity(a *entity.Amenity) *entity.Amenity {
	clone := *a

	return &clone
}

func cloneReview(r *entity.Review) *entity.Review {
	clone := *r

	return &clone
}

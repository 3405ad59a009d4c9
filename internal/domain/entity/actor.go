package entity

import "github.com/google/uuid"

// Actor identifies who is performing an operation. It is derived from the
// access token by the HTTP layer and passed down to the services, which
// never inspect tokens themselves.
type Actor struct {
	ID            uuid.UUID
	IsAdmin       bool
	Authenticated bool
}

// NewActor returns an authenticated actor.
func NewActor(id uuid.UUID, isAdmin bool) Actor {
	return Actor{ID: id, IsAdmin: isAdmin, Authenticated: true}
}

// Anonymous returns the unauthenticated actor.
func Anonymous() Actor {
	return Actor{}
}

// Is reports whether the actor is the authenticated user with the given id.
func (a Actor) Is(userID uuid.UUID) bool {
	return a.Authenticated && a.ID == userID
}

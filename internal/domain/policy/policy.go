// Package policy holds the authorization rules of the application as pure
// functions over an Actor and the resource it targets. Services consult
// these before mutating anything; handlers never re-implement the rules.
package policy

import (
	"hbnb/internal/domain/entity"

	"github.com/google/uuid"
)

// CanListUsers restricts the full user listing to administrators.
func CanListUsers(actor entity.Actor) bool {
	return actor.Authenticated && actor.IsAdmin
}

// CanViewUser allows a user to read their own account, and admins to read any.
func CanViewUser(actor entity.Actor, userID uuid.UUID) bool {
	return actor.IsAdmin || actor.Is(userID)
}

// CanModifyUser allows a user to edit their own profile, and admins to edit any.
func CanModifyUser(actor entity.Actor, userID uuid.UUID) bool {
	return actor.IsAdmin || actor.Is(userID)
}

// CanChangeCredentials gates email and password changes. Only admins may
// change these fields, even on the actor's own account.
func CanChangeCredentials(actor entity.Actor) bool {
	return actor.Authenticated && actor.IsAdmin
}

// CanDeleteUser allows a user to delete their own account, and admins to delete any.
func CanDeleteUser(actor entity.Actor, userID uuid.UUID) bool {
	return actor.IsAdmin || actor.Is(userID)
}

// CanCreateAdmin gates creating accounts with administrative privileges.
func CanCreateAdmin(actor entity.Actor) bool {
	return actor.Authenticated && actor.IsAdmin
}

// CanCreatePlace requires authentication; the created place is always owned
// by the actor.
func CanCreatePlace(actor entity.Actor) bool {
	return actor.Authenticated
}

// CanModifyPlace allows the owner and admins to update or delete a place.
func CanModifyPlace(actor entity.Actor, place *entity.Place) bool {
	return actor.IsAdmin || actor.Is(place.OwnerID)
}

// CanReassignOwner gates transferring a place to another user.
func CanReassignOwner(actor entity.Actor) bool {
	return actor.Authenticated && actor.IsAdmin
}

// CanMutateAmenity restricts amenity create/update/delete to administrators.
func CanMutateAmenity(actor entity.Actor) bool {
	return actor.Authenticated && actor.IsAdmin
}

// CanCreateReview requires authentication. Reviewing one's own place and
// double-reviewing are business rules checked by the review service, not here.
func CanCreateReview(actor entity.Actor) bool {
	return actor.Authenticated
}

// CanModifyReview allows the author and admins to update or delete a review.
func CanModifyReview(actor entity.Actor, review *entity.Review) bool {
	return actor.IsAdmin || actor.Is(review.UserID)
}

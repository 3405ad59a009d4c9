package policy

import (
	"testing"

	"hbnb/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserPolicies(t *testing.T) {
	selfID := uuid.New()
	otherID := uuid.New()

	self := entity.NewActor(selfID, false)
	admin := entity.NewActor(uuid.New(), true)
	anonymous := entity.Anonymous()

	assert.True(t, CanListUsers(admin))
	assert.False(t, CanListUsers(self))
	assert.False(t, CanListUsers(anonymous))

	assert.True(t, CanViewUser(self, selfID))
	assert.False(t, CanViewUser(self, otherID))
	assert.True(t, CanViewUser(admin, otherID))
	assert.False(t, CanViewUser(anonymous, selfID))

	assert.True(t, CanModifyUser(self, selfID))
	assert.False(t, CanModifyUser(self, otherID))
	assert.True(t, CanModifyUser(admin, otherID))

	// Email and password edits are admin only, even on one's own account.
	assert.True(t, CanChangeCredentials(admin))
	assert.False(t, CanChangeCredentials(self))
	assert.False(t, CanChangeCredentials(anonymous))

	assert.True(t, CanDeleteUser(self, selfID))
	assert.False(t, CanDeleteUser(self, otherID))
	assert.True(t, CanDeleteUser(admin, otherID))

	assert.True(t, CanCreateAdmin(admin))
	assert.False(t, CanCreateAdmin(self))
	assert.False(t, CanCreateAdmin(anonymous))
}

func TestPlacePolicies(t *testing.T) {
	ownerID := uuid.New()
	owner := entity.NewActor(ownerID, false)
	stranger := entity.NewActor(uuid.New(), false)
	admin := entity.NewActor(uuid.New(), true)
	anonymous := entity.Anonymous()

	place, err := entity.NewPlace("Title", "", 10, 0, 0, ownerID, nil)
	assert.NoError(t, err)

	assert.True(t, CanCreatePlace(owner))
	assert.False(t, CanCreatePlace(anonymous))

	assert.True(t, CanModifyPlace(owner, place))
	assert.False(t, CanModifyPlace(stranger, place))
	assert.True(t, CanModifyPlace(admin, place))
	assert.False(t, CanModifyPlace(anonymous, place))

	assert.True(t, CanReassignOwner(admin))
	assert.False(t, CanReassignOwner(owner))
}

func TestAmenityAndReviewPolicies(t *testing.T) {
	authorID := uuid.New()
	author := entity.NewActor(authorID, false)
	stranger := entity.NewActor(uuid.New(), false)
	admin := entity.NewActor(uuid.New(), true)
	anonymous := entity.Anonymous()

	assert.True(t, CanMutateAmenity(admin))
	assert.False(t, CanMutateAmenity(author))
	assert.False(t, CanMutateAmenity(anonymous))

	review, err := entity.NewReview("text", 4, authorID, uuid.New())
	assert.NoError(t, err)

	assert.True(t, CanCreateReview(author))
	assert.False(t, CanCreateReview(anonymous))

	assert.True(t, CanModifyReview(author, review))
	assert.False(t, CanModifyReview(stranger, review))
	assert.True(t, CanModifyReview(admin, review))
}

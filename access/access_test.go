package access

import (
	"testing"

	"creatorhub-backend/models"
	"creatorhub-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

const (
	creatorID   = "11111111-1111-1111-1111-111111111111"
	ownerUserID = "22222222-2222-2222-2222-222222222222"
	otherUserID = "33333333-3333-3333-3333-333333333333"
)

func expectOwnerLookup(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`SELECT "user_id" FROM "creators" WHERE id = \$1 (.+) LIMIT \$2`).
		WithArgs(creatorID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(ownerUserID))
}

func TestOwnerUserID_ResolvesThroughCreator(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectOwnerLookup(mock)

	userID, err := OwnerUserID(gormDB, creatorID)
	assert.NoError(t, err)
	assert.Equal(t, ownerUserID, userID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCanViewContent_PublicAllowsAnonymous(t *testing.T) {
	gormDB, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	item := &models.Content{ID: "c1", CreatorID: creatorID, IsPublic: true}

	allowed, err := CanViewContent(gormDB, nil, item)
	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestCanViewContent_PrivateDeniesAnonymous(t *testing.T) {
	gormDB, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	item := &models.Content{ID: "c1", CreatorID: creatorID, IsPublic: false}

	allowed, err := CanViewContent(gormDB, nil, item)
	assert.NoError(t, err)
	assert.False(t, allowed)
}

// The owner is recognized through creators.user_id, never by comparing the
// requester id against content.creator_id.
func TestCanViewContent_PrivateAllowsOwningUser(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectOwnerLookup(mock)

	item := &models.Content{ID: "c1", CreatorID: creatorID, IsPublic: false}
	viewer := &Viewer{UserID: ownerUserID, IsCreator: true}

	allowed, err := CanViewContent(gormDB, viewer, item)
	assert.NoError(t, err)
	assert.True(t, allowed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCanViewContent_PrivateDeniesOtherUser(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectOwnerLookup(mock)

	item := &models.Content{ID: "c1", CreatorID: creatorID, IsPublic: false}
	viewer := &Viewer{UserID: otherUserID}

	allowed, err := CanViewContent(gormDB, viewer, item)
	assert.NoError(t, err)
	assert.False(t, allowed)
}

// A viewer whose id happens to equal the creator record id must still be
// denied: the comparison goes through the creator's backing user.
func TestCanViewContent_CreatorRecordIDIsNotAnIdentity(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectOwnerLookup(mock)

	item := &models.Content{ID: "c1", CreatorID: creatorID, IsPublic: false}
	viewer := &Viewer{UserID: creatorID}

	allowed, err := CanViewContent(gormDB, viewer, item)
	assert.NoError(t, err)
	assert.False(t, allowed)
}

func TestCanViewContent_MissingCreatorStaysPrivate(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT "user_id" FROM "creators" WHERE id = \$1 (.+) LIMIT \$2`).
		WithArgs(creatorID, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	item := &models.Content{ID: "c1", CreatorID: creatorID, IsPublic: false}
	viewer := &Viewer{UserID: ownerUserID}

	allowed, err := CanViewContent(gormDB, viewer, item)
	assert.NoError(t, err)
	assert.False(t, allowed)
}

func TestIsOwner_TwoHopResolution(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectOwnerLookup(mock)

	item := &models.Content{ID: "c1", CreatorID: creatorID, IsPublic: true}

	owner, err := IsOwner(gormDB, &Viewer{UserID: ownerUserID}, item)
	assert.NoError(t, err)
	assert.True(t, owner)
}

func TestIsOwner_AnonymousNeverOwns(t *testing.T) {
	gormDB, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	item := &models.Content{ID: "c1", CreatorID: creatorID}

	owner, err := IsOwner(gormDB, nil, item)
	assert.NoError(t, err)
	assert.False(t, owner)
}

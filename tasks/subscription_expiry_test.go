package tasks

import (
	"testing"
	"time"

	"creatorhub-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestExpireOverdueSubscriptions(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "subscriptions" SET "status"=\$1,"updated_at"=\$2 WHERE status = \$3 AND end_date < \$4`).
		WithArgs("expired", sqlmock.AnyArg(), "active", now).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	count, err := ExpireOverdueSubscriptions(gormDB, now)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpireOverdueSubscriptions_NothingDue(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "subscriptions" SET "status"=\$1,"updated_at"=\$2 WHERE status = \$3 AND end_date < \$4`).
		WithArgs("expired", sqlmock.AnyArg(), "active", now).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	count, err := ExpireOverdueSubscriptions(gormDB, now)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestSetBlockedIdempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	// Blocking an already-blocked user changes nothing, but the row
	// matches and the driver runs with clientFoundRows, so affected
	// rows is 1 and the call must succeed.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET is_blocked = ? WHERE id = ?")).
		WithArgs(true, uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewUserRepo(db)
	assert.NoError(t, repo.SetBlocked(context.Background(), 7, true))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetBlockedMissingUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET is_blocked = ? WHERE id = ?")).
		WithArgs(true, uint64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewUserRepo(db)
	assert.ErrorIs(t, repo.SetBlocked(context.Background(), 404, true), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

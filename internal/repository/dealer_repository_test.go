package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestDealerDeleteRefusedWhileReferenced(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	// Three cars still point at the dealer; the DELETE must never run.
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM cars WHERE dealer_id = ?")).
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	repo := NewDealerRepo(db)
	err = repo.Delete(context.Background(), 3)

	assert.ErrorIs(t, err, ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealerDeleteMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM cars WHERE dealer_id = ?")).
		WithArgs(uint64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM dealers WHERE id = ?")).
		WithArgs(uint64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewDealerRepo(db)
	err = repo.Delete(context.Background(), 8)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/Leplia/Diller-shop/internal/model"
)

func TestTestDriveCreateStartsPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	when := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO test_drives (user_id, car_id, scheduled_date, status) VALUES (?, ?, ?, ?)")).
		WithArgs(uint64(2), uint64(5), "2025-01-01 09:00:00", model.TestDrivePending).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, car_id, scheduled_date, status FROM test_drives WHERE id = ?")).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "car_id", "scheduled_date", "status"}).
			AddRow(11, 2, 5, when, model.TestDrivePending))

	repo := NewTestDriveRepo(db)
	drive, err := repo.Create(context.Background(), 2, 5, "2025-01-01 09:00:00")

	assert.NoError(t, err)
	assert.Equal(t, model.TestDrivePending, drive.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTestDriveCompleteDirectlyFromPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	when := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	cols := []string{
		"id", "user_id", "car_id", "scheduled_date", "status",
		"name", "email", "brand", "model", "year", "price",
	}

	// No guard requires passing through 'confirmed' first.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE test_drives SET status = ? WHERE id = ?")).
		WithArgs(model.TestDriveCompleted, uint64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`(?s)SELECT.+FROM test_drives td.+WHERE td\.id = \?`).
		WithArgs(uint64(11)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(11, 2, 5, when, model.TestDriveCompleted,
				"Ivan", "ivan@example.com", "Kia", "Rio", 2021, 18000.0))

	repo := NewTestDriveRepo(db)
	detail, err := repo.UpdateStatus(context.Background(), 11, model.TestDriveCompleted)

	assert.NoError(t, err)
	assert.Equal(t, model.TestDriveCompleted, detail.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

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

func TestOrderCreateStartsPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM order_statuses WHERE status_name = ?")).
		WithArgs(model.OrderPending).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders (user_id, car_id, status_id) VALUES (?, ?, ?)")).
		WithArgs(uint64(4), uint64(9), uint64(1)).
		WillReturnResult(sqlmock.NewResult(17, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, car_id, order_date, status_id FROM orders WHERE id = ?")).
		WithArgs(int64(17)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "car_id", "order_date", "status_id"}).
			AddRow(17, 4, 9, now, 1))

	repo := NewOrderRepo(db)
	order, err := repo.Create(context.Background(), 4, 9)

	assert.NoError(t, err)
	assert.Equal(t, uint64(17), order.ID)
	assert.Equal(t, uint64(1), order.StatusID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderCreateFailsWhenPendingStatusMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM order_statuses WHERE status_name = ?")).
		WithArgs(model.OrderPending).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewOrderRepo(db)
	_, err = repo.Create(context.Background(), 4, 9)

	assert.ErrorIs(t, err, ErrStatusNotConfigured)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderUpdateStatusMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM order_statuses WHERE status_name = ?")).
		WithArgs("confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	// The update itself reports nothing for an unknown id; the miss
	// surfaces on the re-fetch.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status_id = ? WHERE id = ?")).
		WithArgs(uint64(2), uint64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`(?s)SELECT.+FROM orders o.+WHERE o\.id = \?`).
		WithArgs(uint64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewOrderRepo(db)
	_, err = repo.UpdateStatus(context.Background(), 99, "confirmed")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderUpdateStatusReturnsEnrichedRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	cols := []string{
		"id", "order_date", "user_id", "car_id", "status_name",
		"name", "email", "brand", "model", "year", "price",
		"amount", "method", "status",
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM order_statuses WHERE status_name = ?")).
		WithArgs("cancelled").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status_id = ? WHERE id = ?")).
		WithArgs(uint64(5), uint64(17)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`(?s)SELECT.+FROM orders o.+WHERE o\.id = \?`).
		WithArgs(uint64(17)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(17, now, 4, 9, "cancelled", "Anna", "anna@example.com",
				"Toyota", "Camry", 2022, 30000.0, nil, nil, nil))

	repo := NewOrderRepo(db)
	detail, err := repo.UpdateStatus(context.Background(), 17, "cancelled")

	assert.NoError(t, err)
	assert.Equal(t, "cancelled", detail.Status)
	assert.Nil(t, detail.PaymentAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

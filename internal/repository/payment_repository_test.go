package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestPaymentAmountSnapshotsCarPrice(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	paid := time.Date(2025, 3, 11, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT c.price FROM orders o JOIN cars c ON o.car_id = c.id WHERE o.id = ?")).
		WithArgs(uint64(17)).
		WillReturnRows(sqlmock.NewRows([]string{"price"}).AddRow(30000.50))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payments (order_id, amount, payment_date, method, status) VALUES (?, ?, NOW(), ?, ?)")).
		WithArgs(uint64(17), 30000.50, "card", "paid").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, order_id, amount, payment_date, method, status FROM payments WHERE id = ?")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "amount", "payment_date", "method", "status"}).
			AddRow(3, 17, 30000.50, paid, "card", "paid"))

	repo := NewPaymentRepo(db)
	payment, err := repo.Create(context.Background(), 17, "card")

	assert.NoError(t, err)
	assert.Equal(t, 30000.50, payment.Amount)
	assert.Equal(t, "paid", payment.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentUnknownOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT c.price FROM orders o JOIN cars c ON o.car_id = c.id WHERE o.id = ?")).
		WithArgs(uint64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"price"}))

	repo := NewPaymentRepo(db)
	_, err = repo.Create(context.Background(), 404, "cash")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

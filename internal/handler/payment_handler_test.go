package handler_test

import (
	"net/http"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/Leplia/Diller-shop/internal/handler"
	"github.com/Leplia/Diller-shop/internal/repository"
)

func TestCreatePaymentRejectsBadMethod(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	h := handler.NewPaymentHandler(repository.NewPaymentRepo(db))

	c, rec := newJSONContext(t, http.MethodPost, "/api/payments", `{"order_id": 1, "method": "crypto"}`)
	assert.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "bank_transfer")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePaymentUnknownOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT c.price FROM orders o JOIN cars c ON o.car_id = c.id WHERE o.id = ?")).
		WithArgs(uint64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"price"}))

	h := handler.NewPaymentHandler(repository.NewPaymentRepo(db))

	c, rec := newJSONContext(t, http.MethodPost, "/api/payments", `{"order_id": 42, "method": "card"}`)
	assert.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

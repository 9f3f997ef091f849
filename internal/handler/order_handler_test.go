package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/Leplia/Diller-shop/internal/handler"
	"github.com/Leplia/Diller-shop/internal/repository"
)

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateOrderRequiresFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	h := handler.NewOrderHandler(repository.NewOrderRepo(db))

	c, rec := newJSONContext(t, http.MethodPost, "/api/orders", `{"user_id": 1}`)
	assert.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderStatusRejectsUnknownLiteral(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	h := handler.NewOrderHandler(repository.NewOrderRepo(db))

	c, rec := newJSONContext(t, http.MethodPatch, "/api/orders/1/status", `{"status": "archived"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	assert.NoError(t, h.UpdateStatus(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "pending")
	// The row must stay untouched: no queries reached the database.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderStatusInvalidID(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	h := handler.NewOrderHandler(repository.NewOrderRepo(db))

	c, rec := newJSONContext(t, http.MethodPatch, "/api/orders/abc/status", `{"status": "confirmed"}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	assert.NoError(t, h.UpdateStatus(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

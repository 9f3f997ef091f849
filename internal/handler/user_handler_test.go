package handler_test

import (
	"net/http"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/Leplia/Diller-shop/internal/handler"
	"github.com/Leplia/Diller-shop/internal/repository"
	"github.com/Leplia/Diller-shop/internal/utils"
)

func TestRegisterRejectsShortPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	h := handler.NewUserHandler(repository.NewUserRepo(db), bcrypt.MinCost)

	c, rec := newJSONContext(t, http.MethodPost, "/api/users/register",
		`{"name": "Anna", "email": "anna@example.com", "password": "short"}`)
	assert.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterRejectsMalformedEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	h := handler.NewUserHandler(repository.NewUserRepo(db), bcrypt.MinCost)

	c, rec := newJSONContext(t, http.MethodPost, "/api/users/register",
		`{"name": "Anna", "email": "not-an-email", "password": "longenough"}`)
	assert.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	hash, err := utils.HashPassword("correct-horse", bcrypt.MinCost)
	assert.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, password, role_id, COALESCE(is_blocked, 0) FROM users WHERE email = ? LIMIT 1")).
		WithArgs("anna@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password", "role_id", "is_blocked"}).
			AddRow(1, "Anna", "anna@example.com", hash, 3, 0))

	h := handler.NewUserHandler(repository.NewUserRepo(db), bcrypt.MinCost)

	c, rec := newJSONContext(t, http.MethodPost, "/api/users/login",
		`{"email": "anna@example.com", "password": "battery-staple"}`)
	assert.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginUnknownEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, password, role_id, COALESCE(is_blocked, 0) FROM users WHERE email = ? LIMIT 1")).
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password", "role_id", "is_blocked"}))

	h := handler.NewUserHandler(repository.NewUserRepo(db), bcrypt.MinCost)

	c, rec := newJSONContext(t, http.MethodPost, "/api/users/login",
		`{"email": "ghost@example.com", "password": "whatever1"}`)
	assert.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetBlockedRequiresBoolean(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	h := handler.NewUserHandler(repository.NewUserRepo(db), bcrypt.MinCost)

	c, rec := newJSONContext(t, http.MethodPatch, "/api/users/1/block", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	assert.NoError(t, h.SetBlocked(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

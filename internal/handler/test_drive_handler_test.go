package handler_test

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/Leplia/Diller-shop/internal/handler"
	"github.com/Leplia/Diller-shop/internal/repository"
)

func TestCreateTestDriveRequiresFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	h := handler.NewTestDriveHandler(repository.NewTestDriveRepo(db))

	c, rec := newJSONContext(t, http.MethodPost, "/api/test-drives", `{"user_id": 2, "car_id": 5}`)
	assert.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTestDriveStatusRejectsUnknownLiteral(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	h := handler.NewTestDriveHandler(repository.NewTestDriveRepo(db))

	c, rec := newJSONContext(t, http.MethodPatch, "/api/test-drives/3/status", `{"status": "shipped"}`)
	c.SetParamNames("id")
	c.SetParamValues("3")
	assert.NoError(t, h.UpdateStatus(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "completed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

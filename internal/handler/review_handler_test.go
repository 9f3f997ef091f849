package handler_test

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/Leplia/Diller-shop/internal/handler"
	"github.com/Leplia/Diller-shop/internal/repository"
)

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	h := handler.NewReviewHandler(repository.NewReviewRepo(db))

	for _, body := range []string{
		`{"user_id": 1, "car_id": 2, "rating": 0}`,
		`{"user_id": 1, "car_id": 2, "rating": 6}`,
	} {
		c, rec := newJSONContext(t, http.MethodPost, "/api/reviews", body)
		assert.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

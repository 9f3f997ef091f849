package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Leplia/Diller-shop/internal/repository"
)

// ReviewHandler covers customer reviews and the homepage highlights.
type ReviewHandler struct {
	Reviews *repository.ReviewRepo
}

func NewReviewHandler(reviews *repository.ReviewRepo) *ReviewHandler {
	return &ReviewHandler{Reviews: reviews}
}

// Create handles POST /api/reviews. A user may review the same car
// any number of times.
func (h *ReviewHandler) Create(c echo.Context) error {
	var req struct {
		UserID  uint64 `json:"user_id"`
		CarID   uint64 `json:"car_id"`
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.UserID == 0 || req.CarID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id and car_id are required"})
	}
	if req.Rating < 1 || req.Rating > 5 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating must be between 1 and 5"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	review, err := h.Reviews.Create(ctx, req.UserID, req.CarID, req.Rating, req.Comment)
	if err != nil {
		c.Logger().Errorf("create review: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create review"})
	}
	return c.JSON(http.StatusCreated, review)
}

// Best handles GET /api/reviews/best.
func (h *ReviewHandler) Best(c echo.Context) error {
	limit := 6
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	reviews, err := h.Reviews.Best(ctx, limit)
	if err != nil {
		c.Logger().Errorf("best reviews: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reviews"})
	}
	return c.JSON(http.StatusOK, reviews)
}

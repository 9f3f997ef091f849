package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Leplia/Diller-shop/internal/repository"
)

// CarAdminHandler covers the manager-side catalog mutations.
type CarAdminHandler struct {
	Cars *repository.CarRepo
}

func NewCarAdminHandler(cars *repository.CarRepo) *CarAdminHandler {
	return &CarAdminHandler{Cars: cars}
}

// Create handles POST /api/cars.
func (h *CarAdminHandler) Create(c echo.Context) error {
	var req struct {
		repository.CarInput
		Images []repository.ImageRef `json:"images"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Brand == "" || req.Model == "" || req.Year == 0 || req.Price == 0 ||
		req.DealerID == 0 || req.TypeID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "brand, model, year, price, dealer_id and type_id are required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	car, err := h.Cars.Create(ctx, req.CarInput, req.Images)
	if err != nil {
		c.Logger().Errorf("create car: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create car"})
	}
	return c.JSON(http.StatusCreated, car)
}

// Update handles PUT /api/cars/:id.
func (h *CarAdminHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var req repository.CarInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Brand == "" || req.Model == "" || req.Year == 0 || req.Price == 0 ||
		req.DealerID == 0 || req.TypeID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "brand, model, year, price, dealer_id and type_id are required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	car, err := h.Cars.Update(ctx, id, req)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "car not found"})
	}
	if err != nil {
		c.Logger().Errorf("update car %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update car"})
	}
	return c.JSON(http.StatusOK, car)
}

// Delete handles DELETE /api/cars/:id.
func (h *CarAdminHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err = h.Cars.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "car not found"})
	}
	if err != nil {
		c.Logger().Errorf("delete car %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete car"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "car deleted"})
}

// AddImages handles POST /api/cars/:id/images.
func (h *CarAdminHandler) AddImages(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var req struct {
		Images []repository.ImageRef `json:"images"`
	}
	if err := c.Bind(&req); err != nil || len(req.Images) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "images must be a non-empty array"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	images, err := h.Cars.AddImages(ctx, id, req.Images)
	if err != nil {
		c.Logger().Errorf("add images to car %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to add images"})
	}
	return c.JSON(http.StatusCreated, images)
}

// DeleteImages handles DELETE /api/cars/:id/images.
func (h *CarAdminHandler) DeleteImages(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	deleted, err := h.Cars.DeleteImages(ctx, id)
	if err != nil {
		c.Logger().Errorf("delete images of car %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete images"})
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": deleted})
}

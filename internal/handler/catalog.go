package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Leplia/Diller-shop/internal/repository"
	"github.com/Leplia/Diller-shop/internal/service"
)

// CatalogHandler serves the public car catalog: listings, the homepage
// feeds and the detail page.
type CatalogHandler struct {
	Cars *repository.CarRepo
}

// NewCatalogHandler returns a CatalogHandler over the given repo.
func NewCatalogHandler(cars *repository.CarRepo) *CatalogHandler {
	return &CatalogHandler{Cars: cars}
}

const dbTimeout = 5 * time.Second

func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// parseFilter builds the typed catalog filter from query parameters.
// Unparsable numbers are ignored rather than rejected: the catalog
// page should render with whatever filters survive.
func parseFilter(c echo.Context) repository.CarFilter {
	f := repository.CarFilter{
		Brand:  c.QueryParam("brand"),
		Model:  c.QueryParam("model"),
		SortBy: c.QueryParam("sortBy"),
		Order:  c.QueryParam("order"),
		Limit:  50,
	}
	if v, err := strconv.ParseFloat(c.QueryParam("minPrice"), 64); err == nil {
		f.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.QueryParam("maxPrice"), 64); err == nil {
		f.MaxPrice = &v
	}
	if v, err := strconv.Atoi(c.QueryParam("minYear")); err == nil {
		f.MinYear = &v
	}
	if v, err := strconv.Atoi(c.QueryParam("maxYear")); err == nil {
		f.MaxYear = &v
	}
	if v, err := strconv.ParseUint(c.QueryParam("type_id"), 10, 64); err == nil {
		f.TypeID = v
	}
	if v, err := strconv.ParseUint(c.QueryParam("dealer_id"), 10, 64); err == nil {
		f.DealerID = v
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		f.Limit = v
	}
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil && v >= 0 {
		f.Offset = v
	}
	return f
}

// List handles GET /api/cars.
func (h *CatalogHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	cars, err := h.Cars.Search(ctx, parseFilter(c))
	if err != nil {
		c.Logger().Errorf("list cars: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load cars"})
	}
	return c.JSON(http.StatusOK, cars)
}

// Popular handles GET /api/cars/popular. The carousel is padded to
// exactly limit entries; see service.PadPopular.
func (h *CatalogHandler) Popular(c echo.Context) error {
	limit := 6
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	withOrders, err := h.Cars.CarsWithOrders(ctx)
	if err != nil {
		c.Logger().Errorf("popular cars (ranked): %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load popular cars"})
	}
	topPriced, err := h.Cars.TopPriced(ctx, limit)
	if err != nil {
		c.Logger().Errorf("popular cars (fallback): %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load popular cars"})
	}
	return c.JSON(http.StatusOK, service.PadPopular(withOrders, topPriced, limit))
}

// Newest handles GET /api/cars/new.
func (h *CatalogHandler) Newest(c echo.Context) error {
	limit := 8
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	cars, err := h.Cars.Newest(ctx, limit)
	if err != nil {
		c.Logger().Errorf("new cars: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load new cars"})
	}
	return c.JSON(http.StatusOK, cars)
}

// GetByID handles GET /api/cars/:id.
func (h *CatalogHandler) GetByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	car, err := h.Cars.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "car not found"})
	}
	if err != nil {
		c.Logger().Errorf("get car %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load car"})
	}
	return c.JSON(http.StatusOK, car)
}

// FilterOptions handles GET /api/cars/filters/options.
func (h *CatalogHandler) FilterOptions(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	brands, types, dealers, err := h.Cars.FilterOptions(ctx)
	if err != nil {
		c.Logger().Errorf("filter options: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load filter options"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"brands":  brands,
		"types":   types,
		"dealers": dealers,
	})
}

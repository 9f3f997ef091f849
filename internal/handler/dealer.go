package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Leplia/Diller-shop/internal/repository"
)

// DealerHandler covers the dealer directory.
type DealerHandler struct {
	Dealers *repository.DealerRepo
}

func NewDealerHandler(dealers *repository.DealerRepo) *DealerHandler {
	return &DealerHandler{Dealers: dealers}
}

// List handles GET /api/dealers.
func (h *DealerHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	dealers, err := h.Dealers.List(ctx)
	if err != nil {
		c.Logger().Errorf("list dealers: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load dealers"})
	}
	return c.JSON(http.StatusOK, dealers)
}

// Create handles POST /api/dealers.
func (h *DealerHandler) Create(c echo.Context) error {
	var req struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		Phone   string `json:"phone"`
		Email   string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	dealer, err := h.Dealers.Create(ctx, req.Name, req.Address, req.Phone, req.Email)
	if err != nil {
		c.Logger().Errorf("create dealer: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create dealer"})
	}
	return c.JSON(http.StatusCreated, dealer)
}

// Delete handles DELETE /api/dealers/:id. A dealer still referenced
// by cars is refused.
func (h *DealerHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err = h.Dealers.Delete(ctx, id)
	if errors.Is(err, repository.ErrConflict) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "dealer has cars and cannot be deleted"})
	}
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "dealer not found"})
	}
	if err != nil {
		c.Logger().Errorf("delete dealer %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete dealer"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "dealer deleted"})
}

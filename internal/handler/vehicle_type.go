package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Leplia/Diller-shop/internal/repository"
)

// VehicleTypeHandler covers the vehicle type reference list.
type VehicleTypeHandler struct {
	Types *repository.VehicleTypeRepo
}

func NewVehicleTypeHandler(types *repository.VehicleTypeRepo) *VehicleTypeHandler {
	return &VehicleTypeHandler{Types: types}
}

// List handles GET /api/vehicle-types.
func (h *VehicleTypeHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	types, err := h.Types.List(ctx)
	if err != nil {
		c.Logger().Errorf("list vehicle types: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load vehicle types"})
	}
	return c.JSON(http.StatusOK, types)
}

// Create handles POST /api/vehicle-types.
func (h *VehicleTypeHandler) Create(c echo.Context) error {
	var req struct {
		TypeName string `json:"type_name"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.TypeName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "type_name is required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	vt, err := h.Types.Create(ctx, req.TypeName)
	if errors.Is(err, repository.ErrTypeExists) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "vehicle type already exists"})
	}
	if err != nil {
		c.Logger().Errorf("create vehicle type: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create vehicle type"})
	}
	return c.JSON(http.StatusCreated, vt)
}

// Delete handles DELETE /api/vehicle-types/:id. A type still
// referenced by cars is refused.
func (h *VehicleTypeHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err = h.Types.Delete(ctx, id)
	if errors.Is(err, repository.ErrConflict) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "vehicle type is in use and cannot be deleted"})
	}
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "vehicle type not found"})
	}
	if err != nil {
		c.Logger().Errorf("delete vehicle type %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete vehicle type"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "vehicle type deleted"})
}

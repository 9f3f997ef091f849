package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Leplia/Diller-shop/internal/model"
	"github.com/Leplia/Diller-shop/internal/queue"
	"github.com/Leplia/Diller-shop/internal/repository"
	"github.com/Leplia/Diller-shop/internal/service"
)

// TestDriveHandler covers booking and the manager status workflow for
// test drives.
type TestDriveHandler struct {
	TestDrives *repository.TestDriveRepo
}

func NewTestDriveHandler(testDrives *repository.TestDriveRepo) *TestDriveHandler {
	return &TestDriveHandler{TestDrives: testDrives}
}

// List handles GET /api/test-drives.
func (h *TestDriveHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	drives, err := h.TestDrives.List(ctx)
	if err != nil {
		c.Logger().Errorf("list test drives: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load test drives"})
	}
	return c.JSON(http.StatusOK, drives)
}

// Create handles POST /api/test-drives. The scheduled date is stored
// as submitted; the booking window is a client concern.
func (h *TestDriveHandler) Create(c echo.Context) error {
	var req struct {
		UserID        uint64 `json:"user_id"`
		CarID         uint64 `json:"car_id"`
		ScheduledDate string `json:"scheduled_date"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.UserID == 0 || req.CarID == 0 || req.ScheduledDate == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id, car_id and scheduled_date are required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	drive, err := h.TestDrives.Create(ctx, req.UserID, req.CarID, req.ScheduledDate)
	if err != nil {
		c.Logger().Errorf("create test drive: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create test drive"})
	}

	go func(d model.TestDrive) {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), dbTimeout)
		defer pubCancel()
		_ = service.PublishTestDriveScheduled(pubCtx, queue.TestDriveScheduledEvent{
			ID:            d.ID,
			UserID:        d.UserID,
			CarID:         d.CarID,
			ScheduledDate: req.ScheduledDate,
			Status:        d.Status,
		})
	}(*drive)

	return c.JSON(http.StatusCreated, drive)
}

// UpdateStatus handles PATCH /api/test-drives/:id/status.
func (h *TestDriveHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if !model.ValidTestDriveStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "status must be one of: " + strings.Join(model.TestDriveStatusNames(), ", "),
		})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	drive, err := h.TestDrives.UpdateStatus(ctx, id, req.Status)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "test drive not found"})
	}
	if err != nil {
		c.Logger().Errorf("update test drive %d status: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update test drive status"})
	}
	return c.JSON(http.StatusOK, drive)
}

package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Leplia/Diller-shop/internal/model"
	"github.com/Leplia/Diller-shop/internal/queue"
	"github.com/Leplia/Diller-shop/internal/repository"
	"github.com/Leplia/Diller-shop/internal/service"
)

// OrderHandler covers order placement and the manager status workflow.
type OrderHandler struct {
	Orders *repository.OrderRepo
}

func NewOrderHandler(orders *repository.OrderRepo) *OrderHandler {
	return &OrderHandler{Orders: orders}
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	orders, err := h.Orders.List(ctx)
	if err != nil {
		c.Logger().Errorf("list orders: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load orders"})
	}
	return c.JSON(http.StatusOK, orders)
}

// Create handles POST /api/orders. The created event is published
// fire-and-forget: a broker outage never fails the order.
func (h *OrderHandler) Create(c echo.Context) error {
	var req struct {
		UserID uint64 `json:"user_id"`
		CarID  uint64 `json:"car_id"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.UserID == 0 || req.CarID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id and car_id are required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	order, err := h.Orders.Create(ctx, req.UserID, req.CarID)
	if errors.Is(err, repository.ErrStatusNotConfigured) {
		c.Logger().Error("order status 'pending' missing from order_statuses")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "order status not configured"})
	}
	if err != nil {
		c.Logger().Errorf("create order: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create order"})
	}

	go func(o model.Order) {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), dbTimeout)
		defer pubCancel()
		_ = service.PublishOrderCreated(pubCtx, queue.OrderCreatedEvent{
			OrderID:   o.ID,
			UserID:    o.UserID,
			CarID:     o.CarID,
			Status:    model.OrderPending,
			CreatedAt: o.OrderDate.Format(time.RFC3339),
		})
	}(*order)

	return c.JSON(http.StatusCreated, order)
}

// UpdateStatus handles PATCH /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
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
	if !model.ValidOrderStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "status must be one of: " + strings.Join(model.OrderStatusNames(), ", "),
		})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	order, err := h.Orders.UpdateStatus(ctx, id, req.Status)
	if errors.Is(err, repository.ErrStatusNotConfigured) {
		c.Logger().Errorf("order status %q missing from order_statuses", req.Status)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "order status not configured"})
	}
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
	}
	if err != nil {
		c.Logger().Errorf("update order %d status: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update order status"})
	}
	return c.JSON(http.StatusOK, order)
}

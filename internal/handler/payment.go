package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Leplia/Diller-shop/internal/model"
	"github.com/Leplia/Diller-shop/internal/queue"
	"github.com/Leplia/Diller-shop/internal/repository"
	"github.com/Leplia/Diller-shop/internal/service"
)

// paymentMethods is the accepted set for the simulated checkout.
var paymentMethods = map[string]bool{
	"card":          true,
	"cash":          true,
	"bank_transfer": true,
}

// PaymentHandler records simulated payments against orders.
type PaymentHandler struct {
	Payments *repository.PaymentRepo
}

func NewPaymentHandler(payments *repository.PaymentRepo) *PaymentHandler {
	return &PaymentHandler{Payments: payments}
}

// Create handles POST /api/payments. The amount is snapshotted from
// the ordered car's current price; the payment lands as 'paid'
// immediately.
func (h *PaymentHandler) Create(c echo.Context) error {
	var req struct {
		OrderID uint64 `json:"order_id"`
		Method  string `json:"method"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.OrderID == 0 || req.Method == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "order_id and method are required"})
	}
	if !paymentMethods[req.Method] {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "method must be one of: card, cash, bank_transfer"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	payment, err := h.Payments.Create(ctx, req.OrderID, req.Method)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
	}
	if err != nil {
		c.Logger().Errorf("create payment for order %d: %v", req.OrderID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create payment"})
	}

	go func(p model.Payment) {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), dbTimeout)
		defer pubCancel()
		_ = service.PublishPaymentRecorded(pubCtx, queue.PaymentRecordedEvent{
			ID:      p.ID,
			OrderID: p.OrderID,
			Amount:  p.Amount,
			Method:  p.Method,
			Status:  p.Status,
			PaidAt:  p.PaymentDate.Format(time.RFC3339),
		})
	}(*payment)

	return c.JSON(http.StatusCreated, payment)
}

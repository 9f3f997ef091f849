package model

import "time"

// Order records a customer's intent to purchase a specific car. The
// status is normalized through the `order_statuses` table: the row
// stores a status_id, clients see the status_name. A new order always
// starts in 'pending'; every later transition is driven by a manager
// action and overwrites status_id unconditionally (see status.go).
// An order has at most one payment.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – customer who placed the order.
//  CarID     – car being ordered.
//  OrderDate – creation timestamp (DB default CURRENT_TIMESTAMP).
//  StatusID  – foreign key into order_statuses.
type Order struct {
	ID        uint64    `json:"id"`         // orders.id
	UserID    uint64    `json:"user_id"`    // orders.user_id
	CarID     uint64    `json:"car_id"`     // orders.car_id
	OrderDate time.Time `json:"order_date"` // orders.order_date
	StatusID  uint64    `json:"status_id"`  // orders.status_id
}

// Payment is a recorded settlement against an order. Payments are
// simulated: they are inserted with status 'paid' and there is no
// update or refund operation. Amount is a snapshot of the car price
// taken when the payment is created, never recomputed.
type Payment struct {
	ID          uint64    `json:"id"`           // payments.id
	OrderID     uint64    `json:"order_id"`     // payments.order_id
	Amount      float64   `json:"amount"`       // payments.amount
	PaymentDate time.Time `json:"payment_date"` // payments.payment_date
	Method      string    `json:"method"`       // payments.method
	Status      string    `json:"status"`       // payments.status
}

package repository

import (
	"context"
	"database/sql"

	"github.com/Leplia/Diller-shop/internal/model"
)

// PaymentRepo records simulated payments. A payment is inserted with
// status 'paid' immediately; the 'failed' status exists in the schema
// but no code path sets it, and there is no update or refund.
type PaymentRepo struct {
	db *sql.DB
}

// NewPaymentRepo returns a PaymentRepo bound to the given database.
func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{db: db} }

// Create attaches a payment to an order. The amount is the car price
// read through an orders/cars join at call time; the order's state is
// not checked, so paying a cancelled order succeeds. ErrNotFound means
// the order id did not resolve to an order+car pair.
func (r *PaymentRepo) Create(ctx context.Context, orderID uint64, method string) (*model.Payment, error) {
	var amount float64
	err := r.db.QueryRowContext(ctx,
		`SELECT c.price FROM orders o JOIN cars c ON o.car_id = c.id WHERE o.id = ?`,
		orderID).Scan(&amount)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO payments (order_id, amount, payment_date, method, status) VALUES (?, ?, NOW(), ?, ?)`,
		orderID, amount, method, "paid")
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	var p model.Payment
	err = r.db.QueryRowContext(ctx,
		"SELECT id, order_id, amount, payment_date, method, status FROM payments WHERE id = ?", id).
		Scan(&p.ID, &p.OrderID, &p.Amount, &p.PaymentDate, &p.Method, &p.Status)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

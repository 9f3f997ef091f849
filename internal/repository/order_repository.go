package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Leplia/Diller-shop/internal/model"
)

// OrderRepo persists customer orders. Status values live in the
// order_statuses lookup table; this repository translates between the
// status_name clients use and the status_id the rows store.
type OrderRepo struct {
	db *sql.DB
}

// NewOrderRepo returns an OrderRepo bound to the given database.
func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{db: db} }

// OrderDetail is an order enriched with its status name, the customer,
// the car and the payment (when one exists). It backs the manager list
// and the status-update response.
type OrderDetail struct {
	ID            uint64    `json:"id"`
	OrderDate     time.Time `json:"order_date"`
	UserID        uint64    `json:"user_id"`
	CarID         uint64    `json:"car_id"`
	Status        string    `json:"status"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	Brand         string    `json:"brand"`
	Model         string    `json:"model"`
	Year          int       `json:"year"`
	Price         float64   `json:"price"`
	PaymentAmount *float64  `json:"payment_amount"`
	PaymentMethod *string   `json:"payment_method"`
	PaymentStatus *string   `json:"payment_status"`
}

const orderDetailQuery = `SELECT
		o.id, o.order_date, o.user_id, o.car_id,
		os.status_name,
		u.name, u.email,
		c.brand, c.model, c.year, c.price,
		p.amount, p.method, p.status
	FROM orders o
	LEFT JOIN order_statuses os ON o.status_id = os.id
	LEFT JOIN users u ON o.user_id = u.id
	LEFT JOIN cars c ON o.car_id = c.id
	LEFT JOIN payments p ON o.id = p.order_id`

func scanOrderDetail(row interface{ Scan(...any) error }) (*OrderDetail, error) {
	var (
		d                       OrderDetail
		status, userName, email sql.NullString
		brand, carModel         sql.NullString
		year                    sql.NullInt64
		price                   sql.NullFloat64
		payAmount               sql.NullFloat64
		payMethod, payStatus    sql.NullString
	)
	err := row.Scan(
		&d.ID, &d.OrderDate, &d.UserID, &d.CarID,
		&status, &userName, &email,
		&brand, &carModel, &year, &price,
		&payAmount, &payMethod, &payStatus,
	)
	if err != nil {
		return nil, err
	}
	d.Status = status.String
	d.UserName = userName.String
	d.UserEmail = email.String
	d.Brand = brand.String
	d.Model = carModel.String
	d.Year = int(year.Int64)
	d.Price = price.Float64
	if payAmount.Valid {
		d.PaymentAmount = &payAmount.Float64
	}
	if payMethod.Valid {
		d.PaymentMethod = &payMethod.String
	}
	if payStatus.Valid {
		d.PaymentStatus = &payStatus.String
	}
	return &d, nil
}

// List returns every order for the manager dashboard, newest first.
func (r *OrderRepo) List(ctx context.Context) ([]OrderDetail, error) {
	rows, err := r.db.QueryContext(ctx, orderDetailQuery+" ORDER BY o.order_date DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []OrderDetail{}
	for rows.Next() {
		d, err := scanOrderDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

// statusID resolves a status name to its order_statuses id.
func (r *OrderRepo) statusID(ctx context.Context, name string) (uint64, error) {
	var id uint64
	err := r.db.QueryRowContext(ctx,
		"SELECT id FROM order_statuses WHERE status_name = ?", name).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, ErrStatusNotConfigured
	}
	return id, err
}

// Create inserts a new order in the 'pending' state and returns the
// stored row. user_id and car_id are trusted as given: a dangling id
// fails at the foreign-key boundary, or not at all when the schema
// carries no constraint.
func (r *OrderRepo) Create(ctx context.Context, userID, carID uint64) (*model.Order, error) {
	statusID, err := r.statusID(ctx, model.OrderPending)
	if err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO orders (user_id, car_id, status_id) VALUES (?, ?, ?)",
		userID, carID, statusID)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	var o model.Order
	err = r.db.QueryRowContext(ctx,
		"SELECT id, user_id, car_id, order_date, status_id FROM orders WHERE id = ?", id).
		Scan(&o.ID, &o.UserID, &o.CarID, &o.OrderDate, &o.StatusID)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatus overwrites the order's status unconditionally and reads
// the enriched row back. The update itself never reports missing rows:
// updating a non-existent id affects zero rows and only the re-fetch
// notices, returning ErrNotFound. The status name must already be
// validated by the caller; a name missing from the lookup table still
// comes back as ErrStatusNotConfigured.
func (r *OrderRepo) UpdateStatus(ctx context.Context, orderID uint64, status string) (*OrderDetail, error) {
	statusID, err := r.statusID(ctx, status)
	if err != nil {
		return nil, err
	}

	if _, err := r.db.ExecContext(ctx,
		"UPDATE orders SET status_id = ? WHERE id = ?", statusID, orderID); err != nil {
		return nil, err
	}

	d, err := scanOrderDetail(r.db.QueryRowContext(ctx, orderDetailQuery+" WHERE o.id = ?", orderID))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

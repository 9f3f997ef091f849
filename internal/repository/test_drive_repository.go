package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Leplia/Diller-shop/internal/model"
)

// TestDriveRepo persists test-drive bookings. Unlike orders, the
// status literal is stored directly on the row.
type TestDriveRepo struct {
	db *sql.DB
}

// NewTestDriveRepo returns a TestDriveRepo bound to the given database.
func NewTestDriveRepo(db *sql.DB) *TestDriveRepo { return &TestDriveRepo{db: db} }

// TestDriveDetail is a booking joined with the customer and the car
// for the manager dashboard.
type TestDriveDetail struct {
	ID            uint64    `json:"id"`
	UserID        uint64    `json:"user_id"`
	CarID         uint64    `json:"car_id"`
	ScheduledDate time.Time `json:"scheduled_date"`
	Status        string    `json:"status"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	Brand         string    `json:"brand"`
	Model         string    `json:"model"`
	Year          int       `json:"year"`
	Price         float64   `json:"price"`
}

const testDriveDetailQuery = `SELECT
		td.id, td.user_id, td.car_id, td.scheduled_date, td.status,
		u.name, u.email,
		c.brand, c.model, c.year, c.price
	FROM test_drives td
	LEFT JOIN users u ON td.user_id = u.id
	LEFT JOIN cars c ON td.car_id = c.id`

func scanTestDriveDetail(row interface{ Scan(...any) error }) (*TestDriveDetail, error) {
	var (
		d               TestDriveDetail
		userName, email sql.NullString
		brand, carModel sql.NullString
		year            sql.NullInt64
		price           sql.NullFloat64
	)
	err := row.Scan(
		&d.ID, &d.UserID, &d.CarID, &d.ScheduledDate, &d.Status,
		&userName, &email,
		&brand, &carModel, &year, &price,
	)
	if err != nil {
		return nil, err
	}
	d.UserName = userName.String
	d.UserEmail = email.String
	d.Brand = brand.String
	d.Model = carModel.String
	d.Year = int(year.Int64)
	d.Price = price.Float64
	return &d, nil
}

// List returns every booking, most recently scheduled first.
func (r *TestDriveRepo) List(ctx context.Context) ([]TestDriveDetail, error) {
	rows, err := r.db.QueryContext(ctx, testDriveDetailQuery+" ORDER BY td.scheduled_date DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []TestDriveDetail{}
	for rows.Next() {
		d, err := scanTestDriveDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

// Create inserts a booking in the 'pending' state. The scheduled date
// is passed through as submitted; the 8:00-20:00 window and the
// future-date rule are client conventions the API does not enforce.
func (r *TestDriveRepo) Create(ctx context.Context, userID, carID uint64, scheduledDate string) (*model.TestDrive, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO test_drives (user_id, car_id, scheduled_date, status) VALUES (?, ?, ?, ?)",
		userID, carID, scheduledDate, model.TestDrivePending)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	var td model.TestDrive
	err = r.db.QueryRowContext(ctx,
		"SELECT id, user_id, car_id, scheduled_date, status FROM test_drives WHERE id = ?", id).
		Scan(&td.ID, &td.UserID, &td.CarID, &td.ScheduledDate, &td.Status)
	if err != nil {
		return nil, err
	}
	return &td, nil
}

// UpdateStatus overwrites the booking's status unconditionally, same
// pattern as orders: zero affected rows go unnoticed and only the
// enriched re-fetch reports ErrNotFound.
func (r *TestDriveRepo) UpdateStatus(ctx context.Context, id uint64, status string) (*TestDriveDetail, error) {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE test_drives SET status = ? WHERE id = ?", status, id); err != nil {
		return nil, err
	}

	d, err := scanTestDriveDetail(r.db.QueryRowContext(ctx, testDriveDetailQuery+" WHERE td.id = ?", id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

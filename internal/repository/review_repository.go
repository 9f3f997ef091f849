package repository

import (
	"context"
	"database/sql"

	"github.com/Leplia/Diller-shop/internal/model"
)

// ReviewRepo persists car reviews. Reviews are unconstrained: the same
// user may review the same car repeatedly and no purchase is required.
type ReviewRepo struct {
	db *sql.DB
}

// NewReviewRepo returns a ReviewRepo bound to the given database.
func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{db: db} }

// ReviewDetail is a review joined with the author name and the car it
// rates, used by the homepage best-reviews strip.
type ReviewDetail struct {
	model.Review
	UserName string `json:"user_name"`
	CarBrand string `json:"car_brand"`
	CarModel string `json:"car_model"`
}

// Create inserts a review and returns the stored row.
func (r *ReviewRepo) Create(ctx context.Context, userID, carID uint64, rating int, comment string) (*model.Review, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO reviews (user_id, car_id, rating, comment) VALUES (?, ?, ?, ?)",
		userID, carID, rating, comment)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	var rev model.Review
	err = r.db.QueryRowContext(ctx,
		"SELECT id, user_id, car_id, rating, IFNULL(comment, ''), created_at FROM reviews WHERE id = ?", id).
		Scan(&rev.ID, &rev.UserID, &rev.CarID, &rev.Rating, &rev.Comment, &rev.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

// Best returns up to limit reviews rated 4 or higher, best and newest
// first.
func (r *ReviewRepo) Best(ctx context.Context, limit int) ([]ReviewDetail, error) {
	const query = `SELECT
			r.id, r.user_id, r.car_id, r.rating, IFNULL(r.comment, ''), r.created_at,
			u.name, c.brand, c.model
		FROM reviews r
		LEFT JOIN users u ON r.user_id = u.id
		LEFT JOIN cars c ON r.car_id = c.id
		WHERE r.rating >= 4
		ORDER BY r.rating DESC, r.created_at DESC
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ReviewDetail{}
	for rows.Next() {
		var (
			d                     ReviewDetail
			name, brand, carModel sql.NullString
		)
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.CarID, &d.Rating, &d.Comment, &d.CreatedAt,
			&name, &brand, &carModel,
		); err != nil {
			return nil, err
		}
		d.UserName = name.String
		d.CarBrand = brand.String
		d.CarModel = carModel.String
		out = append(out, d)
	}
	return out, rows.Err()
}

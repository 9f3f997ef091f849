package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Leplia/Diller-shop/internal/model"
)

// DealerRepo manages seller entities. Dealers referenced by catalog
// cars cannot be deleted (ErrConflict).
type DealerRepo struct {
	db *sql.DB
}

// NewDealerRepo returns a DealerRepo bound to the given database.
func NewDealerRepo(db *sql.DB) *DealerRepo { return &DealerRepo{db: db} }

// List returns all dealers ordered by name.
func (r *DealerRepo) List(ctx context.Context) ([]model.Dealer, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, IFNULL(address, ''), IFNULL(phone, ''), IFNULL(email, '') FROM dealers ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Dealer{}
	for rows.Next() {
		var d model.Dealer
		if err := rows.Scan(&d.ID, &d.Name, &d.Address, &d.Phone, &d.Email); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Create inserts a dealer and returns the stored row. Empty optional
// fields are stored as NULL.
func (r *DealerRepo) Create(ctx context.Context, name, address, phone, email string) (*model.Dealer, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO dealers (name, address, phone, email) VALUES (?, ?, ?, ?)",
		name, nullable(address), nullable(phone), nullable(email))
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	var d model.Dealer
	err = r.db.QueryRowContext(ctx,
		"SELECT id, name, IFNULL(address, ''), IFNULL(phone, ''), IFNULL(email, '') FROM dealers WHERE id = ?", id).
		Scan(&d.ID, &d.Name, &d.Address, &d.Phone, &d.Email)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Delete removes a dealer. ErrConflict while cars still reference it,
// ErrNotFound when the id does not resolve.
func (r *DealerRepo) Delete(ctx context.Context, id uint64) error {
	var count int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM cars WHERE dealer_id = ?", id).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return ErrConflict
	}

	res, err := r.db.ExecContext(ctx, "DELETE FROM dealers WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// nullable maps empty strings to NULL for optional columns.
func nullable(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

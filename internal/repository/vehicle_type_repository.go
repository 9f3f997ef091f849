package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Leplia/Diller-shop/internal/model"
)

// VehicleTypeRepo manages body-style categories. Types in use by
// catalog cars cannot be deleted; names are unique.
type VehicleTypeRepo struct {
	db *sql.DB
}

// NewVehicleTypeRepo returns a VehicleTypeRepo bound to the given
// database.
func NewVehicleTypeRepo(db *sql.DB) *VehicleTypeRepo { return &VehicleTypeRepo{db: db} }

// ErrTypeExists is returned when a vehicle type name is already taken.
var ErrTypeExists = errors.New("vehicle type already exists")

// List returns all vehicle types ordered by name.
func (r *VehicleTypeRepo) List(ctx context.Context) ([]model.VehicleType, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, type_name FROM vehicle_types ORDER BY type_name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.VehicleType{}
	for rows.Next() {
		var t model.VehicleType
		if err := rows.Scan(&t.ID, &t.TypeName); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Create inserts a vehicle type and returns the stored row. A
// duplicate name surfaces as ErrTypeExists (MySQL 1062).
func (r *VehicleTypeRepo) Create(ctx context.Context, typeName string) (*model.VehicleType, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO vehicle_types (type_name) VALUES (?)", typeName)
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			return nil, ErrTypeExists
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	var t model.VehicleType
	err = r.db.QueryRowContext(ctx,
		"SELECT id, type_name FROM vehicle_types WHERE id = ?", id).
		Scan(&t.ID, &t.TypeName)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete removes a vehicle type. ErrConflict while cars still use it,
// ErrNotFound when the id does not resolve.
func (r *VehicleTypeRepo) Delete(ctx context.Context, id uint64) error {
	var count int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM cars WHERE type_id = ?", id).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return ErrConflict
	}

	res, err := r.db.ExecContext(ctx, "DELETE FROM vehicle_types WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

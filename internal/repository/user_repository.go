package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Leplia/Diller-shop/internal/model"
	"github.com/Leplia/Diller-shop/internal/utils"
)

// UserRepo provides account creation, credential lookup and the
// sysadmin management operations.
type UserRepo struct{ DB *sql.DB }

// NewUserRepo returns a UserRepo bound to the given database.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// ErrEmailExists is returned when registration hits a duplicate email.
var ErrEmailExists = errors.New("email already exists")

// UserPublic is the user shape returned to clients: everything except
// the password hash and the block flag.
type UserPublic struct {
	ID     uint64 `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	RoleID int    `json:"role_id"`
}

// UserAdminRow extends UserPublic with the block flag for the sysadmin
// listing. The flag is COALESCEd to 0/1 because legacy rows predate
// the column.
type UserAdminRow struct {
	UserPublic
	IsBlocked int `json:"is_blocked"`
}

// Create registers a customer account. The email is normalized, the
// password bcrypt-hashed with the given cost, and the new row read
// back. Duplicate emails surface as ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, name, email, password string, cost int) (*UserPublic, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var exists int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE email = ?", email).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists > 0 {
		return nil, ErrEmailExists
	}

	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return nil, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, email, password, role_id) VALUES (?, ?, ?, ?)",
		name, email, hash, model.RoleCustomer)
	if err != nil {
		// Covers the race where the same email lands between the
		// existence check and the insert (MySQL duplicate key 1062).
		if strings.Contains(err.Error(), "1062") {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetPublic(ctx, uint64(id))
}

// GetByEmail fetches a full user row (including the password hash) by
// normalized email, for credential verification.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	var blocked sql.NullInt64
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, email, password, role_id, COALESCE(is_blocked, 0) FROM users WHERE email = ? LIMIT 1",
		email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.RoleID, &blocked)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u.IsBlocked = blocked.Int64 != 0
	return &u, nil
}

// GetByID fetches a full user row by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	var u model.User
	var blocked sql.NullInt64
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, email, password, role_id, COALESCE(is_blocked, 0) FROM users WHERE id = ? LIMIT 1",
		id).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.RoleID, &blocked)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u.IsBlocked = blocked.Int64 != 0
	return &u, nil
}

// GetPublic fetches the client-facing shape of a user.
func (r *UserRepo) GetPublic(ctx context.Context, id uint64) (*UserPublic, error) {
	var u UserPublic
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, email, role_id FROM users WHERE id = ?", id).
		Scan(&u.ID, &u.Name, &u.Email, &u.RoleID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// EmailExists reports whether any account uses the given email.
func (r *UserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var n int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE email = ?", email).Scan(&n)
	return n > 0, err
}

// List returns every account for the sysadmin dashboard.
func (r *UserRepo) List(ctx context.Context) ([]UserAdminRow, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, email, role_id, COALESCE(is_blocked, 0) FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []UserAdminRow{}
	for rows.Next() {
		var u UserAdminRow
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.RoleID, &u.IsBlocked); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// SetBlocked flips the account block flag.
func (r *UserRepo) SetBlocked(ctx context.Context, id uint64, blocked bool) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET is_blocked = ? WHERE id = ?", blocked, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// SetRole reassigns the account role.
func (r *UserRepo) SetRole(ctx context.Context, id uint64, roleID int) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET role_id = ? WHERE id = ?", roleID, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// SetName renames the account and returns the updated public row.
func (r *UserRepo) SetName(ctx context.Context, id uint64, name string) (*UserPublic, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return nil, err
	}
	if err := requireAffected(res); err != nil {
		return nil, err
	}
	return r.GetPublic(ctx, id)
}

// SetPassword stores a new bcrypt hash for the account.
func (r *UserRepo) SetPassword(ctx context.Context, id uint64, password string, cost int) error {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET password = ? WHERE id = ?", hash, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// Delete removes the account.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// requireAffected maps a zero-row update/delete to ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

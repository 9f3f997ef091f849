package repository

import (
	"context"
	"database/sql"

	"github.com/Leplia/Diller-shop/internal/model"
)

// FAQRepo persists user-submitted questions and manager answers.
type FAQRepo struct {
	db *sql.DB
}

// NewFAQRepo returns a FAQRepo bound to the given database.
func NewFAQRepo(db *sql.DB) *FAQRepo { return &FAQRepo{db: db} }

// FAQDetail is a question joined with its author, for the manager
// dashboard.
type FAQDetail struct {
	model.FAQ
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}

func (r *FAQRepo) getByID(ctx context.Context, id uint64) (*model.FAQ, error) {
	var (
		f       model.FAQ
		userID  sql.NullInt64
		answer  sql.NullString
		updated sql.NullTime
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT id, user_id, theme, question, answer, status, created_at, updated_at FROM faq WHERE id = ?", id).
		Scan(&f.ID, &userID, &f.Theme, &f.Question, &answer, &f.Status, &f.CreatedAt, &updated)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if userID.Valid {
		uid := uint64(userID.Int64)
		f.UserID = &uid
	}
	f.Answer = answer.String
	if updated.Valid {
		t := updated.Time
		f.UpdatedAt = &t
	}
	return &f, nil
}

// Create inserts a question in the 'pending' state. user_id may be
// nil: guests can ask too.
func (r *FAQRepo) Create(ctx context.Context, theme, question string, userID *uint64) (*model.FAQ, error) {
	var uid any
	if userID != nil {
		uid = *userID
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO faq (question, theme, status, user_id) VALUES (?, ?, ?, ?)",
		question, theme, "pending", uid)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.getByID(ctx, uint64(id))
}

const faqDetailQuery = `SELECT
		f.id, f.user_id, f.theme, f.question, f.answer, f.status, f.created_at, f.updated_at,
		u.name, u.email
	FROM faq f
	LEFT JOIN users u ON f.user_id = u.id`

func (r *FAQRepo) queryDetails(ctx context.Context, query string, args ...any) ([]FAQDetail, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []FAQDetail{}
	for rows.Next() {
		var (
			d           FAQDetail
			userID      sql.NullInt64
			answer      sql.NullString
			updated     sql.NullTime
			name, email sql.NullString
		)
		if err := rows.Scan(
			&d.ID, &userID, &d.Theme, &d.Question, &answer, &d.Status, &d.CreatedAt, &updated,
			&name, &email,
		); err != nil {
			return nil, err
		}
		if userID.Valid {
			uid := uint64(userID.Int64)
			d.FAQ.UserID = &uid
		}
		d.Answer = answer.String
		if updated.Valid {
			t := updated.Time
			d.UpdatedAt = &t
		}
		d.UserName = name.String
		d.UserEmail = email.String
		out = append(out, d)
	}
	return out, rows.Err()
}

// List returns every question for the manager: unanswered first, then
// oldest to newest so nothing waits forever at the bottom.
func (r *FAQRepo) List(ctx context.Context) ([]FAQDetail, error) {
	return r.queryDetails(ctx, faqDetailQuery+`
		ORDER BY CASE WHEN f.status = 'pending' THEN 0 ELSE 1 END, f.created_at ASC`)
}

// ListByUser returns the newest 10 questions of one user.
func (r *FAQRepo) ListByUser(ctx context.Context, userID uint64) ([]FAQDetail, error) {
	return r.queryDetails(ctx, faqDetailQuery+`
		WHERE f.user_id = ?
		ORDER BY f.created_at DESC
		LIMIT 10`, userID)
}

// Answer stores a manager's answer and flips the status (default
// 'answered'). ErrNotFound when the question id does not resolve.
func (r *FAQRepo) Answer(ctx context.Context, id uint64, answer, status string) (*model.FAQ, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE faq SET answer = ?, status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		answer, status, id)
	if err != nil {
		return nil, err
	}
	if err := requireAffected(res); err != nil {
		return nil, err
	}
	return r.getByID(ctx, id)
}

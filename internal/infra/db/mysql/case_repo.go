package mysql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	domain "github.com/credastra/riskreview/internal/domain/cases"
)

type CaseRepository struct {
	db *sql.DB
}

func NewCaseRepository(db *sql.DB) *CaseRepository {
	return &CaseRepository{db: db}
}

// Save insert/update Application record
func (r *CaseRepository) Save(ctx context.Context, a *domain.Application) error {
	const q = `
INSERT INTO applications
(id, user_id, email, name, loan_type, applicant_type, loan_amount,
 status, created_at, updated_at, decision, decision_notes, reviewed_by)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE
 email=VALUES(email), name=VALUES(name), loan_type=VALUES(loan_type),
 applicant_type=VALUES(applicant_type), loan_amount=VALUES(loan_amount),
 status=VALUES(status), updated_at=VALUES(updated_at),
 decision=VALUES(decision), decision_notes=VALUES(decision_notes),
 reviewed_by=VALUES(reviewed_by);
`
	user := stringOrDash(a.UserID)
	status := stringOrDash(string(a.Status))
	created := a.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	updated := a.UpdatedAt
	if updated.IsZero() {
		updated = created
	}

	_, err := r.db.ExecContext(ctx, q,
		a.ID, user, a.Email, a.Name, a.LoanType, a.ApplicantType, a.LoanAmount,
		status, created, updated, a.Decision, a.DecisionNotes, a.ReviewedBy,
	)
	return err
}

// Get by ID
func (r *CaseRepository) Get(ctx context.Context, id domain.ID) (*domain.Application, error) {
	const q = `
SELECT id, user_id, email, name, loan_type, applicant_type, loan_amount,
       status, created_at, updated_at, decision, decision_notes, reviewed_by
FROM applications
WHERE id=? LIMIT 1;
`
	row := r.db.QueryRowContext(ctx, q, id)

	var a domain.Application
	if err := row.Scan(
		&a.ID, &a.UserID, &a.Email, &a.Name, &a.LoanType, &a.ApplicantType, &a.LoanAmount,
		&a.Status, &a.CreatedAt, &a.UpdatedAt, &a.Decision, &a.DecisionNotes, &a.ReviewedBy,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// List applications, newest first, with optional user/status filters
func (r *CaseRepository) List(ctx context.Context, userID string, status domain.Status, limit int) ([]*domain.Application, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `
SELECT id, user_id, email, name, loan_type, applicant_type, loan_amount,
       status, created_at, updated_at, decision, decision_notes, reviewed_by
FROM applications
WHERE 1=1`
	args := []any{}
	if userID != "" {
		query += " AND user_id = ?"
		args = append(args, userID)
	}
	if status != "" {
		query += " AND status = ?"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Application
	for rows.Next() {
		var a domain.Application
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Email, &a.Name, &a.LoanType, &a.ApplicantType, &a.LoanAmount,
			&a.Status, &a.CreatedAt, &a.UpdatedAt, &a.Decision, &a.DecisionNotes, &a.ReviewedBy,
		); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

// RecordDecision updates the review outcome of one application
func (r *CaseRepository) RecordDecision(ctx context.Context, id domain.ID, d domain.Decision) error {
	const q = `
UPDATE applications
SET status=?, decision=?, decision_notes=?, reviewed_by=?, updated_at=?
WHERE id=?;
`
	res, err := r.db.ExecContext(ctx, q, d.Status, d.Decision, d.Notes, d.ReviewedBy, time.Now(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

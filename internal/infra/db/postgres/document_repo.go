package postgres

import (
	"context"
	"database/sql"
	"time"

	domain "github.com/credastra/riskreview/internal/domain/documents"
)

type DocumentRepository struct{ db *sql.DB }

func NewDocumentRepository(db *sql.DB) *DocumentRepository { return &DocumentRepository{db: db} }

// Save insert/update Document record
func (r *DocumentRepository) Save(ctx context.Context, d *domain.Document) error {
	const q = `
INSERT INTO documents
(id, application_id, user_id, document_type, file_name, storage_url,
 status, risk_score, risk_level, uploaded_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
ON CONFLICT (id) DO UPDATE SET
 storage_url = EXCLUDED.storage_url,
 status = EXCLUDED.status,
 risk_score = EXCLUDED.risk_score,
 risk_level = EXCLUDED.risk_level;`

	app := stringOrDash(d.ApplicationID)
	docType := stringOrDash(string(d.Type))
	status := stringOrDash(string(d.Status))
	uploaded := d.UploadedAt
	if uploaded.IsZero() {
		uploaded = time.Now()
	}

	_, err := r.db.ExecContext(ctx, q,
		d.ID, app, d.UserID, docType, d.FileName, d.StorageURL,
		status, d.RiskScore, d.RiskLevel, uploaded,
	)
	return err
}

// Get by ID
func (r *DocumentRepository) Get(ctx context.Context, id domain.ID) (*domain.Document, error) {
	const q = `
SELECT id, application_id, user_id, document_type, file_name, storage_url,
       status, risk_score, risk_level, uploaded_at
FROM documents
WHERE id=$1 LIMIT 1;`

	row := r.db.QueryRowContext(ctx, q, id)

	var d domain.Document
	if err := row.Scan(
		&d.ID, &d.ApplicationID, &d.UserID, &d.Type, &d.FileName, &d.StorageURL,
		&d.Status, &d.RiskScore, &d.RiskLevel, &d.UploadedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListByApplication returns all documents for one application
func (r *DocumentRepository) ListByApplication(ctx context.Context, applicationID string) ([]*domain.Document, error) {
	const q = `
SELECT id, application_id, user_id, document_type, file_name, storage_url,
       status, risk_score, risk_level, uploaded_at
FROM documents
WHERE application_id=$1 ORDER BY uploaded_at DESC;`

	rows, err := r.db.QueryContext(ctx, q, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Document
	for rows.Next() {
		var d domain.Document
		if err := rows.Scan(
			&d.ID, &d.ApplicationID, &d.UserID, &d.Type, &d.FileName, &d.StorageURL,
			&d.Status, &d.RiskScore, &d.RiskLevel, &d.UploadedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

// UpdateRisk stores the backend's latest score for a document
func (r *DocumentRepository) UpdateRisk(ctx context.Context, id domain.ID, score float64, level string) error {
	const q = `
UPDATE documents SET risk_score=$1, risk_level=$2, status=$3 WHERE id=$4;`
	_, err := r.db.ExecContext(ctx, q, score, level, domain.StatusAnalyzed, id)
	return err
}

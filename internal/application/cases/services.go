package cases

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/credastra/riskreview/internal/application"
	domain "github.com/credastra/riskreview/internal/domain/cases"
	"github.com/credastra/riskreview/internal/domain/documents"
)

// Service implements use-cases for applications and their documents.
// Safe for concurrent use.
type Service struct {
	Cases     domain.Repository
	Documents documents.Repository
	Artifacts documents.ArtifactStore
	Clock     application.Clock
}

// Command untuk membuat application baru
type CreateCommand struct {
	UserID        string
	Email         string
	Name          string
	LoanType      string
	ApplicantType string
	LoanAmount    float64
}

// Create registers a new application in review state.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*domain.Application, error) {
	if strings.TrimSpace(cmd.UserID) == "" {
		return nil, fmt.Errorf("user_id is required")
	}

	now := s.Clock.Now()
	app := &domain.Application{
		ID:            domain.ID(fmt.Sprintf("app_%s", strings.ReplaceAll(uuid.New().String(), "-", "")[:12])),
		UserID:        strings.TrimSpace(cmd.UserID),
		Email:         cmd.Email,
		Name:          cmd.Name,
		LoanType:      cmd.LoanType,
		ApplicantType: cmd.ApplicantType,
		LoanAmount:    cmd.LoanAmount,
		Status:        domain.StatusInReview,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Cases.Save(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// Get returns one application by id.
func (s *Service) Get(ctx context.Context, id domain.ID) (*domain.Application, error) {
	return s.Cases.Get(ctx, id)
}

// List returns applications, optionally filtered by user and status.
// The status filter is normalized so legacy values keep matching.
func (s *Service) List(ctx context.Context, userID, status string, limit int) ([]*domain.Application, error) {
	var st domain.Status
	if status != "" {
		st = domain.NormalizeStatus(status)
	}
	return s.Cases.List(ctx, userID, st, limit)
}

// Decide records an administrator's accept/reject decision on a case.
func (s *Service) Decide(ctx context.Context, id domain.ID, d domain.Decision) error {
	if d.Decision == "" {
		return fmt.Errorf("decision is required")
	}
	d.Status = domain.NormalizeStatus(string(d.Status))
	switch d.Status {
	case domain.StatusApproved, domain.StatusRejected, domain.StatusConditional:
	default:
		return fmt.Errorf("invalid decision status: %s", d.Status)
	}
	return s.Cases.RecordDecision(ctx, id, d)
}

// AttachDocument uploads a local file to object storage and registers the
// document against the application.
func (s *Service) AttachDocument(ctx context.Context, appID domain.ID, docType documents.Type, localPath string) (*documents.Document, error) {
	app, err := s.Cases.Get(ctx, appID)
	if err != nil {
		return nil, err
	}

	id := documents.ID(fmt.Sprintf("doc_%s", strings.ReplaceAll(uuid.New().String(), "-", "")[:12]))
	key := fmt.Sprintf("%s/%s/%s", app.ID, docType, filepath.Base(localPath))
	url, err := s.Artifacts.UploadAndCleanup(ctx, localPath, key)
	if err != nil {
		return nil, fmt.Errorf("upload document: %w", err)
	}

	doc := &documents.Document{
		ID:            id,
		ApplicationID: string(app.ID),
		UserID:        app.UserID,
		Type:          docType,
		FileName:      filepath.Base(localPath),
		StorageURL:    url,
		Status:        documents.StatusUploaded,
		UploadedAt:    s.Clock.Now(),
	}
	if err := s.Documents.Save(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ListDocuments returns the documents registered for an application.
func (s *Service) ListDocuments(ctx context.Context, appID domain.ID) ([]*documents.Document, error) {
	return s.Documents.ListByApplication(ctx, string(appID))
}

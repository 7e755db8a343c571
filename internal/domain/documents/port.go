package documents

import "context"

// Repository port (interface untuk persistence)
type Repository interface {
	Save(ctx context.Context, d *Document) error
	Get(ctx context.Context, id ID) (*Document, error)
	ListByApplication(ctx context.Context, applicationID string) ([]*Document, error)
	UpdateRisk(ctx context.Context, id ID, score float64, level string) error
}

// ArtifactStore port (interface untuk penyimpanan file dokumen)
type ArtifactStore interface {
	Upload(ctx context.Context, localPath, key string) (string, error)
	UploadAndCleanup(ctx context.Context, localPath, key string) (string, error)
}

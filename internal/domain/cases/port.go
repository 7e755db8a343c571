package cases

import "context"

// Repository port (interface untuk persistence)
type Repository interface {
	Save(ctx context.Context, a *Application) error
	Get(ctx context.Context, id ID) (*Application, error)
	List(ctx context.Context, userID string, status Status, limit int) ([]*Application, error)
	RecordDecision(ctx context.Context, id ID, d Decision) error
}

package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/credastra/riskreview/internal/application/review"
	"github.com/credastra/riskreview/internal/domain/ai"
)

type Service struct {
	client ai.Client
}

func NewService(client ai.Client) *Service {
	return &Service{client: client}
}

// ReviewReport asks the model for reviewer-facing reasoning over an
// aggregated flag report. Returns the model's JSON verbatim.
func (s *Service) ReviewReport(ctx context.Context, report *review.CaseReport) (string, error) {
	b, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("marshal case report: %w", err)
	}
	return s.client.Review(ctx, string(b))
}

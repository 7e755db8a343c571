package review

import (
	"context"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/credastra/riskreview/internal/domain/flags"
	"github.com/credastra/riskreview/internal/domain/risk"
)

// Analyzer port for the external risk-analysis service reached over HTTP.
type Analyzer interface {
	CaseSummary(ctx context.Context, caseID string) (*risk.CaseSummary, error)
	DocumentAnalysis(ctx context.Context, documentID string) (*risk.DocumentAnalysis, error)
}

// maxConcurrentFetches caps the per-document fan-out.
const maxConcurrentFetches = 8

// State of a case report load
type State string

const (
	// StateReady: at least one document analysis was fetched.
	StateReady State = "ready"
	// StateEmpty: the case has no analyzed documents yet. Not an error;
	// the reviewer should run analysis first, not retry.
	StateEmpty State = "empty"
)

// CaseReport is the aggregated, display-ready risk view for one case.
type CaseReport struct {
	CaseID    string             `json:"application_id"`
	State     State              `json:"state"`
	Score     float64            `json:"risk_score"`
	Level     risk.Level         `json:"risk_level"`
	Gauge     float64            `json:"gauge"`
	Stats     risk.SummaryStats  `json:"stats"`
	Flags     flags.Report       `json:"flags"`
	Documents []risk.AnalysisRef `json:"documents"`
	// FailedDocs lists documents whose detail fetch failed and were omitted.
	FailedDocs []string `json:"failed_documents,omitempty"`
}

// Service implements use-cases for case risk review.
// Safe for concurrent use.
type Service struct {
	Analyzer Analyzer
}

// BuildCaseReport fetches the case summary, fans out per-document detail
// fetches, then aggregates the results into a deduplicated flag report.
//
// Outcomes are kept distinct: a summary fetch error is returned as-is
// (connectivity failure), a case with zero documents yields StateEmpty, and a
// case whose detail fetches all failed yields risk.ErrAnalysisUnavailable.
// Individual fetch failures in between are tolerated: that document's
// anomalies are simply absent (partial results over total failure).
func (s *Service) BuildCaseReport(ctx context.Context, caseID string) (*CaseReport, error) {
	summary, err := s.Analyzer.CaseSummary(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("fetch case summary: %w", err)
	}

	if summary.TotalDocs == 0 || len(summary.Analyses) == 0 {
		return &CaseReport{
			CaseID: caseID,
			State:  StateEmpty,
			Level:  risk.LevelLow,
			Stats:  risk.Summarize(nil),
			Flags:  flags.BuildReport(nil),
		}, nil
	}

	analyses, failed := s.fetchAnalyses(ctx, summary.Analyses)
	if len(analyses) == 0 {
		// Cancellation is the caller navigating away, not a backend outage.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("case %s: %w", caseID, risk.ErrAnalysisUnavailable)
	}

	score := summary.Score()
	return &CaseReport{
		CaseID:     caseID,
		State:      StateReady,
		Score:      score,
		Level:      risk.LevelForScore(score),
		Gauge:      risk.Gauge(score),
		Stats:      risk.Summarize(analyses),
		Flags:      flags.BuildReport(analyses),
		Documents:  summary.Analyses,
		FailedDocs: failed,
	}, nil
}

// fetchAnalyses issues per-document fetches concurrently and waits for all of
// them to settle before returning. Fetch order is not preserved; results are
// reassembled in summary order so aggregation stays deterministic. The group
// context makes the fan-out cancellable when the caller goes away.
func (s *Service) fetchAnalyses(ctx context.Context, refs []risk.AnalysisRef) ([]risk.DocumentAnalysis, []string) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	results := make([]*risk.DocumentAnalysis, len(refs))
	var mu sync.Mutex
	var failed []string

	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			a, err := s.Analyzer.DocumentAnalysis(ctx, ref.DocumentID)
			if err != nil {
				// Best effort: drop this document and continue. The backend
				// does not distinguish "not analyzed yet" from a transient
				// fetch error, so neither do we.
				log.Printf("document analysis fetch failed: document=%s err=%v", ref.DocumentID, err)
				mu.Lock()
				failed = append(failed, ref.DocumentID)
				mu.Unlock()
				return nil
			}
			results[i] = a
			return nil
		})
	}
	_ = g.Wait()

	out := make([]risk.DocumentAnalysis, 0, len(refs))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, failed
}

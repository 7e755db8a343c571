package riskapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/credastra/riskreview/internal/domain/risk"
)

// Client talks to the external risk-analysis service. It implements the
// review.Analyzer port.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the analysis service at baseURL
// (e.g. "http://analysis:8000/api/v1").
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// CaseSummary fetches the aggregate risk summary for one application.
func (c *Client) CaseSummary(ctx context.Context, caseID string) (*risk.CaseSummary, error) {
	var out risk.CaseSummary
	path := fmt.Sprintf("/risk-analysis/application/%s/summary", url.PathEscape(caseID))
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DocumentAnalysis fetches the detailed anomaly breakdown for one document.
func (c *Client) DocumentAnalysis(ctx context.Context, documentID string) (*risk.DocumentAnalysis, error) {
	var out risk.DocumentAnalysis
	path := fmt.Sprintf("/risk-analysis/%s", url.PathEscape(documentID))
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("analysis service returned %s for %s", resp.Status, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

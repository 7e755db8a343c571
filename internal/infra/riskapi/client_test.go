package riskapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseSummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/risk-analysis/application/app_123/summary", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"application_id": "app_123",
			"total_documents": 2,
			"average_risk_score": 45.5,
			"max_risk_score": 70,
			"final_risk_score": 70,
			"analyses": [
				{"document_id": "doc-a", "document_type": "pan", "risk_score": 70, "risk_level": "HIGH", "anomaly_count": 2},
				{"document_id": "doc-b", "document_type": "payslip", "risk_score": 21, "risk_level": "LOW", "anomaly_count": 0}
			]
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	summary, err := c.CaseSummary(context.Background(), "app_123")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalDocs)
	assert.Equal(t, 45.5, summary.AverageScore)
	require.NotNil(t, summary.FinalScore)
	assert.Equal(t, 70.0, *summary.FinalScore)
	require.Len(t, summary.Analyses, 2)
	assert.Equal(t, "doc-a", summary.Analyses[0].DocumentID)
}

func TestDocumentAnalysis(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/risk-analysis/doc-a", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"document_id": "doc-a",
			"document_type": "pan",
			"risk_score": 70,
			"risk_level": "HIGH",
			"anomalies": {
				"critical_anomalies": [],
				"high_anomalies": [
					{"type": "name_mismatch_across_documents", "field": "name", "value": "Current: John Doe, Other: Jane Doe", "reason": "Name mismatch with PAN document"}
				],
				"medium_anomalies": [],
				"low_anomalies": [],
				"anomaly_count": 1
			}
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	a, err := c.DocumentAnalysis(context.Background(), "doc-a")
	require.NoError(t, err)

	assert.Equal(t, "pan", a.DocumentType)
	require.Len(t, a.Anomalies.High, 1)
	assert.Equal(t, "name_mismatch_across_documents", a.Anomalies.High[0].Type)
	assert.Empty(t, a.Anomalies.Critical)
}

// Anomalies with missing fields decode to empty strings, never an error.
func TestDocumentAnalysisSparseAnomaly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"document_id": "doc-a", "anomalies": {"low_anomalies": [{"value": "odd"}]}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	a, err := c.DocumentAnalysis(context.Background(), "doc-a")
	require.NoError(t, err)
	require.Len(t, a.Anomalies.Low, 1)
	assert.Empty(t, a.Anomalies.Low[0].Type)
	assert.Equal(t, "odd", a.Anomalies.Low[0].Value)
}

func TestNon200IsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "risk analysis not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	_, err := c.DocumentAnalysis(context.Background(), "doc-x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

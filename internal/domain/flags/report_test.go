package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credastra/riskreview/internal/domain/risk"
)

func TestBuildReportCrossDocumentAnomalies(t *testing.T) {
	anomaly := risk.Anomaly{Type: "name_mismatch", Field: "name", Value: "X vs Y"}
	analyses := []risk.DocumentAnalysis{
		{
			DocumentID:   "doc-a",
			DocumentType: "pan",
			Anomalies:    risk.AnomalySet{Critical: []risk.Anomaly{anomaly}},
		},
		{
			DocumentID:   "doc-b",
			DocumentType: "aadhaar",
			Anomalies:    risk.AnomalySet{Critical: []risk.Anomaly{anomaly}},
		},
	}

	report := BuildReport(analyses)

	// Same tuple in two documents stays as two flags.
	assert.Equal(t, 2, report.Total)
	require.Len(t, report.ByCategory[CategoryIdentity], 2)
	require.Len(t, report.BySeverity[risk.SeverityCritical], 2)
}

func TestBuildReportCollapsesWithinDocumentDuplicates(t *testing.T) {
	anomaly := risk.Anomaly{Type: "salary_mismatch", Field: "salary", Value: "50000 vs 60000"}
	analyses := []risk.DocumentAnalysis{
		{
			DocumentID: "doc-a",
			Anomalies:  risk.AnomalySet{High: []risk.Anomaly{anomaly, anomaly}},
		},
	}

	report := BuildReport(analyses)

	assert.Equal(t, 1, report.Total)
	assert.Len(t, report.BySeverity[risk.SeverityHigh], 1)
	assert.Len(t, report.ByCategory[CategoryFinancial], 1)
}

// Severity buckets are rebuilt from the deduplicated set, so both views
// always cover the same items.
func TestBuildReportViewsStayConsistent(t *testing.T) {
	analyses := []risk.DocumentAnalysis{
		{
			DocumentID: "doc-a",
			Anomalies: risk.AnomalySet{
				Critical: []risk.Anomaly{{Type: "name_mismatch", Field: "name", Value: "A vs B"}},
				High: []risk.Anomaly{
					{Type: "income_instability", Field: "income", Value: "varies 40%"},
					{Type: "income_instability", Field: "income", Value: "varies 40%"},
				},
				Medium: []risk.Anomaly{{Type: "document_tampering", Value: "edited"}},
				Low:    []risk.Anomaly{{Type: "minor_gap", Value: "2 day gap"}},
			},
		},
		{
			DocumentID: "doc-b",
			Anomalies: risk.AnomalySet{
				High: []risk.Anomaly{{Type: "cibil_score_low", Field: "credit", Value: "590"}},
			},
		},
	}

	report := BuildReport(analyses)

	var bySeverity, byCategory int
	for _, sev := range risk.Severities {
		bySeverity += len(report.BySeverity[sev])
	}
	for _, cat := range Categories {
		byCategory += len(report.ByCategory[cat])
	}
	assert.Equal(t, bySeverity, byCategory)
	assert.Equal(t, report.Total, bySeverity)
	assert.Equal(t, 5, report.Total) // 6 raw anomalies, one in-document duplicate
}

func TestBuildReportItemFields(t *testing.T) {
	analyses := []risk.DocumentAnalysis{
		{
			DocumentID:   "doc-a",
			DocumentType: "payslip",
			Anomalies: risk.AnomalySet{
				Medium: []risk.Anomaly{{Type: "employer_name_mismatch", Field: "employer", Value: "Acme vs Acme Corp", Reason: "differs from bank statement"}},
			},
		},
	}

	report := BuildReport(analyses)
	require.Equal(t, 1, report.Total)

	it := report.BySeverity[risk.SeverityMedium][0]
	assert.Equal(t, "doc-a", it.DocumentID)
	assert.Equal(t, "payslip", it.DocumentType)
	assert.Equal(t, risk.SeverityMedium, it.Severity)
	assert.Equal(t, "Employer Name Mismatch", it.Title)
	// "employer_name_mismatch" contains "name": identity wins by priority.
	assert.Equal(t, CategoryIdentity, it.Category)
}

func TestBuildReportUntypedAnomaly(t *testing.T) {
	analyses := []risk.DocumentAnalysis{
		{
			DocumentID: "doc-a",
			Anomalies:  risk.AnomalySet{Low: []risk.Anomaly{{Value: "odd"}}},
		},
	}

	report := BuildReport(analyses)
	require.Equal(t, 1, report.Total)
	it := report.BySeverity[risk.SeverityLow][0]
	assert.Equal(t, CategoryOther, it.Category)
	assert.Equal(t, "Unknown Anomaly", it.Title)
}

func TestBuildReportEmpty(t *testing.T) {
	report := BuildReport(nil)
	assert.Equal(t, 0, report.Total)
	assert.Empty(t, report.BySeverity[risk.SeverityCritical])
}

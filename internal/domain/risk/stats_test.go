package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	analyses := []DocumentAnalysis{
		{
			DocumentID: "doc-a",
			RiskScore:  90,
			Anomalies: AnomalySet{
				Critical: []Anomaly{{Type: "name_mismatch"}},
				High:     []Anomaly{{Type: "income_instability"}, {Type: "cibil_score_low"}},
			},
		},
		{
			DocumentID: "doc-b",
			RiskScore:  20,
			Anomalies: AnomalySet{
				Low: []Anomaly{{Type: "minor_gap"}},
			},
		},
	}

	stats := Summarize(analyses)

	assert.Equal(t, 2, stats.TotalDocs)
	assert.Equal(t, 55.0, stats.AverageScore)
	assert.Equal(t, 90.0, stats.MaxScore)
	// The worst document drives the case score.
	assert.Equal(t, 90.0, stats.FinalScore)
	assert.Equal(t, 1, stats.Distribution[LevelCritical])
	assert.Equal(t, 1, stats.Distribution[LevelLow])
	assert.Equal(t, SeverityCounts{Critical: 1, High: 2, Low: 1, Total: 4}, stats.BySeverity)
}

func TestSummarizeClampsScores(t *testing.T) {
	stats := Summarize([]DocumentAnalysis{{RiskScore: 150}, {RiskScore: -20}})
	assert.Equal(t, 100.0, stats.MaxScore)
	assert.Equal(t, 50.0, stats.AverageScore)
}

func TestSummarizeEmpty(t *testing.T) {
	stats := Summarize(nil)
	assert.Equal(t, 0, stats.TotalDocs)
	assert.Equal(t, 0.0, stats.FinalScore)
	assert.Empty(t, stats.Distribution)
}

func TestCaseSummaryScore(t *testing.T) {
	final := 72.0
	withFinal := CaseSummary{FinalScore: &final, MaxScore: 40}
	assert.Equal(t, 72.0, withFinal.Score())

	withoutFinal := CaseSummary{MaxScore: 40}
	assert.Equal(t, 40.0, withoutFinal.Score())
}

func TestAnomalySetTotal(t *testing.T) {
	set := AnomalySet{
		Critical: []Anomaly{{}},
		Medium:   []Anomaly{{}, {}},
		Count:    99, // reported count is untrusted
	}
	assert.Equal(t, 3, set.Total())
}

package risk

import "time"

// Severity enum
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Severities in descending order of weight.
var Severities = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

// Anomaly is a single irregularity detected in one document's extracted data.
// All fields are free text supplied by the analysis backend; missing fields
// stay empty rather than failing decode.
type Anomaly struct {
	Type   string `json:"type,omitempty"`
	Field  string `json:"field,omitempty"`
	Value  string `json:"value,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// AnomalySet groups a document's anomalies under the four fixed severity keys,
// matching the analysis backend's wire shape.
type AnomalySet struct {
	Critical []Anomaly `json:"critical_anomalies"`
	High     []Anomaly `json:"high_anomalies"`
	Medium   []Anomaly `json:"medium_anomalies"`
	Low      []Anomaly `json:"low_anomalies"`
	Count    int       `json:"anomaly_count,omitempty"`
}

// BySeverity returns the bucket for the given severity.
func (a AnomalySet) BySeverity(s Severity) []Anomaly {
	switch s {
	case SeverityCritical:
		return a.Critical
	case SeverityHigh:
		return a.High
	case SeverityMedium:
		return a.Medium
	case SeverityLow:
		return a.Low
	}
	return nil
}

// Total counts anomalies across all four buckets, ignoring the reported
// Count field which is not always populated upstream.
func (a AnomalySet) Total() int {
	return len(a.Critical) + len(a.High) + len(a.Medium) + len(a.Low)
}

// SeverityCounts value object
type SeverityCounts struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
	Total    int `json:"total"`
}

// DocumentAnalysis is the per-document risk breakdown returned by the
// analysis backend. Read-only to this service.
type DocumentAnalysis struct {
	DocumentID   string     `json:"document_id"`
	DocumentType string     `json:"document_type"`
	RiskScore    float64    `json:"risk_score"`
	RiskLevel    string     `json:"risk_level"`
	Anomalies    AnomalySet `json:"anomalies"`
	AnalyzedAt   time.Time  `json:"analysis_timestamp,omitempty"`
}

// AnalysisRef is the per-document entry inside a case summary.
type AnalysisRef struct {
	DocumentID   string  `json:"document_id"`
	DocumentType string  `json:"document_type,omitempty"`
	RiskScore    float64 `json:"risk_score,omitempty"`
	RiskLevel    string  `json:"risk_level,omitempty"`
	AnomalyCount int     `json:"anomaly_count,omitempty"`
}

// CaseSummary is the aggregate risk summary for one case as reported by the
// analysis backend.
type CaseSummary struct {
	ApplicationID string        `json:"application_id"`
	TotalDocs     int           `json:"total_documents"`
	AverageScore  float64       `json:"average_risk_score"`
	MaxScore      float64       `json:"max_risk_score,omitempty"`
	FinalScore    *float64      `json:"final_risk_score,omitempty"`
	Analyses      []AnalysisRef `json:"analyses"`
}

// Score resolves the authoritative case score: the backend's final score when
// present, otherwise the maximum document score.
func (s CaseSummary) Score() float64 {
	if s.FinalScore != nil {
		return Clamp(*s.FinalScore)
	}
	return Clamp(s.MaxScore)
}

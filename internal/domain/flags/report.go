package flags

import (
	"strings"

	"github.com/credastra/riskreview/internal/domain/risk"
)

// BuildReport flattens per-document analyses into a deduplicated, categorized
// flag report. Severity buckets are rebuilt from the deduplicated set rather
// than the raw input, so switching between the category and severity views
// never double-counts.
func BuildReport(analyses []risk.DocumentAnalysis) Report {
	var items []Item
	for _, a := range analyses {
		for _, sev := range risk.Severities {
			for _, an := range a.Anomalies.BySeverity(sev) {
				items = append(items, newItem(an, sev, a))
			}
		}
	}

	items = Dedupe(items)

	report := Report{
		ByCategory: make(map[Category][]Item, len(Categories)),
		BySeverity: make(map[risk.Severity][]Item, len(risk.Severities)),
		Total:      len(items),
	}
	for _, it := range items {
		report.ByCategory[it.Category] = append(report.ByCategory[it.Category], it)
		report.BySeverity[it.Severity] = append(report.BySeverity[it.Severity], it)
	}
	return report
}

func newItem(a risk.Anomaly, sev risk.Severity, doc risk.DocumentAnalysis) Item {
	return Item{
		Type:         a.Type,
		Field:        a.Field,
		Value:        a.Value,
		Reason:       a.Reason,
		Severity:     sev,
		DocumentID:   doc.DocumentID,
		DocumentType: doc.DocumentType,
		Category:     Categorize(a.Type, a.Field),
		Title:        titleFor(a),
	}
}

// titleFor humanizes an anomaly type into a display title. Anomalies with no
// type fall back to a generic label rather than an empty string.
func titleFor(a risk.Anomaly) string {
	t := strings.TrimSpace(a.Type)
	if t == "" {
		return "Unknown Anomaly"
	}
	words := strings.Split(strings.ReplaceAll(strings.ToLower(t), "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

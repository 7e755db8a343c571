package risk

import "math"

// SummaryStats re-derives the aggregate figures the analysis backend reports
// per case, computed locally over whichever document analyses were fetched.
// Used to fill gaps when the upstream summary omits the final score.
type SummaryStats struct {
	TotalDocs    int            `json:"total_documents"`
	AverageScore float64        `json:"average_risk_score"`
	MaxScore     float64        `json:"max_risk_score"`
	FinalScore   float64        `json:"final_risk_score"`
	Distribution map[Level]int  `json:"risk_level_distribution"`
	BySeverity   SeverityCounts `json:"anomalies_by_severity"`
}

// Summarize computes summary statistics over fetched analyses. The final
// score is the maximum document score: the worst document determines the case
// risk level, which avoids double-counting severity points across documents.
func Summarize(analyses []DocumentAnalysis) SummaryStats {
	stats := SummaryStats{Distribution: make(map[Level]int)}
	if len(analyses) == 0 {
		return stats
	}

	var sum float64
	for _, a := range analyses {
		score := Clamp(a.RiskScore)
		sum += score
		if score > stats.MaxScore {
			stats.MaxScore = score
		}
		stats.Distribution[LevelForScore(score)]++

		stats.BySeverity.Critical += len(a.Anomalies.Critical)
		stats.BySeverity.High += len(a.Anomalies.High)
		stats.BySeverity.Medium += len(a.Anomalies.Medium)
		stats.BySeverity.Low += len(a.Anomalies.Low)
	}
	stats.BySeverity.Total = stats.BySeverity.Critical + stats.BySeverity.High +
		stats.BySeverity.Medium + stats.BySeverity.Low

	stats.TotalDocs = len(analyses)
	stats.AverageScore = round2(sum / float64(len(analyses)))
	stats.MaxScore = round2(stats.MaxScore)
	stats.FinalScore = stats.MaxScore
	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

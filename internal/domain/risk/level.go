package risk

// Level enum (display label for a numeric score)
type Level string

const (
	LevelLow      Level = "LOW"
	LevelMedium   Level = "MEDIUM"
	LevelHigh     Level = "HIGH"
	LevelCritical Level = "CRITICAL"
)

// Score thresholds. A score at or above a threshold maps to that level;
// checked from critical downward.
const (
	thresholdCritical = 80.0
	thresholdHigh     = 60.0
	thresholdMedium   = 30.0
)

// Clamp limits a score to the valid [0,100] range. Out-of-range input from
// the backend is clamped, never rejected.
func Clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// LevelForScore maps a numeric score to its discrete level.
// Presentational only; the authoritative score comes from the analysis backend.
func LevelForScore(score float64) Level {
	score = Clamp(score)
	switch {
	case score >= thresholdCritical:
		return LevelCritical
	case score >= thresholdHigh:
		return LevelHigh
	case score >= thresholdMedium:
		return LevelMedium
	default:
		return LevelLow
	}
}

// Gauge returns the clamped score as a gauge position in [0,100].
func Gauge(score float64) float64 {
	return Clamp(score)
}

package risk

import "errors"

// ErrAnalysisUnavailable indicates the case has documents but no per-document
// analysis could be fetched. Distinct from the empty state (zero documents),
// which is not an error.
var ErrAnalysisUnavailable = errors.New("risk analysis unavailable")

package ai

import "errors"

// ErrQuotaExceeded indicates the AI provider rejected the request with a
// quota/limit error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("ai quota exceeded")

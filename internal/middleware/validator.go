package middleware

import (
	"fmt"
	"regexp"
	"strings"
)

// Input validation and sanitization utilities

var (
	caseIDPattern     = regexp.MustCompile(`^app_[a-f0-9]{12}$`)
	documentIDPattern = regexp.MustCompile(`^doc_[a-f0-9]{12}$`)
	upstreamIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)
)

// ValidateCaseID validates application ID format
func ValidateCaseID(id string) error {
	if id == "" {
		return fmt.Errorf("application ID cannot be empty")
	}
	// IDs minted by this service follow app_<12 hex>; legacy records imported
	// from the analysis backend may carry plain identifiers.
	if !caseIDPattern.MatchString(id) && !upstreamIDPattern.MatchString(id) {
		return fmt.Errorf("invalid application ID format")
	}
	return nil
}

// ValidateDocumentID validates document ID format
func ValidateDocumentID(id string) error {
	if id == "" {
		return fmt.Errorf("document ID cannot be empty")
	}
	if !documentIDPattern.MatchString(id) && !upstreamIDPattern.MatchString(id) {
		return fmt.Errorf("invalid document ID format")
	}
	return nil
}

// ValidateSeverity checks a severity filter value
func ValidateSeverity(severity string) error {
	allowed := map[string]bool{
		"critical": true,
		"high":     true,
		"medium":   true,
		"low":      true,
	}
	if !allowed[strings.ToLower(severity)] {
		return fmt.Errorf("invalid severity: %s (allowed: critical, high, medium, low)", severity)
	}
	return nil
}

// ValidateDocumentType checks an uploaded document type against the allowed set
func ValidateDocumentType(docType string) error {
	allowed := map[string]bool{
		"aadhaar":        true,
		"pan":            true,
		"payslip":        true,
		"bank_statement": true,
		"cibil_report":   true,
		"itr":            true,
		"gst_return":     true,
		"passport":       true,
		"other":          true,
	}
	if !allowed[strings.ToLower(docType)] {
		return fmt.Errorf("invalid document type: %s", docType)
	}
	return nil
}

// SanitizeString removes dangerous characters from strings
func SanitizeString(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Remove control characters
	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}

// ValidateLimit validates pagination limit
func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 20 // default
	}
	if limit > 100 {
		return 100 // max limit
	}
	return limit
}

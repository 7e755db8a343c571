package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCaseID(t *testing.T) {
	assert.NoError(t, ValidateCaseID("app_1a2b3c4d5e6f"))
	assert.NoError(t, ValidateCaseID("legacy-case-42")) // upstream identifiers pass
	assert.Error(t, ValidateCaseID(""))
	assert.Error(t, ValidateCaseID("app_123; DROP TABLE applications"))
}

func TestValidateDocumentID(t *testing.T) {
	assert.NoError(t, ValidateDocumentID("doc_1a2b3c4d5e6f"))
	assert.Error(t, ValidateDocumentID(""))
	assert.Error(t, ValidateDocumentID("../etc/passwd"))
}

func TestValidateSeverity(t *testing.T) {
	for _, s := range []string{"critical", "HIGH", "medium", "low"} {
		assert.NoError(t, ValidateSeverity(s))
	}
	assert.Error(t, ValidateSeverity("informational"))
	assert.Error(t, ValidateSeverity(""))
}

func TestValidateDocumentType(t *testing.T) {
	assert.NoError(t, ValidateDocumentType("pan"))
	assert.NoError(t, ValidateDocumentType("bank_statement"))
	assert.Error(t, ValidateDocumentType("resume"))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("hello\x00"))
	assert.Equal(t, "a b", SanitizeString("  a b  "))
	assert.Equal(t, "ab", SanitizeString("a\x01b"))
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, ValidateLimit(0))
	assert.Equal(t, 20, ValidateLimit(-3))
	assert.Equal(t, 50, ValidateLimit(50))
	assert.Equal(t, 100, ValidateLimit(500))
}

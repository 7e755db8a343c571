package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name        string
		anomalyType string
		field       string
		want        Category
	}{
		{"name mismatch", "name_mismatch_across_documents", "name", CategoryIdentity},
		{"aadhaar type", "aadhaar_checksum_invalid", "", CategoryIdentity},
		{"identity via field", "value_mismatch", "date_of_birth", CategoryIdentity},
		{"pan", "pan_format_invalid", "", CategoryIdentity},
		{"address", "address_mismatch", "", CategoryIdentity},
		{"income instability", "income_instability", "", CategoryFinancial},
		{"cibil", "cibil_score_low", "", CategoryFinancial},
		{"dti", "high_dti_ratio", "dti", CategoryFinancial},
		{"round tripping", "round_tripping_detected", "", CategoryFinancial},
		{"financial via field", "unusual_pattern", "transactions", CategoryFinancial},
		{"hidden obligation", "hidden_obligation", "", CategoryFinancial},
		{"tampering", "document_tampering", "", CategoryDocument},
		{"metadata", "metadata_anomaly", "", CategoryDocument},
		{"quality", "low_quality_scan", "", CategoryDocument},
		{"sequence", "sequence_error", "", CategoryDocument},
		{"unknown type", "something_novel", "some_field", CategoryOther},
		{"empty everything", "", "", CategoryOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.anomalyType, tt.field))
		})
	}
}

// Identity takes priority over financial when keywords from both would match.
func TestCategorizePriorityOrder(t *testing.T) {
	assert.Equal(t, CategoryIdentity, Categorize("name_mismatch", "salary"))
	assert.Equal(t, CategoryFinancial, Categorize("salary_mismatch", ""))
}

// Document keywords apply to the anomaly type only, never the field.
func TestCategorizeDocumentTypeOnly(t *testing.T) {
	assert.Equal(t, CategoryOther, Categorize("strange_value", "metadata"))
	assert.Equal(t, CategoryDocument, Categorize("metadata_mismatch", ""))
}

func TestCategorizeCaseInsensitive(t *testing.T) {
	assert.Equal(t, CategoryIdentity, Categorize("NAME_MISMATCH", ""))
	assert.Equal(t, CategoryFinancial, Categorize("", "SALARY"))
}

// Categorize is pure: the same input always yields the same category.
func TestCategorizeDeterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, CategoryFinancial, Categorize("credit_utilization_high", "credit"))
	}
}

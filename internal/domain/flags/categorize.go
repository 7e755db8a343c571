package flags

import "strings"

// categoryRule matches an anomaly against one category by keyword lookup.
// TypeKeywords are tested against the anomaly type; the field is tested
// against FieldKeywords when set, otherwise against TypeKeywords.
type categoryRule struct {
	Category      Category
	TypeKeywords  []string
	FieldKeywords []string // matched against field only
}

// rules is the classification table, evaluated in priority order. Identity
// wins over financial, financial over document quality. Keyword lists are
// configuration: extend the table, not the control flow.
var rules = []categoryRule{
	{
		Category: CategoryIdentity,
		TypeKeywords: []string{
			"name", "identity", "pan", "aadhaar", "address",
			"phone", "dob", "date_of_birth",
		},
	},
	{
		Category: CategoryFinancial,
		TypeKeywords: []string{
			"income", "salary", "credit", "utilization", "inquiry",
			"cibil", "dti", "debt", "emi", "obligation", "liquidity",
			"balance", "round_tripping", "transaction", "fraud", "hidden",
		},
		FieldKeywords: []string{
			"income", "salary", "credit", "dti", "transactions",
			"obligations", "balance",
		},
	},
	{
		Category: CategoryDocument,
		TypeKeywords: []string{
			"document", "tamper", "quality", "metadata", "employer",
			"inconsistent", "missing", "gap", "sequence_error",
		},
	},
}

// Categorize assigns exactly one category to an anomaly based on its type and
// field. Pure and total: unknown or empty input classifies as Other Flags,
// never an error.
func Categorize(anomalyType, field string) Category {
	t := strings.ToLower(anomalyType)
	f := strings.ToLower(field)

	for _, rule := range rules {
		for _, kw := range rule.TypeKeywords {
			if strings.Contains(t, kw) {
				return rule.Category
			}
		}
		// Document-quality keywords apply to the type only.
		if rule.Category == CategoryDocument {
			continue
		}
		keywords := rule.FieldKeywords
		if keywords == nil {
			keywords = rule.TypeKeywords
		}
		for _, kw := range keywords {
			if strings.Contains(f, kw) {
				return rule.Category
			}
		}
	}
	return CategoryOther
}

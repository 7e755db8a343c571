package flags

import "github.com/credastra/riskreview/internal/domain/risk"

// Category enum: subject-matter grouping of flags shown to reviewers
type Category string

const (
	CategoryIdentity  Category = "Identity Flags"
	CategoryFinancial Category = "Financial Behaviour Flags"
	CategoryDocument  Category = "Document Flags"
	CategoryOther     Category = "Other Flags"
)

// Categories in display order.
var Categories = []Category{CategoryIdentity, CategoryFinancial, CategoryDocument, CategoryOther}

// Item is the presentation-ready wrapper around one anomaly: the raw record
// plus its document context, category and display title. Never mutated after
// construction.
type Item struct {
	Type         string        `json:"type"`
	Field        string        `json:"field,omitempty"`
	Value        string        `json:"value,omitempty"`
	Reason       string        `json:"reason,omitempty"`
	Severity     risk.Severity `json:"severity"`
	DocumentID   string        `json:"document_id"`
	DocumentType string        `json:"document_type,omitempty"`
	Category     Category      `json:"category"`
	Title        string        `json:"title"`
}

// Report holds the same deduplicated flag set partitioned two ways, so the
// category view and the severity view always show identical items.
type Report struct {
	ByCategory map[Category][]Item      `json:"by_category"`
	BySeverity map[risk.Severity][]Item `json:"by_severity"`
	Total      int                      `json:"total"`
}

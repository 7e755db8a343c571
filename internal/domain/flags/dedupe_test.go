package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/credastra/riskreview/internal/domain/risk"
)

func item(typ, field, value, docID string) Item {
	return Item{Type: typ, Field: field, Value: value, DocumentID: docID, Severity: risk.SeverityHigh}
}

func TestDedupeDropsLaterDuplicates(t *testing.T) {
	in := []Item{
		item("name_mismatch", "name", "X vs Y", "doc-1"),
		item("name_mismatch", "name", "X vs Y", "doc-1"),
		item("salary_mismatch", "salary", "50000 vs 60000", "doc-1"),
	}
	out := Dedupe(in)
	assert.Len(t, out, 2)
	assert.Equal(t, "name_mismatch", out[0].Type)
	assert.Equal(t, "salary_mismatch", out[1].Type)
}

func TestDedupePreservesFirstSeenOrder(t *testing.T) {
	in := []Item{
		item("c", "", "", "d"),
		item("a", "", "", "d"),
		item("b", "", "", "d"),
		item("a", "", "", "d"),
	}
	out := Dedupe(in)
	assert.Equal(t, []string{"c", "a", "b"}, []string{out[0].Type, out[1].Type, out[2].Type})
}

func TestDedupeIsIdempotent(t *testing.T) {
	in := []Item{
		item("name_mismatch", "name", "X vs Y", "doc-1"),
		item("name_mismatch", "name", "X vs Y", "doc-1"),
		item("name_mismatch", "name", "X vs Y", "doc-2"),
	}
	once := Dedupe(in)
	twice := Dedupe(once)
	assert.Equal(t, once, twice)
}

// The same anomaly tuple in two different documents is meaningful repetition,
// not a duplicate.
func TestDedupeKeepsCrossDocumentRepeats(t *testing.T) {
	in := []Item{
		item("name_mismatch", "name", "X vs Y", "doc-1"),
		item("name_mismatch", "name", "X vs Y", "doc-2"),
	}
	out := Dedupe(in)
	assert.Len(t, out, 2)
}

func TestDedupeKeyIsCaseInsensitive(t *testing.T) {
	in := []Item{
		item("Name_Mismatch", "Name", "X vs Y", "DOC-1"),
		item("name_mismatch", "name", "x vs y", "doc-1"),
	}
	out := Dedupe(in)
	assert.Len(t, out, 1)
}

func TestDedupeEmptyInput(t *testing.T) {
	assert.Empty(t, Dedupe(nil))
	assert.Empty(t, Dedupe([]Item{}))
}

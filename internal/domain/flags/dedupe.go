package flags

import "strings"

// keySep joins dedup key parts. The unit separator cannot occur in the
// textual fields the backend emits, so joined keys never collide across
// part boundaries.
const keySep = "\x1f"

// Key returns the case-insensitive identity of a flag item. Two anomalies
// with the same type, field and value but different documents are distinct:
// cross-document repetition is meaningful and must survive deduplication.
func (i Item) Key() string {
	return strings.ToLower(strings.Join(
		[]string{i.Type, i.Field, i.Value, i.DocumentID}, keySep))
}

// Dedupe suppresses later items whose key matches an earlier one, preserving
// first-seen order. Idempotent: running it again yields the same list.
func Dedupe(items []Item) []Item {
	seen := make(map[string]struct{}, len(items))
	out := make([]Item, 0, len(items))
	for _, it := range items {
		k := it.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, it)
	}
	return out
}

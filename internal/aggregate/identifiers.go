package aggregate

import (
	"math"
	"strconv"

	"numlookup/internal/validation"
)

// identifierSet is a deduplicated, insertion-ordered collection of
// Aadhaar identifiers. Insertion order drives the order of the
// secondary and tertiary result entries, which keeps the output
// deterministic.
type identifierSet struct {
	seen  map[string]bool
	order []string
}

func newIdentifierSet() *identifierSet {
	return &identifierSet{seen: make(map[string]bool)}
}

func (s *identifierSet) add(id string) {
	if s.seen[id] {
		return
	}
	s.seen[id] = true
	s.order = append(s.order, id)
}

// collectIdentifiers scans records for an "id" field whose value, in
// string form, is exactly 12 decimal digits. Non-qualifying values are
// silently ignored.
func collectIdentifiers(records []any) *identifierSet {
	ids := newIdentifierSet()
	for _, r := range records {
		record, ok := r.(map[string]any)
		if !ok {
			continue
		}
		value, ok := record["id"]
		if !ok {
			continue
		}
		if id, ok := coerceIdentifier(value); ok && validation.IsAadhaarNumber(id) {
			ids.add(id)
		}
	}
	return ids
}

// coerceIdentifier converts a string or numeric field value to its
// string form. JSON numbers arrive as float64; only integral values can
// name an identifier.
func coerceIdentifier(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return "", false
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}

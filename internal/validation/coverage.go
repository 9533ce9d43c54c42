package validation

import "github.com/jonathan/datacard-transformer/internal/types"

// computeCoverage reports, per tracked field family, how many datasheets
// carry a non-empty value. Shortfalls are informational: extraction is
// known-incomplete and the validator's job is visibility, not gatekeeping.
func computeCoverage(target, reference map[string]any, r *types.Report) {
	sheets := asList(target["datasheets"])
	total := len(sheets)

	for _, field := range coverageFields {
		present := 0
		for _, raw := range sheets {
			sheet, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			if populated(sheet[field]) {
				present++
			}
		}
		r.Coverage["datasheets."+field] = types.Ratio{Present: present, Expected: total}
	}

	for field := range knownGapFields {
		r.Coverage[field] = types.Ratio{
			Present:  len(asList(target[field])),
			Expected: len(asList(reference[field])),
			KnownGap: true,
		}
	}
}

// populated reports whether a value carries any usable content: a
// non-empty scalar, a non-empty sequence, or a map with at least one
// populated member.
func populated(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case []any:
		return len(val) > 0
	case map[string]any:
		for _, member := range val {
			if populated(member) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

package types

// Mismatch severities. Essential mismatches fail validation; info
// mismatches are reported for visibility only.
const (
	SeverityEssential = "essential"
	SeverityInfo      = "info"
)

// Mismatch kinds.
const (
	KindMissingKey    = "missing_key"
	KindUnexpectedKey = "unexpected_key"
	KindValueMismatch = "value_mismatch"
	KindCountMismatch = "count_mismatch"
	KindTypeMismatch  = "type_mismatch"
)

// Mismatch is one itemized discrepancy between a produced document and the
// reference document.
type Mismatch struct {
	Path     string `json:"path"`
	Kind     string `json:"kind"`
	Severity string `json:"severity"`
	Expected any    `json:"expected,omitempty"`
	Actual   any    `json:"actual,omitempty"`
}

// Ratio is a coverage measurement for one field family: how many expected
// occurrences are actually populated. KnownGap marks families the
// extractor intentionally leaves empty.
type Ratio struct {
	Present  int  `json:"present"`
	Expected int  `json:"expected"`
	KnownGap bool `json:"known_gap,omitempty"`
}

// Report is the diagnostic output of a validation run. It is always fully
// populated: findings are data, never control flow.
type Report struct {
	Pass       bool             `json:"pass"`
	Mismatches []Mismatch       `json:"mismatches"`
	Coverage   map[string]Ratio `json:"coverage"`
}

// EssentialCount returns the number of essential mismatches in the report.
func (r *Report) EssentialCount() int {
	n := 0
	for _, m := range r.Mismatches {
		if m.Severity == SeverityEssential {
			n++
		}
	}
	return n
}

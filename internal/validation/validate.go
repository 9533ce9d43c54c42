package validation

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/datacard-transformer/internal/types"
)

// Validate compares a produced document against a trusted reference and
// returns the diagnostic report. The report is the product: findings are
// always fully collected and returned as data, never thrown. Pass is true
// iff no essential-field mismatch occurred; coverage shortfalls alone
// never fail a run.
func Validate(target, reference map[string]any) *types.Report {
	r := &types.Report{
		Mismatches: []types.Mismatch{},
		Coverage:   map[string]types.Ratio{},
	}

	compareDocuments(target, reference, r)
	computeCoverage(target, reference, r)

	r.Pass = r.EssentialCount() == 0
	return r
}

// ValidateDocument validates an in-memory document against a reference
// tree by round-tripping it through its wire form, so the comparison sees
// exactly what a downstream consumer would.
func ValidateDocument(doc *types.Document, reference map[string]any) (*types.Report, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	var target map[string]any
	if err := json.Unmarshal(data, &target); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return Validate(target, reference), nil
}

// Package transform orchestrates the field extractors over one source
// document and assembles the target datacard document.
package transform

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/datacard-transformer/internal/extract"
	"github.com/jonathan/datacard-transformer/internal/tree"
	"github.com/jonathan/datacard-transformer/internal/types"
)

// DefaultIDNamespace seeds datasheet identifier generation when Options
// does not supply a namespace.
var DefaultIDNamespace = uuid.MustParse("a47cbd4e-0cd4-5d7b-8f93-5a2bb14bb841")

// Options configures a transformation run.
type Options struct {
	// Reference optionally supplies display fields (colours, allied
	// factions) the catalogue itself does not carry. Read-only.
	Reference map[string]any

	// IDNamespace seeds identifier generation. Identifiers are a pure
	// function of (namespace, source id, position), so a fixed namespace
	// reproduces byte-identical documents across runs.
	IDNamespace uuid.UUID

	// Classifier overrides the default ability classification table.
	Classifier *extract.Classifier
}

// Transform converts a namespace-normalized source tree into a target
// document. On any extraction error the draft is discarded and no partial
// document is returned.
func Transform(source map[string]any, opts Options) (*types.Document, error) {
	root, err := catalogueRoot(source)
	if err != nil {
		return nil, err
	}

	classifier := opts.Classifier
	if classifier == nil {
		classifier = extract.DefaultClassifier()
	}
	namespace := opts.IDNamespace
	if namespace == uuid.Nil {
		namespace = DefaultIDNamespace
	}

	draft := types.NewDocument()
	extract.Faction(root, draft)

	sheets, err := extract.Datasheets(root, classifier, func(sourceID string, position int) string {
		return uuid.NewSHA1(namespace, fmt.Appendf(nil, "%s#%d", sourceID, position)).String()
	})
	if err != nil {
		return nil, err
	}
	for i := range sheets {
		sheets[i].Factions = []string{draft.Name}
		sheets[i].FactionID = draft.ID
	}
	draft.Datasheets = sheets
	draft.Rules = extract.Rules(root)

	if opts.Reference != nil {
		extract.ApplyReference(draft, opts.Reference)
	}

	normalize(draft)
	return draft, nil
}

// normalize applies cross-cutting cleanup to the assembled draft:
// deduplication of name lists while preserving first-seen order.
func normalize(doc *types.Document) {
	for i := range doc.Datasheets {
		sheet := &doc.Datasheets[i]
		sheet.Abilities.Core = dedupe(sheet.Abilities.Core)
		sheet.Abilities.Faction = dedupe(sheet.Abilities.Faction)
		sheet.Keywords = dedupe(sheet.Keywords)
	}
}

func dedupe(values []string) []string {
	out := values[:0]
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// catalogueRoot locates the catalogue node: the source tree itself when it
// already is one, otherwise the first descendant keyed "catalogue" or
// "gameSystem".
func catalogueRoot(source map[string]any) (map[string]any, error) {
	if isCatalogue(source) {
		return source, nil
	}
	for _, key := range []string{"catalogue", "gameSystem"} {
		if m, ok := tree.Find(source, key).(map[string]any); ok && isCatalogue(m) {
			return m, nil
		}
	}
	return nil, &MissingCatalogueRootError{}
}

func isCatalogue(m map[string]any) bool {
	if tree.Text(m["name"], "") == "" {
		return false
	}
	for _, key := range []string{"sharedSelectionEntries", "selectionEntries", "battleScribeVersion", "gameSystemId"} {
		if _, ok := m[key]; ok {
			return true
		}
	}
	return false
}

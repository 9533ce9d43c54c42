package extract

import (
	"strings"

	"github.com/jonathan/datacard-transformer/internal/tree"
	"github.com/jonathan/datacard-transformer/internal/types"
)

// IDFunc generates a stable datasheet identifier from the source entry id
// and the entry's position in the run. Implementations must be pure so
// repeated runs over the same document produce identical output.
type IDFunc func(sourceID string, position int) string

// entryContainerKeys are the catalogue-root containers whose immediate
// selection entries are datasheet candidates. Entries nested deeper (a
// unit's weapons and options) belong to their unit's scope and are only
// reachable through the weapon extractor.
var entryContainerKeys = []string{"sharedSelectionEntries", "selectionEntries"}

// Datasheets extracts one datasheet per playable selection entry under the
// catalogue root. Entries whose type is not in the playable set are
// skipped. Faction fields are left for the engine to fill from the
// faction record.
func Datasheets(root map[string]any, c *Classifier, id IDFunc) ([]types.Datasheet, error) {
	sheets := []types.Datasheet{}
	position := 0

	for _, key := range entryContainerKeys {
		container, ok := root[key]
		if !ok {
			continue
		}
		for _, rawContainer := range tree.AsSeq(container) {
			cm, ok := rawContainer.(map[string]any)
			if !ok {
				return nil, &tree.InvalidShapeError{Path: key, Value: rawContainer}
			}
			for _, raw := range tree.AsSeq(cm["selectionEntry"]) {
				entry, ok := raw.(map[string]any)
				if !ok {
					return nil, &tree.InvalidShapeError{Path: key + ".selectionEntry", Value: raw}
				}
				cardType, playable := playableTypes[strings.ToLower(tree.Text(entry["type"], ""))]
				if !playable {
					continue
				}
				position++
				sheets = append(sheets, datasheet(entry, c, cardType, id(tree.Text(entry["id"], ""), position)))
			}
		}
	}

	return sheets, nil
}

func datasheet(entry map[string]any, c *Classifier, cardType, id string) types.Datasheet {
	name := tree.Text(entry["name"], "")
	return types.Datasheet{
		ID:          id,
		SourceID:    tree.Text(entry["id"], ""),
		Name:        name,
		CardType:    cardType,
		Factions:    []string{},
		Source:      "40k-10e",
		Abilities:   Abilities(entry, c),
		Stats:       Stats(entry),
		Ranged:      Weapons(entry, kindRanged),
		Melee:       Weapons(entry, kindMelee),
		Keywords:    Keywords(entry),
		Points:      Points(entry),
		Composition: []string{"1 " + name},
	}
}

// children returns the immediate plural children of a singular-keyed
// container, e.g. children(entry, "profiles", "profile"). Arity of both
// levels is normalized through AsSeq.
func children(node map[string]any, container, key string) []any {
	var out []any
	for _, c := range tree.AsSeq(node[container]) {
		m, ok := c.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, tree.AsSeq(m[key])...)
	}
	return out
}

// profiles returns the entry's profiles of the given kind.
func profiles(entry map[string]any, kind string) []map[string]any {
	var out []map[string]any
	for _, raw := range children(entry, "profiles", "profile") {
		p, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if profileKind(p) == kind {
			out = append(out, p)
		}
	}
	return out
}

// characteristic returns the named characteristic value of a profile.
func characteristic(profile map[string]any, name string) string {
	for _, raw := range children(profile, "characteristics", "characteristic") {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if strings.EqualFold(tree.Text(m["name"], ""), name) {
			return tree.Text(m, "")
		}
	}
	return ""
}

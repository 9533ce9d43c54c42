// Package extract pulls target-document fragments out of the generic
// source tree: faction header, datasheets, abilities, stats, weapons,
// keywords, points and rules.
package extract

import (
	"strings"

	"github.com/jonathan/datacard-transformer/internal/tree"
)

// Ability bucket tags.
const (
	BucketCore    = "core"
	BucketFaction = "faction"
	BucketOther   = "other"
)

// defaultCoreMarkers are the shared game-system rules treated as core
// abilities. The set matches the 10th edition shared rule list and can be
// replaced with markers loaded from a converted game-system document.
// A trailing "-" marks a prefix match ("Anti-" covers "Anti-VEHICLE 4+").
var defaultCoreMarkers = []string{
	"Core",
	"Leader", "Pistol", "Hazardous", "Devastating Wounds", "Assault",
	"Extra Attacks", "Twin-linked", "Anti-", "Sustained Hits", "Heavy",
	"Melta", "Feel No Pain", "Blast", "Precision", "Indirect Fire",
	"Lance", "Lethal Hits", "Ignores Cover", "Rapid Fire", "Torrent",
	"Scouts", "Infiltrators", "Deep Strike", "Deadly Demise", "Stealth",
	"Super-Heavy Walker", "Lone Operative", "Hover", "Fights First",
	"Psychic", "Firing Deck", "One Shot",
}

// defaultFactionMarkers are the category keywords and ability names that
// belong to the faction bucket.
var defaultFactionMarkers = []string{
	"Faction",
	"Oath of Moment",
}

// playableTypes are the selection-entry types that yield a datasheet,
// mapped to the card type they produce. Entries of any other type are
// skipped, not erred.
var playableTypes = map[string]string{
	"model": "DataCard",
	"unit":  "DataCard",
}

// Profile kinds recognized by the extractors.
const (
	kindAbility = "ability"
	kindUnit    = "unit"
	kindRanged  = "ranged"
	kindMelee   = "melee"
)

// profileKinds maps catalogue profile type identifiers and type names to
// the extractor's profile kinds.
var profileKinds = map[string]string{
	"9cc3-6d83-4dd3-9b64": kindAbility,
	"c547-1836-d8a-ff4f":  kindUnit,
	"f77d-b953-8fa4-b762": kindRanged,
	"8a40-4aaa-c780-9046": kindMelee,
	"abilities":           kindAbility,
	"unit":                kindUnit,
	"ranged weapons":      kindRanged,
	"melee weapons":       kindMelee,
}

func profileKind(profile map[string]any) string {
	if k, ok := profileKinds[strings.ToLower(tree.Text(profile["typeId"], ""))]; ok {
		return k
	}
	return profileKinds[strings.ToLower(tree.Text(profile["typeName"], ""))]
}

// Classifier assigns abilities to the core, faction or other bucket from
// their declared category keyword, falling back to the ability name.
// Matching is case-insensitive; the marker tables are the single place the
// classification rule lives.
type Classifier struct {
	core     map[string]bool
	faction  map[string]bool
	prefixes []string
}

// NewClassifier builds a classifier from explicit marker lists.
func NewClassifier(coreMarkers, factionMarkers []string) *Classifier {
	c := &Classifier{
		core:    make(map[string]bool, len(coreMarkers)),
		faction: make(map[string]bool, len(factionMarkers)),
	}
	for _, m := range coreMarkers {
		lower := strings.ToLower(m)
		if strings.HasSuffix(lower, "-") {
			c.prefixes = append(c.prefixes, lower)
			continue
		}
		c.core[lower] = true
	}
	for _, m := range factionMarkers {
		c.faction[strings.ToLower(m)] = true
	}
	return c
}

// DefaultClassifier returns a classifier over the built-in marker tables.
func DefaultClassifier() *Classifier {
	return NewClassifier(defaultCoreMarkers, defaultFactionMarkers)
}

// Bucket classifies one ability. The declared category wins when present;
// otherwise the ability name is matched against the marker tables.
// Anything matching neither table is BucketOther.
func (c *Classifier) Bucket(category, name string) string {
	for _, key := range []string{category, name} {
		if key == "" {
			continue
		}
		lower := strings.ToLower(key)
		if c.core[lower] {
			return BucketCore
		}
		if c.faction[lower] {
			return BucketFaction
		}
		for _, prefix := range c.prefixes {
			if strings.HasPrefix(lower, prefix) {
				return BucketCore
			}
		}
	}
	return BucketOther
}

// LoadCoreMarkers reads shared rule names from a converted game-system
// document. Returns the built-in defaults when the document carries none.
func LoadCoreMarkers(gameSystem map[string]any) []string {
	var markers []string
	for _, container := range tree.Collect(gameSystem, "sharedRules") {
		m, ok := container.(map[string]any)
		if !ok {
			continue
		}
		for _, raw := range tree.AsSeq(m["rule"]) {
			rm, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			if name := tree.Text(rm["name"], ""); name != "" {
				markers = append(markers, name)
			}
		}
	}
	if len(markers) == 0 {
		return defaultCoreMarkers
	}
	// "Core" itself is a category keyword, not a shared rule name.
	return append([]string{"Core"}, markers...)
}

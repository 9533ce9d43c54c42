// Package types provides type definitions for the datacard documents
// produced and validated by the transformer.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// Colours holds the faction display colours used by the card renderer.
type Colours struct {
	Banner string `json:"banner"`
	Header string `json:"header"`
}

// Document is the complete transformation output: the faction header plus
// datasheets, enhancements and rules. It serializes directly to the wire
// format downstream consumers depend on.
type Document struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	IsSubfaction          bool     `json:"is_subfaction"`
	ParentID              string   `json:"parent_id,omitempty" validate:"required_if=IsSubfaction true,excluded_if=IsSubfaction false"`
	ParentKeyword         string   `json:"parent_keyword,omitempty" validate:"required_if=IsSubfaction true,excluded_if=IsSubfaction false"`
	Link                  string   `json:"link,omitempty"`
	CompatibleDataVersion int      `json:"compatibleDataVersion,omitempty"`
	Colours               *Colours `json:"colours,omitempty"`
	AlliedFactions        []string `json:"allied_factions,omitempty"`

	Datasheets   []Datasheet   `json:"datasheets"`
	Enhancements []Enhancement `json:"enhancements"`
	Rules        RuleSet       `json:"rules"`
}

// NewDocument returns a Document whose collection fields serialize as
// empty arrays rather than null.
func NewDocument() *Document {
	return &Document{
		Datasheets:   []Datasheet{},
		Enhancements: []Enhancement{},
		Rules:        RuleSet{},
	}
}

// Validate checks the structural invariants of the document, in particular
// that parent references are present exactly when the faction is a
// subfaction.
func (d *Document) Validate() error {
	validate := validator.New()
	return validate.Struct(d)
}

// Datasheet is the target-schema representation of one playable unit.
type Datasheet struct {
	ID          string       `json:"id"`
	SourceID    string       `json:"source_id,omitempty"`
	Name        string       `json:"name"`
	CardType    string       `json:"cardType"`
	Factions    []string     `json:"factions"`
	FactionID   string       `json:"faction_id"`
	Source      string       `json:"source"`
	Abilities   Abilities    `json:"abilities"`
	Stats       []StatLine   `json:"stats"`
	Ranged      []Weapon     `json:"rangedWeapons"`
	Melee       []Weapon     `json:"meleeWeapons"`
	Keywords    []string     `json:"keywords"`
	Points      []PointsEntry `json:"points"`
	Composition []string     `json:"composition"`
}

// Abilities groups a unit's abilities into the three target buckets. Core
// and faction abilities are bare names; everything else keeps its
// description so consumers retain the rule text.
type Abilities struct {
	Core    []string  `json:"core"`
	Faction []string  `json:"faction"`
	Other   []Ability `json:"other"`
}

// NewAbilities returns an Abilities value whose buckets serialize as empty
// arrays rather than null.
func NewAbilities() Abilities {
	return Abilities{Core: []string{}, Faction: []string{}, Other: []Ability{}}
}

// Ability is a structured ability record kept in the "other" bucket.
type Ability struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	ShowAbility     bool   `json:"showAbility"`
	ShowDescription bool   `json:"showDescription"`
}

// StatLine is one row of a unit's characteristic profile.
type StatLine struct {
	Active            bool   `json:"active"`
	Name              string `json:"name"`
	ShowName          bool   `json:"showName"`
	ShowDamagedMarker bool   `json:"showDamagedMarker"`
	M                 string `json:"m,omitempty"`
	T                 string `json:"t,omitempty"`
	Sv                string `json:"sv,omitempty"`
	W                 string `json:"w,omitempty"`
	Ld                string `json:"ld,omitempty"`
	OC                string `json:"oc,omitempty"`
}

// Weapon groups the profiles of one weapon. Ranged and melee weapons are
// kept in separate ordered sequences on the datasheet.
type Weapon struct {
	Active   bool            `json:"active"`
	Profiles []WeaponProfile `json:"profiles"`
}

// WeaponProfile is one statline of a weapon.
type WeaponProfile struct {
	Active   bool     `json:"active"`
	Name     string   `json:"name"`
	Range    string   `json:"range,omitempty"`
	Attacks  string   `json:"attacks,omitempty"`
	Skill    string   `json:"skill,omitempty"`
	Strength string   `json:"strength,omitempty"`
	AP       string   `json:"ap,omitempty"`
	Damage   string   `json:"damage,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// PointsEntry is one named cost line of a datasheet.
type PointsEntry struct {
	Name  string `json:"name"`
	Model string `json:"model"`
	Cost  string `json:"cost"`
}

// RuleSet maps a scope ("army") to its rule blocks.
type RuleSet map[string][]RuleGroup

// RuleGroup is one named rule block.
type RuleGroup struct {
	Name string      `json:"name"`
	Rule []RuleEntry `json:"rule"`
}

// RuleEntry is one ordered paragraph of a rule block. Order preserves the
// source sequence; Type distinguishes prose from structured text.
type RuleEntry struct {
	Order int    `json:"order"`
	Text  string `json:"text"`
	Type  string `json:"type"`
}

// Enhancement is part of the wire contract. Extraction is a documented
// known gap: the engine always emits an empty enhancements list.
type Enhancement struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Cost        string   `json:"cost"`
	Keywords    []string `json:"keywords"`
	Excludes    []string `json:"excludes"`
	Description string   `json:"description"`
	FactionID   string   `json:"faction_id"`
	Source      string   `json:"source"`
	CardType    string   `json:"cardType"`
	Detachment  string   `json:"detachment,omitempty"`
}

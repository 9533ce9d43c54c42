package extract

import (
	"github.com/jonathan/datacard-transformer/internal/tree"
	"github.com/jonathan/datacard-transformer/internal/types"
)

// Abilities extracts the ability buckets for one selection entry. Every
// ability present on the entry lands in exactly one bucket: core and
// faction abilities are recorded by name, anything else is kept as a
// structured record so consumers retain the description text.
func Abilities(entry map[string]any, c *Classifier) types.Abilities {
	out := types.NewAbilities()

	// Shared-rule references arrive as info links. "append" modifiers
	// extend the displayed name ("Deadly Demise" + " D3").
	for _, raw := range children(entry, "infoLinks", "infoLink") {
		link, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		name := tree.Text(link["name"], "") + nameModifiers(link)
		if name == "" {
			continue
		}
		add(&out, c, tree.Text(link["category"], ""), name, "", false)
	}

	// Ability profiles carry the rule text in their Description
	// characteristic.
	for _, p := range profiles(entry, kindAbility) {
		name := tree.Text(p["name"], "")
		if name == "" {
			continue
		}
		add(&out, c, tree.Text(p["category"], ""), name, characteristic(p, "Description"), true)
	}

	return out
}

func add(out *types.Abilities, c *Classifier, category, name, description string, showDescription bool) {
	switch c.Bucket(category, name) {
	case BucketCore:
		out.Core = append(out.Core, name)
	case BucketFaction:
		out.Faction = append(out.Faction, name)
	default:
		out.Other = append(out.Other, types.Ability{
			Name:            name,
			Description:     description,
			ShowAbility:     true,
			ShowDescription: showDescription && description != "",
		})
	}
}

// nameModifiers concatenates the "append to name" modifiers of an info
// link, in source order.
func nameModifiers(link map[string]any) string {
	suffix := ""
	for _, raw := range children(link, "modifiers", "modifier") {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if tree.Text(m["type"], "") == "append" && tree.Text(m["field"], "") == "name" {
			suffix += tree.Text(m["value"], "")
		}
	}
	return suffix
}

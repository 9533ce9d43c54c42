package extract

import (
	"strings"

	"github.com/jonathan/datacard-transformer/internal/tree"
	"github.com/jonathan/datacard-transformer/internal/types"
)

// Weapons extracts the weapon profiles of the given kind for one unit,
// grouped by weapon name in first-seen order. Weapon entries live in the
// unit's own profiles and in its immediate nested selection entries.
func Weapons(entry map[string]any, kind string) []types.Weapon {
	weapons := []types.Weapon{}
	index := map[string]int{}

	capture := func(owner map[string]any) {
		for _, p := range profiles(owner, kind) {
			name := tree.Text(p["name"], "")
			if name == "" {
				continue
			}
			idx, ok := index[name]
			if !ok {
				weapons = append(weapons, types.Weapon{Active: true})
				idx = len(weapons) - 1
				index[name] = idx
			}
			weapons[idx].Profiles = append(weapons[idx].Profiles, weaponProfile(p, name))
		}
	}

	capture(entry)
	for _, raw := range children(entry, "selectionEntries", "selectionEntry") {
		if nested, ok := raw.(map[string]any); ok {
			capture(nested)
		}
	}

	return weapons
}

func weaponProfile(p map[string]any, name string) types.WeaponProfile {
	skill := characteristic(p, "BS")
	if skill == "" {
		skill = characteristic(p, "WS")
	}
	profile := types.WeaponProfile{
		Active:   true,
		Name:     name,
		Range:    characteristic(p, "Range"),
		Attacks:  characteristic(p, "A"),
		Skill:    skill,
		Strength: characteristic(p, "S"),
		AP:       characteristic(p, "AP"),
		Damage:   characteristic(p, "D"),
	}
	if raw := characteristic(p, "Keywords"); raw != "" && !strings.EqualFold(raw, "-") {
		for _, kw := range strings.Split(raw, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				profile.Keywords = append(profile.Keywords, kw)
			}
		}
	}
	return profile
}

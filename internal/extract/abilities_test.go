package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/datacard-transformer/internal/types"
)

func abilityProfile(name, category, description string) map[string]any {
	p := map[string]any{
		"name":     name,
		"typeName": "Abilities",
	}
	if category != "" {
		p["category"] = category
	}
	if description != "" {
		p["characteristics"] = map[string]any{
			"characteristic": map[string]any{"name": "Description", "_text": description},
		}
	}
	return p
}

func TestAbilities_Buckets(t *testing.T) {
	entry := map[string]any{
		"infoLinks": map[string]any{
			"infoLink": []any{
				map[string]any{"name": "Leader"},
				map[string]any{"name": "Oath of Moment"},
			},
		},
		"profiles": map[string]any{
			"profile": []any{
				abilityProfile("Scouts 9\"", "Core", ""),
				abilityProfile("Rites of Battle", "Special Rule", "Once per battle, re-roll one test."),
			},
		},
	}

	got := Abilities(entry, DefaultClassifier())

	assert.Equal(t, []string{"Leader", "Scouts 9\""}, got.Core)
	assert.Equal(t, []string{"Oath of Moment"}, got.Faction)
	assert.Equal(t, []types.Ability{{
		Name:            "Rites of Battle",
		Description:     "Once per battle, re-roll one test.",
		ShowAbility:     true,
		ShowDescription: true,
	}}, got.Other)
}

func TestAbilities_EveryAbilityLandsInOneBucket(t *testing.T) {
	entry := map[string]any{
		"infoLinks": map[string]any{
			"infoLink": []any{
				map[string]any{"name": "Deep Strike"},
				map[string]any{"name": "Grim Resolve", "category": "Faction"},
				map[string]any{"name": "Unforgiven Focus"},
			},
		},
	}

	got := Abilities(entry, DefaultClassifier())
	total := len(got.Core) + len(got.Faction) + len(got.Other)
	assert.Equal(t, 3, total)
}

func TestAbilities_AppendModifierExtendsName(t *testing.T) {
	entry := map[string]any{
		"infoLinks": map[string]any{
			"infoLink": map[string]any{
				"name": "Deadly Demise",
				"modifiers": map[string]any{
					"modifier": map[string]any{"type": "append", "field": "name", "value": " D3"},
				},
			},
		},
	}

	got := Abilities(entry, DefaultClassifier())
	assert.Equal(t, []string{"Deadly Demise D3"}, got.Core)
}

func TestAbilities_NonAppendModifierIgnored(t *testing.T) {
	entry := map[string]any{
		"infoLinks": map[string]any{
			"infoLink": map[string]any{
				"name": "Leader",
				"modifiers": map[string]any{
					"modifier": map[string]any{"type": "set", "field": "hidden", "value": "true"},
				},
			},
		},
	}

	got := Abilities(entry, DefaultClassifier())
	assert.Equal(t, []string{"Leader"}, got.Core)
}

func TestAbilities_LinkWithoutDescriptionHidesIt(t *testing.T) {
	entry := map[string]any{
		"infoLinks": map[string]any{
			"infoLink": map[string]any{"name": "Inner Circle"},
		},
	}

	got := Abilities(entry, DefaultClassifier())
	assert.Equal(t, []types.Ability{{
		Name:            "Inner Circle",
		ShowAbility:     true,
		ShowDescription: false,
	}}, got.Other)
}

func TestAbilities_EmptyEntry(t *testing.T) {
	got := Abilities(map[string]any{"name": "Azrael"}, DefaultClassifier())

	assert.Equal(t, []string{}, got.Core)
	assert.Equal(t, []string{}, got.Faction)
	assert.Equal(t, []types.Ability{}, got.Other)
}

package transform

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSource() map[string]any {
	return map[string]any{
		"catalogue": map[string]any{
			"id":       "cat-da",
			"name":     "Dark Angels",
			"revision": "12",
			"battleScribeVersion": "2.03",
			"sharedSelectionEntries": map[string]any{
				"selectionEntry": []any{
					map[string]any{
						"id":   "src-azrael",
						"name": "Azrael",
						"type": "model",
						"costs": map[string]any{
							"cost": map[string]any{"name": "pts", "value": "115"},
						},
						"infoLinks": map[string]any{
							"infoLink": []any{
								map[string]any{"name": "Leader"},
								map[string]any{"name": "Leader"},
							},
						},
					},
					map[string]any{
						"id":   "src-lion",
						"name": "Lion El'Jonson",
						"type": "model",
					},
				},
			},
			"rules": map[string]any{
				"rule": map[string]any{
					"name":        "Grim Resolve",
					"description": "Never take Battle-shock tests.",
				},
			},
		},
	}
}

func TestTransform(t *testing.T) {
	doc, err := Transform(sampleSource(), Options{})
	require.NoError(t, err)

	assert.Equal(t, "cat-da", doc.ID)
	assert.Equal(t, "Dark Angels", doc.Name)
	assert.Equal(t, 12, doc.CompatibleDataVersion)
	assert.False(t, doc.IsSubfaction)

	require.Len(t, doc.Datasheets, 2)
	assert.Equal(t, "Azrael", doc.Datasheets[0].Name)
	assert.Equal(t, "Lion El'Jonson", doc.Datasheets[1].Name)

	assert.NotNil(t, doc.Enhancements)
	assert.Empty(t, doc.Enhancements)

	require.Contains(t, doc.Rules, "army")
	assert.Equal(t, "Grim Resolve", doc.Rules["army"][0].Name)

	require.NoError(t, doc.Validate())
}

func TestTransform_FactionFieldsPropagate(t *testing.T) {
	doc, err := Transform(sampleSource(), Options{})
	require.NoError(t, err)

	for _, sheet := range doc.Datasheets {
		assert.Equal(t, "cat-da", sheet.FactionID)
		assert.Equal(t, []string{"Dark Angels"}, sheet.Factions)
	}
}

func TestTransform_Reproducible(t *testing.T) {
	first, err := Transform(sampleSource(), Options{})
	require.NoError(t, err)
	second, err := Transform(sampleSource(), Options{})
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, string(firstJSON), string(secondJSON),
		"repeated runs over the same source must be byte-identical")
}

func TestTransform_IDsDependOnNamespace(t *testing.T) {
	defaultNS, err := Transform(sampleSource(), Options{})
	require.NoError(t, err)
	customNS, err := Transform(sampleSource(), Options{
		IDNamespace: uuid.MustParse("11111111-2222-3333-4444-555555555555"),
	})
	require.NoError(t, err)

	assert.NotEqual(t, defaultNS.Datasheets[0].ID, customNS.Datasheets[0].ID)
	assert.Equal(t, defaultNS.Datasheets[0].SourceID, customNS.Datasheets[0].SourceID)
}

func TestTransform_DuplicateAbilityNamesDeduplicated(t *testing.T) {
	doc, err := Transform(sampleSource(), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Leader"}, doc.Datasheets[0].Abilities.Core)
}

func TestTransform_ReferenceApplied(t *testing.T) {
	doc, err := Transform(sampleSource(), Options{
		Reference: map[string]any{
			"colours": map[string]any{"banner": "#013B2E", "header": "#0A4736"},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, doc.Colours)
	assert.Equal(t, "#013B2E", doc.Colours.Banner)
}

func TestTransform_MissingCatalogueRoot(t *testing.T) {
	tests := []struct {
		name   string
		source map[string]any
	}{
		{"empty document", map[string]any{}},
		{"unrelated structure", map[string]any{"roster": map[string]any{"title": "nope"}}},
		{"named node without catalogue markers", map[string]any{
			"catalogue": map[string]any{"name": "Orphan"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Transform(tt.source, Options{})
			require.Error(t, err)
			assert.Nil(t, doc, "no partial document on failure")
			var rootErr *MissingCatalogueRootError
			assert.ErrorAs(t, err, &rootErr)
		})
	}
}

func TestTransform_RootAlreadyCatalogue(t *testing.T) {
	source := sampleSource()["catalogue"].(map[string]any)

	doc, err := Transform(source, Options{})
	require.NoError(t, err)
	assert.Equal(t, "Dark Angels", doc.Name)
	assert.Len(t, doc.Datasheets, 2)
}

func TestTransform_InvalidEntryShapeFails(t *testing.T) {
	source := map[string]any{
		"catalogue": map[string]any{
			"id":                     "c",
			"name":                   "Broken",
			"sharedSelectionEntries": "not a container",
		},
	}

	doc, err := Transform(source, Options{})
	require.Error(t, err)
	assert.Nil(t, doc)
}

func TestTransform_SubfactionDocumentValidates(t *testing.T) {
	source := sampleSource()
	cat := source["catalogue"].(map[string]any)
	cat["catalogueLinks"] = map[string]any{
		"catalogueLink": map[string]any{
			"targetId": "cat-sm",
			"name":     "Adeptus Astartes",
			"type":     "catalogue",
		},
	}

	doc, err := Transform(source, Options{})
	require.NoError(t, err)
	assert.True(t, doc.IsSubfaction)
	assert.Equal(t, "cat-sm", doc.ParentID)
	assert.Equal(t, "Adeptus Astartes", doc.ParentKeyword)
	require.NoError(t, doc.Validate())
}

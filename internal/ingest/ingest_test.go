package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalogue = `<?xml version="1.0" encoding="UTF-8"?>
<catalogue id="abc-123" name="Dark Angels" revision="12" xmlns="http://www.battlescribe.net/schema/catalogueSchema">
  <sharedSelectionEntries>
    <selectionEntry id="e1" name="Azrael" type="model"/>
    <selectionEntry id="e2" name="Intercessor Squad" type="unit"/>
  </sharedSelectionEntries>
  <rules>
    <rule id="r1" name="Oath of Moment">
      <description>Select one enemy unit.</description>
    </rule>
  </rules>
</catalogue>`

func TestParse(t *testing.T) {
	parsed, err := Parse(strings.NewReader(sampleCatalogue))
	require.NoError(t, err)

	assert.Equal(t, "abc-123", parsed["id"])
	assert.Equal(t, "Dark Angels", parsed["name"])

	shared, ok := parsed["sharedSelectionEntries"].(map[string]any)
	require.True(t, ok, "container element should be a map")

	entries, ok := shared["selectionEntry"].([]any)
	require.True(t, ok, "repeated elements should be promoted to a list")
	assert.Len(t, entries, 2)

	first, ok := entries[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Azrael", first["name"])
}

func TestParse_SingleChildStaysMap(t *testing.T) {
	parsed, err := Parse(strings.NewReader(sampleCatalogue))
	require.NoError(t, err)

	rules, ok := parsed["rules"].(map[string]any)
	require.True(t, ok)

	rule, ok := rules["rule"].(map[string]any)
	require.True(t, ok, "a single occurrence is not wrapped in a list")
	assert.Equal(t, "Oath of Moment", rule["name"])
}

func TestParse_BareTextCollapse(t *testing.T) {
	parsed, err := Parse(strings.NewReader(sampleCatalogue))
	require.NoError(t, err)

	rule := parsed["rules"].(map[string]any)["rule"].(map[string]any)
	assert.Equal(t, "Select one enemy unit.", rule["description"],
		"element with neither attributes nor children collapses to its text")
}

func TestParse_TextWithAttributes(t *testing.T) {
	parsed, err := Parse(strings.NewReader(`<root><item order="1">body text</item></root>`))
	require.NoError(t, err)

	item, ok := parsed["item"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1", item["order"])
	assert.Equal(t, "body text", item["_text"])
}

func TestParse_NamespacePrefixesDropped(t *testing.T) {
	src := `<ns:catalogue xmlns:ns="http://example.com/a" ns:id="x1"><ns:rules/></ns:catalogue>`
	parsed, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "x1", parsed["id"])
	assert.Contains(t, parsed, "rules")
	assert.NotContains(t, parsed, "ns:rules")
}

func TestParse_ByteOrderMark(t *testing.T) {
	src := "\xef\xbb\xbf" + `<catalogue id="bom"/>`
	parsed, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "bom", parsed["id"])
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse(strings.NewReader(`<catalogue><unclosed>`))
	assert.Error(t, err)
}

func TestConvertDir(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "faction.cat"), []byte(sampleCatalogue), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "system.gst"), []byte(`<gameSystem id="gs"/>`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "notes.txt"), []byte("skip me"), 0o644))

	written, err := ConvertDir(context.Background(), srcDir, outDir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(outDir, "faction.json"),
		filepath.Join(outDir, "system.json"),
	}, written)

	parsed, err := ReadJSON(written[0])
	require.NoError(t, err)
	assert.Equal(t, "Dark Angels", parsed["name"])
}

func TestConvertDir_BadFileFails(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "broken.cat"), []byte(`<oops>`), 0o644))

	_, err := ConvertDir(context.Background(), srcDir, outDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.cat")
}

func TestWriteReadJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	doc := map[string]any{"name": "Ravenwing", "revision": "3"}

	require.NoError(t, WriteJSON(path, doc))

	got, err := ReadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

package extract

import (
	"strconv"

	"github.com/jonathan/datacard-transformer/internal/tree"
	"github.com/jonathan/datacard-transformer/internal/types"
)

// Faction fills the faction header fields of doc from the catalogue root.
// is_subfaction is derived from the presence of a parent catalogue link,
// not from an explicit flag.
func Faction(root map[string]any, doc *types.Document) {
	doc.ID = tree.Text(root["id"], "")
	doc.Name = tree.Text(root["name"], "")
	doc.Link = "https://game-datacards.eu"
	if rev, err := strconv.Atoi(tree.Text(root["revision"], "")); err == nil {
		doc.CompatibleDataVersion = rev
	}

	if parent := parentCatalogueLink(root); parent != nil {
		doc.IsSubfaction = true
		doc.ParentID = tree.Text(parent["targetId"], "")
		doc.ParentKeyword = tree.Text(parent["name"], "")
	}
}

// ApplyReference copies display fields the catalogue itself does not carry
// (colours, allied factions) from the trusted reference document. The
// reference is never mutated.
func ApplyReference(doc *types.Document, reference map[string]any) {
	if colours, ok := reference["colours"].(map[string]any); ok {
		doc.Colours = &types.Colours{
			Banner: tree.Text(colours["banner"], ""),
			Header: tree.Text(colours["header"], ""),
		}
	}
	if allied, ok := reference["allied_factions"].([]any); ok {
		doc.AlliedFactions = []string{}
		for _, a := range allied {
			if name := tree.Text(a, ""); name != "" {
				doc.AlliedFactions = append(doc.AlliedFactions, name)
			}
		}
	}
}

// parentCatalogueLink returns the first catalogue link declaring a parent
// catalogue, or nil when the faction stands alone.
func parentCatalogueLink(root map[string]any) map[string]any {
	for _, raw := range tree.Collect(root, "catalogueLinks") {
		container, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		for _, l := range tree.AsSeq(container["catalogueLink"]) {
			link, ok := l.(map[string]any)
			if !ok {
				continue
			}
			typ := tree.Text(link["type"], "catalogue")
			if typ == "catalogue" {
				return link
			}
		}
	}
	return nil
}

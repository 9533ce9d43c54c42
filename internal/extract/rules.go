package extract

import (
	"github.com/jonathan/datacard-transformer/internal/tree"
	"github.com/jonathan/datacard-transformer/internal/types"
)

// Rules extracts army-scope rule blocks from every rule container found
// under the root. Paragraph order follows the source sequence; no
// re-sorting happens.
func Rules(root map[string]any) types.RuleSet {
	groups := []types.RuleGroup{}
	for _, raw := range tree.Collect(root, "rules") {
		container, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		for _, r := range tree.AsSeq(container["rule"]) {
			rule, ok := r.(map[string]any)
			if !ok {
				continue
			}
			name := tree.Text(rule["name"], "")
			if name == "" {
				continue
			}
			entries := []types.RuleEntry{}
			for i, d := range tree.AsSeq(rule["description"]) {
				entries = append(entries, types.RuleEntry{
					Order: i + 1,
					Text:  tree.Text(d, ""),
					Type:  "text",
				})
			}
			groups = append(groups, types.RuleGroup{Name: name, Rule: entries})
		}
	}
	if len(groups) == 0 {
		return types.RuleSet{}
	}
	return types.RuleSet{"army": groups}
}

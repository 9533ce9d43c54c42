package extract

import (
	"github.com/jonathan/datacard-transformer/internal/tree"
)

// Keywords flattens the entry's category links into a deduplicated keyword
// list, preserving first-seen order.
func Keywords(entry map[string]any) []string {
	keywords := []string{}
	seen := map[string]bool{}
	for _, raw := range children(entry, "categoryLinks", "categoryLink") {
		link, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		name := tree.Text(link["name"], "")
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		keywords = append(keywords, name)
	}
	return keywords
}

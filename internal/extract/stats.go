package extract

import (
	"github.com/jonathan/datacard-transformer/internal/tree"
	"github.com/jonathan/datacard-transformer/internal/types"
)

// Stats extracts the unit stat lines from an entry's unit profiles.
// Profiles without a name are dropped.
func Stats(entry map[string]any) []types.StatLine {
	stats := []types.StatLine{}
	for _, p := range profiles(entry, kindUnit) {
		name := tree.Text(p["name"], "")
		if name == "" {
			continue
		}
		stats = append(stats, types.StatLine{
			Active: true,
			Name:   name,
			M:      characteristic(p, "M"),
			T:      characteristic(p, "T"),
			Sv:     characteristic(p, "SV"),
			W:      characteristic(p, "W"),
			Ld:     characteristic(p, "LD"),
			OC:     characteristic(p, "OC"),
		})
	}
	return stats
}

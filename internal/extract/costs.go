package extract

import (
	"github.com/jonathan/datacard-transformer/internal/tree"
	"github.com/jonathan/datacard-transformer/internal/types"
)

// Points extracts every named cost line under the entry's cost container.
// Name is the cost line's declared label (commonly "pts"); model and cost
// are taken from the line without unit conversion.
func Points(entry map[string]any) []types.PointsEntry {
	points := []types.PointsEntry{}
	for _, raw := range children(entry, "costs", "cost") {
		cost, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		name := tree.Text(cost["name"], "")
		if name == "" {
			continue
		}
		points = append(points, types.PointsEntry{
			Name:  name,
			Model: "1",
			Cost:  tree.Text(cost["value"], "0"),
		})
	}
	return points
}

package sink

import "github.com/matzehuels/calgrid/pkg/layout"

// RenderJSON renders g in the grid serialization format, which
// [layout.UnmarshalGrid] reads back.
func RenderJSON(g *layout.Grid) ([]byte, error) {
	return layout.MarshalGrid(g)
}

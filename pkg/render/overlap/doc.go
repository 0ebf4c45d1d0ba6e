// Package overlap draws the interval graph behind a grid.
//
// Each event placed in the grid becomes a node filled with its colour and
// grouped in a cluster for its row. Two nodes are joined when their date
// ranges share at least one day. The number of clusters is the grid's row
// count, and the largest clique is the busiest day, which makes the graph a
// quick way to see why a grid needs as many rows as it has.
//
//	dot := overlap.ToDOT(g, overlap.Options{})
//	svg, err := overlap.RenderSVG(ctx, dot)
//
// Rendering uses go-graphviz, which embeds Graphviz as WebAssembly, so no
// system installation is needed for SVG. PDF and PNG go through
// [render.ToPDF] and [render.ToPNG].
//
// [render.ToPDF]: github.com/matzehuels/calgrid/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/calgrid/pkg/render.ToPNG
package overlap

// Package render turns a laid-out grid into viewable artifacts.
//
// # Overview
//
// Rendering only depends on the grid query surface: [layout.Grid.NumRows]
// for the number of columns and [layout.Grid.Days] for the lines. The
// subpackages provide:
//
//   - [sink]: HTML (the primary output), SVG, JSON and terminal text, plus
//     PDF and PNG through SVG conversion
//   - [overlap]: the interval graph of overlapping events, drawn with Graphviz
//   - [capture]: HTML screenshots through headless Chromium
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG with the external rsvg-convert tool
// (from librsvg). Both the grid sinks and the overlap renderer use them.
//
//	svg := sink.RenderSVG(g)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)
//
// [layout.Grid.NumRows]: github.com/matzehuels/calgrid/pkg/layout.Grid.NumRows
// [layout.Grid.Days]: github.com/matzehuels/calgrid/pkg/layout.Grid.Days
// [sink]: github.com/matzehuels/calgrid/pkg/render/sink
// [overlap]: github.com/matzehuels/calgrid/pkg/render/overlap
// [capture]: github.com/matzehuels/calgrid/pkg/render/capture
package render

// Package sink renders a [layout.Grid] into output formats.
//
// # Available Sinks
//
//   - [RenderHTML]: standalone HTML page, one table column per row and one
//     table row per day
//   - [RenderSVG]: the same grid as a scalable vector graphic
//   - [RenderJSON]: the grid serialization from [layout.MarshalGrid]
//   - [RenderText]: a lipgloss table for terminals
//   - [RenderPDF], [RenderPNG]: SVG converted with rsvg-convert
//
// Every sink reads the grid only through NumRows, Days and Stats, so they
// accept grids built by [layout.Build] and grids loaded with
// [layout.ReadGridFile] alike.
//
// # Cell Styles
//
// A cell on an event's first day shows the event title on the event's
// colour. Continuation cells show the colour band without text. Possible
// events are drawn with a dashed outline. Free cells stay blank.
//
// [layout.Grid]: github.com/matzehuels/calgrid/pkg/layout.Grid
// [layout.Build]: github.com/matzehuels/calgrid/pkg/layout.Build
// [layout.MarshalGrid]: github.com/matzehuels/calgrid/pkg/layout.MarshalGrid
// [layout.ReadGridFile]: github.com/matzehuels/calgrid/pkg/layout.ReadGridFile
package sink

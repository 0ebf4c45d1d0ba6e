// Package layout packs date-ranged events into non-overlapping rows.
//
// # Overview
//
// [Build] takes an unordered list of events and returns an immutable [Grid]:
// an ordered list of rows, each row a mapping from calendar day to the
// [RowEntry] occupying it, plus the last day covered by any event. Rendering
// code walks the grid one day at a time with [Grid.Days]:
//
//	g := layout.Build(events)
//	for day := range g.Days() {
//	    for col, cell := range day.Cells {
//	        if cell == nil {
//	            continue // row col is free on day.Date
//	        }
//	        if cell.First {
//	            // label here: cell.Event.Title
//	        }
//	    }
//	}
//
// # Algorithm
//
// Events are stable-sorted by start day and processed in that order. Each
// event goes into the first row that has no entry on the event's start day;
// when every row is taken a new row is appended. The event then fills every
// day from start to end (inclusive) in that row. This is greedy first-fit
// interval colouring: for start-ordered input it uses exactly as many rows as
// the largest number of events active on a single day.
//
// Only the start day is probed. With start-ordered processing that is enough
// (anything already in a row that is free on the start day ended before it),
// and [Grid.Conflicts] reports any overwrite if it ever happens.
//
// # Colors
//
// The i-th processed event is coloured palette[i mod len(palette)] (see
// [ColorAt] and [DefaultPalette]). Colours are a display aid only.
//
// # Degenerate ranges
//
// An event whose end precedes its start occupies no days and is silently
// dropped from the rows, but its end day still takes part in the last-day
// maximum. [Grid.Stats] counts such events as Dropped.
package layout

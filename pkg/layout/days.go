package layout

import (
	"iter"

	"github.com/matzehuels/calgrid/pkg/calendar"
)

// Day is one line of the rendered grid.
type Day struct {
	Date calendar.Date

	// Active is the number of rows with an entry on Date.
	Active int

	// Cells has one element per row; nil means the row is free on Date.
	// Cells are copies, so callers may keep or modify them.
	Cells []*RowEntry
}

// Days yields one Day per calendar day from [Grid.FirstDay] to
// [Grid.LastDay] inclusive, in ascending order. It yields nothing when the
// grid has no rows, row 0 is empty, or there is no last day.
//
// The sequence can be ranged over any number of times.
func (g *Grid) Days() iter.Seq[Day] {
	return func(yield func(Day) bool) {
		first, ok := g.FirstDay()
		if !ok || !g.hasLast {
			return
		}
		for d := first; !d.After(g.lastDay); d = d.Next() {
			if !yield(g.dayAt(d)) {
				return
			}
		}
	}
}

// DayList collects [Grid.Days] into a slice.
func (g *Grid) DayList() []Day {
	var out []Day
	for d := range g.Days() {
		out = append(out, d)
	}
	return out
}

func (g *Grid) dayAt(d calendar.Date) Day {
	day := Day{Date: d, Cells: make([]*RowEntry, len(g.rows))}
	for i, r := range g.rows {
		if e, ok := r.Entry(d); ok {
			day.Cells[i] = &e
			day.Active++
		}
	}
	return day
}

// Span returns the number of days [Grid.Days] would yield for a grid built
// from events, without building it.
func Span(events []calendar.Event) int {
	var first, last calendar.Date
	hasFirst, hasLast := false, false
	for _, e := range events {
		if !hasLast || e.End.After(last) {
			last, hasLast = e.End, true
		}
		if e.Valid() && (!hasFirst || e.Start.Before(first)) {
			first, hasFirst = e.Start, true
		}
	}
	if !hasFirst {
		return 0
	}
	return first.DaysUntil(last) + 1
}

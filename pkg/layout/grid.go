package layout

import (
	"slices"

	"github.com/matzehuels/calgrid/pkg/calendar"
)

// Grid is the packed layout of a set of events. It is built once by [Build]
// and never modified afterwards, so it is safe for concurrent readers.
type Grid struct {
	rows      []*Row
	lastDay   calendar.Date
	hasLast   bool
	events    int
	dropped   int
	conflicts []Conflict
}

// Conflict records a day on which inserting an event replaced an entry that
// already belonged to another event in the same row.
type Conflict struct {
	Row      int            `json:"row"`
	Date     calendar.Date  `json:"date"`
	Replaced calendar.Event `json:"replaced"`
	By       calendar.Event `json:"by"`
}

// Option configures [Build].
type Option func(*buildConfig)

type buildConfig struct {
	palette []string
}

// WithPalette overrides the colours events are assigned from.
// An empty palette keeps [DefaultPalette].
func WithPalette(palette []string) Option {
	return func(c *buildConfig) {
		if len(palette) > 0 {
			c.palette = slices.Clone(palette)
		}
	}
}

// Build packs events into rows.
//
// Events are stable-sorted by start day; events sharing a start day keep their
// input order. The input slice is not modified. Build never fails: an empty
// input yields a grid with no rows and no last day.
func Build(events []calendar.Event, opts ...Option) *Grid {
	cfg := buildConfig{palette: DefaultPalette}
	for _, opt := range opts {
		opt(&cfg)
	}

	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b calendar.Event) int {
		return a.Start.Compare(b.Start)
	})

	g := &Grid{}
	for i, e := range sorted {
		g.insert(e, ColorAt(cfg.palette, i))
	}
	return g
}

// insert places e in the first row free on e.Start and fills every day of
// its range.
func (g *Grid) insert(e calendar.Event, color string) {
	g.events++
	idx := g.freeRow(e.Start)
	row := g.rows[idx]

	first := true
	for d := e.Start; !d.After(e.End); d = d.Next() {
		prev, had := row.set(d, RowEntry{First: first, Color: color, Event: e})
		if had {
			g.conflicts = append(g.conflicts, Conflict{Row: idx, Date: d, Replaced: prev.Event, By: e})
		}
		first = false
	}
	if first {
		g.dropped++
	}

	if !g.hasLast {
		g.lastDay, g.hasLast = e.End, true
	} else {
		g.lastDay = calendar.MaxDate(g.lastDay, e.End)
	}
}

// freeRow returns the index of the first row without an entry on d,
// appending an empty row when every existing row is taken.
func (g *Grid) freeRow(d calendar.Date) int {
	for i, r := range g.rows {
		if !r.Has(d) {
			return i
		}
	}
	g.rows = append(g.rows, newRow())
	return len(g.rows) - 1
}

// NumRows returns the number of rows.
func (g *Grid) NumRows() int { return len(g.rows) }

// Row returns row i. It panics if i is out of range.
func (g *Grid) Row(i int) *Row { return g.rows[i] }

// LastDay returns the latest end day over all inserted events.
// ok is false when no events were inserted.
func (g *Grid) LastDay() (d calendar.Date, ok bool) { return g.lastDay, g.hasLast }

// FirstDay returns the earliest occupied day, which is the earliest day of
// row 0 (rows are filled in start order). ok is false when row 0 is missing
// or empty.
func (g *Grid) FirstDay() (calendar.Date, bool) {
	if len(g.rows) == 0 {
		return calendar.Date{}, false
	}
	return g.rows[0].First()
}

// Conflicts returns the overwrites that happened while building, in order.
// It is empty for every start-ordered build.
func (g *Grid) Conflicts() []Conflict { return slices.Clone(g.conflicts) }

// Stats summarizes a grid.
type Stats struct {
	Rows     int            `json:"rows"`
	Events   int            `json:"events"`
	Dropped  int            `json:"dropped"`
	FirstDay *calendar.Date `json:"first_day,omitempty"`
	LastDay  *calendar.Date `json:"last_day,omitempty"`
	Days     int            `json:"days"`
}

// Stats returns row, event and span counts for g.
func (g *Grid) Stats() Stats {
	s := Stats{Rows: len(g.rows), Events: g.events, Dropped: g.dropped}
	if last, ok := g.LastDay(); ok {
		s.LastDay = &last
	}
	if first, ok := g.FirstDay(); ok {
		s.FirstDay = &first
		if s.LastDay != nil && !s.LastDay.Before(first) {
			s.Days = first.DaysUntil(*s.LastDay) + 1
		}
	}
	return s
}

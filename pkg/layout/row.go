package layout

import (
	"maps"
	"slices"

	"github.com/matzehuels/calgrid/pkg/calendar"
)

// RowEntry is one day of one event inside a row.
type RowEntry struct {
	// First is true only on the event's start day. Renderers put the label
	// there and draw a continuation band on every other day.
	First bool `json:"first"`

	// Color is the display colour assigned to the event.
	Color string `json:"color"`

	// Event is a copy of the event occupying the day.
	Event calendar.Event `json:"event"`
}

// Row is one horizontal track of the grid. It never holds two entries for the
// same day.
type Row struct {
	entries map[calendar.Date]RowEntry
	first   calendar.Date
}

func newRow() *Row {
	return &Row{entries: make(map[calendar.Date]RowEntry)}
}

// set stores e on d and returns the entry it replaced, if any.
func (r *Row) set(d calendar.Date, e RowEntry) (RowEntry, bool) {
	prev, had := r.entries[d]
	if len(r.entries) == 0 || d.Before(r.first) {
		r.first = d
	}
	r.entries[d] = e
	return prev, had
}

// Entry returns the entry on d.
func (r *Row) Entry(d calendar.Date) (RowEntry, bool) {
	e, ok := r.entries[d]
	return e, ok
}

// Has reports whether the row is occupied on d.
func (r *Row) Has(d calendar.Date) bool {
	_, ok := r.entries[d]
	return ok
}

// Len returns the number of occupied days.
func (r *Row) Len() int { return len(r.entries) }

// First returns the earliest occupied day.
func (r *Row) First() (calendar.Date, bool) {
	if len(r.entries) == 0 {
		return calendar.Date{}, false
	}
	return r.first, true
}

// Dates returns the occupied days in ascending order.
func (r *Row) Dates() []calendar.Date {
	return slices.SortedFunc(maps.Keys(r.entries), calendar.Date.Compare)
}

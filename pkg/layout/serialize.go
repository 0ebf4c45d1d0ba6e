package layout

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/matzehuels/calgrid/pkg/calendar"
)

// =============================================================================
// Wire format
// =============================================================================

// gridJSON is the serialized form of a Grid:
//
//	{
//	  "rows": [
//	    {"entries": [{"date": "2024-01-01", "first": true, "color": "#AAE9E5", "event": {...}}]}
//	  ],
//	  "last_day": "2024-01-03",
//	  "events": 1
//	}
type gridJSON struct {
	Rows    []rowJSON      `json:"rows"`
	LastDay *calendar.Date `json:"last_day,omitempty"`
	Events  int            `json:"events,omitempty"`
	Dropped int            `json:"dropped,omitempty"`
}

type rowJSON struct {
	Entries []entryJSON `json:"entries"`
}

type entryJSON struct {
	Date calendar.Date `json:"date"`
	RowEntry
}

// =============================================================================
// Serialization API
// =============================================================================

// MarshalGrid serializes g to pretty-printed JSON. Row entries are written in
// ascending date order so equal grids produce identical bytes.
func MarshalGrid(g *Grid) ([]byte, error) {
	out := gridJSON{
		Rows:    make([]rowJSON, len(g.rows)),
		Events:  g.events,
		Dropped: g.dropped,
	}
	for i, r := range g.rows {
		entries := make([]entryJSON, 0, r.Len())
		for _, d := range r.Dates() {
			e, _ := r.Entry(d)
			entries = append(entries, entryJSON{Date: d, RowEntry: e})
		}
		out.Rows[i] = rowJSON{Entries: entries}
	}
	if last, ok := g.LastDay(); ok {
		out.LastDay = &last
	}
	return json.MarshalIndent(out, "", "  ")
}

// UnmarshalGrid rebuilds a Grid from [MarshalGrid] output.
// It rejects rows that list the same date twice.
func UnmarshalGrid(data []byte) (*Grid, error) {
	var in gridJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("unmarshal grid: %w", err)
	}

	g := &Grid{events: in.Events, dropped: in.Dropped}
	for i, rj := range in.Rows {
		r := newRow()
		for _, ej := range rj.Entries {
			if !IsHexColor(ej.Color) {
				return nil, fmt.Errorf("row %d: invalid colour %q on %s", i, ej.Color, ej.Date)
			}
			if _, dup := r.set(ej.Date, ej.RowEntry); dup {
				return nil, fmt.Errorf("row %d: duplicate entry on %s", i, ej.Date)
			}
		}
		g.rows = append(g.rows, r)
	}
	if in.LastDay != nil {
		g.lastDay, g.hasLast = *in.LastDay, true
	}
	return g, nil
}

// WriteGridFile writes g to path as JSON.
func WriteGridFile(g *Grid, path string) error {
	data, err := MarshalGrid(g)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadGridFile reads a Grid written by [WriteGridFile].
func ReadGridFile(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalGrid(data)
}

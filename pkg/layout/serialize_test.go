package layout

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/calgrid/pkg/calendar"
)

func TestGridFileRoundTrip(t *testing.T) {
	g := Build([]calendar.Event{
		ev("A", "2024-01-01", "2024-01-03"),
		ev("B", "2024-01-02", "2024-01-04"),
		ev("C", "2024-01-01", "2024-01-01"),
	})

	path := filepath.Join(t.TempDir(), "grid.json")
	if err := WriteGridFile(g, path); err != nil {
		t.Fatalf("WriteGridFile: %v", err)
	}
	back, err := ReadGridFile(path)
	if err != nil {
		t.Fatalf("ReadGridFile: %v", err)
	}

	if back.NumRows() != g.NumRows() {
		t.Fatalf("NumRows() = %d, want %d", back.NumRows(), g.NumRows())
	}
	want, got := g.DayList(), back.DayList()
	if len(got) != len(want) {
		t.Fatalf("got %d days, want %d", len(got), len(want))
	}
	for i := range want {
		for col := range want[i].Cells {
			w, b := want[i].Cells[col], got[i].Cells[col]
			if (w == nil) != (b == nil) || (w != nil && *w != *b) {
				t.Errorf("%s row %d: got %+v, want %+v", want[i].Date, col, b, w)
			}
		}
	}
	ws, bs := g.Stats(), back.Stats()
	if ws.Rows != bs.Rows || ws.Events != bs.Events || ws.Days != bs.Days {
		t.Errorf("Stats() = %+v, want %+v", bs, ws)
	}
}

func TestMarshalGridEmpty(t *testing.T) {
	data, err := MarshalGrid(Build(nil))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "last_day") {
		t.Errorf("empty grid should omit last_day: %s", data)
	}
	g, err := UnmarshalGrid(data)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := g.LastDay(); ok || g.NumRows() != 0 {
		t.Error("round-tripped empty grid should stay empty")
	}
}

func TestUnmarshalGridErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", `{"rows": [`},
		{"bad date", `{"rows": [{"entries": [{"date": "2024-13-01", "color": "#AAE9E5"}]}]}`},
		{"duplicate day", `{"rows": [{"entries": [{"date": "2024-01-01", "color": "#AAE9E5"}, {"date": "2024-01-01", "color": "#AAE9E5"}]}]}`},
		{"missing colour", `{"rows": [{"entries": [{"date": "2024-01-01"}]}]}`},
		{"css in colour", `{"rows": [{"entries": [{"date": "2024-01-01", "color": "red;background:url(x)"}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := UnmarshalGrid([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

package layout

import (
	"testing"

	"github.com/matzehuels/calgrid/pkg/calendar"
)

func TestDaysRestartable(t *testing.T) {
	g := Build([]calendar.Event{
		ev("a", "2024-01-01", "2024-01-04"),
		ev("b", "2024-01-03", "2024-01-06"),
	})

	first := g.DayList()
	second := g.DayList()
	if len(first) != 6 || len(second) != len(first) {
		t.Fatalf("got %d then %d days, want 6 both times", len(first), len(second))
	}
	for i := range first {
		if first[i].Date != second[i].Date || first[i].Active != second[i].Active {
			t.Errorf("day %d differs between iterations", i)
		}
	}
}

func TestDaysEarlyBreak(t *testing.T) {
	g := Build([]calendar.Event{ev("a", "2024-01-01", "2024-01-31")})

	n := 0
	for range g.Days() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterated %d days, want 3", n)
	}
}

func TestDaysGap(t *testing.T) {
	g := Build([]calendar.Event{
		ev("a", "2024-01-01", "2024-01-01"),
		ev("b", "2024-01-04", "2024-01-04"),
	})

	days := g.DayList()
	if len(days) != 4 {
		t.Fatalf("got %d days, want 4", len(days))
	}
	for _, day := range days[1:3] {
		if day.Active != 0 || day.Cells[0] != nil {
			t.Errorf("%s should be empty", day.Date)
		}
	}
}

func TestDaysCellsAreCopies(t *testing.T) {
	g := Build([]calendar.Event{ev("a", "2024-01-01", "2024-01-01")})

	day := g.DayList()[0]
	day.Cells[0].Event.Title = "changed"

	if e, _ := g.Row(0).Entry(d("2024-01-01")); e.Event.Title != "a" {
		t.Error("modifying a yielded cell should not affect the grid")
	}
}

func TestSpan(t *testing.T) {
	tests := []struct {
		name   string
		events []calendar.Event
	}{
		{"empty", nil},
		{"single", []calendar.Event{ev("a", "2024-01-01", "2024-01-01")}},
		{"overlapping", []calendar.Event{
			ev("a", "2024-01-01", "2024-01-03"),
			ev("b", "2024-01-02", "2024-01-10"),
		}},
		{"reversed extends end", []calendar.Event{
			ev("a", "2024-01-05", "2024-01-06"),
			ev("r", "2024-02-01", "2024-01-20"),
		}},
		{"only reversed", []calendar.Event{ev("r", "2024-02-01", "2024-01-20")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := len(Build(tt.events).DayList())
			if got := Span(tt.events); got != want {
				t.Errorf("Span() = %d, want %d", got, want)
			}
		})
	}
}

func TestSpanWholeCalendar(t *testing.T) {
	events := []calendar.Event{ev("x", "0001-01-01", "9999-12-31")}
	if got := Span(events); got != 3652059 {
		t.Errorf("Span() = %d, want 3652059", got)
	}
}

func TestRowDates(t *testing.T) {
	g := Build([]calendar.Event{
		ev("b", "2024-01-05", "2024-01-06"),
		ev("a", "2024-01-01", "2024-01-02"),
	})

	got := g.Row(0).Dates()
	want := []string{"2024-01-01", "2024-01-02", "2024-01-05", "2024-01-06"}
	if len(got) != len(want) {
		t.Fatalf("Dates() = %v", got)
	}
	for i := range want {
		if got[i].String() != want[i] {
			t.Errorf("Dates()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	if first, _ := g.Row(0).First(); first != d("2024-01-01") {
		t.Errorf("First() = %s", first)
	}
}

package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/calgrid/pkg/calendar"
	"github.com/matzehuels/calgrid/pkg/layout"
)

func testGrid() *layout.Grid {
	d := calendar.MustParseDate
	return layout.Build([]calendar.Event{
		{Title: "Offsite", Start: d("2024-03-04"), End: d("2024-03-06")},
		{Title: "Launch", Start: d("2024-03-05"), End: d("2024-03-05"), Certainty: calendar.Possible},
		{Title: "Retro", Start: d("2024-03-10"), End: d("2024-03-10")},
	})
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m gridBrowser, keys ...string) gridBrowser {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(gridBrowser)
	}
	return m
}

func TestGridBrowserNavigation(t *testing.T) {
	m := newGridBrowser(testGrid(), "")
	if len(m.days) != 7 {
		t.Fatalf("got %d days, want 7", len(m.days))
	}

	tests := []struct {
		name string
		keys []string
		want int
	}{
		{"start", nil, 0},
		{"down", []string{"down", "j"}, 2},
		{"clamped at top", []string{"up", "k"}, 0},
		{"end", []string{"G"}, 6},
		{"clamped at bottom", []string{"G", "j", "down"}, 6},
		{"home", []string{"G", "g"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := press(m, tt.keys...).cursor; got != tt.want {
				t.Errorf("cursor = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGridBrowserScrolls(t *testing.T) {
	m := newGridBrowser(testGrid(), "")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	m = next.(gridBrowser)
	if m.height != 5 {
		t.Fatalf("height = %d, want the minimum 5", m.height)
	}

	m = press(m, "G")
	if m.offset != 2 {
		t.Errorf("offset = %d, want 2 so the last day is visible", m.offset)
	}
	m = press(m, "g")
	if m.offset != 0 {
		t.Errorf("offset = %d, want 0", m.offset)
	}
}

func TestGridBrowserQuit(t *testing.T) {
	m := newGridBrowser(testGrid(), "")
	for _, k := range []string{"q", "esc"} {
		if _, cmd := m.Update(key(k)); cmd == nil {
			t.Errorf("%s should quit", k)
		}
	}
}

func TestGridBrowserView(t *testing.T) {
	m := press(newGridBrowser(testGrid(), "Sprint 12"), "j")
	view := m.View()

	for _, want := range []string{
		"Sprint 12",
		"Offsite",
		"Tuesday, 5 March 2024",
		"row 2  Launch  2024-03-05..2024-03-05 (1 days) Possible",
		"[2/7]",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	empty := press(newGridBrowser(testGrid(), ""), "j", "j", "j", "j")
	if !strings.Contains(empty.View(), "no events") {
		t.Error("a free day should say so")
	}
}

func TestClip(t *testing.T) {
	if got := clip("Offsite", 14); got != "Offsite" {
		t.Errorf("clip short = %q", got)
	}
	if got := clip("Quarterly planning", 8); got != "Quarter…" {
		t.Errorf("clip long = %q", got)
	}
}

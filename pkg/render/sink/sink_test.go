package sink

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/matzehuels/calgrid/pkg/calendar"
	"github.com/matzehuels/calgrid/pkg/layout"
)

func sampleGrid() *layout.Grid {
	date := calendar.MustParseDate
	return layout.Build([]calendar.Event{
		{Title: "Offsite", Start: date("2024-01-05"), End: date("2024-01-07")},
		{Title: "Launch <beta>", Start: date("2024-01-06"), End: date("2024-01-08"), Certainty: calendar.Possible},
		{Title: "Review", Start: date("2024-01-05"), End: date("2024-01-05")},
	})
}

func TestRenderHTML(t *testing.T) {
	out, err := RenderHTML(sampleGrid(), WithHTMLTitle("Team & Co"), WithHTMLWeekends())
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		"<title>Team &amp; Co</title>",
		`data-ready="true"`,
		"Offsite",
		"Launch &lt;beta&gt;",
		"background: #AAE9E5",
		`class="weekend"`,
		"possible",
		"Fri 2024-01-05",
		"Mon 2024-01-08",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
	if got := strings.Count(html, "<tr"); got != 1+4 {
		t.Errorf("got %d table rows, want header + 4 days", got)
	}
	if strings.Contains(html, "<beta>") {
		t.Error("titles must be escaped")
	}
}

func TestRenderHTMLEmpty(t *testing.T) {
	out, err := RenderHTML(layout.Build(nil))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "No events.") || strings.Contains(string(out), "<table>") {
		t.Error("empty grid should render the no-events notice without a table")
	}
}

func TestRenderSVGWellFormed(t *testing.T) {
	out := RenderSVG(sampleGrid(), WithSVGTitle("Q1 <plan>"), WithSVGWeekends())

	dec := xml.NewDecoder(strings.NewReader(string(out)))
	for {
		_, err := dec.Token()
		if err != nil {
			if err.Error() != "EOF" {
				t.Fatalf("SVG is not well-formed XML: %v", err)
			}
			break
		}
	}

	svg := string(out)
	if got := strings.Count(svg, `class="cell"`); got != 3+3+1 {
		t.Errorf("got %d cells, want 7 occupied day slots", got)
	}
	if !strings.Contains(svg, "stroke-dasharray") {
		t.Error("possible event should be dashed")
	}
	if !strings.Contains(svg, "Q1 &lt;plan&gt;") {
		t.Error("title should be escaped")
	}
}

func TestRenderSVGCellWidth(t *testing.T) {
	narrow := RenderSVG(sampleGrid(), WithCellWidth(60))
	wide := RenderSVG(sampleGrid())
	if len(narrow) == 0 || string(narrow) == string(wide) {
		t.Error("WithCellWidth should change the output")
	}
}

func TestRenderText(t *testing.T) {
	out := RenderText(sampleGrid(), WithoutColor(), WithTextTitle("Plan"))
	for _, want := range []string{"Plan", "Date", "Offsite", "Review", continuation, "3 events, 2 rows, 4 days"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderHTMLRejectsUnsafeColor(t *testing.T) {
	g := layout.Build([]calendar.Event{
		{Title: "A", Start: calendar.MustParseDate("2024-01-01"), End: calendar.MustParseDate("2024-01-01")},
	}, layout.WithPalette([]string{"red;background:url(x)"}))
	out, err := RenderHTML(g)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "url(x)") {
		t.Errorf("colour should not reach the style attribute:\n%s", out)
	}
	if !strings.Contains(string(out), "background: "+fallbackColor) {
		t.Errorf("expected fallback colour %s", fallbackColor)
	}
}

func TestRenderTextCellWidth(t *testing.T) {
	out := RenderText(sampleGrid(), WithoutColor(), WithTextCellWidth(4))
	if !strings.Contains(out, "Off…") {
		t.Errorf("titles should be cut to 4 runes:\n%s", out)
	}
	if strings.Contains(out, "Offsite") {
		t.Errorf("full title should not appear:\n%s", out)
	}
}

func TestRenderTextEmpty(t *testing.T) {
	if out := RenderText(layout.Build(nil)); !strings.Contains(out, "(no events)") {
		t.Errorf("empty grid: %q", out)
	}
}

func TestRenderJSON(t *testing.T) {
	g := sampleGrid()
	out, err := RenderJSON(g)
	if err != nil {
		t.Fatal(err)
	}
	back, err := layout.UnmarshalGrid(out)
	if err != nil {
		t.Fatalf("UnmarshalGrid: %v", err)
	}
	if back.NumRows() != g.NumRows() || len(back.DayList()) != len(g.DayList()) {
		t.Error("JSON output should decode to an equivalent grid")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncated", 5, "trun…"},
		{"ünïcödé", 4, "ünï…"},
		{"x", 0, "x"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestToCellRejectsUnsafeColor(t *testing.T) {
	c := toCell(&layout.RowEntry{Color: "red;}</style>", Event: calendar.Event{Title: "x"}})
	if c.Color != fallbackColor {
		t.Errorf("Color = %q, want fallback", c.Color)
	}
}

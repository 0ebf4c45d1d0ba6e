package overlap

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/calgrid/pkg/calendar"
	"github.com/matzehuels/calgrid/pkg/layout"
)

func abcGrid() *layout.Grid {
	date := calendar.MustParseDate
	return layout.Build([]calendar.Event{
		{Title: "A", Start: date("2024-01-01"), End: date("2024-01-03")},
		{Title: "B", Start: date("2024-01-02"), End: date("2024-01-04"), Certainty: calendar.Possible},
		{Title: "C", Start: date("2024-01-01"), End: date("2024-01-01")},
		{Title: "D", Start: date("2024-01-10"), End: date("2024-01-10")},
	})
}

func TestNodes(t *testing.T) {
	nodes := Nodes(abcGrid())
	var got []string
	for _, n := range nodes {
		got = append(got, n.Event.Title)
	}
	if want := "A C B D"; strings.Join(got, " ") != want {
		t.Errorf("Nodes order = %v, want %s", got, want)
	}
	if nodes[0].Row != 0 || nodes[1].Row != 1 || nodes[2].Row != 1 {
		t.Errorf("rows = %d %d %d, want 0 1 1", nodes[0].Row, nodes[1].Row, nodes[2].Row)
	}
}

func TestEdges(t *testing.T) {
	edges := Edges(Nodes(abcGrid()))
	// A-C share 01-01, A-B share 01-02..01-03; C and B and D are disjoint.
	want := map[Edge]bool{{"e0", "e1"}: true, {"e0", "e2"}: true}
	if len(edges) != len(want) {
		t.Fatalf("edges = %v, want %v", edges, want)
	}
	for _, e := range edges {
		if !want[e] {
			t.Errorf("unexpected edge %v", e)
		}
	}
}

func TestMarshalGraph(t *testing.T) {
	data, err := MarshalGraph(abcGrid())
	if err != nil {
		t.Fatal(err)
	}
	var got struct {
		Nodes []Node `json:"nodes"`
		Edges []Edge `json:"edges"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got.Nodes) != 4 || len(got.Edges) != 2 {
		t.Errorf("got %d nodes, %d edges; want 4, 2", len(got.Nodes), len(got.Edges))
	}
	if got.Nodes[2].Event.Certainty != calendar.Possible {
		t.Errorf("node e2 certainty = %v, want possible", got.Nodes[2].Event.Certainty)
	}

	empty, err := MarshalGraph(layout.Build(nil))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(empty), `"nodes": []`) {
		t.Errorf("empty graph should encode empty lists: %s", empty)
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(abcGrid(), Options{Detailed: true})
	for _, want := range []string{
		"graph G {",
		"subgraph cluster_row0",
		"subgraph cluster_row1",
		`label="row 2"`,
		`"e0" -- "e1"`,
		`fillcolor="#AAE9E5"`,
		"rounded,filled,dashed",
		"2024-01-02 → 2024-01-04",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(layout.Build(nil), Options{})
	if strings.Contains(dot, "cluster") || strings.Contains(dot, "--") {
		t.Errorf("empty grid should produce an empty graph:\n%s", dot)
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(abcGrid(), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	if _, err := RenderSVG(context.Background(), "graph G { -- }"); err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `width="100" height="50"`) {
		t.Errorf("normalizeViewBox = %s", out)
	}
	if got := normalizeViewBox([]byte("<svg/>")); string(got) != "<svg/>" {
		t.Error("SVG without viewBox should pass through")
	}
}

package overlap

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/calgrid/pkg/calendar"
	"github.com/matzehuels/calgrid/pkg/layout"
	"github.com/matzehuels/calgrid/pkg/render"
)

// Options configures overlap graph generation.
type Options struct {
	// Detailed adds the date range to every node label.
	Detailed bool
}

// Node is one placed event.
type Node struct {
	ID    string         `json:"id"`
	Row   int            `json:"row"`
	Color string         `json:"color"`
	Event calendar.Event `json:"event"`
}

// Edge joins two overlapping events. From precedes To in [Nodes] order.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// MarshalGraph encodes the nodes and edges of g as indented JSON.
func MarshalGraph(g *layout.Grid) ([]byte, error) {
	nodes := Nodes(g)
	edges := Edges(nodes)
	if nodes == nil {
		nodes = []Node{}
	}
	if edges == nil {
		edges = []Edge{}
	}
	return json.MarshalIndent(struct {
		Nodes []Node `json:"nodes"`
		Edges []Edge `json:"edges"`
	}{nodes, edges}, "", "  ")
}

// Nodes returns the events of g ordered by start day, then row.
func Nodes(g *layout.Grid) []Node {
	var nodes []Node
	for i := range g.NumRows() {
		row := g.Row(i)
		for _, d := range row.Dates() {
			e, _ := row.Entry(d)
			if e.First {
				nodes = append(nodes, Node{Row: i, Color: e.Color, Event: e.Event})
			}
		}
	}
	slices.SortStableFunc(nodes, func(a, b Node) int {
		if c := a.Event.Start.Compare(b.Event.Start); c != 0 {
			return c
		}
		return a.Row - b.Row
	})
	for i := range nodes {
		nodes[i].ID = "e" + strconv.Itoa(i)
	}
	return nodes
}

// Edges returns every overlapping pair among nodes, which must be ordered
// by start day as [Nodes] returns them.
func Edges(nodes []Node) []Edge {
	var edges []Edge
	for i, a := range nodes {
		for _, b := range nodes[i+1:] {
			if b.Event.Start.After(a.Event.End) {
				break
			}
			if a.Event.Overlaps(b.Event) {
				edges = append(edges, Edge{From: a.ID, To: b.ID})
			}
		}
	}
	return edges
}

// ToDOT converts g to Graphviz DOT source for [RenderSVG].
func ToDOT(g *layout.Grid, opts Options) string {
	nodes := Nodes(g)

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontname=\"Helvetica\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [color=\"#888888\"];\n")
	buf.WriteString("\n")

	for row := range g.NumRows() {
		fmt.Fprintf(&buf, "  subgraph cluster_row%d {\n", row)
		fmt.Fprintf(&buf, "    label=%q;\n", fmt.Sprintf("row %d", row+1))
		buf.WriteString("    style=\"rounded,dashed\";\n    color=\"#bbbbbb\";\n")
		for _, n := range nodes {
			if n.Row == row {
				fmt.Fprintf(&buf, "    %q [%s];\n", n.ID, fmtAttrs(n, opts.Detailed))
			}
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	for _, e := range Edges(nodes) {
		fmt.Fprintf(&buf, "  %q -- %q;\n", e.From, e.To)
	}
	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(n Node, detailed bool) string {
	label := n.Event.Title
	if detailed {
		label += fmt.Sprintf("\n%s → %s", n.Event.Start, n.Event.End)
	}
	color := n.Color
	if !layout.IsHexColor(color) {
		color = "#dddddd"
	}
	attrs := fmt.Sprintf("label=%q, fillcolor=%q", label, color)
	if n.Event.Certainty == calendar.Possible {
		attrs += `, style="rounded,filled,dashed"`
	}
	return attrs
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-based root element with a plain
// pixel-sized one so the SVG scales like the grid sinks.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders DOT source as PDF via SVG conversion.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders DOT source as PNG via SVG conversion.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}

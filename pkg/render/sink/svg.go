package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/calgrid/pkg/layout"
)

const (
	svgMargin     = 16.0
	svgDateWidth  = 110.0
	svgCellWidth  = 140.0
	svgCellHeight = 22.0
	svgHeader     = 36.0
	svgFontSize   = 12.0
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title     string
	weekends  bool
	cellWidth float64
}

// WithSVGTitle draws a title above the grid.
func WithSVGTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// WithSVGWeekends shades Saturday and Sunday lines.
func WithSVGWeekends() SVGOption { return func(r *svgRenderer) { r.weekends = true } }

// WithCellWidth overrides the width of one row column in pixels.
func WithCellWidth(w float64) SVGOption {
	return func(r *svgRenderer) {
		if w > 0 {
			r.cellWidth = w
		}
	}
}

// RenderSVG renders g as an SVG document. An empty grid yields a small
// document holding only the title.
func RenderSVG(g *layout.Grid, opts ...SVGOption) []byte {
	r := svgRenderer{cellWidth: svgCellWidth}
	for _, opt := range opts {
		opt(&r)
	}

	lines := buildLines(g)
	top := svgMargin
	if r.title != "" {
		top += svgHeader
	}
	width := 2*svgMargin + svgDateWidth + float64(g.NumRows())*r.cellWidth
	height := top + float64(len(lines))*svgCellHeight + svgMargin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" font-family="Helvetica, Arial, sans-serif" font-size="%.0f">`+"\n",
		width, height, width, height, svgFontSize)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="#ffffff"/>`+"\n")

	if r.title != "" {
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-size="18" font-weight="600" fill="#222">%s</text>`+"\n",
			svgMargin, svgMargin+18, escape(r.title))
	}

	for i, l := range lines {
		y := top + float64(i)*svgCellHeight
		if r.weekends && l.Weekend {
			fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#f5f5f5"/>`+"\n",
				svgMargin, y, width-2*svgMargin, svgCellHeight)
		}
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" fill="#555">%s %s</text>`+"\n",
			svgMargin+4, y+svgCellHeight/2+svgFontSize/3, l.Weekday, l.Label)

		for col, c := range l.Cells {
			if c.Empty {
				continue
			}
			renderSVGCell(&buf, c, svgMargin+svgDateWidth+float64(col)*r.cellWidth, y, r.cellWidth)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderSVGCell(buf *bytes.Buffer, c cell, x, y, w float64) {
	stroke := ""
	if c.Possible {
		stroke = ` stroke="#555" stroke-width="1" stroke-dasharray="3,2"`
	}
	fmt.Fprintf(buf, `  <rect class="cell" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"%s><title>%s</title></rect>`+"\n",
		x+1, y, w-2, svgCellHeight, c.Color, stroke, escape(c.Tooltip))
	if c.First {
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-weight="600" fill="#222">%s</text>`+"\n",
			x+6, y+svgCellHeight/2+svgFontSize/3, escape(truncate(c.Title, int((w-12)/(svgFontSize*0.6)))))
	}
}

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

package sink

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/calgrid/pkg/layout"
)

const continuation = "│"

// TextOption configures [RenderText].
type TextOption func(*textRenderer)

type textRenderer struct {
	title     string
	cellWidth int
	color     bool
}

// WithTextTitle prints a title line above the table.
func WithTextTitle(t string) TextOption { return func(r *textRenderer) { r.title = t } }

// WithTextCellWidth caps the width of a title cell (default 18).
func WithTextCellWidth(w int) TextOption {
	return func(r *textRenderer) {
		if w > 0 {
			r.cellWidth = w
		}
	}
}

// WithoutColor renders plain cells, for files and pipes.
func WithoutColor() TextOption { return func(r *textRenderer) { r.color = false } }

// RenderText renders g as a bordered terminal table. Cells on an event's
// first day hold its title, later days hold a continuation bar.
func RenderText(g *layout.Grid, opts ...TextOption) string {
	r := textRenderer{cellWidth: 18, color: true}
	for _, opt := range opts {
		opt(&r)
	}

	lines := buildLines(g)
	headers := make([]string, g.NumRows()+1)
	headers[0] = "Date"
	for i := 1; i < len(headers); i++ {
		headers[i] = strconv.Itoa(i)
	}

	rows := make([][]string, len(lines))
	for i, l := range lines {
		row := make([]string, len(l.Cells)+1)
		row[0] = l.Weekday + " " + l.Label
		for col, c := range l.Cells {
			switch {
			case c.Empty:
			case c.First:
				row[col+1] = truncate(c.Title, r.cellWidth)
			default:
				row[col+1] = continuation
			}
		}
		rows[i] = row
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	dateStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Padding(0, 1)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle.Padding(0, 1)
			case col == 0:
				return dateStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row < 0 || row >= len(lines) {
				return base
			}
			c := lines[row].Cells[col-1]
			if c.Empty || !r.color {
				return base
			}
			style := base.Background(lipgloss.Color(c.Color)).Foreground(lipgloss.Color("#222222"))
			if c.First {
				style = style.Bold(true)
			}
			if c.Possible {
				style = style.Italic(true)
			}
			return style
		})

	var b strings.Builder
	if r.title != "" {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(r.title))
		b.WriteString("\n")
	}
	if len(lines) == 0 {
		b.WriteString("(no events)\n")
		return b.String()
	}
	b.WriteString(t.Render())
	b.WriteString("\n")
	s := g.Stats()
	fmt.Fprintf(&b, "%d events, %d rows, %d days\n", s.Events, s.Rows, s.Days)
	return b.String()
}

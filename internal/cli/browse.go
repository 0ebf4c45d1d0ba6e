package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/calgrid/pkg/calendar"
	"github.com/matzehuels/calgrid/pkg/layout"
)

var (
	browseHintStyle   = lipgloss.NewStyle().Foreground(colorDim)
	browseHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	browseCursorStyle = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
)

const browseCellWidth = 14

// browseCommand creates the interactive grid viewer.
func (c *CLI) browseCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "browse [grid.json|events-file|url]",
		Short: "Scroll through a grid in the terminal",
		Long: `Scroll through a grid in the terminal.

Accepts a stored grid (.grid.json) or any events input, which is laid out
first. Use ↑/↓ (or j/k) to move one day, PgUp/PgDn to move a page, g/G to jump
to the first or last day and q to quit. The pane below the grid lists the
events active on the selected day.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGrid(cmd, args[0], noCache)
			if err != nil {
				return err
			}
			if len(g.DayList()) == 0 {
				newPrinter(cmd.OutOrStdout()).info("Grid is empty")
				return nil
			}
			prog := tea.NewProgram(newGridBrowser(g, c.settings().Title),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = prog.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}

// loadGrid reads a stored grid, or lays out an events input.
func (c *CLI) loadGrid(cmd *cobra.Command, input string, noCache bool) (*layout.Grid, error) {
	if strings.HasSuffix(input, gridSuffix) {
		g, err := layout.ReadGridFile(input)
		if err != nil {
			return nil, fmt.Errorf("load grid %s: %w", input, err)
		}
		return g, nil
	}

	ctx := cmd.Context()
	opts := c.baseOptions()
	opts.Input = input
	if err := opts.ValidateForParse(); err != nil {
		return nil, err
	}
	if err := opts.ValidateForLayout(); err != nil {
		return nil, err
	}
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return nil, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	events, err := runner.Parse(ctx, opts)
	if err != nil {
		return nil, err
	}
	return runner.Layout(ctx, events, opts)
}

// =============================================================================
// gridBrowser - bubbletea model
// =============================================================================

// gridBrowser shows a window of grid days with a cursor on one of them.
type gridBrowser struct {
	title  string
	days   []layout.Day
	rows   int
	cursor int
	offset int
	height int // visible days
}

func newGridBrowser(g *layout.Grid, title string) gridBrowser {
	return gridBrowser{
		title:  title,
		days:   g.DayList(),
		rows:   g.NumRows(),
		height: 15,
	}
}

func (m gridBrowser) Init() tea.Cmd {
	return nil
}

func (m gridBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "pgup":
			m.move(-m.height)
		case "pgdown", " ":
			m.move(m.height)
		case "home", "g":
			m.move(-len(m.days))
		case "end", "G":
			m.move(len(m.days))
		}
	case tea.WindowSizeMsg:
		// title, hint, borders, header, detail pane and footer
		m.height = max(msg.Height-12-m.rows, 5)
		m.move(0)
	}
	return m, nil
}

// move shifts the cursor by delta days, clamped, and scrolls to keep it
// visible.
func (m *gridBrowser) move(delta int) {
	m.cursor = min(max(m.cursor+delta, 0), len(m.days)-1)
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

func (m gridBrowser) View() string {
	var b strings.Builder

	title := m.title
	if title == "" {
		title = "Calendar"
	}
	b.WriteString(styleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(browseHintStyle.Render("↑/↓ day  PgUp/PgDn page  g/G first/last  q quit"))
	b.WriteString("\n\n")

	end := min(m.offset+m.height, len(m.days))
	visible := m.days[m.offset:end]

	headers := make([]string, m.rows+2)
	headers[1] = "Date"
	for i := 0; i < m.rows; i++ {
		headers[i+2] = strconv.Itoa(i + 1)
	}

	rows := make([][]string, len(visible))
	for i, day := range visible {
		row := make([]string, m.rows+2)
		if m.offset+i == m.cursor {
			row[0] = "▸"
		}
		row[1] = day.Date.Weekday().String()[:3] + " " + day.Date.String()
		for col, cell := range day.Cells {
			switch {
			case cell == nil:
			case cell.First:
				row[col+2] = clip(cell.Event.Title, browseCellWidth)
			default:
				row[col+2] = "│"
			}
		}
		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return browseHeaderStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row < 0 || row >= len(visible) {
				return base
			}
			isCurrent := m.offset+row == m.cursor
			if col < 2 {
				if isCurrent {
					return base.Inherit(browseCursorStyle)
				}
				return base.Foreground(colorGray)
			}
			cell := visible[row].Cells[col-2]
			if cell == nil {
				return base
			}
			style := base.Background(lipgloss.Color(cell.Color)).Foreground(lipgloss.Color("#222222"))
			if isCurrent {
				style = style.Bold(true)
			}
			return style
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(m.detail())
	b.WriteString(browseHintStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.days))))

	return b.String()
}

// detail lists the events active on the cursor day.
func (m gridBrowser) detail() string {
	day := m.days[m.cursor]
	var b strings.Builder
	b.WriteString(styleValue.Render(day.Date.Time().Format("Monday, 2 January 2006")))
	b.WriteString("\n")
	if day.Active == 0 {
		b.WriteString(browseHintStyle.Render("  no events"))
		b.WriteString("\n")
	}
	for i, cell := range day.Cells {
		if cell == nil {
			continue
		}
		e := cell.Event
		line := fmt.Sprintf("  row %d  %s  %s..%s (%d days)", i+1, e.Title, e.Start, e.End, e.Days())
		if e.Certainty == calendar.Possible {
			line += " " + e.Certainty.String()
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// clip shortens s to at most n runes, marking the cut with an ellipsis.
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

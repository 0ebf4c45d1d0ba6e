package sink

import (
	"time"

	"github.com/matzehuels/calgrid/pkg/calendar"
	"github.com/matzehuels/calgrid/pkg/layout"
)

const fallbackColor = "#DDDDDD"

// cell is the sink-neutral view of one grid position.
type cell struct {
	Empty    bool
	First    bool
	Color    string
	Title    string
	Tooltip  string
	Possible bool
}

// line is the sink-neutral view of one day.
type line struct {
	Date    calendar.Date
	Label   string
	Weekday string
	Weekend bool
	Active  int
	Cells   []cell
}

func buildLines(g *layout.Grid) []line {
	var out []line
	for day := range g.Days() {
		wd := day.Date.Weekday()
		l := line{
			Date:    day.Date,
			Label:   day.Date.String(),
			Weekday: wd.String()[:3],
			Weekend: wd == time.Saturday || wd == time.Sunday,
			Active:  day.Active,
			Cells:   make([]cell, len(day.Cells)),
		}
		for i, e := range day.Cells {
			l.Cells[i] = toCell(e)
		}
		out = append(out, l)
	}
	return out
}

func toCell(e *layout.RowEntry) cell {
	if e == nil {
		return cell{Empty: true}
	}
	color := e.Color
	if !layout.IsHexColor(color) {
		color = fallbackColor
	}
	return cell{
		First:    e.First,
		Color:    color,
		Title:    e.Event.Title,
		Tooltip:  e.Event.String(),
		Possible: e.Event.Certainty == calendar.Possible,
	}
}

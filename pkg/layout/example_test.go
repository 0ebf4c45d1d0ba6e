package layout_test

import (
	"fmt"

	"github.com/matzehuels/calgrid/pkg/calendar"
	"github.com/matzehuels/calgrid/pkg/layout"
)

func ExampleBuild() {
	date := calendar.MustParseDate
	events := []calendar.Event{
		{Title: "A", Start: date("2024-01-01"), End: date("2024-01-03")},
		{Title: "B", Start: date("2024-01-02"), End: date("2024-01-04")},
		{Title: "C", Start: date("2024-01-01"), End: date("2024-01-01")},
	}

	g := layout.Build(events)
	fmt.Println("rows:", g.NumRows())

	for day := range g.Days() {
		fmt.Print(day.Date, " ", day.Active)
		for _, cell := range day.Cells {
			switch {
			case cell == nil:
				fmt.Print(" .")
			case cell.First:
				fmt.Print(" ", cell.Event.Title, "*")
			default:
				fmt.Print(" ", cell.Event.Title)
			}
		}
		fmt.Println()
	}
	// Output:
	// rows: 2
	// 2024-01-01 2 A* C*
	// 2024-01-02 2 A B*
	// 2024-01-03 2 A B
	// 2024-01-04 1 . B
}

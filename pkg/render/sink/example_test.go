package sink_test

import (
	"fmt"

	"github.com/matzehuels/calgrid/pkg/calendar"
	"github.com/matzehuels/calgrid/pkg/layout"
	"github.com/matzehuels/calgrid/pkg/render/sink"
)

func ExampleRenderHTML() {
	date := calendar.MustParseDate
	g := layout.Build([]calendar.Event{
		{Title: "Sprint", Start: date("2024-03-04"), End: date("2024-03-15")},
	})

	html, err := sink.RenderHTML(g, sink.WithHTMLTitle("March"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(html) > 0)
	// Output: true
}

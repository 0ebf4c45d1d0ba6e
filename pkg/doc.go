// Package pkg provides the core libraries for calgrid calendar layouts.
//
// # Overview
//
// calgrid places calendar events into rows so that events sharing a day sit
// side by side, then renders one line per day. The pkg directory is organized
// into four areas:
//
//  1. Domain: [calendar] (dates, events) and [layout] (the grid)
//  2. Input and output: [io] (event decoders) and [render] (artifacts)
//  3. Orchestration: [pipeline] (parse → layout → render) and [server]
//  4. Infrastructure: [cache], [httputil], [observability], [errors]
//
// # Architecture
//
// The typical data flow:
//
//	JSON / YAML / TOML / HCL / iCalendar (file, URL or stdin)
//	         ↓
//	    [io] package (decode events)
//	         ↓
//	    [layout] package (assign rows, colours and days)
//	         ↓
//	    [render] packages (HTML, SVG, text, JSON, PDF, PNG, DOT)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/calgrid/pkg/calendar"
//	    "github.com/matzehuels/calgrid/pkg/layout"
//	    "github.com/matzehuels/calgrid/pkg/render/sink"
//	)
//
//	d := calendar.MustParseDate
//	g := layout.Build([]calendar.Event{
//	    {Title: "Offsite", Start: d("2024-03-04"), End: d("2024-03-06")},
//	    {Title: "Launch", Start: d("2024-03-05"), End: d("2024-03-05")},
//	})
//	html, err := sink.RenderHTML(g, sink.WithHTMLTitle("March"))
//
// The [pipeline] package wraps these steps with input fetching, validation
// and caching, and is shared by the CLI and the HTTP [server].
//
// [calendar]: github.com/matzehuels/calgrid/pkg/calendar
// [layout]: github.com/matzehuels/calgrid/pkg/layout
// [io]: github.com/matzehuels/calgrid/pkg/io
// [render]: github.com/matzehuels/calgrid/pkg/render
// [pipeline]: github.com/matzehuels/calgrid/pkg/pipeline
// [server]: github.com/matzehuels/calgrid/pkg/server
// [cache]: github.com/matzehuels/calgrid/pkg/cache
// [httputil]: github.com/matzehuels/calgrid/pkg/httputil
// [observability]: github.com/matzehuels/calgrid/pkg/observability
// [errors]: github.com/matzehuels/calgrid/pkg/errors
package pkg

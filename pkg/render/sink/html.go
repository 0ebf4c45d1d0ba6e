package sink

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/matzehuels/calgrid/pkg/layout"
)

// HTMLOption configures [RenderHTML].
type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	title    string
	weekends bool
}

// WithHTMLTitle sets the page title and heading.
func WithHTMLTitle(t string) HTMLOption { return func(r *htmlRenderer) { r.title = t } }

// WithHTMLWeekends shades Saturday and Sunday lines.
func WithHTMLWeekends() HTMLOption { return func(r *htmlRenderer) { r.weekends = true } }

type htmlPage struct {
	Title    string
	Weekends bool
	Columns  []int
	Lines    []line
	Stats    layout.Stats
}

var htmlTemplate = template.Must(template.New("grid").Funcs(template.FuncMap{
	"color": func(c string) template.CSS {
		if !layout.IsHexColor(c) {
			c = fallbackColor
		}
		return template.CSS(c)
	},
}).Parse(htmlSource))

// RenderHTML renders g as a standalone HTML document.
func RenderHTML(g *layout.Grid, opts ...HTMLOption) ([]byte, error) {
	r := htmlRenderer{title: "Calendar"}
	for _, opt := range opts {
		opt(&r)
	}

	page := htmlPage{
		Title:    r.title,
		Weekends: r.weekends,
		Columns:  make([]int, g.NumRows()),
		Lines:    buildLines(g),
		Stats:    g.Stats(),
	}
	for i := range page.Columns {
		page.Columns[i] = i + 1
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return buf.Bytes(), nil
}

const htmlSource = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; margin: 24px; color: #222; }
  h1 { font-size: 20px; font-weight: 600; margin: 0 0 4px; }
  .summary { color: #777; font-size: 12px; margin-bottom: 16px; }
  table { border-collapse: collapse; table-layout: fixed; }
  th, td { font-size: 12px; height: 22px; padding: 0 6px; white-space: nowrap; overflow: hidden; text-overflow: ellipsis; }
  th { color: #999; font-weight: 500; text-align: left; }
  td.date { color: #555; width: 110px; font-variant-numeric: tabular-nums; }
  td.slot { width: 140px; max-width: 140px; border-left: 2px solid #fff; }
  td.first { font-weight: 600; border-top-left-radius: 4px; border-top-right-radius: 4px; }
  td.possible { outline: 1px dashed #555; outline-offset: -2px; opacity: 0.8; }
  tr.weekend td.date { color: #b55; }
  tr.weekend td.free { background: #f5f5f5; }
  .empty { color: #999; font-style: italic; }
</style>
</head>
<body>
<div class="calendar" data-ready="true">
<h1>{{.Title}}</h1>
<div class="summary">{{.Stats.Events}} events · {{.Stats.Rows}} rows · {{.Stats.Days}} days{{with .Stats.FirstDay}} · {{.}}{{end}}{{with .Stats.LastDay}} → {{.}}{{end}}</div>
{{- if .Lines}}
<table>
<thead><tr><th></th>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- range .Lines}}
<tr{{if and $.Weekends .Weekend}} class="weekend"{{end}}>
<td class="date">{{.Weekday}} {{.Label}}</td>
{{- range .Cells}}
{{- if .Empty}}<td class="slot free"></td>
{{- else}}<td class="slot{{if .First}} first{{end}}{{if .Possible}} possible{{end}}" style="background: {{color .Color}}" title="{{.Tooltip}}">{{if .First}}{{.Title}}{{end}}</td>
{{- end}}
{{- end}}
</tr>
{{- end}}
</tbody>
</table>
{{- else}}
<p class="empty">No events.</p>
{{- end}}
</div>
</body>
</html>
`

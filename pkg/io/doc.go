// Package io reads and writes event lists in the formats calgrid accepts.
//
// # Formats
//
// The canonical format is a JSON array of events:
//
//	[
//	  {"title": "Offsite", "start": "2024-01-01", "end": "2024-01-03", "certainty": "Sure"},
//	  {"title": "Launch", "start": "2024-01-02", "end": "2024-01-02", "certainty": "Possible"}
//	]
//
// An object wrapping the array under "events" is accepted as well. The same
// four fields are read from YAML sequences, TOML [[events]] tables, HCL
// event blocks and iCalendar VEVENT components. See [Format] for the list
// and [FormatFromName] for extension-based detection.
//
// # Field Presence
//
// title, start and end are required; certainty defaults to Sure when
// omitted. Dates use the ISO form YYYY-MM-DD. A missing field or an
// unparseable date fails the whole decode with an INVALID_INPUT error naming
// the event index. No other validation happens here: events whose end
// precedes their start are passed through unchanged.
//
// # Sources
//
// [Open] resolves an input name to a reader: "-" is standard input, http
// and https URLs are fetched with retry, anything else is a file path.
//
// # Export
//
// [WriteJSON] and [ExportJSON] write events back in the canonical JSON
// form, so every other format can be converted to JSON and re-imported.
package io

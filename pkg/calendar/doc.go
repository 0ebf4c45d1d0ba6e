// Package calendar defines the value types that flow through calgrid.
//
// A [Date] is a zone-less calendar day with a well-defined successor
// ([Date.Next]). An [Event] spans the inclusive range [Start, End] and carries
// a title and a [Certainty]. All types are plain values: they are copied, never
// shared, and nothing in calgrid mutates an event after it has been decoded.
//
// # Dates
//
// Dates are parsed from and printed as ISO 8601 calendar dates:
//
//	d, err := calendar.ParseDate("2024-01-31")
//	d.Next().String() // "2024-02-01"
//
// Date implements [encoding.TextMarshaler] and [encoding.TextUnmarshaler], so
// it decodes directly from JSON, YAML and TOML documents.
//
// # Events
//
// Events are not validated on construction. An event whose End precedes its
// Start is legal; it covers zero days ([Event.Days] returns 0) and is dropped
// from the visible layout.
package calendar

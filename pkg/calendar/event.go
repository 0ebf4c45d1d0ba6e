package calendar

import (
	"fmt"
	"strings"
)

// Certainty says whether an event is confirmed.
type Certainty int

const (
	// Sure marks a confirmed event. It is the zero value.
	Sure Certainty = iota
	// Possible marks a tentative event.
	Possible
)

// String returns "Sure" or "Possible".
func (c Certainty) String() string {
	switch c {
	case Sure:
		return "Sure"
	case Possible:
		return "Possible"
	default:
		return fmt.Sprintf("Certainty(%d)", int(c))
	}
}

// ParseCertainty parses a certainty name. Matching is case-insensitive.
func ParseCertainty(s string) (Certainty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sure":
		return Sure, nil
	case "possible":
		return Possible, nil
	default:
		return Sure, fmt.Errorf("unknown certainty %q (must be Sure or Possible)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Certainty) MarshalText() ([]byte, error) {
	if c != Sure && c != Possible {
		return nil, fmt.Errorf("invalid certainty %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Certainty) UnmarshalText(b []byte) error {
	parsed, err := ParseCertainty(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Event is a titled, inclusive range of calendar days.
type Event struct {
	Title     string    `json:"title" yaml:"title" toml:"title"`
	Start     Date      `json:"start" yaml:"start" toml:"start"`
	End       Date      `json:"end" yaml:"end" toml:"end"`
	Certainty Certainty `json:"certainty" yaml:"certainty" toml:"certainty"`
}

// Valid reports whether e covers at least one day.
func (e Event) Valid() bool { return !e.End.Before(e.Start) }

// Days returns the number of days e covers, or 0 when End precedes Start.
func (e Event) Days() int {
	if !e.Valid() {
		return 0
	}
	return e.Start.DaysUntil(e.End) + 1
}

// Contains reports whether d falls inside [Start, End].
func (e Event) Contains(d Date) bool {
	return !d.Before(e.Start) && !d.After(e.End)
}

// Overlaps reports whether e and o share at least one day.
// Events covering zero days overlap nothing.
func (e Event) Overlaps(o Event) bool {
	if !e.Valid() || !o.Valid() {
		return false
	}
	return !e.End.Before(o.Start) && !o.End.Before(e.Start)
}

// String returns a short human-readable form, e.g. "Trip [2024-01-01..2024-01-03]".
func (e Event) String() string {
	return fmt.Sprintf("%s [%s..%s]", e.Title, e.Start, e.End)
}

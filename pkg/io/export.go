package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/calgrid/pkg/calendar"
)

// WriteJSON encodes events as an indented JSON array and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(events []calendar.Event, w io.Writer) error {
	if events == nil {
		events = []calendar.Event{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(events); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes events to a JSON file at path.
func ExportJSON(events []calendar.Event, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(events, f)
}

package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/calgrid/pkg/calendar"
	"github.com/matzehuels/calgrid/pkg/errors"
)

type eventList struct {
	Events []rawEvent `json:"events" yaml:"events" toml:"events"`
}

// ReadJSON decodes a JSON event list from r.
//
// The input is either an array of events or an object holding that array
// under "events". ReadJSON does not close r.
func ReadJSON(r io.Reader) ([]calendar.Event, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty input")
	}

	var raws []rawEvent
	if data[0] == '{' {
		var list eventList
		err = json.Unmarshal(data, &list)
		raws = list.Events
	} else {
		err = json.Unmarshal(data, &raws)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json")
	}
	return toEvents(raws)
}

package io

import (
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/calgrid/pkg/calendar"
	"github.com/matzehuels/calgrid/pkg/errors"
)

// rawEvent is the decoder-neutral shape of one event. Fields are pointers
// so a missing key can be told apart from an empty value. Values are kept
// as any because TOML yields time.Time for bare dates.
type rawEvent struct {
	Title     *string `json:"title" yaml:"title" toml:"title"`
	Start     any     `json:"start" yaml:"start" toml:"start"`
	End       any     `json:"end" yaml:"end" toml:"end"`
	Certainty *string `json:"certainty" yaml:"certainty" toml:"certainty"`
}

func toEvents(raws []rawEvent) ([]calendar.Event, error) {
	events := make([]calendar.Event, 0, len(raws))
	for i, r := range raws {
		e, err := r.event()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "event %d", i)
		}
		events = append(events, e)
	}
	return events, nil
}

func (r rawEvent) event() (calendar.Event, error) {
	var e calendar.Event
	if r.Title == nil {
		return e, fmt.Errorf("missing title")
	}
	e.Title = *r.Title

	var err error
	if e.Start, err = dateField("start", r.Start); err != nil {
		return e, err
	}
	if e.End, err = dateField("end", r.End); err != nil {
		return e, err
	}
	if r.Certainty != nil {
		if e.Certainty, err = calendar.ParseCertainty(*r.Certainty); err != nil {
			return e, err
		}
	}
	return e, nil
}

func dateField(name string, v any) (calendar.Date, error) {
	switch v := v.(type) {
	case nil:
		return calendar.Date{}, fmt.Errorf("missing %s", name)
	case string:
		d, err := calendar.ParseDate(strings.TrimSpace(v))
		if err != nil {
			return d, fmt.Errorf("%s: %w", name, err)
		}
		return d, nil
	case time.Time:
		return calendar.DateOf(v), nil
	default:
		return calendar.Date{}, fmt.Errorf("%s: expected a date, got %T", name, v)
	}
}

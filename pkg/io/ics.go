package io

import (
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/matzehuels/calgrid/pkg/calendar"
	"github.com/matzehuels/calgrid/pkg/errors"
)

const icsDateLayout = "20060102"

// ReadICS decodes the VEVENT components of an iCalendar stream.
//
// SUMMARY becomes the title. Only the date part of DTSTART and DTEND is
// used, exactly as written, so no time zone conversion takes place. DTEND
// of an all-day event is exclusive and is moved back one day; a missing
// DTEND makes a single-day event. STATUS:TENTATIVE maps to Possible.
// Recurrence rules are ignored.
func ReadICS(r io.Reader) ([]calendar.Event, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode ics")
	}

	vevents := cal.Events()
	events := make([]calendar.Event, 0, len(vevents))
	for i, ve := range vevents {
		e, err := icsEvent(ve)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "event %d", i)
		}
		events = append(events, e)
	}
	return events, nil
}

func icsEvent(ve *ical.VEvent) (calendar.Event, error) {
	var e calendar.Event
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		e.Title = p.Value
	}

	startProp := ve.GetProperty(ical.ComponentPropertyDtStart)
	if startProp == nil {
		return e, fmt.Errorf("missing DTSTART")
	}
	start, allDay, err := icsDate(startProp)
	if err != nil {
		return e, fmt.Errorf("DTSTART: %w", err)
	}
	e.Start, e.End = start, start

	if endProp := ve.GetProperty(ical.ComponentPropertyDtEnd); endProp != nil {
		end, _, err := icsDate(endProp)
		if err != nil {
			return e, fmt.Errorf("DTEND: %w", err)
		}
		if allDay {
			end = end.AddDays(-1)
		}
		// A zero-length all-day event still covers its start day.
		e.End = calendar.MaxDate(start, end)
	}

	if p := ve.GetProperty(ical.ComponentPropertyStatus); p != nil && strings.EqualFold(p.Value, "TENTATIVE") {
		e.Certainty = calendar.Possible
	}
	return e, nil
}

// icsDate returns the calendar day of a DATE or DATE-TIME property and
// whether it is a DATE value.
func icsDate(p *ical.IANAProperty) (calendar.Date, bool, error) {
	val := strings.TrimSpace(p.Value)
	allDay := !strings.Contains(val, "T")
	if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		allDay = true
	}
	if len(val) < len(icsDateLayout) {
		return calendar.Date{}, allDay, fmt.Errorf("malformed date %q", val)
	}
	t, err := time.Parse(icsDateLayout, val[:len(icsDateLayout)])
	if err != nil {
		return calendar.Date{}, allDay, fmt.Errorf("malformed date %q", val)
	}
	return calendar.DateOf(t), allDay, nil
}

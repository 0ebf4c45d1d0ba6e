package io

import (
	"io"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/calgrid/pkg/calendar"
	"github.com/matzehuels/calgrid/pkg/errors"
)

// ReadTOML decodes [[events]] tables from r. Dates may be written as TOML
// local dates (start = 2024-01-01) or as strings.
func ReadTOML(r io.Reader) ([]calendar.Event, error) {
	var list eventList
	if _, err := toml.NewDecoder(r).Decode(&list); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode toml")
	}
	return toEvents(list.Events)
}

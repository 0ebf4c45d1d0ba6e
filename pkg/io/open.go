package io

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/calgrid/pkg/calendar"
	"github.com/matzehuels/calgrid/pkg/errors"
	"github.com/matzehuels/calgrid/pkg/httputil"
)

// Stdin is the input name that selects standard input.
const Stdin = "-"

// Open resolves name to a reader: [Stdin] reads standard input, http and
// https URLs are fetched with retry, and anything else is opened as a file.
// The caller closes the returned reader.
func Open(ctx context.Context, name string) (io.ReadCloser, error) {
	switch {
	case name == Stdin:
		return io.NopCloser(os.Stdin), nil
	case errors.IsURL(name):
		body, err := httputil.Fetch(ctx, name)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(bytes.NewReader(body)), nil
	default:
		f, err := os.Open(name)
		if err != nil {
			return nil, openError(name, err)
		}
		return f, nil
	}
}

// ReadSource returns the full contents of the named input. See [Open].
func ReadSource(ctx context.Context, name string) ([]byte, error) {
	rc, err := Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

// Load opens name and decodes it. An empty format is inferred from the name.
func Load(ctx context.Context, name string, f Format) ([]calendar.Event, error) {
	rc, err := Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	if f == "" {
		f = FormatFromName(name)
	}
	events, err := Decode(f, name, rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return events, nil
}

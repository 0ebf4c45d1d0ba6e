package io

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/calgrid/pkg/calendar"
	"github.com/matzehuels/calgrid/pkg/errors"
)

// Format identifies an event list encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatHCL  Format = "hcl"
	FormatICS  Format = "ics"
)

// Formats lists every supported input format.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML, FormatHCL, FormatICS}

var extFormats = map[string]Format{
	".json": FormatJSON,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".toml": FormatTOML,
	".hcl":  FormatHCL,
	".ics":  FormatICS,
	".ical": FormatICS,
}

// FormatFromName guesses the format from a file name or URL path.
// Unknown extensions, stdin ("-") and names without extension are JSON.
func FormatFromName(name string) Format {
	if i := strings.IndexAny(name, "?#"); i >= 0 && errors.IsURL(name) {
		name = name[:i]
	}
	if f, ok := extFormats[strings.ToLower(filepath.Ext(name))]; ok {
		return f
	}
	return FormatJSON
}

// ParseFormat parses a format name such as "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if f, ok := extFormats["."+s]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown input format %q (supported: json, yaml, toml, hcl, ics)", s)
}

// FormatFromContentType maps a MIME type to a format. It reports false when
// the type is not one calgrid recognizes.
func FormatFromContentType(ct string) (Format, bool) {
	ct = strings.ToLower(strings.TrimSpace(strings.Split(ct, ";")[0]))
	switch ct {
	case "application/json", "text/json":
		return FormatJSON, true
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return FormatYAML, true
	case "application/toml", "text/toml":
		return FormatTOML, true
	case "application/hcl", "text/hcl":
		return FormatHCL, true
	case "text/calendar":
		return FormatICS, true
	}
	return "", false
}

// Decode reads events from r using the decoder for f. The name is only
// used in diagnostics.
func Decode(f Format, name string, r io.Reader) ([]calendar.Event, error) {
	switch f {
	case FormatJSON, "":
		return ReadJSON(r)
	case FormatYAML:
		return ReadYAML(r)
	case FormatTOML:
		return ReadTOML(r)
	case FormatHCL:
		src, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		return ReadHCL(name, src)
	case FormatICS:
		return ReadICS(r)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported input format %q", f)
	}
}

func openError(path string, err error) error {
	if os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	return errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
}

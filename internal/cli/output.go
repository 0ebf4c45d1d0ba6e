package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	apperrors "github.com/matzehuels/calgrid/pkg/errors"
)

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for path, or stdout when path is "-".
// An existing file is overwritten.
func openOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{stdout}, nil
	}
	if err := apperrors.ValidatePath(path); err != nil {
		return nil, err
	}
	return os.Create(path)
}

// artifactWriteParams describes where rendered artifacts go.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string // a file (one format), a base path, "-" for stdout, or empty
	stdout    io.Writer
}

// writeArtifacts writes each requested format and returns the paths written,
// in format order. With a single format an explicit output is used verbatim;
// otherwise files are named <base>.<format>.
func writeArtifacts(p artifactWriteParams) ([]string, error) {
	if p.output == "-" && len(p.formats) != 1 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "stdout output needs exactly one format, got %d", len(p.formats))
	}

	var written []string
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			return written, fmt.Errorf("no %s output was rendered", format)
		}
		path := p.output
		if path == "" || len(p.formats) > 1 {
			path = basePath(p.output, p.input) + "." + format
			if p.output == "" && filepath.Clean(path) == filepath.Clean(p.input) {
				return written, apperrors.New(apperrors.ErrCodeInvalidPath, "%s output would overwrite the input %s; pass -o", format, p.input)
			}
		}
		if err := writeFile(path, data, p.stdout); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func writeFile(path string, data []byte, stdout io.Writer) error {
	out, err := openOutput(path, stdout)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return out.Close()
}

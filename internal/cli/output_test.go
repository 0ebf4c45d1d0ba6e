package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"testing"

	apperrors "github.com/matzehuels/calgrid/pkg/errors"
)

func TestWriteArtifacts(t *testing.T) {
	artifacts := map[string][]byte{
		"html": []byte("<html>"),
		"svg":  []byte("<svg>"),
	}

	tests := []struct {
		name    string
		formats []string
		output  string
		want    []string // relative to the temp dir
	}{
		{"derived single", []string{"html"}, "", []string{"events.html"}},
		{"derived multiple", []string{"html", "svg"}, "", []string{"events.html", "events.svg"}},
		{"explicit file", []string{"svg"}, "chart.out", []string{"chart.out"}},
		{"explicit base", []string{"html", "svg"}, "chart.svg", []string{"chart.html", "chart.svg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			output := tt.output
			if output != "" {
				output = filepath.Join(dir, output)
			}
			got, err := writeArtifacts(artifactWriteParams{
				artifacts: artifacts,
				formats:   tt.formats,
				input:     filepath.Join(dir, "events.yaml"),
				output:    output,
			})
			if err != nil {
				t.Fatal(err)
			}
			var want []string
			for _, w := range tt.want {
				want = append(want, filepath.Join(dir, w))
			}
			if !slices.Equal(got, want) {
				t.Fatalf("written = %v, want %v", got, want)
			}
			for _, p := range got {
				if _, err := os.Stat(p); err != nil {
					t.Errorf("%s not written: %v", p, err)
				}
			}
		})
	}
}

func TestWriteArtifactsStdout(t *testing.T) {
	var buf bytes.Buffer
	got, err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"txt": []byte("grid\n")},
		formats:   []string{"txt"},
		input:     "events.json",
		output:    "-",
		stdout:    &buf,
	})
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != "grid\n" || !slices.Equal(got, []string{"-"}) {
		t.Errorf("stdout = %q, written = %v", buf.String(), got)
	}
}

func TestWriteArtifactsErrors(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "events.json")

	_, err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"json": []byte("{}")},
		formats:   []string{"json"},
		input:     input,
	})
	if !apperrors.Is(err, apperrors.ErrCodeInvalidPath) {
		t.Errorf("overwriting input: err = %v, want INVALID_PATH", err)
	}

	_, err = writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{},
		formats:   []string{"svg"},
		input:     input,
	})
	if err == nil {
		t.Error("missing artifact should fail")
	}

	_, err = writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"svg": nil},
		formats:   []string{"svg"},
		input:     input,
		output:    filepath.Join(dir, "bad\x01name.svg"),
	})
	if !apperrors.Is(err, apperrors.ErrCodeInvalidPath) {
		t.Errorf("control char path: err = %v, want INVALID_PATH", err)
	}
}

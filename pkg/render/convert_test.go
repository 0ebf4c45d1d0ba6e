package render

import (
	"context"
	"testing"

	"github.com/matzehuels/calgrid/pkg/errors"
)

func TestConvertWithoutRSVG(t *testing.T) {
	old := rsvgBinary
	rsvgBinary = "calgrid-no-such-converter"
	defer func() { rsvgBinary = old }()

	if HasRSVG() {
		t.Fatal("HasRSVG should be false for a missing binary")
	}
	_, err := ToPDF(context.Background(), []byte("<svg/>"))
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPDF error = %v, want UNSUPPORTED", err)
	}
	_, err = ToPNG(context.Background(), []byte("<svg/>"), 2)
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPNG error = %v, want UNSUPPORTED", err)
	}
}

func TestToPNG(t *testing.T) {
	if !HasRSVG() {
		t.Skip("rsvg-convert not installed")
	}
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><rect width="10" height="10" fill="#AAE9E5"/></svg>`)
	png, err := ToPNG(context.Background(), svg, 1)
	if err != nil {
		t.Fatalf("ToPNG: %v", err)
	}
	if len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Errorf("output is not a PNG: % x", png[:min(8, len(png))])
	}
}

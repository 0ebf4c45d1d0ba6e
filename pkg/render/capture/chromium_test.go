package capture

import (
	"context"
	"encoding/base64"
	"os"
	"strings"
	"testing"

	"github.com/matzehuels/calgrid/pkg/errors"
)

func TestDataURL(t *testing.T) {
	u := dataURL([]byte("<p>hi</p>"))
	const prefix = "data:text/html;charset=utf-8;base64,"
	if !strings.HasPrefix(u, prefix) {
		t.Fatalf("dataURL = %q", u)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(u, prefix))
	if err != nil || string(raw) != "<p>hi</p>" {
		t.Errorf("payload = %q, %v", raw, err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	var o Options
	o.defaults()
	if o.Width != DefaultWidth || o.Height != DefaultHeight || o.Timeout != DefaultTimeout {
		t.Errorf("defaults = %+v", o)
	}
}

func TestScreenshotEmpty(t *testing.T) {
	_, err := Screenshot(context.Background(), nil, Options{})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}

func TestScreenshot(t *testing.T) {
	if os.Getenv("CALGRID_TEST_CHROMIUM") == "" {
		t.Skip("CALGRID_TEST_CHROMIUM not set")
	}
	html := []byte(`<html><body><div data-ready="true">calendar</div></body></html>`)
	png, err := Screenshot(context.Background(), html, Options{Width: 200, Height: 100})
	if err != nil {
		t.Fatalf("Screenshot: %v", err)
	}
	if len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Error("output is not a PNG")
	}
}

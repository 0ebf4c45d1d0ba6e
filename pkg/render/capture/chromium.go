// Package capture screenshots rendered HTML with headless Chromium.
//
// It backs the "chromium" PNG engine: instead of converting the SVG sink
// with rsvg-convert, the HTML page is loaded into a headless browser and
// captured as it would look in a browser tab.
package capture

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/matzehuels/calgrid/pkg/errors"
)

// Default capture parameters.
const (
	DefaultWidth   = 1280
	DefaultHeight  = 800
	DefaultTimeout = 30 * time.Second
	DefaultQuality = 100
)

// readySelector matches the root element the HTML sink marks as rendered.
const readySelector = `[data-ready="true"]`

// Options defines parameters for a screenshot.
type Options struct {
	// Width and Height are the viewport size in pixels. The screenshot
	// covers the full page, so Height only affects the initial layout.
	Width  int
	Height int

	// Timeout bounds the whole capture, browser start-up included.
	Timeout time.Duration

	// ExecPath overrides the Chromium binary. Empty searches the usual
	// install locations.
	ExecPath string
}

func (o *Options) defaults() {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
}

// Screenshot loads html into a headless Chromium tab, waits for the
// rendered marker and returns a full-page PNG.
func Screenshot(parent context.Context, html []byte, opts Options) ([]byte, error) {
	if len(html) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "capture: empty document")
	}
	opts.defaults()

	allocOpts := chromedp.DefaultExecAllocatorOptions[:]
	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, allocOpts...)
	defer cancelAlloc()

	ctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	ctx, timeoutCancel := context.WithTimeout(ctx, opts.Timeout)
	defer timeoutCancel()

	var png []byte
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(opts.Width), int64(opts.Height)),
		chromedp.Navigate(dataURL(html)),
		chromedp.WaitVisible(readySelector, chromedp.ByQuery),
		chromedp.FullScreenshot(&png, DefaultQuality),
	}
	if err := chromedp.Run(ctx, tasks); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.Wrap(errors.ErrCodeTimeout, err, "capture: chromium did not finish within %s", opts.Timeout)
		}
		return nil, errors.Wrap(errors.ErrCodeUnsupported, err, "capture: chromium")
	}
	return png, nil
}

func dataURL(html []byte) string {
	return fmt.Sprintf("data:text/html;charset=utf-8;base64,%s", base64.StdEncoding.EncodeToString(html))
}

package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/calgrid/pkg/cache"
	"github.com/matzehuels/calgrid/pkg/calendar"
	"github.com/matzehuels/calgrid/pkg/errors"
	calio "github.com/matzehuels/calgrid/pkg/io"
	"github.com/matzehuels/calgrid/pkg/observability"
)

// ParseWithCacheInfo reads and decodes the input. Only remote inputs are
// cached; the returned flag reports whether their bytes came from cache.
func (r *Runner) ParseWithCacheInfo(ctx context.Context, opts Options) (events []calendar.Event, hit bool, err error) {
	if err := opts.ValidateForParse(); err != nil {
		return nil, false, err
	}

	format := opts.ResolvedInputFormat()
	source := opts.Input
	if source == "" {
		source = "(inline)"
	}

	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, source, string(format))
	start := time.Now()
	defer func() {
		hooks.OnParseComplete(ctx, source, string(format), len(events), time.Since(start), err)
	}()

	data, hit, err := r.readInput(ctx, opts)
	if err != nil {
		return nil, false, err
	}

	events, err = calio.Decode(format, source, bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", source, err)
	}
	return events, hit, nil
}

// readInput returns the raw input bytes, going through the HTTP cache for
// URLs unless opts.Refresh is set.
func (r *Runner) readInput(ctx context.Context, opts Options) ([]byte, bool, error) {
	if opts.Data != nil {
		return opts.Data, false, nil
	}
	if !errors.IsURL(opts.Input) {
		data, err := calio.ReadSource(ctx, opts.Input)
		return data, false, err
	}

	key := r.Keyer.HTTPKey("input", opts.Input)
	if !opts.Refresh {
		if data, ok := r.cached(ctx, "input", key); ok {
			opts.Logger.Debug("using cached input", "url", opts.Input)
			return data, true, nil
		}
	}

	data, err := calio.ReadSource(ctx, opts.Input)
	if err != nil {
		return nil, false, err
	}
	r.store(ctx, "input", key, data, cache.TTLHTTP)
	return data, false, nil
}

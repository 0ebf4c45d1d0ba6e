package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/matzehuels/calgrid/pkg/cache"
	"github.com/matzehuels/calgrid/pkg/calendar"
	calio "github.com/matzehuels/calgrid/pkg/io"
	"github.com/matzehuels/calgrid/pkg/layout"
	"github.com/matzehuels/calgrid/pkg/observability"
)

// LayoutWithCacheInfo packs events into a grid with caching and returns
// cache hit info. The cache key covers the canonical encoding of the events,
// so the same events decoded from different files share one entry.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, events []calendar.Event, opts Options) (g *layout.Grid, hit bool, err error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, false, err
	}
	if err := opts.CheckLimits(events); err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, len(events))
	start := time.Now()
	defer func() {
		rows := 0
		if g != nil {
			rows = g.NumRows()
		}
		hooks.OnLayoutComplete(ctx, rows, time.Since(start), err)
	}()

	var buf bytes.Buffer
	if err := calio.WriteJSON(events, &buf); err != nil {
		return nil, false, err
	}
	key := r.Keyer.GridKey(cache.Hash(buf.Bytes()), opts.GridKeyOpts())

	if data, ok := r.cached(ctx, "grid", key); ok {
		if cached, err := layout.UnmarshalGrid(data); err == nil {
			return cached, true, nil
		}
		// Unreadable entries are recomputed and overwritten.
	}

	g = layout.Build(events, layout.WithPalette(opts.Palette))
	for _, c := range g.Conflicts() {
		opts.Logger.Warn("layout overwrote an entry", "row", c.Row, "date", c.Date, "replaced", c.Replaced.Title, "by", c.By.Title)
	}

	if data, err := layout.MarshalGrid(g); err == nil {
		r.store(ctx, "grid", key, data, cache.TTLGrid)
	}
	return g, false, nil
}

package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/calgrid/pkg/cache"
	"github.com/matzehuels/calgrid/pkg/layout"
	"github.com/matzehuels/calgrid/pkg/observability"
	"github.com/matzehuels/calgrid/pkg/render/capture"
	"github.com/matzehuels/calgrid/pkg/render/overlap"
	"github.com/matzehuels/calgrid/pkg/render/sink"
)

// RenderWithCacheInfo generates artifacts with caching and returns cache hit
// info. The hit flag is set only when every requested format was cached.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g *layout.Grid, opts Options) (artifacts map[string][]byte, hit bool, err error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.VizType, opts.Formats)
	start := time.Now()
	defer func() {
		hooks.OnRenderComplete(ctx, opts.VizType, opts.Formats, time.Since(start), err)
	}()

	gridData, err := layout.MarshalGrid(g)
	if err != nil {
		return nil, false, fmt.Errorf("serialize grid for cache key: %w", err)
	}
	gridHash := cache.Hash(gridData)

	artifacts = make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(gridHash, opts.ArtifactKeyOpts(format))
		if data, ok := r.cached(ctx, "artifact", key); ok {
			artifacts[format] = data
		} else {
			missing = append(missing, format)
		}
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	renderOpts := opts
	renderOpts.Formats = missing
	rendered, err := Render(ctx, g, renderOpts)
	if err != nil {
		return nil, false, err
	}
	for format, data := range rendered {
		artifacts[format] = data
		r.store(ctx, "artifact", r.Keyer.ArtifactKey(gridHash, opts.ArtifactKeyOpts(format)), data, cache.TTLArtifact)
	}
	return artifacts, false, nil
}

// Render generates output artifacts in the requested formats without caching.
func Render(ctx context.Context, g *layout.Grid, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	if opts.IsOverlap() {
		return renderOverlap(ctx, g, opts)
	}
	return renderGrid(ctx, g, opts)
}

// renderGrid generates the calendar grid outputs.
func renderGrid(ctx context.Context, g *layout.Grid, opts Options) (map[string][]byte, error) {
	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatHTML:
			data, err = sink.RenderHTML(g, buildHTMLOptions(opts)...)
		case FormatSVG:
			data = sink.RenderSVG(g, svgOpts...)
		case FormatJSON:
			data, err = sink.RenderJSON(g)
		case FormatText:
			textOpts := []sink.TextOption{sink.WithoutColor()}
			if opts.Title != "" {
				textOpts = append(textOpts, sink.WithTextTitle(opts.Title))
			}
			data = []byte(sink.RenderText(g, textOpts...))
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, g, svgOpts...)
		case FormatPNG:
			data, err = renderGridPNG(ctx, g, opts, svgOpts)
		default:
			return nil, fmt.Errorf("unsupported grid format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// pngScale renders PNGs at 2x resolution.
const pngScale = 2.0

// renderGridPNG rasterizes the grid with the configured engine.
func renderGridPNG(ctx context.Context, g *layout.Grid, opts Options, svgOpts []sink.SVGOption) ([]byte, error) {
	if opts.PNGEngine == PNGEngineChromium {
		html, err := sink.RenderHTML(g, buildHTMLOptions(opts)...)
		if err != nil {
			return nil, err
		}
		return capture.Screenshot(ctx, html, capture.Options{})
	}
	return sink.RenderPNG(ctx, g, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(pngScale))
}

// renderOverlap generates the overlap graph outputs.
func renderOverlap(ctx context.Context, g *layout.Grid, opts Options) (map[string][]byte, error) {
	dot := overlap.ToDOT(g, overlap.Options{Detailed: opts.Detailed})
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatDOT:
			data = []byte(dot)
		case FormatSVG:
			data, err = overlap.RenderSVG(ctx, dot)
		case FormatPNG:
			data, err = overlap.RenderPNG(ctx, dot, pngScale)
		case FormatPDF:
			data, err = overlap.RenderPDF(ctx, dot)
		case FormatJSON:
			data, err = overlap.MarshalGraph(g)
		default:
			return nil, fmt.Errorf("unsupported overlap format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func buildSVGOptions(opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption
	if opts.Title != "" {
		svgOpts = append(svgOpts, sink.WithSVGTitle(opts.Title))
	}
	if opts.Weekends {
		svgOpts = append(svgOpts, sink.WithSVGWeekends())
	}
	return svgOpts
}

func buildHTMLOptions(opts Options) []sink.HTMLOption {
	var htmlOpts []sink.HTMLOption
	if opts.Title != "" {
		htmlOpts = append(htmlOpts, sink.WithHTMLTitle(opts.Title))
	}
	if opts.Weekends {
		htmlOpts = append(htmlOpts, sink.WithHTMLWeekends())
	}
	return htmlOpts
}

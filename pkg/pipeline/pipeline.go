// Package pipeline provides the parse → layout → render flow of calgrid.
//
// The CLI and the HTTP server both go through this package so that input
// decoding, caching and artifact generation behave the same for every entry
// point.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: read the input (file, URL, stdin or inline data) and decode events
//  2. Layout: pack the events into a [layout.Grid]
//  3. Render: produce artifacts (HTML, SVG, JSON, text, PDF, PNG, DOT)
//
// Each stage can be run on its own and each is cached independently.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:   "events.yaml",
//	    Formats: []string{"html", "svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	html := result.Artifacts["html"]
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/calgrid/pkg/cache"
	"github.com/matzehuels/calgrid/pkg/calendar"
	"github.com/matzehuels/calgrid/pkg/errors"
	calio "github.com/matzehuels/calgrid/pkg/io"
	"github.com/matzehuels/calgrid/pkg/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and server
// =============================================================================

// Visualization types.
const (
	VizTypeGrid    = "grid"
	VizTypeOverlap = "overlap"
)

// PNG engines.
const (
	PNGEngineRSVG     = "rsvg"
	PNGEngineChromium = "chromium"
)

// Output formats.
const (
	FormatHTML = "html"
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatText = "txt"
	FormatPDF  = "pdf"
	FormatPNG  = "png"
	FormatDOT  = "dot"
)

const (
	DefaultVizType   = VizTypeGrid
	DefaultPNGEngine = PNGEngineRSVG
)

// DefaultFormats is used when no output format is requested.
var DefaultFormats = []string{FormatHTML}

// ValidFormats is the set of supported output formats per visualization type.
var ValidFormats = map[string][]string{
	VizTypeGrid:    {FormatHTML, FormatSVG, FormatJSON, FormatText, FormatPDF, FormatPNG},
	VizTypeOverlap: {FormatSVG, FormatDOT, FormatJSON, FormatPDF, FormatPNG},
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
type Options struct {
	// Parse options
	Input       string `json:"input,omitempty"`        // file path, URL or "-"
	Data        []byte `json:"-"`                      // inline input; Input then only names it
	InputFormat string `json:"input_format,omitempty"` // json, yaml, toml, hcl or ics; inferred when empty
	Refresh     bool   `json:"refresh,omitempty"`      // bypass cached remote inputs

	// Layout options
	Palette   []string `json:"palette,omitempty"`
	MaxDays   int      `json:"max_days,omitempty"`   // cap on the calendar range; 0 means unlimited
	MaxEvents int      `json:"max_events,omitempty"` // cap on the event count; 0 means unlimited

	// Render options
	VizType   string   `json:"viz_type,omitempty"`
	Formats   []string `json:"formats,omitempty"`
	Title     string   `json:"title,omitempty"`
	Weekends  bool     `json:"weekends,omitempty"`
	PNGEngine string   `json:"png_engine,omitempty"`
	Detailed  bool     `json:"detailed,omitempty"` // overlap: label nodes with their date range

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Events are the decoded input events, in input order.
	Events []calendar.Event

	// Grid is the packed calendar grid.
	Grid *layout.Grid

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	EventCount int
	RowCount   int
	DayCount   int
	Dropped    int
	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ParseHit  bool // remote input bytes came from cache
	LayoutHit bool // grid came from cache
	RenderHit bool // every artifact came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if _, ok := ValidFormats[vizType]; !ok {
		return errors.New(errors.ErrCodeInvalidVizType,
			"invalid viz_type: %q (must be one of: grid, overlap)", vizType)
	}
	return nil
}

// ValidateFormat checks that format can be produced for vizType.
func ValidateFormat(vizType, format string) error {
	valid := ValidFormats[vizType]
	if !slices.Contains(valid, format) {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format for %s: %q (must be one of: %s)", vizType, format, strings.Join(valid, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid for vizType.
func ValidateFormats(vizType string, formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(vizType, f); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePNGEngine checks that engine names a known PNG engine.
func ValidatePNGEngine(engine string) error {
	if engine != PNGEngineRSVG && engine != PNGEngineChromium {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid png engine: %q (must be one of: rsvg, chromium)", engine)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForParse(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForParse checks the input fields.
func (o *Options) ValidateForParse() error {
	if o.Input == "" && o.Data == nil {
		return errors.New(errors.ErrCodeInvalidInput, "input is required")
	}
	if o.InputFormat != "" {
		if _, err := calio.ParseFormat(o.InputFormat); err != nil {
			return err
		}
	}
	o.setLogger()
	return nil
}

// ValidateForLayout checks the palette.
func (o *Options) ValidateForLayout() error {
	if err := layout.ValidatePalette(o.Palette); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPalette, err, "invalid palette")
	}
	if o.MaxDays < 0 || o.MaxEvents < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "layout limits must not be negative")
	}
	o.setLogger()
	return nil
}

// CheckLimits rejects inputs with more than MaxEvents events or whose
// calendar range is longer than MaxDays.
func (o *Options) CheckLimits(events []calendar.Event) error {
	if o.MaxEvents > 0 && len(events) > o.MaxEvents {
		return errors.New(errors.ErrCodeInvalidInput, "%d events (max %d)", len(events), o.MaxEvents)
	}
	if o.MaxDays > 0 {
		if n := layout.Span(events); n > o.MaxDays {
			return errors.New(errors.ErrCodeInvalidInput, "events span %d days (max %d)", n, o.MaxDays)
		}
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if len(o.Formats) == 0 {
		o.Formats = slices.Clone(DefaultFormats)
		if o.VizType == VizTypeOverlap {
			o.Formats = []string{FormatSVG}
		}
	}
	if o.PNGEngine == "" {
		o.PNGEngine = DefaultPNGEngine
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.VizType, o.Formats); err != nil {
		return err
	}
	return ValidatePNGEngine(o.PNGEngine)
}

// IsOverlap returns true if this is an overlap graph visualization.
func (o *Options) IsOverlap() bool {
	return o.VizType == VizTypeOverlap
}

// ResolvedInputFormat returns the explicit input format or the one inferred
// from the input name.
func (o *Options) ResolvedInputFormat() calio.Format {
	if o.InputFormat != "" {
		if f, err := calio.ParseFormat(o.InputFormat); err == nil {
			return f
		}
	}
	return calio.FormatFromName(o.Input)
}

// GridKeyOpts returns cache key options for the layout stage.
func (o *Options) GridKeyOpts() cache.GridKeyOpts {
	return cache.GridKeyOpts{
		Format:  string(o.ResolvedInputFormat()),
		Palette: o.Palette,
	}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format:   format,
		VizType:  o.VizType,
		Title:    o.Title,
		Weekends: o.Weekends,
	}
	if format == FormatPNG {
		opts.PNGEngine = o.PNGEngine
	}
	if o.IsOverlap() {
		opts.Detailed = o.Detailed
	}
	return opts
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

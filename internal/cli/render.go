package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/calgrid/pkg/layout"
	"github.com/matzehuels/calgrid/pkg/pipeline"
)

// renderFlags holds the flags shared by render and visualize.
type renderFlags struct {
	formats   string
	output    string
	vizType   string
	title     string
	pngEngine string
	weekends  bool
	detailed  bool
	noCache   bool
	stdout    bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s), comma-separated (grid: html, svg, json, txt, pdf, png; overlap: svg, dot, json, pdf, png)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", `output file (one format), base path (several), or "-" for stdout`)
	cmd.Flags().StringVarP(&f.vizType, "type", "t", "", "visualization type: grid (default), overlap")
	cmd.Flags().StringVar(&f.title, "title", "", "title shown above the grid")
	cmd.Flags().StringVar(&f.pngEngine, "png-engine", "", "PNG renderer: rsvg (default), chromium")
	cmd.Flags().BoolVar(&f.weekends, "weekends", false, "shade Saturdays and Sundays")
	cmd.Flags().BoolVar(&f.detailed, "detailed", false, "label overlap nodes with their date range")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.stdout, "stdout", false, `write the single output format to stdout (same as -o -)`)
}

// apply copies explicitly set flags over opts, which carries config defaults.
func (f *renderFlags) apply(cmd *cobra.Command, opts *pipeline.Options, configFormats []string) {
	if f.stdout {
		f.output = "-"
	}
	opts.VizType = f.vizType
	opts.Detailed = f.detailed
	if formats := parseFormats(f.formats); formats != nil {
		opts.Formats = formats
	} else if opts.VizType == "" || opts.VizType == pipeline.VizTypeGrid {
		opts.Formats = configFormats
	}
	if cmd.Flags().Changed("title") {
		opts.Title = f.title
	}
	if cmd.Flags().Changed("png-engine") {
		opts.PNGEngine = f.pngEngine
	}
	if cmd.Flags().Changed("weekends") {
		opts.Weekends = f.weekends
	}
}

// statusWriter is where progress lines go: stderr when the artifact itself
// is streamed to stdout.
func (f *renderFlags) statusWriter(cmd *cobra.Command) io.Writer {
	if f.output == "-" {
		return cmd.ErrOrStderr()
	}
	return cmd.OutOrStdout()
}

// renderCommand creates the one-step events → artifacts command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags       renderFlags
		palette     string
		inputFormat string
		refresh     bool
	)

	cmd := &cobra.Command{
		Use:   "render [events-file|url|-]",
		Short: "Lay out and render calendar events in one step",
		Long: `Lay out and render calendar events in one step.

The input is a JSON, YAML, TOML, HCL or iCalendar file, an http(s) URL, or "-"
for stdin. The format is inferred from the file extension unless
--input-format is given.

Examples:
  calgrid render events.yaml
  calgrid render team.ics -f html,pdf -o out/team
  calgrid render https://example.com/cal.ics -f txt -o -
  calgrid render events.json -t overlap -f dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions()
			opts.Input = args[0]
			opts.InputFormat = inputFormat
			opts.Refresh = refresh
			if p := parseFormats(palette); p != nil {
				opts.Palette = p
			}
			flags.apply(cmd, &opts, c.settings().Formats)
			if opts.Input == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				opts.Data = data
			}
			return c.runRender(cmd, opts, &flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&palette, "palette", "", "comma-separated #rrggbb colours assigned to events in order")
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "input format: json, yaml, toml, hcl, ics (default: from extension)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "refetch remote inputs instead of using the cache")

	return cmd
}

// runRender executes the full pipeline and writes the artifacts.
func (c *CLI) runRender(cmd *cobra.Command, opts pipeline.Options, flags *renderFlags) error {
	ctx := cmd.Context()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	status := flags.statusWriter(cmd)
	spinner := newSpinner(ctx, cmd.ErrOrStderr(), "Rendering "+displayName(opts.Input)+"...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return ctxErr(ctx, err)
	}
	spinner.Stop()

	paths, err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     opts.Input,
		output:    flags.output,
		stdout:    cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	p := newPrinter(status)
	warnConflicts(p, result.Grid)
	p.success("Rendered %s", strings.Join(opts.Formats, ", "))
	for _, path := range paths {
		if path != "-" {
			p.file(path)
		}
	}
	p.stats(result.Stats.EventCount, result.Stats.RowCount, result.Stats.DayCount, result.CacheInfo.RenderHit)
	return nil
}

// warnConflicts summarises cells that a later event overwrote.
func warnConflicts(p printer, g *layout.Grid) {
	if n := len(g.Conflicts()); n > 0 {
		p.warning("%d grid cells were overwritten by overlapping events", n)
	}
}

// displayName shortens an input for progress messages.
func displayName(input string) string {
	if input == "-" {
		return "stdin"
	}
	return input
}

// ctxErr returns ctx.Err() in preference to err, so an interrupted command
// reports cancellation rather than whichever stage noticed it.
func ctxErr(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/calgrid/pkg/layout"
	"github.com/matzehuels/calgrid/pkg/pipeline"
)

// gridSuffix names stored grids: events.yaml → events.grid.json.
const gridSuffix = ".grid.json"

// layoutCommand creates the layout command for packing events into a grid.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output      string
		palette     string
		inputFormat string
		refresh     bool
		noCache     bool
	)

	cmd := &cobra.Command{
		Use:   "layout [events-file|url|-]",
		Short: "Pack calendar events into a grid and store it",
		Long: `Pack calendar events into a grid and store it.

The layout command reads events and writes the packed grid as
<input>.grid.json. The stored grid can be rendered later with 'visualize'
or inspected with 'browse' without re-reading the events.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions()
			opts.Input = args[0]
			opts.InputFormat = inputFormat
			opts.Refresh = refresh
			if p := parseFormats(palette); p != nil {
				opts.Palette = p
			}
			if opts.Input == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				opts.Data = data
			}
			return c.runLayout(cmd, opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.grid.json)")
	cmd.Flags().StringVar(&palette, "palette", "", "comma-separated #rrggbb colours assigned to events in order")
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "input format: json, yaml, toml, hcl, ics (default: from extension)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "refetch remote inputs instead of using the cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runLayout parses the events, computes the grid and writes it to disk.
func (c *CLI) runLayout(cmd *cobra.Command, opts pipeline.Options, output string, noCache bool) error {
	ctx := cmd.Context()
	if err := opts.ValidateForParse(); err != nil {
		return err
	}
	if err := opts.ValidateForLayout(); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	spinner := newSpinner(ctx, cmd.ErrOrStderr(), "Reading "+displayName(opts.Input)+"...")
	spinner.Start()

	events, _, err := runner.ParseWithCacheInfo(ctx, opts)
	if err != nil {
		spinner.StopWithError("Parse failed")
		return ctxErr(ctx, err)
	}

	spinner.SetMessage(fmt.Sprintf("Packing %d events...", len(events)))
	g, cacheHit, err := runner.LayoutWithCacheInfo(ctx, events, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return ctxErr(ctx, err)
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Packed %d events into %d rows", len(events), g.NumRows()))

	outputPath := output
	if outputPath == "" {
		outputPath = basePath("", opts.Input) + gridSuffix
	}
	if err := layout.WriteGridFile(g, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	stats := g.Stats()
	p := newPrinter(cmd.OutOrStdout())
	warnConflicts(p, g)
	if stats.Dropped > 0 {
		p.warning("%d events end before they start and were skipped", stats.Dropped)
	}
	p.success("Layout complete")
	p.file(outputPath)
	p.stats(stats.Events, stats.Rows, stats.Days, cacheHit)
	p.nextStep("Render", appName+" visualize "+outputPath)
	return nil
}

// gridBase strips the stored-grid suffix so artifacts rendered from
// events.grid.json are named events.<format>.
func gridBase(path string) string {
	if base, ok := strings.CutSuffix(path, gridSuffix); ok {
		return base
	}
	return path
}

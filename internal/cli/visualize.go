package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/calgrid/pkg/layout"
	"github.com/matzehuels/calgrid/pkg/pipeline"
)

// visualizeCommand creates the visualize command for rendering a stored grid.
func (c *CLI) visualizeCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "visualize [grid.json]",
		Short: "Render a stored grid",
		Long: `Render a stored grid.

The visualize command takes a .grid.json file (produced by 'layout') and
renders it. The grid already fixes which row every event occupies and which
colour it has, so this step is purely about drawing.

Use 'render' as a shortcut to go directly from events to output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions()
			opts.Input = args[0]
			flags.apply(cmd, &opts, c.settings().Formats)
			return c.runVisualize(cmd, opts, &flags)
		},
	}

	flags.register(cmd)
	return cmd
}

// runVisualize loads the grid and renders it.
func (c *CLI) runVisualize(cmd *cobra.Command, opts pipeline.Options, flags *renderFlags) error {
	ctx := cmd.Context()
	if err := opts.ValidateForRender(); err != nil {
		return err
	}

	g, err := layout.ReadGridFile(opts.Input)
	if err != nil {
		return fmt.Errorf("load grid %s: %w", opts.Input, err)
	}

	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	spinner := newSpinner(ctx, cmd.ErrOrStderr(), "Rendering "+opts.VizType+"...")
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, g, opts)
	if err != nil {
		spinner.StopWithError("Visualization failed")
		return ctxErr(ctx, err)
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %d %s artifacts", len(artifacts), opts.VizType))

	paths, err := writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		input:     gridBase(opts.Input),
		output:    flags.output,
		stdout:    cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	stats := g.Stats()
	p := newPrinter(flags.statusWriter(cmd))
	p.success("Rendered %s", strings.Join(opts.Formats, ", "))
	for _, path := range paths {
		if path != "-" {
			p.file(path)
		}
	}
	p.stats(stats.Events, stats.Rows, stats.Days, cacheHit)
	return nil
}

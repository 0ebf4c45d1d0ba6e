package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	calio "github.com/matzehuels/calgrid/pkg/io"
)

// convertCommand creates the command that rewrites any events input as the
// canonical JSON event list.
func (c *CLI) convertCommand() *cobra.Command {
	var (
		output      string
		inputFormat string
		refresh     bool
		noCache     bool
	)

	cmd := &cobra.Command{
		Use:   "convert [events-file|url|-]",
		Short: "Convert events from any supported format to JSON",
		Long: `Convert events from any supported format to JSON.

Reads YAML, TOML, HCL or iCalendar events and writes them as the JSON event
list that every other command accepts. Without -o the result goes to stdout.

Examples:
  calgrid convert team.ics -o team.json
  curl -s https://example.com/cal.ics | calgrid convert - --input-format ics`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts := c.baseOptions()
			opts.Input = args[0]
			opts.InputFormat = inputFormat
			opts.Refresh = refresh
			if opts.Input == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				opts.Data = data
			}
			if err := opts.ValidateForParse(); err != nil {
				return err
			}

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			events, err := runner.Parse(ctx, opts)
			if err != nil {
				return ctxErr(ctx, err)
			}
			if output == "" || output == "-" {
				return calio.WriteJSON(events, cmd.OutOrStdout())
			}
			if err := calio.ExportJSON(events, output); err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			p.success("Converted %d events", len(events))
			p.file(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "input format: json, yaml, toml, hcl, ics (default: from extension)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "refetch remote inputs instead of using the cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/calgrid/pkg/server"
)

// serveCommand creates the HTTP server command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		listen  string
		input   string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout pipeline over HTTP",
		Long: `Serve the layout pipeline over HTTP.

Routes:
  GET  /health       liveness probe
  GET  /             the configured input rendered as HTML
  POST /api/layout   events in the body → grid JSON
  POST /api/render   events in the body → ?output=html|svg|json|txt|pdf|png|dot

Defaults come from the [server] section of the config file. Basic auth is
enabled when server.basic_auth is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := c.settings()
			if !cmd.Flags().Changed("listen") {
				listen = cfg.Server.Listen
			}
			if !cmd.Flags().Changed("input") {
				input = cfg.Server.Input
			}

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			srvCfg := server.Config{
				Input:     input,
				Title:     cfg.Title,
				Palette:   cfg.Palette,
				Weekends:  cfg.Weekends,
				MaxDays:   cfg.Server.MaxDays,
				MaxEvents: cfg.Server.MaxEvents,
			}
			if a := cfg.Server.BasicAuth; a != nil {
				srvCfg.BasicAuth = &server.BasicAuth{Username: a.Username, Password: a.Password}
			}

			p := newPrinter(cmd.OutOrStdout())
			p.keyValue("Listening", "http://"+listen)
			if input != "" {
				p.keyValue("Input", input)
			}
			p.keyValue("Cache", cfg.Cache.Backend)
			return server.New(srvCfg, runner, c.Logger).ListenAndServe(ctx, listen)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default from config: 127.0.0.1:8080)")
	cmd.Flags().StringVar(&input, "input", "", "events file or URL rendered at /")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}

// Package cli implements the calgrid command-line interface.
//
// Commands:
//   - render: events file → HTML, SVG, JSON, text, PDF or PNG in one step
//   - layout: events file → stored grid (.grid.json)
//   - convert: events in any input format → canonical JSON
//   - visualize: stored grid → rendered artifacts
//   - browse: scroll through the grid in the terminal
//   - serve: expose the pipeline over HTTP
//   - cache: inspect or clear the pipeline cache
//   - config: show or initialise the configuration file
//
// All commands support --verbose (-v) for debug-level logging and --config to
// point at a configuration file other than the default.
package cli

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/calgrid/internal/config"
	"github.com/matzehuels/calgrid/pkg/buildinfo"
	"github.com/matzehuels/calgrid/pkg/cache"
	apperrors "github.com/matzehuels/calgrid/pkg/errors"
	"github.com/matzehuels/calgrid/pkg/observability"
	"github.com/matzehuels/calgrid/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "calgrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "calgrid lays out calendar events as a Gantt-style grid",
		Long: `calgrid places each calendar event in the first row that is free on its
start day and renders the result as a grid with one column per row and one
line per day, as HTML, SVG, text, PDF or PNG.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			observability.SetPipelineHooks(&logHooks{logger: c.Logger})
			observability.SetCacheHooks(&logHooks{logger: c.Logger})
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/calgrid/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// configFile returns the --config path or the platform default.
func (c *CLI) configFile() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	return config.DefaultPath()
}

// loadConfig reads the config file once per process.
func (c *CLI) loadConfig() error {
	if c.cfg != nil {
		return nil
	}
	cfgPath, err := c.configFile()
	if err != nil {
		c.Logger.Debug("no config directory, using defaults", "error", err)
		c.cfg = config.DefaultConfig()
		return nil
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	c.Logger.Debug("loaded config", "path", cfgPath)
	c.cfg = cfg
	return nil
}

// settings returns the loaded configuration, or the defaults before loading.
func (c *CLI) settings() *config.Config {
	if c.cfg == nil {
		return config.DefaultConfig()
	}
	return c.cfg
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	ch, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(ch, nil, c.Logger), nil
}

// newCache opens the configured backend. An unreachable remote backend
// degrades to no caching rather than failing the command.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	opts := c.settings().CacheOptions()
	ch, err := cache.New(ctx, opts)
	if err != nil {
		if opts.Backend == cache.BackendFile || opts.Backend == "" {
			return nil, fmt.Errorf("open cache: %w", err)
		}
		c.Logger.Warn("cache unavailable, continuing without", "backend", opts.Backend, "error", err)
		return cache.NewNullCache(), nil
	}
	return ch, nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// baseOptions returns pipeline options seeded from the config file.
func (c *CLI) baseOptions() pipeline.Options {
	cfg := c.settings()
	return pipeline.Options{
		Palette:   cfg.Palette,
		Title:     cfg.Title,
		Weekends:  cfg.Weekends,
		PNGEngine: cfg.PNGEngine,
		Logger:    c.Logger,
	}
}

// parseFormats parses a comma-separated format string into a slice.
// An empty string yields nil so the config default applies.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input.
// If output ends in a known format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		if apperrors.IsURL(input) {
			if u, err := url.Parse(input); err == nil {
				input = path.Base(u.Path)
			}
		}
		if input == "" || input == "-" || input == "/" || input == "." {
			return appName
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if isOutputFormat(strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func isOutputFormat(f string) bool {
	for _, formats := range pipeline.ValidFormats {
		if slices.Contains(formats, f) {
			return true
		}
	}
	return false
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/calgrid/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the grid and artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts := c.settings().CacheOptions()
			p := newPrinter(cmd.OutOrStdout())

			ch, err := cache.New(ctx, opts)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer ch.Close()

			clearer, ok := ch.(cache.Clearer)
			if !ok {
				p.info("Cache backend %q keeps nothing to clear", opts.Backend)
				return nil
			}
			if err := clearer.Clear(ctx); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			p.success("Cache cleared")
			p.detail("Location: %s", cacheLocation(ch, opts))
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where cache entries are stored",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.settings().CacheOptions()
			loc := opts.Backend
			switch opts.Backend {
			case "", cache.BackendFile:
				loc = opts.Dir
				if loc == "" {
					dir, err := cache.DefaultDir()
					if err != nil {
						return fmt.Errorf("get cache dir: %w", err)
					}
					loc = dir
				}
			case cache.BackendRedis:
				loc = "redis://" + opts.RedisAddr
			case cache.BackendMongo:
				loc = opts.MongoURI
			}
			fmt.Fprintln(cmd.OutOrStdout(), loc)
			return nil
		},
	}
}

// cacheLocation describes an open cache for display.
func cacheLocation(ch cache.Cache, opts cache.Options) string {
	if fc, ok := ch.(*cache.FileCache); ok {
		return fc.Dir()
	}
	return opts.Backend
}

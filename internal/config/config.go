// Package config loads and saves the calgrid configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/calgrid/config.toml unless
// another path is given. A missing file yields the defaults; it is never
// created implicitly.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/calgrid/pkg/cache"
	"github.com/matzehuels/calgrid/pkg/layout"
	"github.com/matzehuels/calgrid/pkg/pipeline"
)

// FileName is the config file name inside the config directory.
const FileName = "config.toml"

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend       string `toml:"backend"`
	Dir           string `toml:"dir,omitempty"`
	RedisAddr     string `toml:"redis_addr,omitempty"`
	MongoURI      string `toml:"mongo_uri,omitempty"`
	MongoDatabase string `toml:"mongo_database,omitempty"`
}

// BasicAuthConfig holds HTTP basic auth credentials for the server.
type BasicAuthConfig struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
}

// ServerConfig configures `calgrid serve`.
type ServerConfig struct {
	// Listen is the HTTP listen address.
	Listen string `toml:"listen"`
	// Input is rendered at GET /.
	Input string `toml:"input,omitempty"`
	// MaxDays and MaxEvents limit one request's layout; 0 keeps the
	// server defaults.
	MaxDays   int `toml:"max_days,omitempty"`
	MaxEvents int `toml:"max_events,omitempty"`
	// BasicAuth, if set, guards every route except /health.
	BasicAuth *BasicAuthConfig `toml:"basic_auth,omitempty"`
}

// Config is the top-level configuration.
type Config struct {
	// Palette overrides the event colours (hex strings).
	Palette []string `toml:"palette,omitempty"`
	// Title is the default page title of rendered artifacts.
	Title string `toml:"title,omitempty"`
	// Formats are the default output formats of `calgrid render`.
	Formats []string `toml:"formats"`
	// PNGEngine is rsvg or chromium.
	PNGEngine string `toml:"png_engine"`
	// Weekends shades Saturdays and Sundays.
	Weekends bool `toml:"weekends,omitempty"`

	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Formats:   slices.Clone(pipeline.DefaultFormats),
		PNGEngine: pipeline.DefaultPNGEngine,
		Cache:     CacheConfig{Backend: cache.BackendFile},
		Server:    ServerConfig{Listen: "127.0.0.1:8080"},
	}
}

// Normalize fills in zero values with defaults so partially written files
// behave like complete ones.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if len(c.Formats) == 0 {
		c.Formats = def.Formats
	}
	if c.PNGEngine == "" {
		c.PNGEngine = def.PNGEngine
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = def.Cache.Backend
	}
	if c.Server.Listen == "" {
		c.Server.Listen = def.Server.Listen
	}
	if a := c.Server.BasicAuth; a != nil && a.Username == "" && a.Password == "" {
		c.Server.BasicAuth = nil
	}
}

// Validate reports values that no command could use.
func (c *Config) Validate() error {
	if err := layout.ValidatePalette(c.Palette); err != nil {
		return err
	}
	if err := pipeline.ValidateFormats(pipeline.VizTypeGrid, c.Formats); err != nil {
		return err
	}
	if err := pipeline.ValidatePNGEngine(c.PNGEngine); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case cache.BackendFile, cache.BackendRedis, cache.BackendMongo, cache.BackendNone:
	default:
		return fmt.Errorf("cache.backend: unknown backend %q", c.Cache.Backend)
	}
	if c.Server.MaxDays < 0 || c.Server.MaxEvents < 0 {
		return fmt.Errorf("server: max_days and max_events must not be negative")
	}
	return nil
}

// CacheOptions converts the cache section for [cache.New].
func (c *Config) CacheOptions() cache.Options {
	return cache.Options{
		Backend:       c.Cache.Backend,
		Dir:           c.Cache.Dir,
		RedisAddr:     c.Cache.RedisAddr,
		MongoURI:      c.Cache.MongoURI,
		MongoDatabase: c.Cache.MongoDatabase,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/calgrid/config.toml or its platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "calgrid", FileName), nil
}

// Load reads the configuration at path. A missing file returns the
// defaults without error.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes cfg to path atomically with 0600 permissions, creating the
// parent directory (0700) if needed.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}
	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".calgrid-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Save is shorthand for Save(path, c).
func (c *Config) Save(path string) error {
	return Save(path, c)
}

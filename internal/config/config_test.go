package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calgrid", FileName)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Listen != "127.0.0.1:8080" || cfg.Cache.Backend != "file" || cfg.PNGEngine != "rsvg" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Load must not create the config file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	cfg := DefaultConfig()
	cfg.Palette = []string{"#112233", "#abc"}
	cfg.Title = "Team plan"
	cfg.Formats = []string{"html", "png"}
	cfg.PNGEngine = "chromium"
	cfg.Weekends = true
	cfg.Cache = CacheConfig{Backend: "redis", RedisAddr: "redis://cache:6379/1"}
	cfg.Server.Input = "/srv/events.yaml"
	cfg.Server.BasicAuth = &BasicAuthConfig{Username: "admin", Password: "secret"}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if strings.Join(got.Palette, ",") != "#112233,#abc" || got.Title != "Team plan" || !got.Weekends {
		t.Errorf("top-level fields lost: %+v", got)
	}
	if strings.Join(got.Formats, ",") != "html,png" || got.PNGEngine != "chromium" {
		t.Errorf("render fields lost: %+v", got)
	}
	if got.Cache.Backend != "redis" || got.Cache.RedisAddr != "redis://cache:6379/1" {
		t.Errorf("cache section = %+v", got.Cache)
	}
	if got.Server.BasicAuth == nil || got.Server.BasicAuth.Password != "secret" || got.Server.Input != "/srv/events.yaml" {
		t.Errorf("server section = %+v", got.Server)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != 0o600 {
			t.Errorf("config file mode = %o, want 600", perm)
		}
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %d entries", len(entries))
	}
}

func TestLoadPartialIsNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := "title = \"Only a title\"\n\n[server.basic_auth]\nusername = \"\"\npassword = \"\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Title != "Only a title" || len(cfg.Formats) == 0 || cfg.Server.Listen == "" {
		t.Errorf("partial config not normalized: %+v", cfg)
	}
	if cfg.Server.BasicAuth != nil {
		t.Error("empty basic auth credentials should be dropped")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "title = \n"},
		{"palette", "palette = [\"red\"]\n"},
		{"format", "formats = [\"gif\"]\n"},
		{"engine", "png_engine = \"cairo\"\n"},
		{"backend", "[cache]\nbackend = \"memcached\"\n"},
		{"max days", "[server]\nmax_days = -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadEmptyPath(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Error("empty path should fail")
	}
	if err := Save("", DefaultConfig()); err == nil {
		t.Error("empty path should fail")
	}
	if err := Save(filepath.Join(t.TempDir(), FileName), nil); err == nil {
		t.Error("nil config should fail")
	}
}

func TestCacheOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cache = CacheConfig{Backend: "mongo", MongoURI: "mongodb://db", MongoDatabase: "cal"}
	opts := cfg.CacheOptions()
	if opts.Backend != "mongo" || opts.MongoURI != "mongodb://db" || opts.MongoDatabase != "cal" {
		t.Errorf("CacheOptions() = %+v", opts)
	}
}

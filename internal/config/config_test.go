package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "islands.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_ADDR", "")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ServerAddr != ":8080" {
		t.Errorf("ServerAddr = %q", cfg.ServerAddr)
	}
	if cfg.Layout.TilePx != 8 || cfg.Layout.BleedTiles != 6 {
		t.Errorf("Layout = %+v, want defaults", cfg.Layout)
	}
	if cfg.ResizeDelay() != 150*time.Millisecond {
		t.Errorf("ResizeDelay() = %v", cfg.ResizeDelay())
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("SERVER_ADDR", "")
	path := writeConfig(t, `
server_addr = ":9000"
log_level = "debug"
season = "winter"
debounce_ms = 80
session_ttl = "5m"
max_sessions = 50

[layout]
tile_px = 12
tail_bias = 0.4
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ServerAddr != ":9000" || cfg.Season != "winter" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.SessionTTL.Duration != 5*time.Minute {
		t.Errorf("SessionTTL = %v", cfg.SessionTTL)
	}
	if cfg.MaxSessions != 50 {
		t.Errorf("MaxSessions = %d, want 50", cfg.MaxSessions)
	}
	if cfg.Layout.TilePx != 12 || cfg.Layout.TailBias != 0.4 {
		t.Errorf("Layout = %+v", cfg.Layout)
	}
	// untouched keys keep their defaults
	if cfg.Layout.MaxIslands != 14 {
		t.Errorf("MaxIslands = %d, want default 14", cfg.Layout.MaxIslands)
	}
	if level, _ := cfg.Level(); level != log.DebugLevel {
		t.Errorf("Level() = %v", level)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SERVER_ADDR", "127.0.0.1:7000")
	cfg, err := Load(writeConfig(t, `server_addr = ":9000"`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ServerAddr != "127.0.0.1:7000" {
		t.Errorf("ServerAddr = %q, want env override", cfg.ServerAddr)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", `server_addr = `, "failed to parse"},
		{"unknown key", `colour = "red"`, "unknown keys"},
		{"bad season", `season = "monsoon"`, "season"},
		{"bad tile", "[layout]\ntile_px = 0", "tile_px"},
		{"bad ttl", `session_ttl = "soon"`, "failed to parse"},
		{"bad level", `log_level = "loud"`, "log_level"},
		{"negative debounce", `debounce_ms = -1`, "debounce_ms"},
		{"no sessions", `max_sessions = 0`, "max_sessions"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("Load() succeeded")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load() of missing file succeeded")
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"dconn.dev/islands/internal/layout"
	"dconn.dev/islands/internal/render"
)

// Config holds all application configuration
type Config struct {
	ServerAddr  string        `toml:"server_addr"`
	StaticDir   string        `toml:"static_dir"`
	LogLevel    string        `toml:"log_level"`
	Season      string        `toml:"season"`
	DebounceMs  int           `toml:"debounce_ms"`
	SessionTTL  Duration      `toml:"session_ttl"`
	MaxSessions int           `toml:"max_sessions"`
	Layout      layout.Params `toml:"layout"`
}

// Duration is a time.Duration read from a string such as "30m"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		ServerAddr:  ":8080",
		StaticDir:   "static",
		LogLevel:    "info",
		Season:      string(render.DefaultSeason),
		DebounceMs:  int(layout.DefaultResizeDelay / time.Millisecond),
		SessionTTL:  Duration{30 * time.Minute},
		MaxSessions: 1000,
		Layout:      layout.DefaultParams(),
	}
}

// Load reads an optional TOML file over the defaults, then applies
// environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		meta, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown keys in %s: %v", path, undecoded)
		}
	}

	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		cfg.ServerAddr = addr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later at runtime
func (c *Config) Validate() error {
	if err := c.Layout.Validate(); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	if !render.ValidSeason(c.Season) {
		return fmt.Errorf("season: %w: %q", render.ErrUnknownSeason, c.Season)
	}
	if c.DebounceMs < 0 {
		return errors.New("debounce_ms must not be negative")
	}
	if c.SessionTTL.Duration <= 0 {
		return errors.New("session_ttl must be positive")
	}
	if c.MaxSessions <= 0 {
		return errors.New("max_sessions must be positive")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level
func (c *Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// ResizeDelay returns the debounce delay for resize-triggered passes
func (c *Config) ResizeDelay() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

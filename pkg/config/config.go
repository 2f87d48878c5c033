// Package config loads mandelzoom settings from a TOML file.
//
// Every key is optional; missing keys keep the values of [Default]. Command
// line flags override the loaded values.
//
//	[view]
//	depth = 30
//	width = 800
//
//	[window]
//	min_x = -2.0
//	min_y = -1.2
//	max_x = 0.6
//	max_y = 1.2
//
//	[render]
//	workers = 4
//	supersample = 1
//
//	[server]
//	addr = ":8080"
//	session_ttl = "30m"
package config

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/mandelzoom/pkg/errors"
	"github.com/matzehuels/mandelzoom/pkg/plane"
)

// Limits for render settings.
const (
	MaxSupersample = 4
	MaxWorkers     = 256
)

// Config is the full set of file settings.
type Config struct {
	View   View         `toml:"view"`
	Window plane.Window `toml:"window"`
	Render Render       `toml:"render"`
	Server Server       `toml:"server"`
}

// View holds the interactive view defaults.
type View struct {
	Depth int `toml:"depth"`
	Width int `toml:"width"`
}

// Render holds the engine settings.
type Render struct {
	Workers     int `toml:"workers"`
	Supersample int `toml:"supersample"`
}

// Server holds the HTTP service settings.
type Server struct {
	Addr       string   `toml:"addr"`
	SessionTTL Duration `toml:"session_ttl"`
}

// Duration is a time.Duration written as a string such as "30m".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		View:   View{Depth: 30, Width: 800},
		Window: plane.DefaultWindow,
		Render: Render{Workers: min(runtime.NumCPU(), MaxWorkers), Supersample: 1},
		Server: Server{Addr: ":8080", SessionTTL: Duration{30 * time.Minute}},
	}
}

// Load reads path on top of Default and validates the result. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse decodes TOML data into cfg, keeping fields absent from data, and
// validates the result.
func Parse(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	return cfg.Validate()
}

// Validate checks every setting.
func (c Config) Validate() error {
	if err := errors.ValidateDepth(c.View.Depth); err != nil {
		return err
	}
	if c.View.Width <= 0 || c.View.Width > errors.MaxCanvasSide {
		return errors.New(errors.ErrCodeInvalidCanvas, "view width %d out of range [1, %d]", c.View.Width, errors.MaxCanvasSide)
	}
	if err := plane.Validate(c.Window); err != nil {
		return err
	}
	if c.Render.Workers < 1 || c.Render.Workers > MaxWorkers {
		return errors.New(errors.ErrCodeInvalidConfig, "render workers %d out of range [1, %d]", c.Render.Workers, MaxWorkers)
	}
	if c.Render.Supersample < 1 || c.Render.Supersample > MaxSupersample {
		return errors.New(errors.ErrCodeInvalidConfig, "supersample %d out of range [1, %d]", c.Render.Supersample, MaxSupersample)
	}
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server addr is empty")
	}
	if c.Server.SessionTTL.Duration <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "session ttl must be positive")
	}
	return nil
}

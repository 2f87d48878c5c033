// Package cli implements the mandelzoom command-line interface.
//
// Commands render single frames, explore the set interactively in the
// terminal or a desktop window, serve views over HTTP, and manage the
// artifact cache. The CLI is built using cobra and logs through
// charmbracelet/log.
//
// # Commands
//
//   - render: write one frame to PNG or JPEG
//   - tui: interactive terminal view with mouse drag-to-zoom
//   - window: interactive desktop window
//   - serve: HTTP and websocket service with per-client sessions
//   - regions: list named regions usable with --region
//   - cache: manage the rendered artifact cache
//
// # Configuration
//
// --config loads a TOML file (see package config); flags override it.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// logs frame renders, cache lookups and HTTP requests. The logger is attached
// to the command context and retrieved with loggerFromContext.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mandelzoom/pkg/config"
	"github.com/matzehuels/mandelzoom/pkg/observability"
)

// setup runs before every command: it applies --verbose, loads --config and
// attaches the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	if c.verbose {
		c.SetLogLevel(LogDebug)
		registerLogHooks(c.Logger)
	} else {
		observability.Reset()
	}

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	if c.configPath != "" {
		c.Logger.Debug("loaded config", "path", c.configPath)
	}

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

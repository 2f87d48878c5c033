package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mandelzoom/internal/server"
	"github.com/matzehuels/mandelzoom/pkg/errors"
	"github.com/matzehuels/mandelzoom/pkg/session"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		ttl     time.Duration
		origins []string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve renders and interactive sessions over HTTP",
		Long: `Serve the HTTP API.

GET /api/render.png renders a single frame from query parameters. POST
/api/sessions creates an interactive view with its own frame cache; drive it
with pointer events on /api/sessions/{id}/events or stream frames over the
/api/sessions/{id}/ws websocket. Idle sessions expire after --session-ttl.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}
			if !cmd.Flags().Changed("session-ttl") {
				ttl = c.Config.Server.SessionTTL.Duration
			}
			if ttl <= 0 {
				return errors.New(errors.ErrCodeInvalidConfig, "session ttl must be positive")
			}

			srv := server.New(server.Config{
				Addr:           addr,
				SessionTTL:     ttl,
				Width:          c.Config.View.Width,
				Depth:          c.Config.View.Depth,
				Home:           c.Config.Window,
				Workers:        c.Config.Render.Workers,
				OriginPatterns: origins,
				Logger:         c.Logger,
			}, session.NewMemoryStore())

			printSuccess("Serving on %s", StyleLink.Render(displayURL(addr)))
			printKeyValue("session ttl", ttl.String())
			if len(origins) > 0 {
				printWarning("websocket origins allowed: %v", origins)
			}
			printNewline()

			if err := srv.Run(cmd.Context()); err != nil {
				return fmt.Errorf("serve: %w", err)
			}
			return cmd.Context().Err()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().DurationVar(&ttl, "session-ttl", session.DefaultTTL, "idle lifetime of a session")
	cmd.Flags().StringSliceVar(&origins, "allow-origin", nil, "extra websocket origin patterns")

	return cmd
}

// displayURL turns a listen address into a clickable URL.
func displayURL(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "http://localhost" + addr
	}
	return "http://" + addr
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mandelzoom/internal/desktop"
	"github.com/matzehuels/mandelzoom/pkg/errors"
)

// windowCommand creates the window command.
func (c *CLI) windowCommand() *cobra.Command {
	var (
		width  int
		depth  int
		region string
	)

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Explore the set in a desktop window",
		Long: `Open a desktop window showing the Mandelbrot set.

Drag with the left mouse button and release to zoom into the selection. The
outline is red while the selection is too small to zoom and black once
releasing would zoom. Keys: + and - change the depth, r resets the window,
q or Esc closes it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("width") {
				width = c.Config.View.Width
			}
			if !cmd.Flags().Changed("depth") {
				depth = c.Config.View.Depth
			}
			if err := errors.ValidateDepth(depth); err != nil {
				return err
			}
			w, err := c.resolveWindow(region, "")
			if err != nil {
				return err
			}
			if err := errors.ValidateCanvas(width, 1); err != nil {
				return err
			}

			v := c.newView(width, depth)
			if err := v.SetWindow(w); err != nil {
				return err
			}
			c.Logger.Debug("opening window", "width", width, "depth", depth, "window", w)
			return desktop.Run(cmd.Context(), v, c.Logger)
		},
	}

	cmd.Flags().IntVarP(&width, "width", "W", 0, "window width in pixels")
	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "initial iteration depth (1-100)")
	cmd.Flags().StringVarP(&region, "region", "r", "", "start at a named region")
	_ = cmd.RegisterFlagCompletionFunc("region", completeRegions)

	return cmd
}

package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mandelzoom/pkg/errors"
	"github.com/matzehuels/mandelzoom/pkg/escape"
	"github.com/matzehuels/mandelzoom/pkg/export"
	"github.com/matzehuels/mandelzoom/pkg/plane"
)

// defaultOutput is the render output path when -o is not given.
const defaultOutput = "mandelbrot.png"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string // output file path
	format      string // "png" or "jpeg"; inferred from output when empty
	depth       int    // iteration cap
	width       int    // canvas width in pixels
	height      int    // canvas height in pixels; 0 follows the window aspect
	region      string // named landmark
	window      string // "minX,minY,maxX,maxY"
	supersample int    // render at k× and downscale
	workers     int    // parallel row bands
	quality     int    // JPEG quality
	noCache     bool   // bypass the artifact cache
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one frame to a PNG or JPEG file",
		Long: `Render one frame of the Mandelbrot set.

The plot window defaults to the full set; pick a named region with --region
(see "mandelzoom regions") or give explicit bounds with --window. Unset flags
fall back to the config file, then to built-in defaults.`,
		Example: `  mandelzoom render -o set.png
  mandelzoom render --region seahorse --depth 100 --width 1600 --supersample 2
  mandelzoom render --window=-0.75,0.05,-0.73,0.07 -o detail.jpg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyRenderDefaults(cmd, &opts)
			return c.runRender(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", defaultOutput, "output file")
	f.StringVar(&opts.format, "format", "", "output format: png or jpeg (default: from file extension)")
	f.IntVarP(&opts.depth, "depth", "d", 0, "maximum iteration depth (1-100)")
	f.IntVarP(&opts.width, "width", "W", 0, "image width in pixels")
	f.IntVarP(&opts.height, "height", "H", 0, "image height in pixels (default: keep window aspect)")
	f.StringVarP(&opts.region, "region", "r", "", "named region (see 'regions')")
	f.StringVar(&opts.window, "window", "", "plot window as minX,minY,maxX,maxY")
	f.IntVar(&opts.supersample, "supersample", 0, "render at k times the size and downscale (1-4)")
	f.IntVar(&opts.workers, "workers", 0, "parallel render workers")
	f.IntVar(&opts.quality, "quality", export.DefaultJPEGQuality, "JPEG quality (1-100)")
	f.BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")
	cmd.MarkFlagsMutuallyExclusive("region", "window")

	_ = cmd.RegisterFlagCompletionFunc("region", completeRegions)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions([]string{"png", "jpeg"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// applyRenderDefaults fills flags the user did not set from the config.
func (c *CLI) applyRenderDefaults(cmd *cobra.Command, opts *renderOpts) {
	f := cmd.Flags()
	if !f.Changed("depth") {
		opts.depth = c.Config.View.Depth
	}
	if !f.Changed("width") {
		opts.width = c.Config.View.Width
	}
	if !f.Changed("supersample") {
		opts.supersample = c.Config.Render.Supersample
	}
	if !f.Changed("workers") {
		opts.workers = c.Config.Render.Workers
	}
}

// resolveWindow picks the plot window from --region, --window or the config.
func (c *CLI) resolveWindow(region, window string) (plane.Window, error) {
	switch {
	case region != "":
		lm, err := plane.LookupLandmark(region)
		if err != nil {
			return plane.Window{}, err
		}
		return lm.Window, nil
	case window != "":
		return plane.ParseWindow(window)
	default:
		return c.Config.Window, nil
	}
}

// renderParams validates opts and turns them into frame parameters and
// export options.
func (c *CLI) renderParams(opts renderOpts) (escape.Params, export.Options, error) {
	w, err := c.resolveWindow(opts.region, opts.window)
	if err != nil {
		return escape.Params{}, export.Options{}, err
	}

	format, err := export.FormatFromPath(opts.output)
	if opts.format != "" {
		format, err = export.ParseFormat(opts.format)
	}
	if err != nil {
		return escape.Params{}, export.Options{}, err
	}

	height := opts.height
	if height == 0 && opts.width > 0 {
		height = plane.HeightFor(opts.width, w)
	}
	p := escape.Params{MaxDepth: opts.depth, Width: opts.width, Height: height, Window: w}
	if err := p.Validate(); err != nil {
		return p, export.Options{}, err
	}

	eopts := export.Options{
		Format:      format,
		Supersample: opts.supersample,
		Quality:     opts.quality,
		Workers:     opts.workers,
	}
	if err := eopts.Validate(); err != nil {
		return p, eopts, err
	}
	return p, eopts, nil
}

func (c *CLI) runRender(cmd *cobra.Command, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	p, eopts, err := c.renderParams(opts)
	if err != nil {
		return err
	}

	store, err := newCache(opts.noCache)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer store.Close()

	logger.Debug("render", "size", fmt.Sprintf("%dx%d", p.Width, p.Height), "depth", p.MaxDepth, "window", p.Window, "format", eopts.Format, "supersample", eopts.Supersample)
	prog := newProgress(logger)

	spin := newSpinner(ctx, os.Stderr, fmt.Sprintf("Rendering %dx%d at depth %d", p.Width, p.Height, p.MaxDepth))
	spin.Start()
	data, hit, err := export.Artifact(ctx, store, newKeyer(), p, eopts)
	spin.Stop()
	if spin.Cancelled() {
		printWarning("Render cancelled after %s", spin.Elapsed().Round(time.Millisecond))
		return ctx.Err()
	}
	if err != nil {
		if errors.IsValidation(err) {
			return err
		}
		return fmt.Errorf("render: %w", err)
	}

	if err := os.WriteFile(opts.output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	prog.done("Rendered frame")

	printSuccess("Rendered %s", StyleHighlight.Render(p.Window.String()))
	printFile(opts.output)
	printFrameStats(p, len(data), hit)
	return nil
}

// completeRegions completes --region values.
func completeRegions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return plane.LandmarkNames(), cobra.ShellCompDirectiveNoFileComp
}

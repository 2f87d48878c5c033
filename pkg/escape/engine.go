package escape

import (
	"fmt"
	"image"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/mandelzoom/pkg/colormap"
	"github.com/matzehuels/mandelzoom/pkg/plane"
)

// Renderer produces a frame for a set of parameters.
type Renderer interface {
	Render(p Params) *image.RGBA
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(p Params) *image.RGBA

// Render calls f(p).
func (f RendererFunc) Render(p Params) *image.RGBA { return f(p) }

// Depth returns the number of iterations of z ← z² + c, starting from z = c,
// completed before |z|² reaches 4, capped at maxDepth.
func Depth(x0, y0 float64, maxDepth int) int {
	x, y := x0, y0
	d := 0
	for d < maxDepth && x*x+y*y < 4 {
		x, y = x*x-y*y+x0, 2*x*y+y0
		d++
	}
	return d
}

// Engine is the escape-time renderer. The zero value renders sequentially with
// [colormap.DefaultHelix].
type Engine struct {
	// Helix selects the gradient. The zero Helix means DefaultHelix.
	Helix colormap.Helix
	// Workers is the number of bands rendered concurrently. Values below 2
	// render on the calling goroutine.
	Workers int
}

// Render computes a frame. It panics if the canvas is empty or the depth is
// negative.
func (e Engine) Render(p Params) *image.RGBA {
	if p.Width <= 0 || p.Height <= 0 {
		panic(fmt.Sprintf("escape: invalid canvas %dx%d", p.Width, p.Height))
	}
	if p.MaxDepth < 0 {
		panic(fmt.Sprintf("escape: negative max depth %d", p.MaxDepth))
	}

	h := e.Helix
	if h == (colormap.Helix{}) {
		h = colormap.DefaultHelix
	}
	table := colormap.NewTable(p.MaxDepth, h)
	img := image.NewRGBA(p.Bounds())

	bands := splitRows(p.Height, e.Workers)
	if len(bands) == 1 {
		renderRows(img, p, table, bands[0])
		return img
	}

	// Bands write disjoint rows of img.Pix.
	var g errgroup.Group
	for _, b := range bands {
		g.Go(func() error {
			renderRows(img, p, table, b)
			return nil
		})
	}
	g.Wait() // bands never fail; Wait only joins them
	return img
}

// band is a half-open row range [from, to).
type band struct{ from, to int }

// splitRows divides height rows into at most n contiguous bands of nearly
// equal size. It always returns at least one band.
func splitRows(height, n int) []band {
	if n < 2 {
		return []band{{0, height}}
	}
	if n > height {
		n = height
	}
	bands := make([]band, 0, n)
	size, extra := height/n, height%n
	from := 0
	for i := 0; i < n; i++ {
		to := from + size
		if i < extra {
			to++
		}
		bands = append(bands, band{from, to})
		from = to
	}
	return bands
}

func renderRows(img *image.RGBA, p Params, table colormap.Table, b band) {
	for row := b.from; row < b.to; row++ {
		off := img.PixOffset(0, row)
		for col := 0; col < p.Width; col++ {
			x0, y0 := plane.PixelToPlane(row, col, p.Width, p.Height, p.Window)
			c := table.At(Depth(x0, y0, p.MaxDepth))
			px := img.Pix[off : off+4 : off+4]
			px[0], px[1], px[2], px[3] = c.R, c.G, c.B, c.A
			off += 4
		}
	}
}

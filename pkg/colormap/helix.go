package colormap

import (
	"fmt"
	"image/color"
	"math"
)

// Helix holds the cube-helix parameters.
type Helix struct {
	// Start is the starting hue angle, in thirds of a turn.
	Start float64
	// Rotations is how many turns the helix makes from black to white.
	Rotations float64
	// Hue scales colour saturation. Large values clip near black and white.
	Hue float64
	// Gamma shifts the brightness distribution towards black (>1) or white (<1).
	Gamma float64
}

// DefaultHelix is the gradient used by the Mandelbrot view.
var DefaultHelix = Helix{Start: 1, Rotations: 2, Hue: 2.0, Gamma: 1.0}

// ForDepth returns the colour for depth on a gradient spanning [0, maxDepth].
// Depth 0 maps to the black end and maxDepth to the white end. A non-positive
// maxDepth maps every depth to the black end.
func ForDepth(depth, maxDepth int, h Helix) color.RGBA {
	ratio := 0.0
	if maxDepth > 0 {
		ratio = float64(depth) / float64(maxDepth)
	}

	// The angle follows the raw ratio; only the amplitude sees gamma.
	angle := 2 * math.Pi * (h.Start/3.0 + 1.0 + h.Rotations*ratio)
	fraction := math.Pow(ratio, h.Gamma)
	amplitude := h.Hue * fraction * (1 - fraction) / 2

	cos, sin := math.Cos(angle), math.Sin(angle)
	r := fraction + amplitude*(-0.14861*cos+1.78277*sin)
	g := fraction + amplitude*(-0.29227*cos-0.90649*sin)
	b := fraction + amplitude*(+1.97294*cos)

	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 255}
}

// channel scales a unit intensity to 0..255, clamping out-of-range values.
// Fractions round to the nearest level, as canvas pixel arrays store them.
func channel(v float64) uint8 {
	v *= 255
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= 255:
		return 255
	}
	return uint8(math.Round(v))
}

// Table is a precomputed colour for every depth in [0, MaxDepth].
type Table []color.RGBA

// NewTable builds the colour table for depths 0..maxDepth inclusive.
func NewTable(maxDepth int, h Helix) Table {
	if maxDepth < 0 {
		panic(fmt.Sprintf("colormap: negative max depth %d", maxDepth))
	}
	t := make(Table, maxDepth+1)
	for d := range t {
		t[d] = ForDepth(d, maxDepth, h)
	}
	return t
}

// MaxDepth returns the largest depth covered by the table.
func (t Table) MaxDepth() int { return len(t) - 1 }

// At returns the colour for depth d. Escape loops never produce a depth
// outside [0, MaxDepth], so a miss is a bug and panics.
func (t Table) At(d int) color.RGBA {
	if d < 0 || d >= len(t) {
		panic(fmt.Sprintf("colormap: depth %d outside table [0, %d]", d, t.MaxDepth()))
	}
	return t[d]
}

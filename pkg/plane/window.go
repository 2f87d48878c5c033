package plane

import (
	"fmt"
	"math"
)

// Window is an axis-aligned rectangle in the complex plane.
// A well-formed window has MaxX > MinX and MaxY > MinY.
type Window struct {
	MinX float64 `json:"minX" toml:"min_x"`
	MinY float64 `json:"minY" toml:"min_y"`
	MaxX float64 `json:"maxX" toml:"max_x"`
	MaxY float64 `json:"maxY" toml:"max_y"`
}

// DefaultWindow frames the whole Mandelbrot set.
var DefaultWindow = Window{MinX: -2.0, MinY: -1.2, MaxX: 0.6, MaxY: 1.2}

// Width returns the horizontal extent of the window in plane units.
func (w Window) Width() float64 { return w.MaxX - w.MinX }

// Height returns the vertical extent of the window in plane units.
func (w Window) Height() float64 { return w.MaxY - w.MinY }

// Aspect returns height over width in plane units.
func (w Window) Aspect() float64 { return w.Height() / w.Width() }

// Valid reports whether the window has positive, finite width and height.
func (w Window) Valid() bool {
	// NaN fails both comparisons.
	return w.MaxX > w.MinX && w.MaxY > w.MinY &&
		!math.IsInf(w.Width(), 0) && !math.IsInf(w.Height(), 0)
}

// Center returns the midpoint of the window.
func (w Window) Center() (x, y float64) {
	return w.MinX + w.Width()/2, w.MinY + w.Height()/2
}

// String formats the window as "minX,minY,maxX,maxY", the same form accepted by
// [ParseWindow].
func (w Window) String() string {
	return fmt.Sprintf("%g,%g,%g,%g", w.MinX, w.MinY, w.MaxX, w.MaxY)
}

// FromCorners returns the window spanned by two plane points, taking the
// componentwise minimum and maximum. The result is well-formed whenever the
// points differ in both coordinates.
func FromCorners(x1, y1, x2, y2 float64) Window {
	return Window{
		MinX: min(x1, x2),
		MinY: min(y1, y2),
		MaxX: max(x1, x2),
		MaxY: max(y1, y2),
	}
}

// PixelToPlane maps the pixel at (row, col) of a width×height canvas to a point
// of w. The row axis is flipped so that row 0 lies on w.MaxY.
func PixelToPlane(row, col, width, height int, w Window) (x, y float64) {
	x = w.Width()*(float64(col)/float64(width)) + w.MinX
	y = w.Height()*(float64(height-row)/float64(height)) + w.MinY
	return x, y
}

// HeightFor returns the canvas height that gives a width-pixel canvas the
// same aspect ratio as w. The result is at least 1.
func HeightFor(width int, w Window) int {
	h := int(math.Round(float64(width) * w.Height() / w.Width()))
	if h < 1 {
		return 1
	}
	return h
}

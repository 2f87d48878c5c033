// Package plane maps canvas pixels onto a rectangular window of the complex plane.
//
// A [Window] is a value type: it is compared with == and replaced wholesale
// whenever the view zooms or resets, never mutated in place. [PixelToPlane] is
// the single mapping used both for rendering and for turning a mouse selection
// back into plane coordinates, so the two can never disagree.
//
// # Orientation
//
// Canvas rows grow downward while plane y grows upward. Row 0 is the top edge
// of the canvas and maps to [Window.MaxY]; column 0 maps to [Window.MinX].
//
//	x, y := plane.PixelToPlane(0, 0, 800, 738, plane.DefaultWindow)
//	// x == -2.0, y == 1.2
package plane

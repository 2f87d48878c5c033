// Package interact implements drag-to-zoom over a rendered canvas.
//
// A [Controller] is a two-state machine. Pressing inside the canvas starts a
// drag anchored at the press point; moving updates the live selection;
// releasing ends the drag and, if the selection is large enough, yields the
// plot window under the selection. Short drags are treated as stray clicks.
//
// The selection keeps the canvas aspect ratio. Its horizontal extent is the
// larger of the horizontal and vertical drag distances, and it opens toward
// the quadrant of the pointer relative to the anchor. Zooming into it
// therefore never distorts the image.
package interact

import (
	"image"
	"math"

	"github.com/matzehuels/mandelzoom/pkg/plane"
)

// MinSelection is the smallest drag distance, in pixels, that commits a zoom.
const MinSelection = 20

// State is the drag state of a Controller.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Selection is the live zoom rectangle while dragging.
type Selection struct {
	// Anchor is the press point; Corner is the opposite corner.
	Anchor, Corner image.Point
	// Commit reports whether releasing now would zoom.
	Commit bool
}

// Rect returns the selection as a canonical rectangle.
func (s Selection) Rect() image.Rectangle {
	return image.Rectangle{Min: s.Anchor, Max: s.Corner}.Canon()
}

// Controller tracks one pointer drag over a width×height canvas.
// It is not safe for concurrent use.
type Controller struct {
	width, height int

	state   State
	anchor  image.Point
	current image.Point
}

// New returns an idle controller for a width×height canvas.
func New(width, height int) *Controller {
	return &Controller{width: width, height: height}
}

// Resize changes the canvas size and drops any drag in progress.
func (c *Controller) Resize(width, height int) {
	c.width, c.height = width, height
	c.Cancel()
}

// State returns the current drag state.
func (c *Controller) State() State { return c.state }

// Inside reports whether p lies on the canvas.
func (c *Controller) Inside(p image.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < c.width && p.Y < c.height
}

// Press starts a drag at p. Presses outside the canvas, or while a drag is
// already in progress, are ignored. It reports whether a drag started.
func (c *Controller) Press(p image.Point) bool {
	if c.state != Idle || !c.Inside(p) {
		return false
	}
	c.state = Dragging
	c.anchor, c.current = p, p
	return true
}

// Move updates the live pointer position of a drag in progress.
func (c *Controller) Move(p image.Point) {
	if c.state == Dragging {
		c.current = p
	}
}

// Cancel drops a drag in progress without zooming.
func (c *Controller) Cancel() {
	c.state = Idle
}

// Release ends the drag at p and returns the window under the selection,
// mapped through w. It returns false when no drag was in progress, when p is
// outside the canvas, or when the drag distance is below MinSelection. The
// drag ends in every case.
func (c *Controller) Release(p image.Point, w plane.Window) (plane.Window, bool) {
	if c.state != Dragging {
		return plane.Window{}, false
	}
	c.state = Idle
	c.current = p

	if !c.Inside(p) || c.distance() < MinSelection {
		return plane.Window{}, false
	}

	corner := c.corner()
	x1, y1 := plane.PixelToPlane(c.anchor.Y, c.anchor.X, c.width, c.height, w)
	x2, y2 := plane.PixelToPlane(corner.Y, corner.X, c.width, c.height, w)
	return plane.FromCorners(x1, y1, x2, y2), true
}

// Selection returns the live selection while dragging.
func (c *Controller) Selection() (Selection, bool) {
	if c.state != Dragging {
		return Selection{}, false
	}
	return Selection{
		Anchor: c.anchor,
		Corner: c.corner(),
		Commit: c.distance() >= MinSelection,
	}, true
}

// distance is the Chebyshev distance between anchor and pointer.
func (c *Controller) distance() int {
	return max(abs(c.current.X-c.anchor.X), abs(c.current.Y-c.anchor.Y))
}

// corner returns the selection corner opposite the anchor.
func (c *Controller) corner() image.Point {
	side := c.distance()
	dx := side
	dy := int(math.Round(float64(side) * float64(c.height) / float64(c.width)))
	if side > 0 && dy == 0 {
		dy = 1
	}

	if c.current.X < c.anchor.X {
		dx = -dx
	}
	if c.current.Y <= c.anchor.Y {
		dy = -dy
	}
	return image.Pt(c.anchor.X+dx, c.anchor.Y+dy)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

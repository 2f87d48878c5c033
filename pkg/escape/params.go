package escape

import (
	"image"

	"github.com/matzehuels/mandelzoom/pkg/errors"
	"github.com/matzehuels/mandelzoom/pkg/plane"
)

// Params is the complete set of inputs that determine a rendered frame.
// Two frames are identical exactly when their Params compare equal with ==.
type Params struct {
	MaxDepth int          `json:"maxDepth"`
	Width    int          `json:"width"`
	Height   int          `json:"height"`
	Window   plane.Window `json:"window"`
}

// Bounds returns the pixel rectangle of the frame.
func (p Params) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.Width, p.Height)
}

// Validate checks user-supplied parameters: depth within the slider range,
// a bounded positive canvas and a well-formed window.
func (p Params) Validate() error {
	if err := errors.ValidateDepth(p.MaxDepth); err != nil {
		return err
	}
	if err := errors.ValidateCanvas(p.Width, p.Height); err != nil {
		return err
	}
	return plane.Validate(p.Window)
}

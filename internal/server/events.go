package server

import (
	"image"

	"github.com/matzehuels/mandelzoom/pkg/errors"
	"github.com/matzehuels/mandelzoom/pkg/view"
)

// Event types accepted from clients.
const (
	EventPress   = "press"
	EventMove    = "move"
	EventRelease = "release"
	EventCancel  = "cancel"
	EventDepth   = "depth"
	EventReset   = "reset"
)

// Event is a client input. X and Y are canvas pixels; Depth applies to
// depth events only.
type Event struct {
	Type  string `json:"type"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Depth int    `json:"depth,omitempty"`
}

// apply feeds e to v and reports whether it zoomed.
func apply(v *view.View, e Event) (bool, error) {
	p := image.Pt(e.X, e.Y)
	switch e.Type {
	case EventPress:
		v.Press(p)
	case EventMove:
		v.Move(p)
	case EventRelease:
		return v.Release(p), nil
	case EventCancel:
		v.CancelDrag()
	case EventDepth:
		if err := errors.ValidateDepth(e.Depth); err != nil {
			return false, err
		}
		v.SetDepth(e.Depth)
	case EventReset:
		v.Reset()
	default:
		return false, errors.New(errors.ErrCodeInvalidEvent, "unknown event type %q", e.Type)
	}
	return false, nil
}

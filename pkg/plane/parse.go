package plane

import (
	"strconv"
	"strings"

	"github.com/matzehuels/mandelzoom/pkg/errors"
)

// ParseWindow parses "minX,minY,maxX,maxY" into a Window.
// It returns an INVALID_WINDOW error if the text is malformed or the window
// is not well-formed.
func ParseWindow(s string) (Window, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Window{}, errors.New(errors.ErrCodeInvalidWindow, "window needs 4 comma-separated values, got %d", len(parts))
	}

	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Window{}, errors.Wrap(errors.ErrCodeInvalidWindow, err, "parse %q", p)
		}
		v[i] = f
	}

	w := Window{MinX: v[0], MinY: v[1], MaxX: v[2], MaxY: v[3]}
	if err := Validate(w); err != nil {
		return Window{}, err
	}
	return w, nil
}

// Validate returns an INVALID_WINDOW error if w is not well-formed.
func Validate(w Window) error {
	if !w.Valid() {
		return errors.New(errors.ErrCodeInvalidWindow, "window %s must have max > min on both axes", w)
	}
	return nil
}

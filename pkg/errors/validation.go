package errors

// Depth bounds accepted from users. The engine itself accepts any
// non-negative depth; these bounds match the depth slider of the view.
const (
	MinDepth = 1
	MaxDepth = 100
)

// MaxCanvasSide caps each canvas dimension accepted from users so that a
// single request cannot ask for an unbounded render.
const MaxCanvasSide = 8192

// ValidateDepth checks that depth lies in [MinDepth, MaxDepth].
func ValidateDepth(depth int) error {
	if depth < MinDepth || depth > MaxDepth {
		return New(ErrCodeInvalidDepth, "depth %d out of range [%d, %d]", depth, MinDepth, MaxDepth)
	}
	return nil
}

// ValidateCanvas checks that both canvas dimensions are positive and no larger
// than MaxCanvasSide.
func ValidateCanvas(width, height int) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidCanvas, "canvas %dx%d must have positive dimensions", width, height)
	}
	if width > MaxCanvasSide || height > MaxCanvasSide {
		return New(ErrCodeInvalidCanvas, "canvas %dx%d exceeds %d pixels per side", width, height, MaxCanvasSide)
	}
	return nil
}

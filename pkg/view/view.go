package view

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mandelzoom/pkg/errors"
	"github.com/matzehuels/mandelzoom/pkg/escape"
	"github.com/matzehuels/mandelzoom/pkg/frame"
	"github.com/matzehuels/mandelzoom/pkg/interact"
	"github.com/matzehuels/mandelzoom/pkg/plane"
)

// Depth limits of the view. Depth changes are clamped to this range.
const (
	DefaultDepth = 30
	MinDepth     = errors.MinDepth
	MaxDepth     = errors.MaxDepth
)

// Selection outline colours.
var (
	// StrokeIdle outlines a selection that would not zoom on release.
	StrokeIdle = color.RGBA{R: 255, A: 255}
	// StrokeCommit outlines a selection that would zoom on release.
	StrokeCommit = color.RGBA{A: 255}
)

// Surface presents frames. Implementations are the display back ends.
type Surface interface {
	// Present shows a full frame. The image must not be modified.
	Present(img *image.RGBA)
	// StrokeRect outlines r on top of the last presented frame.
	StrokeRect(r image.Rectangle, c color.RGBA)
}

// State is the render state of a View.
type State int

const (
	Idle State = iota
	Rendering
)

func (s State) String() string {
	if s == Rendering {
		return "rendering"
	}
	return "idle"
}

// Option configures a View.
type Option func(*View)

// WithRenderer sets the renderer behind the view's frame cache.
func WithRenderer(r escape.Renderer) Option {
	return func(v *View) { v.renderer = r }
}

// WithDepth sets the initial depth, clamped to [MinDepth, MaxDepth].
func WithDepth(d int) Option {
	return func(v *View) { v.depth = clampDepth(d) }
}

// WithHome sets the window shown initially and restored by Reset.
// Malformed windows are ignored.
func WithHome(w plane.Window) Option {
	return func(v *View) {
		if w.Valid() {
			v.home = w
		}
	}
}

// WithLogger sets the logger for view events.
func WithLogger(l *log.Logger) Option {
	return func(v *View) { v.logger = l }
}

// View is one mounted Mandelbrot view. It is not safe for concurrent use.
type View struct {
	width, height int
	depth         int
	home          plane.Window
	window        plane.Window

	renderer escape.Renderer
	cache    *frame.Cache
	drag     *interact.Controller
	logger   *log.Logger

	state State
	dirty bool
}

// New mounts a view on a width×height canvas. A non-positive height is
// derived from width and the home window's aspect ratio. New panics if width
// is not positive.
func New(width, height int, opts ...Option) *View {
	if width <= 0 {
		panic(fmt.Sprintf("view: invalid canvas width %d", width))
	}
	v := &View{
		depth: DefaultDepth,
		home:  plane.DefaultWindow,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.renderer == nil {
		v.renderer = escape.Engine{}
	}
	if v.logger == nil {
		v.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if height <= 0 {
		height = plane.HeightFor(width, v.home)
	}

	v.width, v.height = width, height
	v.window = v.home
	v.cache = frame.New(v.renderer)
	v.drag = interact.New(width, height)
	v.dirty = true
	return v
}

// Params returns the parameters of the frame the view currently shows.
func (v *View) Params() escape.Params {
	return escape.Params{
		MaxDepth: v.depth,
		Width:    v.width,
		Height:   v.height,
		Window:   v.window,
	}
}

// Depth returns the iteration cap.
func (v *View) Depth() int { return v.depth }

// Window returns the current plot window.
func (v *View) Window() plane.Window { return v.window }

// Home returns the window restored by Reset.
func (v *View) Home() plane.Window { return v.home }

// Size returns the canvas size in pixels.
func (v *View) Size() (width, height int) { return v.width, v.height }

// State returns the render state.
func (v *View) State() State { return v.state }

// Dirty reports whether the next Frame will render instead of reusing.
func (v *View) Dirty() bool { return v.dirty }

// Dragging reports whether a zoom selection is in progress.
func (v *View) Dragging() bool { return v.drag.State() == interact.Dragging }

// SetDepth changes the iteration cap, clamped to [MinDepth, MaxDepth], and
// returns the value applied.
func (v *View) SetDepth(d int) int {
	d = clampDepth(d)
	if d != v.depth {
		v.logger.Debug("depth changed", "from", v.depth, "to", d)
		v.depth = d
		v.remount()
	}
	return d
}

// Resize changes the canvas size. A non-positive height is derived from the
// width and the current window's aspect ratio.
func (v *View) Resize(width, height int) {
	if width <= 0 {
		return
	}
	if height <= 0 {
		height = plane.HeightFor(width, v.window)
	}
	if width == v.width && height == v.height {
		return
	}
	v.width, v.height = width, height
	v.drag.Resize(width, height)
	v.remount()
}

// SetWindow replaces the plot window. It returns an INVALID_WINDOW error for
// malformed windows and leaves the view unchanged.
func (v *View) SetWindow(w plane.Window) error {
	if err := plane.Validate(w); err != nil {
		return err
	}
	v.replaceWindow(w)
	return nil
}

// Reset restores the home window.
func (v *View) Reset() {
	v.logger.Debug("reset window", "window", v.home)
	v.replaceWindow(v.home)
}

// Press forwards a pointer press in canvas coordinates.
func (v *View) Press(p image.Point) bool { return v.drag.Press(p) }

// Move forwards a pointer move in canvas coordinates.
func (v *View) Move(p image.Point) { v.drag.Move(p) }

// Release forwards a pointer release and reports whether it zoomed.
func (v *View) Release(p image.Point) bool {
	w, ok := v.drag.Release(p, v.window)
	if !ok {
		return false
	}
	v.logger.Debug("zoom", "from", v.window, "to", w)
	v.replaceWindow(w)
	return true
}

// CancelDrag drops a selection in progress.
func (v *View) CancelDrag() { v.drag.Cancel() }

// Selection returns the live zoom selection and its outline colour.
func (v *View) Selection() (interact.Selection, color.RGBA, bool) {
	sel, ok := v.drag.Selection()
	if !ok {
		return interact.Selection{}, color.RGBA{}, false
	}
	if sel.Commit {
		return sel, StrokeCommit, true
	}
	return sel, StrokeIdle, true
}

// Frame returns the current frame, rendering it only if the parameters
// changed since the last call.
func (v *View) Frame(ctx context.Context) *image.RGBA {
	v.state = Rendering
	img, hit := v.cache.RenderOrReuse(ctx, v.Params())
	v.state = Idle
	if !hit {
		v.logger.Debug("rendered frame", "size", fmt.Sprintf("%dx%d", v.width, v.height), "depth", v.depth, "window", v.window)
	}
	v.dirty = false
	return img
}

// Draw presents the current frame on s and outlines the selection if a drag
// is in progress.
func (v *View) Draw(ctx context.Context, s Surface) {
	s.Present(v.Frame(ctx))
	if sel, c, ok := v.Selection(); ok {
		s.StrokeRect(sel.Rect(), c)
	}
}

// replaceWindow swaps in w as the new plot window.
func (v *View) replaceWindow(w plane.Window) {
	if w == v.window {
		return
	}
	v.window = w
	v.remount()
}

// remount drops the cached frame and any drag so the next tick starts fresh.
func (v *View) remount() {
	v.cache.Reset()
	v.drag.Cancel()
	v.dirty = true
}

func clampDepth(d int) int {
	return min(max(d, MinDepth), MaxDepth)
}

// Package desktop shows a Mandelbrot view in a native window.
package desktop

import (
	"context"
	"image"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/matzehuels/mandelzoom/pkg/buildinfo"
	"github.com/matzehuels/mandelzoom/pkg/view"
)

// DepthStep is how much one key press changes the depth.
const DepthStep = 5

// Run opens a window showing v and blocks until it is closed or ctx is
// canceled. Drag with the left mouse button to zoom; +/- change the depth,
// r resets and q or Esc quits.
func Run(ctx context.Context, v *view.View, logger *log.Logger) error {
	w, h := v.Size()
	g := &game{ctx: ctx, view: v, logger: logger}

	ebiten.SetWindowTitle("mandelzoom (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(30)
	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return ctx.Err()
	}
	return err
}

// game adapts a view to ebiten. It is also the view's Surface during Draw.
type game struct {
	ctx    context.Context
	view   *view.View
	logger *log.Logger

	frame  *ebiten.Image
	last   *image.RGBA
	screen *ebiten.Image
}

// input is the pointer and key state sampled once per tick.
type input struct {
	cursor   image.Point
	pressed  bool
	held     bool
	released bool

	deeper, shallower, reset, quit bool
}

func poll() input {
	x, y := ebiten.CursorPosition()
	return input{
		cursor:    image.Pt(x, y),
		pressed:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		held:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		released:  inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		deeper:    inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd),
		shallower: inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract),
		reset:     inpututil.IsKeyJustPressed(ebiten.KeyR),
		quit:      inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

func (g *game) Update() error {
	return g.handle(poll())
}

// handle applies one tick of input to the view.
func (g *game) handle(in input) error {
	if in.quit || g.ctx.Err() != nil {
		return ebiten.Termination
	}

	// A press and release within one tick is a click and ends as a no-op.
	if in.pressed {
		g.view.Press(in.cursor)
	}
	if in.released {
		if g.view.Release(in.cursor) {
			g.logger.Info("zoomed", "window", g.view.Window())
		}
	} else if in.held && !in.pressed {
		g.view.Move(in.cursor)
	}

	switch {
	case in.deeper:
		g.logger.Info("depth", "value", g.view.SetDepth(g.view.Depth()+DepthStep))
	case in.shallower:
		g.logger.Info("depth", "value", g.view.SetDepth(g.view.Depth()-DepthStep))
	case in.reset:
		g.view.Reset()
		g.logger.Info("reset", "window", g.view.Window())
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.screen = screen
	g.view.Draw(g.ctx, g)
	g.screen = nil
}

// Present uploads img when it changed since the last tick and draws it.
func (g *game) Present(img *image.RGBA) {
	if img != g.last {
		b := img.Bounds()
		if g.frame == nil || g.frame.Bounds().Size() != b.Size() {
			if g.frame != nil {
				g.frame.Deallocate()
			}
			g.frame = ebiten.NewImage(b.Dx(), b.Dy())
		}
		g.frame.WritePixels(img.Pix)
		g.last = img
	}
	g.screen.DrawImage(g.frame, nil)
}

func (g *game) StrokeRect(r image.Rectangle, c color.RGBA) {
	vector.StrokeRect(g.screen,
		float32(r.Min.X)+0.5, float32(r.Min.Y)+0.5,
		float32(r.Dx()), float32(r.Dy()),
		1, c, false)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.view.Size()
}

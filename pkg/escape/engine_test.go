package escape

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/matzehuels/mandelzoom/pkg/colormap"
	"github.com/matzehuels/mandelzoom/pkg/errors"
	"github.com/matzehuels/mandelzoom/pkg/plane"
)

func TestDepth(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		maxDepth int
		want     int
	}{
		{"origin never escapes", 0, 0, 30, 30},
		{"main cardioid", -0.5, 0, 100, 100},
		{"period-2 bulb", -1, 0, 50, 50},
		{"outside radius", 3, 0, 30, 0},
		{"on radius", 2, 0, 30, 0},
		{"escapes after one step", 1, 1, 30, 1},
		{"zero cap", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Depth(tt.x, tt.y, tt.maxDepth); got != tt.want {
				t.Errorf("Depth(%v, %v, %d) = %d, want %d", tt.x, tt.y, tt.maxDepth, got, tt.want)
			}
		})
	}
}

func TestRenderDimensions(t *testing.T) {
	p := Params{MaxDepth: 10, Width: 13, Height: 7, Window: plane.DefaultWindow}
	img := Engine{}.Render(p)
	if img.Bounds() != image.Rect(0, 0, 13, 7) {
		t.Errorf("Bounds = %v", img.Bounds())
	}
	if len(img.Pix) != 13*7*4 {
		t.Errorf("len(Pix) = %d", len(img.Pix))
	}
}

func TestRenderZeroDepthIsUniform(t *testing.T) {
	p := Params{MaxDepth: 0, Width: 16, Height: 9, Window: plane.DefaultWindow}
	img := Engine{}.Render(p)

	want := img.RGBAAt(0, 0)
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want uniform %v", x, y, got, want)
			}
		}
	}
}

func TestRenderOriginReachesMaxDepth(t *testing.T) {
	// On a 260x240 canvas of the default window, column 200 and row 120 map
	// onto the origin.
	p := Params{MaxDepth: 30, Width: 260, Height: 240, Window: plane.DefaultWindow}
	x, y := plane.PixelToPlane(120, 200, p.Width, p.Height, p.Window)
	if math.Abs(x) > 1e-12 || math.Abs(y) > 1e-12 {
		t.Fatalf("pixel (120, 200) maps to (%v, %v), want origin", x, y)
	}
	if d := Depth(x, y, p.MaxDepth); d != p.MaxDepth {
		t.Errorf("Depth(origin) = %d, want %d", d, p.MaxDepth)
	}

	img := Engine{}.Render(p)
	want := colormap.ForDepth(p.MaxDepth, p.MaxDepth, colormap.DefaultHelix)
	if got := img.RGBAAt(200, 120); got != want {
		t.Errorf("origin pixel = %v, want max-depth colour %v", got, want)
	}
}

func TestRenderCornerEscapesImmediately(t *testing.T) {
	p := Params{MaxDepth: 30, Width: 40, Height: 40, Window: wideWindow()}
	img := Engine{}.Render(p)
	black := color.RGBA{0, 0, 0, 255}
	if got := img.RGBAAt(0, 0); got != black {
		t.Errorf("far corner = %v, want %v", got, black)
	}
}

func TestRenderParallelMatchesSequential(t *testing.T) {
	p := Params{MaxDepth: 40, Width: 97, Height: 61, Window: plane.DefaultWindow}
	seq := Engine{}.Render(p)
	for _, workers := range []int{2, 3, 8, 61, 200} {
		par := Engine{Workers: workers}.Render(p)
		if !bytes.Equal(seq.Pix, par.Pix) {
			t.Errorf("Workers=%d output differs from sequential render", workers)
		}
	}
}

func TestRenderCustomHelix(t *testing.T) {
	p := Params{MaxDepth: 20, Width: 20, Height: 20, Window: plane.DefaultWindow}
	grey := colormap.Helix{Start: 1, Rotations: 2, Hue: 0, Gamma: 1}
	a := Engine{}.Render(p)
	b := Engine{Helix: grey}.Render(p)
	if bytes.Equal(a.Pix, b.Pix) {
		t.Error("custom helix should change the output")
	}
}

func TestRenderPanicsOnEmptyCanvas(t *testing.T) {
	for _, p := range []Params{
		{MaxDepth: 10, Width: 0, Height: 10, Window: plane.DefaultWindow},
		{MaxDepth: 10, Width: 10, Height: -1, Window: plane.DefaultWindow},
		{MaxDepth: -1, Width: 10, Height: 10, Window: plane.DefaultWindow},
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Render(%+v) should panic", p)
				}
			}()
			Engine{}.Render(p)
		}()
	}
}

func TestSplitRows(t *testing.T) {
	tests := []struct {
		height, n int
		want      int
	}{
		{100, 0, 1},
		{100, 1, 1},
		{100, 4, 4},
		{3, 8, 3},
		{10, 3, 3},
	}

	for _, tt := range tests {
		bands := splitRows(tt.height, tt.n)
		if len(bands) != tt.want {
			t.Errorf("splitRows(%d, %d) = %d bands, want %d", tt.height, tt.n, len(bands), tt.want)
			continue
		}
		next := 0
		for _, b := range bands {
			if b.from != next || b.to <= b.from {
				t.Errorf("splitRows(%d, %d) has bad band %+v", tt.height, tt.n, b)
			}
			next = b.to
		}
		if next != tt.height {
			t.Errorf("splitRows(%d, %d) covers %d rows", tt.height, tt.n, next)
		}
	}
}

func TestParamsValidate(t *testing.T) {
	valid := Params{MaxDepth: 30, Width: 800, Height: 738, Window: plane.DefaultWindow}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid params: %v", err)
	}

	tests := []struct {
		name string
		p    Params
		code errors.Code
	}{
		{"depth", Params{MaxDepth: 0, Width: 10, Height: 10, Window: plane.DefaultWindow}, errors.ErrCodeInvalidDepth},
		{"canvas", Params{MaxDepth: 5, Width: 0, Height: 10, Window: plane.DefaultWindow}, errors.ErrCodeInvalidCanvas},
		{"window", Params{MaxDepth: 5, Width: 10, Height: 10, Window: plane.Window{}}, errors.ErrCodeInvalidWindow},
	}
	for _, tt := range tests {
		if err := tt.p.Validate(); !errors.Is(err, tt.code) {
			t.Errorf("%s: Validate() = %v, want %s", tt.name, err, tt.code)
		}
	}
}

func TestParamsComparable(t *testing.T) {
	a := Params{MaxDepth: 30, Width: 10, Height: 10, Window: plane.DefaultWindow}
	b := a
	if a != b {
		t.Error("copies should compare equal")
	}
	b.Window.MaxX += 1e-15
	if a == b {
		t.Error("any window change should break equality")
	}
}

// wideWindow is a window whose top-left corner lies outside the escape radius.
func wideWindow() plane.Window {
	return plane.Window{MinX: -3, MinY: -3, MaxX: 3, MaxY: 3}
}

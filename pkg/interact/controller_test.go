package interact

import (
	"image"
	"math"
	"testing"

	"github.com/matzehuels/mandelzoom/pkg/plane"
)

var unit = plane.Window{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1}

func TestPressOutsideIgnored(t *testing.T) {
	c := New(100, 100)
	for _, p := range []image.Point{{-1, 10}, {10, -1}, {100, 10}, {10, 100}} {
		if c.Press(p) {
			t.Errorf("Press(%v) outside canvas should be ignored", p)
		}
		if c.State() != Idle {
			t.Errorf("state after Press(%v) = %v, want idle", p, c.State())
		}
	}
}

func TestReleaseWhileIdle(t *testing.T) {
	c := New(100, 100)
	if _, ok := c.Release(image.Pt(90, 90), unit); ok {
		t.Error("Release without Press should not zoom")
	}
}

func TestDragThreshold(t *testing.T) {
	tests := []struct {
		name    string
		release image.Point
		want    bool
	}{
		{"19 horizontal", image.Pt(69, 50), false},
		{"19 vertical", image.Pt(50, 31), false},
		{"19 diagonal", image.Pt(69, 69), false},
		{"20 horizontal", image.Pt(70, 50), true},
		{"20 vertical", image.Pt(50, 70), true},
		{"click", image.Pt(50, 50), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(100, 100)
			c.Press(image.Pt(50, 50))
			w, ok := c.Release(tt.release, unit)
			if ok != tt.want {
				t.Fatalf("Release(%v) ok = %v, want %v", tt.release, ok, tt.want)
			}
			if ok && !w.Valid() {
				t.Errorf("zoom window %v is not well-formed", w)
			}
			if c.State() != Idle {
				t.Errorf("state after release = %v, want idle", c.State())
			}
		})
	}
}

func TestReleaseQuadrants(t *testing.T) {
	tests := []struct {
		name    string
		release image.Point
		want    plane.Window
	}{
		{"up-right", image.Pt(70, 45), plane.Window{MinX: 0, MinY: 0, MaxX: 0.4, MaxY: 0.4}},
		{"down-right", image.Pt(70, 70), plane.Window{MinX: 0, MinY: -0.4, MaxX: 0.4, MaxY: 0}},
		{"down-left", image.Pt(30, 55), plane.Window{MinX: -0.4, MinY: -0.4, MaxX: 0, MaxY: 0}},
		{"up-left", image.Pt(40, 30), plane.Window{MinX: -0.4, MinY: 0, MaxX: 0, MaxY: 0.4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(100, 100)
			c.Press(image.Pt(50, 50))
			c.Move(tt.release)
			got, ok := c.Release(tt.release, unit)
			if !ok {
				t.Fatal("Release should zoom")
			}
			if !nearWindow(got, tt.want) {
				t.Errorf("Release(%v) = %v, want %v", tt.release, got, tt.want)
			}
			if got.MinX >= got.MaxX || got.MinY >= got.MaxY {
				t.Errorf("window %v should have positive area", got)
			}
		})
	}
}

func TestReleaseMapsCornersThroughWindow(t *testing.T) {
	w := plane.DefaultWindow
	c := New(260, 240)
	c.Press(image.Pt(100, 100))
	got, ok := c.Release(image.Pt(60, 140), w)
	if !ok {
		t.Fatal("Release should zoom")
	}

	// side 40, vertical extent round(40*240/260) = 37, opening down-left.
	x1, y1 := plane.PixelToPlane(100, 100, 260, 240, w)
	x2, y2 := plane.PixelToPlane(137, 60, 260, 240, w)
	want := plane.FromCorners(x1, y1, x2, y2)
	if got != want {
		t.Errorf("Release = %v, want %v", got, want)
	}
}

func TestSelectionKeepsCanvasAspect(t *testing.T) {
	c := New(200, 100)
	c.Press(image.Pt(10, 10))
	c.Move(image.Pt(50, 12))

	sel, ok := c.Selection()
	if !ok {
		t.Fatal("Selection should be available while dragging")
	}
	r := sel.Rect()
	if r.Dx() != 40 || r.Dy() != 20 {
		t.Errorf("selection %v is %dx%d, want 40x20", r, r.Dx(), r.Dy())
	}
	if !sel.Commit {
		t.Error("40px drag should commit")
	}
}

func TestSelectionCommitFlag(t *testing.T) {
	c := New(100, 100)
	if _, ok := c.Selection(); ok {
		t.Error("no selection while idle")
	}

	c.Press(image.Pt(50, 50))
	c.Move(image.Pt(60, 55))
	if sel, _ := c.Selection(); sel.Commit {
		t.Error("10px drag should not commit")
	}
	c.Move(image.Pt(60, 75))
	if sel, _ := c.Selection(); !sel.Commit {
		t.Error("25px drag should commit")
	}
}

func TestReleaseOutsideEndsDrag(t *testing.T) {
	c := New(100, 100)
	c.Press(image.Pt(50, 50))
	if _, ok := c.Release(image.Pt(150, 50), unit); ok {
		t.Error("release outside canvas should not zoom")
	}
	if c.State() != Idle {
		t.Error("release outside canvas should end the drag")
	}
}

func TestPressWhileDraggingKeepsAnchor(t *testing.T) {
	c := New(100, 100)
	c.Press(image.Pt(10, 10))
	if c.Press(image.Pt(80, 80)) {
		t.Error("second press should be ignored")
	}
	c.Move(image.Pt(40, 40))
	sel, _ := c.Selection()
	if sel.Anchor != image.Pt(10, 10) {
		t.Errorf("anchor = %v, want (10,10)", sel.Anchor)
	}
}

func TestResizeCancelsDrag(t *testing.T) {
	c := New(100, 100)
	c.Press(image.Pt(10, 10))
	c.Resize(50, 50)
	if c.State() != Idle {
		t.Error("Resize should cancel the drag")
	}
	if c.Inside(image.Pt(60, 10)) {
		t.Error("Inside should use the new canvas size")
	}
}

func nearWindow(a, b plane.Window) bool {
	const eps = 1e-9
	return math.Abs(a.MinX-b.MinX) < eps && math.Abs(a.MinY-b.MinY) < eps &&
		math.Abs(a.MaxX-b.MaxX) < eps && math.Abs(a.MaxY-b.MaxY) < eps
}

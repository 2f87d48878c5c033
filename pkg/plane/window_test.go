package plane

import (
	"math"
	"testing"

	"github.com/matzehuels/mandelzoom/pkg/errors"
)

func TestPixelToPlaneCorners(t *testing.T) {
	tests := []struct {
		name   string
		w      Window
		width  int
		height int
	}{
		{"default", DefaultWindow, 800, 738},
		{"square", Window{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1}, 100, 100},
		{"tiny", Window{MinX: -0.7435, MinY: 0.1310, MaxX: -0.7420, MaxY: 0.1325}, 3, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := PixelToPlane(0, 0, tt.width, tt.height, tt.w)
			if x != tt.w.MinX || y != tt.w.MaxY {
				t.Errorf("top-left = (%v, %v), want (%v, %v)", x, y, tt.w.MinX, tt.w.MaxY)
			}

			x, y = PixelToPlane(tt.height, tt.width, tt.width, tt.height, tt.w)
			if !near(x, tt.w.MaxX) || y != tt.w.MinY {
				t.Errorf("bottom-right = (%v, %v), want (%v, %v)", x, y, tt.w.MaxX, tt.w.MinY)
			}
		})
	}
}

func TestPixelToPlaneRowFlip(t *testing.T) {
	w := Window{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	_, top := PixelToPlane(0, 0, 10, 10, w)
	_, bottom := PixelToPlane(9, 0, 10, 10, w)
	if top <= bottom {
		t.Errorf("row 0 should map above row 9: top=%v bottom=%v", top, bottom)
	}
	x, y := PixelToPlane(5, 5, 10, 10, w)
	if x != 5 || y != 5 {
		t.Errorf("center = (%v, %v), want (5, 5)", x, y)
	}
}

func TestWindowValid(t *testing.T) {
	tests := []struct {
		w    Window
		want bool
	}{
		{DefaultWindow, true},
		{Window{MinX: 0, MinY: 0, MaxX: 0, MaxY: 1}, false},
		{Window{MinX: 1, MinY: 0, MaxX: 0, MaxY: 1}, false},
		{Window{MinX: 0, MinY: 1, MaxX: 1, MaxY: 0}, false},
		{Window{MinX: math.NaN(), MinY: 0, MaxX: 1, MaxY: 1}, false},
		{Window{MinX: math.Inf(-1), MinY: 0, MaxX: 1, MaxY: 1}, false},
	}

	for _, tt := range tests {
		if got := tt.w.Valid(); got != tt.want {
			t.Errorf("%v.Valid() = %v, want %v", tt.w, got, tt.want)
		}
	}
}

func TestFromCorners(t *testing.T) {
	want := Window{MinX: -1, MinY: -2, MaxX: 3, MaxY: 4}
	for _, c := range [][4]float64{{-1, -2, 3, 4}, {3, 4, -1, -2}, {-1, 4, 3, -2}, {3, -2, -1, 4}} {
		if got := FromCorners(c[0], c[1], c[2], c[3]); got != want {
			t.Errorf("FromCorners(%v) = %v, want %v", c, got, want)
		}
	}
}

func TestHeightFor(t *testing.T) {
	if got := HeightFor(260, DefaultWindow); got != 240 {
		t.Errorf("HeightFor(260, default) = %d, want 240", got)
	}
	if got := HeightFor(0, DefaultWindow); got != 1 {
		t.Errorf("HeightFor(0, default) = %d, want 1", got)
	}
}

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("-2, -1.2, 0.6, 1.2")
	if err != nil {
		t.Fatalf("ParseWindow: %v", err)
	}
	if w != DefaultWindow {
		t.Errorf("ParseWindow = %v, want %v", w, DefaultWindow)
	}

	for _, s := range []string{"", "1,2,3", "a,b,c,d", "1,1,0,2"} {
		_, err := ParseWindow(s)
		if !errors.Is(err, errors.ErrCodeInvalidWindow) {
			t.Errorf("ParseWindow(%q) error = %v, want INVALID_WINDOW", s, err)
		}
	}
}

func TestWindowStringRoundTrip(t *testing.T) {
	w, err := ParseWindow(DefaultWindow.String())
	if err != nil {
		t.Fatalf("ParseWindow: %v", err)
	}
	if w != DefaultWindow {
		t.Errorf("round trip = %v, want %v", w, DefaultWindow)
	}
}

func TestLookupLandmark(t *testing.T) {
	l, err := LookupLandmark("Seahorse")
	if err != nil {
		t.Fatalf("LookupLandmark: %v", err)
	}
	if l.Name != "Seahorse Valley" {
		t.Errorf("Name = %q", l.Name)
	}

	if _, err := LookupLandmark("atlantis"); !errors.Is(err, errors.ErrCodeInvalidRegion) {
		t.Errorf("unknown region error = %v", err)
	}

	for _, name := range LandmarkNames() {
		if !Landmarks[name].Window.Valid() {
			t.Errorf("landmark %s has invalid window", name)
		}
	}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-12 }

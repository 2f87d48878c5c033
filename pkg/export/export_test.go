package export

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/matzehuels/mandelzoom/pkg/cache"
	"github.com/matzehuels/mandelzoom/pkg/errors"
	"github.com/matzehuels/mandelzoom/pkg/escape"
	"github.com/matzehuels/mandelzoom/pkg/plane"
)

func smallParams() escape.Params {
	return escape.Params{MaxDepth: 20, Width: 26, Height: 24, Window: plane.DefaultWindow}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{"PNG", FormatPNG, false},
		{"jpeg", FormatJPEG, false},
		{"jpg", FormatJPEG, false},
		{"gif", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v", tt.in, err)
			continue
		}
		if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ParseFormat(%q) code = %s", tt.in, errors.GetCode(err))
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"out.png":      FormatPNG,
		"out.JPG":      FormatJPEG,
		"dir/out.jpeg": FormatJPEG,
		"out":          FormatPNG,
	}
	for path, want := range tests {
		got, err := FormatFromPath(path)
		if err != nil || got != want {
			t.Errorf("FormatFromPath(%q) = %q, %v; want %q", path, got, err, want)
		}
	}
	if _, err := FormatFromPath("out.bmp"); err == nil {
		t.Error("FormatFromPath(out.bmp) succeeded")
	}
}

func TestRenderSupersampleKeepsSize(t *testing.T) {
	p := smallParams()
	for _, k := range []int{0, 1, 2, 3} {
		img, err := Render(context.Background(), p, Options{Format: FormatPNG, Supersample: k})
		if err != nil {
			t.Fatalf("Render(k=%d): %v", k, err)
		}
		if b := img.Bounds(); b.Dx() != p.Width || b.Dy() != p.Height {
			t.Errorf("Render(k=%d) size = %v, want %dx%d", k, b, p.Width, p.Height)
		}
	}
}

func TestRenderRejectsInvalid(t *testing.T) {
	p := smallParams()
	p.MaxDepth = 0
	if _, err := Render(context.Background(), p, Options{}); !errors.Is(err, errors.ErrCodeInvalidDepth) {
		t.Errorf("Render depth 0 error = %v", err)
	}

	p = smallParams()
	p.Width = errors.MaxCanvasSide
	if _, err := Render(context.Background(), p, Options{Supersample: 2}); !errors.Is(err, errors.ErrCodeInvalidCanvas) {
		t.Errorf("oversized supersample error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Render(ctx, smallParams(), Options{}); err != context.Canceled {
		t.Errorf("Render with canceled context = %v", err)
	}
}

func TestEncodeDecodes(t *testing.T) {
	img, _ := Render(context.Background(), smallParams(), Options{})

	var buf bytes.Buffer
	if err := Encode(&buf, img, FormatPNG, 0); err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}

	buf.Reset()
	if err := Encode(&buf, img, FormatJPEG, 80); err != nil {
		t.Fatal(err)
	}
	if _, err := jpeg.Decode(&buf); err != nil {
		t.Fatalf("jpeg.Decode: %v", err)
	}
}

func TestArtifactUsesCache(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	keys := cache.NewDefaultKeyer()
	opts := Options{Format: FormatPNG}

	first, hit, err := Artifact(ctx, c, keys, smallParams(), opts)
	if err != nil || hit {
		t.Fatalf("first Artifact: hit %v, err %v", hit, err)
	}
	second, hit, err := Artifact(ctx, c, keys, smallParams(), opts)
	if err != nil || !hit {
		t.Fatalf("second Artifact: hit %v, err %v", hit, err)
	}
	if !bytes.Equal(first, second) {
		t.Error("cached artifact differs from rendered artifact")
	}

	p := smallParams()
	p.MaxDepth++
	if _, hit, _ := Artifact(ctx, c, keys, p, opts); hit {
		t.Error("different depth hit the cache")
	}
	if _, hit, _ := Artifact(ctx, c, keys, smallParams(), Options{Format: FormatJPEG}); hit {
		t.Error("different format hit the cache")
	}
}

func TestArtifactNilCache(t *testing.T) {
	data, hit, err := Artifact(context.Background(), nil, nil, smallParams(), Options{Format: FormatPNG})
	if err != nil || hit || len(data) == 0 {
		t.Errorf("Artifact(nil cache) = %d bytes, hit %v, err %v", len(data), hit, err)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		ok   bool
	}{
		{"png", Options{Format: FormatPNG}, true},
		{"jpeg quality", Options{Format: FormatJPEG, Quality: 100}, true},
		{"no format", Options{}, false},
		{"supersample", Options{Format: FormatPNG, Supersample: 5}, false},
		{"quality", Options{Format: FormatJPEG, Quality: 101}, false},
	}
	for _, tt := range tests {
		if err := tt.opts.Validate(); (err == nil) != tt.ok {
			t.Errorf("%s: Validate() = %v", tt.name, err)
		}
	}
}

func TestOverlayLeavesSourceUntouched(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	orig := append([]byte(nil), src.Pix...)

	var o Overlay
	if o.Image() != nil {
		t.Error("Image() before Present should be nil")
	}
	o.StrokeRect(image.Rect(0, 0, 10, 10), color.RGBA{A: 255})

	o.Present(src)
	o.StrokeRect(image.Rect(5, 5, 30, 30), color.RGBA{A: 255})

	if !bytes.Equal(src.Pix, orig) {
		t.Error("Overlay modified the presented frame")
	}
	out := o.Image()
	if out.Bounds() != src.Bounds() {
		t.Errorf("overlay bounds = %v", out.Bounds())
	}
	r, g, b, _ := out.At(5, 15).RGBA()
	if r > 0x8000 || g > 0x8000 || b > 0x8000 {
		t.Errorf("outline pixel (5,15) = %d,%d,%d, want dark", r>>8, g>>8, b>>8)
	}
	r, _, _, _ = out.At(15, 15).RGBA()
	if r>>8 != 255 {
		t.Errorf("interior pixel (15,15) red = %d, want 255", r>>8)
	}
}

package export

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
)

// OverlayLineWidth is the selection outline width in pixels.
const OverlayLineWidth = 1.0

// Overlay is a view.Surface that draws onto a private copy of each frame,
// leaving the cached frame untouched.
type Overlay struct {
	dc *gg.Context
}

// Present copies img into the overlay's canvas.
func (o *Overlay) Present(img *image.RGBA) {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	o.dc = gg.NewContextForRGBA(dst)
}

// StrokeRect outlines r in c. It is a no-op before the first Present.
func (o *Overlay) StrokeRect(r image.Rectangle, c color.RGBA) {
	if o.dc == nil || r.Empty() {
		return
	}
	o.dc.SetRGBA255(int(c.R), int(c.G), int(c.B), int(c.A))
	o.dc.SetLineWidth(OverlayLineWidth)
	o.dc.DrawRectangle(float64(r.Min.X)+0.5, float64(r.Min.Y)+0.5, float64(r.Dx()), float64(r.Dy()))
	o.dc.Stroke()
}

// Image returns the composited frame, or nil before the first Present.
func (o *Overlay) Image() image.Image {
	if o.dc == nil {
		return nil
	}
	return o.dc.Image()
}

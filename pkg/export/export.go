package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/mandelzoom/pkg/cache"
	"github.com/matzehuels/mandelzoom/pkg/colormap"
	"github.com/matzehuels/mandelzoom/pkg/errors"
	"github.com/matzehuels/mandelzoom/pkg/escape"
)

// MaxSupersample bounds the supersampling factor.
const MaxSupersample = 4

// Options controls rendering and encoding.
type Options struct {
	Format      Format
	Supersample int // 0 or 1 renders at output size
	Quality     int // JPEG only; 0 means DefaultJPEGQuality
	Workers     int
	Helix       colormap.Helix // zero means colormap.DefaultHelix
}

func (o Options) factor() int {
	return max(o.Supersample, 1)
}

func (o Options) helix() colormap.Helix {
	if o.Helix == (colormap.Helix{}) {
		return colormap.DefaultHelix
	}
	return o.Helix
}

func (o Options) quality() int {
	if o.Quality <= 0 {
		return DefaultJPEGQuality
	}
	return o.Quality
}

// Validate checks the options.
func (o Options) Validate() error {
	if o.Format != FormatPNG && o.Format != FormatJPEG {
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", o.Format)
	}
	if o.Supersample < 0 || o.Supersample > MaxSupersample {
		return errors.New(errors.ErrCodeInvalidInput, "supersample %d out of range [1, %d]", o.Supersample, MaxSupersample)
	}
	if o.Quality < 0 || o.Quality > 100 {
		return errors.New(errors.ErrCodeInvalidInput, "quality %d out of range [1, 100]", o.Quality)
	}
	return nil
}

// Render draws the frame described by p. With supersampling the frame is
// rendered at k times the size and scaled down to p.Width×p.Height.
func Render(ctx context.Context, p escape.Params, opts Options) (image.Image, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	k := opts.factor()
	big := p
	big.Width, big.Height = p.Width*k, p.Height*k
	if err := errors.ValidateCanvas(big.Width, big.Height); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img := escape.Engine{Helix: opts.helix(), Workers: opts.Workers}.Render(big)
	if k == 1 {
		return img, nil
	}
	return imaging.Resize(img, p.Width, p.Height, imaging.Lanczos), nil
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format, quality int) error {
	var encOpts []imaging.EncodeOption
	if f == FormatJPEG {
		if quality <= 0 {
			quality = DefaultJPEGQuality
		}
		encOpts = append(encOpts, imaging.JPEGQuality(quality))
	}
	if err := imaging.Encode(w, img, f.imaging(), encOpts...); err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return nil
}

// Artifact renders and encodes p, reading and filling c. The bool reports a
// cache hit. Cache read or write failures fall back to rendering.
func Artifact(ctx context.Context, c cache.Cache, keys cache.Keyer, p escape.Params, opts Options) ([]byte, bool, error) {
	if err := opts.Validate(); err != nil {
		return nil, false, err
	}
	if err := p.Validate(); err != nil {
		return nil, false, err
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if keys == nil {
		keys = cache.NewDefaultKeyer()
	}

	key := keys.ArtifactKey(keys.FrameKey(p, opts.helix()), cache.ArtifactKeyOpts{
		Format:      string(opts.Format),
		Supersample: opts.factor(),
		Quality:     jpegOnly(opts),
	})
	if data, hit, err := c.Get(ctx, key); err == nil && hit {
		return data, true, nil
	}

	img, err := Render(ctx, p, opts)
	if err != nil {
		return nil, false, err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, img, opts.Format, opts.quality()); err != nil {
		return nil, false, err
	}
	_ = c.Set(ctx, key, buf.Bytes(), cache.DefaultTTL)
	return buf.Bytes(), false, nil
}

// jpegOnly drops the quality from PNG keys, where it has no effect.
func jpegOnly(opts Options) int {
	if opts.Format == FormatJPEG {
		return opts.quality()
	}
	return 0
}

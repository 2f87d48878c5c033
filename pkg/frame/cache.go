// Package frame memoizes the last rendered frame of a view.
//
// A [Cache] holds exactly one entry: the parameters of the most recent frame
// and the image they produced. Redrawing with unchanged parameters returns the
// same image without touching the renderer. Each view owns its own Cache, so
// two views showing different parameters never evict each other.
package frame

import (
	"context"
	"image"
	"time"

	"github.com/matzehuels/mandelzoom/pkg/escape"
	"github.com/matzehuels/mandelzoom/pkg/observability"
)

// Cache is a one-entry memo of the last frame. It is not safe for concurrent
// use; the owning view serializes access.
type Cache struct {
	renderer escape.Renderer

	params escape.Params
	img    *image.RGBA
}

// New returns an empty cache backed by r.
func New(r escape.Renderer) *Cache {
	if r == nil {
		r = escape.Engine{}
	}
	return &Cache{renderer: r}
}

// RenderOrReuse returns the frame for p. If p equals the parameters of the
// cached frame, the cached image is returned as-is and hit is true. Otherwise
// the renderer runs, its output replaces the cached entry, and hit is false.
//
// Returned images are shared with the cache and must not be modified.
func (c *Cache) RenderOrReuse(ctx context.Context, p escape.Params) (img *image.RGBA, hit bool) {
	hooks := observability.Frames()
	if c.img != nil && c.params == p {
		hooks.OnFrameHit(ctx, p.Width, p.Height, p.MaxDepth)
		return c.img, true
	}

	hooks.OnRenderStart(ctx, p.Width, p.Height, p.MaxDepth)
	start := time.Now()
	img = c.renderer.Render(p)
	hooks.OnRenderComplete(ctx, p.Width, p.Height, p.MaxDepth, time.Since(start))

	c.params, c.img = p, img
	return img, false
}

// Peek returns the cached frame and its parameters without rendering.
func (c *Cache) Peek() (escape.Params, *image.RGBA, bool) {
	return c.params, c.img, c.img != nil
}

// Reset drops the cached entry.
func (c *Cache) Reset() {
	c.params, c.img = escape.Params{}, nil
}

// Package pkg provides the core libraries for mandelzoom.
//
// # Overview
//
// mandelzoom renders the Mandelbrot set with the escape-time algorithm,
// colours it with a cube-helix gradient and lets users zoom by dragging a
// selection. The pkg directory is organized leaf to root:
//
//  1. [plane] - plot windows and the pixel-to-plane mapping
//  2. [colormap] - the cube-helix palette
//  3. [escape] - the escape-time engine
//  4. [frame] - the one-entry frame cache
//  5. [interact] - the drag-to-zoom controller
//  6. [view] - the view orchestrating all of the above
//
// Supporting packages: [errors] (coded errors), [config] (TOML settings),
// [cache] (encoded artifact cache), [export] (PNG/JPEG output),
// [session] (per-client views), [observability] (hooks) and [buildinfo].
//
// # Architecture
//
//	pointer events
//	      ↓
//	[interact] Controller ──→ new plane.Window
//	      ↓
//	[view] View ──→ [frame] Cache ──→ [escape] Engine ──→ [colormap] Table
//	      ↓
//	view.Surface (terminal, desktop window, HTTP session, file)
//
// # Quick Start
//
//	v := view.New(800, 0)
//	v.Press(image.Pt(300, 200))
//	v.Release(image.Pt(400, 260))
//	img := v.Frame(ctx) // zoomed frame
//
//	p := escape.Params{MaxDepth: 100, Width: 1600, Height: 1477, Window: plane.DefaultWindow}
//	data, _, err := export.Artifact(ctx, cache.NewNullCache(), nil, p, export.Options{Format: export.FormatPNG})
package pkg

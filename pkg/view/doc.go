// Package view orchestrates an interactive Mandelbrot view.
//
// A [View] owns the user-adjustable state (depth and plot window), a
// one-entry [frame.Cache] and a drag-to-zoom [interact.Controller]. Display
// surfaces (the terminal UI, the desktop window, HTTP sessions, image export)
// forward pointer events to it and ask it to [View.Draw] once per tick.
//
// # Render cycle
//
// The view moves Idle → Rendering → Idle. Any change to depth, canvas size or
// window marks it dirty and drops the cached frame; the next Frame or Draw
// renders once and clears the flag. Ticks without changes reuse the cached
// frame.
//
// # Usage
//
//	v := view.New(800, 0) // height follows the window aspect
//	v.Press(image.Pt(100, 100))
//	v.Move(image.Pt(180, 150))
//	if v.Release(image.Pt(180, 150)) {
//	    // zoomed: v.Window() now covers the selection
//	}
//	v.Draw(ctx, surface)
package view

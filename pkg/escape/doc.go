// Package escape renders the Mandelbrot set by escape-time iteration.
//
// For every pixel the engine maps the pixel through [plane.PixelToPlane] to a point c of
// the complex plane, iterates z ← z² + c from z = c, and stops when |z|² reaches
// 4 or the depth cap is hit. The number of completed iterations picks the
// pixel colour from a [colormap.Table] built once per frame.
//
// Rendering is synchronous and costs O(width·height·maxDepth). [Engine.Workers]
// splits a frame into horizontal bands rendered concurrently; the output is
// byte-for-byte the same as a sequential render.
//
// Invalid dimensions or a negative depth are caller bugs and panic. Use
// [Params.Validate] on untrusted input before rendering.
package escape

// Package export turns Mandelbrot frames into image files.
//
// [Render] draws a frame, optionally supersampled and downscaled with a
// Lanczos filter for smoother edges. [Encode] writes PNG or JPEG.
// [Artifact] combines both behind a [cache.Cache] so identical requests are
// served from disk. [Overlay] is a [view.Surface] that composites the zoom
// selection outline onto a copy of the frame, for surfaces that ship whole
// images such as the HTTP service.
package export

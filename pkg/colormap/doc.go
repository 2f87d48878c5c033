// Package colormap maps escape depths to colours along a cube-helix gradient.
//
// The cube-helix scheme, proposed by Dave Green, runs from black to white while
// the red, green and blue components spiral around the grey diagonal of the
// RGB cube. Perceived brightness increases monotonically with depth, so the
// gradient stays readable in greyscale.
//
// Depth has a small bounded domain, so renderers build a [Table] once per
// frame with [NewTable] and index it per pixel instead of calling [ForDepth]
// for every pixel.
package colormap

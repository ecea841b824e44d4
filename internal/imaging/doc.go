// Package imaging turns image files into the numeric pixel grids consumed by
// the detection pipeline, and renders detection results back onto images.
//
// The detection core operates on plain [][]float64 grids and caller-supplied
// classifiers; this package provides both sides of that contract:
//
// Grid builders:
//   - LuminanceGrid: BT.601 luminance in 0..255
//   - BinaryGrid: threshold segmentation to 0/255
//   - ColorDistanceGrid: per-pixel CIE-Lab distance to a target color
//   - GradientGrid: Sobel gradient magnitude in 0..255
//
// Classifier constructors:
//   - DarkerThan / BrighterThan for luminance and gradient grids
//   - AtMost / AtLeast for distance grids
//
// All builders accept an optional Region to restrict analysis to a sub-area
// of the image. Grids are freshly allocated; the source image is never
// written to.
//
// # Coordinate System
//
// Grid element [y][x] corresponds to the pixel at (x, y) of the analyzed
// area, 0-based with the origin at the top-left corner. When a Region is
// given, grid coordinates are relative to the region's top-left corner.
//
// # Loading
//
// ImageCache decodes PNG, JPEG, and GIF files once and serves them from
// memory afterwards; it is safe for concurrent use.
//
// # Rendering
//
// RenderSegments draws segments (in their [x1, y1, x2, y2] form) over the
// source image and returns a base64 PNG, for visual verification of
// detection output.
package imaging

// Package detection extracts straight line segments from classified pixel
// grids and refines them into coherent structures.
//
// The package implements a three-stage pipeline for turning raster content
// (scanned plans, diagrams, flowcharts) into vector-like line geometry:
//
//  1. FindLines scans a numeric pixel grid with a caller-supplied classifier
//     and run-length-encodes maximal runs along four principal directions
//     (horizontal, vertical, and both diagonals) into raw segments.
//  2. GroupAdjacentLines partitions segments into structures: connected
//     components under endpoint adjacency within a Chebyshev radius.
//  3. CombineLinesWithEqualSlope merges adjacent, near-parallel segments
//     inside each structure until a fixed point is reached, collapsing
//     fragmented detections into longer lines.
//
// Data flows strictly forward: grid -> segments -> structures -> combined
// structures. Each stage produces new values; no input is mutated.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at the top-left corner
//   - X increases rightward
//   - Y increases downward
//   - Segment endpoints are inclusive pixel positions
//
// # Orientation
//
// A segment's orientation is atan2(dy, dx) normalized into [0, 180) degrees,
// so a line and its reverse compare equal and near-collinear opposite
// directions merge naturally.
//
// # Determinism
//
// All three stages are deterministic over their inputs. The combiner's merge
// order is a documented scan order over slice positions, never container
// iteration order, and the grouping stage's structure order follows input
// order. Callers must still not attach meaning to segment order within the
// extractor's output; only the set is specified.
//
// # Errors
//
// Invalid parameters (empty or ragged grids, negative delta or epsilon)
// surface as ErrInvalidInput. A panic raised by the caller's classifier is
// recovered once per extraction call and surfaced as ErrClassifier with the
// panic value preserved; it is never swallowed. The pipeline performs no
// retries and returns no partial results.
//
// # Limitations
//
// The pipeline is exact over the given classifier: there is no sub-pixel
// fitting, curve detection, denoising, or probabilistic voting. Noisy input
// classifications produce noisy segments.
package detection

package detection

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// CombineLinesWithEqualSlope merges adjacent, near-parallel segments within
// each structure until no structure has a mergeable pair left.
//
// Two segments of the same structure are merge candidates when they are
// adjacent under the same Chebyshev-delta relation used for grouping, and
// the difference between their orientations, measured modulo 180 degrees, is
// at most angleEpsilon. A point segment carries no orientation, so adjacency
// alone decides its merges. Merging replaces the pair with one segment
// spanning the two mutually farthest of the four endpoints.
//
// Candidate order is deterministic: within a structure, pairs (i, j) with
// i < j are scanned in slice order and the first admissible merge wins; the
// merged segment takes index i, index j is removed, and scanning resumes at
// (i, i+1). Sweeps repeat until one full sweep performs no merge, so the
// result is a fixed point and the operation is idempotent.
//
// Structures never exchange segments, so each structure's merge loop runs in
// its own goroutine; the loop itself is sequential, keeping merges within a
// structure atomic. Input structures are not mutated.
//
// Returns ErrInvalidInput when angleEpsilon or delta is negative. Ungrouped
// input cannot be expressed: the signature only accepts structures produced
// by GroupAdjacentLines.
func CombineLinesWithEqualSlope(structures []Structure, angleEpsilon float64, delta int) ([]Structure, error) {
	if angleEpsilon < 0 {
		return nil, fmt.Errorf("%w: angle epsilon must be >= 0, got %g", ErrInvalidInput, angleEpsilon)
	}
	if delta < 0 {
		return nil, fmt.Errorf("%w: delta must be >= 0, got %d", ErrInvalidInput, delta)
	}

	combined := make([]Structure, len(structures))
	var g errgroup.Group
	for i, st := range structures {
		i, st := i, st
		g.Go(func() error {
			combined[i] = Structure{Segments: combineStructure(st.Segments, angleEpsilon, delta)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return combined, nil
}

// combineStructure runs the fixed-point merge loop on a copy of segs.
func combineStructure(segs []Segment, angleEpsilon float64, delta int) []Segment {
	out := make([]Segment, len(segs))
	copy(out, segs)

	changed := true
	for changed {
		changed = false
		for i := 0; i < len(out); i++ {
			for j := i + 1; j < len(out); j++ {
				merged, ok := mergeSegments(out[i], out[j], angleEpsilon, delta)
				if !ok {
					continue
				}
				out[i] = merged
				out = append(out[:j], out[j+1:]...)
				j = i
				changed = true
			}
		}
	}
	return out
}

// mergeSegments merges a and b when they are adjacent and parallel within
// angleEpsilon. The merged segment spans the two mutually farthest of the
// four endpoints; on equal distances the first pair in endpoint enumeration
// order wins, and the surviving endpoints are ordered by (X, Y) so the result
// does not depend on input direction.
func mergeSegments(a, b Segment, angleEpsilon float64, delta int) (Segment, bool) {
	if !a.Adjacent(b, delta) {
		return Segment{}, false
	}
	if !a.IsPoint() && !b.IsPoint() {
		if angleDiff(a.AngleDegrees(), b.AngleDegrees()) > angleEpsilon {
			return Segment{}, false
		}
	}

	pts := [4]Point{a.Start, a.End, b.Start, b.End}
	best := -1
	var p1, p2 Point
	for m := 0; m < 4; m++ {
		for n := m + 1; n < 4; n++ {
			if d := sqDist(pts[m], pts[n]); d > best {
				best = d
				p1, p2 = pts[m], pts[n]
			}
		}
	}
	if p2.X < p1.X || (p2.X == p1.X && p2.Y < p1.Y) {
		p1, p2 = p2, p1
	}
	return Segment{Start: p1, End: p2}, true
}

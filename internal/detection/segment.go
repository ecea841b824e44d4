package detection

import "math"

// Point represents a 2D coordinate in pixel space.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// Segment is a straight run of line-colored pixels, identified by its two
// extreme endpoints. Coordinates are 0-based with the origin at the top-left
// corner. A segment is undirected: it and its reverse describe the same run.
type Segment struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// Structure is a maximal set of segments connected through endpoint
// adjacency. It carries no geometry of its own beyond its members.
type Structure struct {
	Segments []Segment `json:"segments"`
}

// IsPoint reports whether the segment degenerates to a single pixel.
func (s Segment) IsPoint() bool {
	return s.Start == s.End
}

// Length returns the Euclidean distance between the segment's endpoints.
func (s Segment) Length() float64 {
	dx := float64(s.End.X - s.Start.X)
	dy := float64(s.End.Y - s.Start.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// AngleDegrees returns the segment's orientation as atan2(dy, dx) normalized
// into [0, 180). A segment and its reverse have the same orientation.
// A point segment reports 0.
func (s Segment) AngleDegrees() float64 {
	dy := float64(s.End.Y - s.Start.Y)
	dx := float64(s.End.X - s.Start.X)
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	if deg < 0 {
		deg += 180
	}
	if deg >= 180 {
		deg -= 180
	}
	return deg
}

// Quad returns the segment in its external 4-tuple form
// [x_start, y_start, x_end, y_end] for plotting collaborators.
func (s Segment) Quad() [4]int {
	return [4]int{s.Start.X, s.Start.Y, s.End.X, s.End.Y}
}

// EqualUndirected reports whether two segments cover the same endpoints,
// regardless of direction.
func (s Segment) EqualUndirected(o Segment) bool {
	return (s.Start == o.Start && s.End == o.End) ||
		(s.Start == o.End && s.End == o.Start)
}

// Adjacent reports whether any endpoint of s lies within Chebyshev distance
// delta of any endpoint of o.
func (s Segment) Adjacent(o Segment, delta int) bool {
	for _, a := range s.endpoints() {
		for _, b := range o.endpoints() {
			if chebyshev(a, b) <= delta {
				return true
			}
		}
	}
	return false
}

func (s Segment) endpoints() [2]Point {
	return [2]Point{s.Start, s.End}
}

// chebyshev returns the Chebyshev (L-infinity) distance between two points.
func chebyshev(a, b Point) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// sqDist returns the squared Euclidean distance between two points.
func sqDist(a, b Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// angleDiff returns the difference between two orientations in [0, 180),
// measured modulo 180 and folded into [0, 90].
func angleDiff(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 90 {
		d = 180 - d
	}
	return d
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package detection

// Bounds represents a rectangular bounding box in pixel coordinates.
// All edges are inclusive, matching segment endpoint coordinates.
type Bounds struct {
	X1 int `json:"x1"` // Left edge
	Y1 int `json:"y1"` // Top edge
	X2 int `json:"x2"` // Right edge
	Y2 int `json:"y2"` // Bottom edge
}

// StructureSummary describes the geometry of one structure.
type StructureSummary struct {
	// SegmentCount is the number of segments in the structure.
	SegmentCount int `json:"segment_count"`

	// TotalLength is the summed Euclidean length of all segments.
	TotalLength float64 `json:"total_length"`

	// LongestLength is the length of the longest segment.
	LongestLength float64 `json:"longest_length"`

	// DominantAngleDegrees is the orientation of the longest segment,
	// normalized into [0, 180).
	DominantAngleDegrees float64 `json:"dominant_angle_degrees"`

	// Bounds is the bounding box enclosing all segment endpoints.
	Bounds Bounds `json:"bounds"`
}

// SummaryResult contains summaries for a set of structures.
type SummaryResult struct {
	Structures     []StructureSummary `json:"structures"`
	StructureCount int                `json:"structure_count"`
	SegmentCount   int                `json:"segment_count"`
}

// SummarizeStructures computes per-structure geometry metrics. Summaries are
// returned in the same order as the input structures; empty structures yield
// zero-valued summaries.
func SummarizeStructures(structures []Structure) *SummaryResult {
	result := &SummaryResult{
		Structures:     make([]StructureSummary, len(structures)),
		StructureCount: len(structures),
	}

	for i, st := range structures {
		summary := StructureSummary{SegmentCount: len(st.Segments)}
		result.SegmentCount += len(st.Segments)

		for k, seg := range st.Segments {
			length := seg.Length()
			summary.TotalLength += length
			if length > summary.LongestLength || k == 0 {
				summary.LongestLength = length
				summary.DominantAngleDegrees = seg.AngleDegrees()
			}
			for _, p := range seg.endpoints() {
				if k == 0 && p == seg.Start {
					summary.Bounds = Bounds{X1: p.X, Y1: p.Y, X2: p.X, Y2: p.Y}
					continue
				}
				if p.X < summary.Bounds.X1 {
					summary.Bounds.X1 = p.X
				}
				if p.Y < summary.Bounds.Y1 {
					summary.Bounds.Y1 = p.Y
				}
				if p.X > summary.Bounds.X2 {
					summary.Bounds.X2 = p.X
				}
				if p.Y > summary.Bounds.Y2 {
					summary.Bounds.Y2 = p.Y
				}
			}
		}
		result.Structures[i] = summary
	}
	return result
}

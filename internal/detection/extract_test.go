package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridOf builds a grid from rows of '#' (line pixel, value 1) and '.'
// (background, value 0).
func gridOf(rows ...string) [][]float64 {
	grid := make([][]float64, len(rows))
	for y, row := range rows {
		grid[y] = make([]float64, len(row))
		for x, c := range row {
			if c == '#' {
				grid[y][x] = 1
			}
		}
	}
	return grid
}

func isOne(v float64) bool { return v == 1 }

// containsSegment reports whether segs holds seg up to endpoint order.
func containsSegment(segs []Segment, seg Segment) bool {
	for _, s := range segs {
		if s.EqualUndirected(seg) {
			return true
		}
	}
	return false
}

func seg(x1, y1, x2, y2 int) Segment {
	return Segment{Start: Point{X: x1, Y: y1}, End: Point{X: x2, Y: y2}}
}

func TestFindLines_EmptyGrid(t *testing.T) {
	_, err := FindLines(nil, isOne, Options{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = FindLines([][]float64{}, isOne, Options{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = FindLines([][]float64{{}}, isOne, Options{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFindLines_RaggedGrid(t *testing.T) {
	grid := [][]float64{{1, 1, 1}, {1, 1}}
	_, err := FindLines(grid, isOne, Options{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFindLines_NilClassifier(t *testing.T) {
	_, err := FindLines(gridOf("###"), nil, Options{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFindLines_ClassifierPanic(t *testing.T) {
	grid := gridOf(
		"###",
		"...",
	)
	bad := func(v float64) bool {
		if v == 0 {
			panic("unclassifiable value")
		}
		return true
	}
	_, err := FindLines(grid, bad, Options{})
	assert.ErrorIs(t, err, ErrClassifier)
}

func TestFindLines_AllBackground(t *testing.T) {
	segs, err := FindLines(gridOf(
		"....",
		"....",
		"....",
	), isOne, Options{})
	require.NoError(t, err)
	assert.Empty(t, segs)
}

func TestFindLines_AllLine(t *testing.T) {
	segs, err := FindLines(gridOf(
		"####",
		"####",
		"####",
	), isOne, Options{})
	require.NoError(t, err)

	// Full-width rows and full-height columns must come out as boundary
	// segments.
	for y := 0; y < 3; y++ {
		assert.True(t, containsSegment(segs, seg(0, y, 3, y)), "row %d", y)
	}
	for x := 0; x < 4; x++ {
		assert.True(t, containsSegment(segs, seg(x, 0, x, 2)), "column %d", x)
	}
	// Every pixel is covered by a longer run, so no point segments remain.
	for _, s := range segs {
		assert.False(t, s.IsPoint(), "unexpected point segment %v", s)
	}
}

func TestFindLines_HorizontalRun(t *testing.T) {
	segs, err := FindLines(gridOf(
		".....",
		".###.",
		".....",
	), isOne, Options{})
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.True(t, segs[0].EqualUndirected(seg(1, 1, 3, 1)))
}

func TestFindLines_Diagonal(t *testing.T) {
	segs, err := FindLines(gridOf(
		"#....",
		".#...",
		"..#..",
		"...#.",
		"....#",
	), isOne, Options{})
	require.NoError(t, err)

	// A clean down-right diagonal is exactly one segment; the single-pixel
	// runs seen by the horizontal and vertical scans must not surface as
	// points.
	require.Len(t, segs, 1)
	assert.True(t, segs[0].EqualUndirected(seg(0, 0, 4, 4)))
}

func TestFindLines_AntiDiagonal(t *testing.T) {
	segs, err := FindLines(gridOf(
		"....#",
		"...#.",
		"..#..",
		".#...",
		"#....",
	), isOne, Options{})
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.True(t, segs[0].EqualUndirected(seg(0, 4, 4, 0)))
}

func TestFindLines_Cross(t *testing.T) {
	segs, err := FindLines(gridOf(
		"..#..",
		"..#..",
		"#####",
		"..#..",
		"..#..",
	), isOne, Options{MinLength: 3})
	require.NoError(t, err)

	// The center pixel is shared by the horizontal and the vertical run;
	// both full segments come out. MinLength 3 drops the short diagonal
	// runs where the two arms touch corner to corner.
	assert.True(t, containsSegment(segs, seg(0, 2, 4, 2)))
	assert.True(t, containsSegment(segs, seg(2, 0, 2, 4)))
	assert.Len(t, segs, 2)
}

func TestFindLines_IsolatedPixel(t *testing.T) {
	grid := gridOf(
		".....",
		"..#..",
		".....",
	)

	segs, err := FindLines(grid, isOne, Options{})
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.True(t, segs[0].IsPoint())
	assert.Equal(t, Point{X: 2, Y: 1}, segs[0].Start)

	// MinLength 2 suppresses point segments entirely.
	segs, err = FindLines(grid, isOne, Options{MinLength: 2})
	require.NoError(t, err)
	assert.Empty(t, segs)
}

func TestFindLines_MinLength(t *testing.T) {
	grid := gridOf(
		"###.....",
		"........",
		"#####...",
	)

	segs, err := FindLines(grid, isOne, Options{MinLength: 4})
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.True(t, segs[0].EqualUndirected(seg(0, 2, 4, 2)))

	segs, err = FindLines(grid, isOne, Options{MinLength: 2})
	require.NoError(t, err)
	assert.Len(t, segs, 2)
	assert.True(t, containsSegment(segs, seg(0, 0, 2, 0)))
}

func TestFindLines_SegmentsCoverOnlyLinePixels(t *testing.T) {
	grid := gridOf(
		"#...#..#",
		".#..#...",
		"..#.#.##",
		"...##...",
		"####....",
	)
	segs, err := FindLines(grid, isOne, Options{})
	require.NoError(t, err)
	require.NotEmpty(t, segs)

	// Every pixel on every returned segment must classify as a line pixel.
	for _, s := range segs {
		dx := sign(s.End.X - s.Start.X)
		dy := sign(s.End.Y - s.Start.Y)
		for p := s.Start; ; p = (Point{X: p.X + dx, Y: p.Y + dy}) {
			assert.Equal(t, 1.0, grid[p.Y][p.X], "segment %v crosses background at %v", s, p)
			if p == s.End {
				break
			}
		}
	}
}

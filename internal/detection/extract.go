package detection

import "fmt"

// Classifier decides whether a pixel value belongs to a line. Implementations
// must be pure and total over the values present in the grid; the extractor
// never inspects anything but the returned boolean.
type Classifier func(value float64) bool

// Options control segment extraction.
type Options struct {
	// MinLength discards runs shorter than this many pixels. Values below 1
	// are treated as 1, which keeps isolated single-pixel runs as point
	// segments.
	MinLength int `json:"min_length"`
}

// FindLines scans a pixel grid and returns the raw candidate line segments.
//
// Every pixel is classified exactly once. The resulting mask is then walked
// in four principal directions - horizontal (left to right per row), vertical
// (top to bottom per column), and the two diagonals - and each maximal
// contiguous run of at least two line pixels becomes one segment, with start
// and end at the run's first and last pixel in scan order. A pixel
// contributes to at most one run per direction, but may legitimately appear
// in segments of different directions (a crossing pixel belongs to both a
// horizontal and a diagonal line).
//
// A line pixel that belongs to no run in any direction is emitted once as a
// degenerate point segment (start == end). Pixels inside longer runs never
// reappear as points, so a clean diagonal yields exactly one segment rather
// than a trail of single-pixel leftovers from the other scan directions.
// Options.MinLength > 1 suppresses point segments and any run shorter than
// the threshold.
//
// The grid is never mutated, and the order of the returned segments carries
// no meaning.
//
// Errors are ErrInvalidInput for an empty or ragged grid or a nil classifier,
// and ErrClassifier when the classifier panics for any pixel value.
func FindLines(grid [][]float64, isLineColor Classifier, opts Options) ([]Segment, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("%w: grid must have at least one row and one column", ErrInvalidInput)
	}
	if isLineColor == nil {
		return nil, fmt.Errorf("%w: classifier must be set", ErrInvalidInput)
	}
	width := len(grid[0])
	height := len(grid)
	for y, row := range grid {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidInput, y, len(row), width)
		}
	}

	mask, err := classifyMask(grid, isLineColor)
	if err != nil {
		return nil, err
	}

	minLength := opts.MinLength
	if minLength < 1 {
		minLength = 1
	}

	covered := make([][]bool, height)
	for y := range covered {
		covered[y] = make([]bool, width)
	}

	var segments []Segment
	emit := func(start, end Point) {
		runLen := chebyshev(start, end) + 1
		if runLen < 2 {
			return
		}
		dx := sign(end.X - start.X)
		dy := sign(end.Y - start.Y)
		for p := start; ; p = (Point{X: p.X + dx, Y: p.Y + dy}) {
			covered[p.Y][p.X] = true
			if p == end {
				break
			}
		}
		if runLen >= minLength {
			segments = append(segments, Segment{Start: start, End: end})
		}
	}

	// Horizontal: one scanline per row.
	for y := 0; y < height; y++ {
		walkRuns(mask, 0, y, 1, 0, emit)
	}
	// Vertical: one scanline per column.
	for x := 0; x < width; x++ {
		walkRuns(mask, x, 0, 0, 1, emit)
	}
	// Diagonal down-right: scanlines start on the left column and top row.
	for y := 0; y < height; y++ {
		walkRuns(mask, 0, y, 1, 1, emit)
	}
	for x := 1; x < width; x++ {
		walkRuns(mask, x, 0, 1, 1, emit)
	}
	// Diagonal up-right: scanlines start on the left column and bottom row.
	for y := 0; y < height; y++ {
		walkRuns(mask, 0, y, 1, -1, emit)
	}
	for x := 1; x < width; x++ {
		walkRuns(mask, x, height-1, 1, -1, emit)
	}

	// Isolated pixels: line-colored but part of no run in any direction.
	if minLength <= 1 {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if mask[y][x] && !covered[y][x] {
					p := Point{X: x, Y: y}
					segments = append(segments, Segment{Start: p, End: p})
				}
			}
		}
	}

	return segments, nil
}

// classifyMask applies the classifier to every pixel exactly once. A panic
// inside the classifier is recovered and surfaced as ErrClassifier.
func classifyMask(grid [][]float64, isLineColor Classifier) (mask [][]bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			mask = nil
			err = fmt.Errorf("%w: %v", ErrClassifier, r)
		}
	}()

	mask = make([][]bool, len(grid))
	for y, row := range grid {
		mask[y] = make([]bool, len(row))
		for x, v := range row {
			mask[y][x] = isLineColor(v)
		}
	}
	return mask, nil
}

// walkRuns follows a single scanline from (x, y) in steps of (dx, dy) and
// reports every maximal run of true pixels to emit. Each pixel of the
// scanline is visited exactly once, so runs within one direction never
// overlap.
func walkRuns(mask [][]bool, x, y, dx, dy int, emit func(start, end Point)) {
	width := len(mask[0])
	height := len(mask)

	inRun := false
	var start, last Point
	for x >= 0 && x < width && y >= 0 && y < height {
		if mask[y][x] {
			if !inRun {
				start = Point{X: x, Y: y}
				inRun = true
			}
			last = Point{X: x, Y: y}
		} else if inRun {
			emit(start, last)
			inRun = false
		}
		x += dx
		y += dy
	}
	if inRun {
		emit(start, last)
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

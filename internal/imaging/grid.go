package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Region selects a rectangular sub-area of an image for grid construction.
// (X1, Y1) is the inclusive top-left corner and (X2, Y2) the exclusive
// bottom-right corner, in the image's own coordinate space.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// applyRegion crops img to region when one is given.
func applyRegion(img image.Image, region *Region) (image.Image, error) {
	if region == nil {
		return img, nil
	}
	b := img.Bounds()
	if region.X1 < b.Min.X || region.Y1 < b.Min.Y || region.X2 > b.Max.X || region.Y2 > b.Max.Y {
		return nil, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			region.X1, region.Y1, region.X2, region.Y2, b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
	}
	if region.X1 >= region.X2 || region.Y1 >= region.Y2 {
		return nil, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
	}
	return imaging.Crop(img, image.Rect(region.X1, region.Y1, region.X2, region.Y2)), nil
}

// LuminanceGrid converts an image into a grid of BT.601 luminance values
// in 0..255. Dark ink on light paper classifies well with DarkerThan.
func LuminanceGrid(img image.Image, region *Region) ([][]float64, error) {
	img, err := applyRegion(img, region)
	if err != nil {
		return nil, err
	}

	gray := effect.Grayscale(img)
	b := gray.Bounds()
	grid := make([][]float64, b.Dy())
	for y := range grid {
		grid[y] = make([]float64, b.Dx())
		for x := range grid[y] {
			// Grayscale output has R == G == B.
			r, _, _, _ := gray.At(x+b.Min.X, y+b.Min.Y).RGBA()
			grid[y][x] = float64(r >> 8)
		}
	}
	return grid, nil
}

// BinaryGrid segments an image at the given luminance level and returns a
// grid of 0 and 255 values: 255 where the pixel is brighter than level,
// 0 otherwise.
func BinaryGrid(img image.Image, level uint8, region *Region) ([][]float64, error) {
	img, err := applyRegion(img, region)
	if err != nil {
		return nil, err
	}

	binary := segment.Threshold(img, level)
	b := binary.Bounds()
	grid := make([][]float64, b.Dy())
	for y := range grid {
		grid[y] = make([]float64, b.Dx())
		for x := range grid[y] {
			grid[y][x] = float64(binary.GrayAt(x+b.Min.X, y+b.Min.Y).Y)
		}
	}
	return grid, nil
}

// ColorDistanceGrid returns a grid of per-pixel CIE-Lab distances to the
// target color, given as a hex string like "#FF0000". Distances are in
// colorful's Lab scale, roughly 0 (identical) to 1.4 (opposite corners of
// the RGB cube); pixels "of the target color" classify with AtMost using a
// tolerance around 0.1-0.2. Useful when lines are drawn in a known color on
// a busy background where plain luminance cannot separate them.
func ColorDistanceGrid(img image.Image, targetHex string, region *Region) ([][]float64, error) {
	target, err := colorful.Hex(targetHex)
	if err != nil {
		return nil, fmt.Errorf("invalid target color %q: %w", targetHex, err)
	}

	img, err = applyRegion(img, region)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	grid := make([][]float64, b.Dy())
	for y := range grid {
		grid[y] = make([]float64, b.Dx())
		for x := range grid[y] {
			r, g, bl, _ := img.At(x+b.Min.X, y+b.Min.Y).RGBA()
			c := colorful.Color{
				R: float64(r) / 65535.0,
				G: float64(g) / 65535.0,
				B: float64(bl) / 65535.0,
			}
			grid[y][x] = c.DistanceLab(target)
		}
	}
	return grid, nil
}

// GradientGrid returns a grid of Sobel gradient magnitudes scaled into
// 0..255. Lines show up as bands of high magnitude, so BrighterThan selects
// them; this suits inputs where lines are contrast boundaries rather than
// solid strokes. No smoothing is applied before the gradient.
func GradientGrid(img image.Image, region *Region) ([][]float64, error) {
	img, err := applyRegion(img, region)
	if err != nil {
		return nil, err
	}

	lum, err := LuminanceGrid(img, nil)
	if err != nil {
		return nil, err
	}
	height := len(lum)
	width := len(lum[0])

	sobelX := [3][3]float64{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}
	sobelY := [3][3]float64{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}}

	grid := make([][]float64, height)
	for y := 0; y < height; y++ {
		grid[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					py := clamp(y+ky, 0, height-1)
					px := clamp(x+kx, 0, width-1)
					gx += lum[py][px] * sobelX[ky+1][kx+1]
					gy += lum[py][px] * sobelY[ky+1][kx+1]
				}
			}
			// Max Sobel response is 4*255 per axis.
			grid[y][x] = math.Sqrt(gx*gx+gy*gy) / (4 * math.Sqrt2)
		}
	}
	return grid, nil
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

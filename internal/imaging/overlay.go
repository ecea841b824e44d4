package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"

	"github.com/disintegration/imaging"
)

// OverlayResult contains an image with detected segments drawn on top,
// encoded as base64 PNG.
type OverlayResult struct {
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	ImageBase64  string `json:"image_base64"`
	MimeType     string `json:"mime_type"`
	SegmentCount int    `json:"segment_count"`
}

// RenderSegments draws line segments over an image for visual inspection of
// detection results.
//
// Segments are given in their external 4-tuple form [x1, y1, x2, y2] and are
// drawn as 1-pixel Bresenham lines in the given hex color (default
// semi-transparent red when the color fails to parse, matching the source
// image untouched underneath). Segments reaching outside the image are
// clipped pixel by pixel. A scale factor other than 1.0 resizes the rendered
// result, which helps when inspecting small drawings.
func RenderSegments(img image.Image, segments [][4]int, colorHex string, scale float64) (*OverlayResult, error) {
	lineColor, err := parseHexColor(colorHex)
	if err != nil {
		lineColor = color.RGBA{255, 0, 0, 255}
	}

	bounds := img.Bounds()
	result := image.NewRGBA(bounds)
	draw.Draw(result, bounds, img, bounds.Min, draw.Src)

	for _, seg := range segments {
		drawLine(result, seg[0]+bounds.Min.X, seg[1]+bounds.Min.Y, seg[2]+bounds.Min.X, seg[3]+bounds.Min.Y, lineColor)
	}

	var out image.Image = result
	if scale > 0 && scale != 1.0 {
		w := int(float64(bounds.Dx()) * scale)
		h := int(float64(bounds.Dy()) * scale)
		out = imaging.Resize(result, w, h, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode overlay image: %w", err)
	}

	return &OverlayResult{
		Width:        out.Bounds().Dx(),
		Height:       out.Bounds().Dy(),
		ImageBase64:  base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:     "image/png",
		SegmentCount: len(segments),
	}, nil
}

// drawLine draws a 1-pixel line from (x1,y1) to (x2,y2) using Bresenham's
// algorithm. Pixels outside the image are skipped.
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, c color.RGBA) {
	bounds := img.Bounds()
	dx := absInt(x2 - x1)
	dy := -absInt(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	errAcc := dx + dy

	for {
		if x1 >= bounds.Min.X && x1 < bounds.Max.X && y1 >= bounds.Min.Y && y1 < bounds.Max.Y {
			img.Set(x1, y1, c)
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * errAcc
		if e2 >= dy {
			errAcc += dy
			x1 += sx
		}
		if e2 <= dx {
			errAcc += dx
			y1 += sy
		}
	}
}

// parseHexColor parses a hex color string like "#FF0000" or "#FF000080".
func parseHexColor(hex string) (color.RGBA, error) {
	if len(hex) == 0 {
		return color.RGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color length")
	}

	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

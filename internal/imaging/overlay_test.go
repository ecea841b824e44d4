package imaging

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"testing"
)

func TestRenderSegments(t *testing.T) {
	img := fillImage(10, 10, white)
	segments := [][4]int{{0, 0, 9, 9}}

	result, err := RenderSegments(img, segments, "#FF0000", 1.0)
	if err != nil {
		t.Fatalf("RenderSegments failed: %v", err)
	}
	if result.Width != 10 || result.Height != 10 {
		t.Errorf("result is %dx%d, want 10x10", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("mime type = %q, want image/png", result.MimeType)
	}
	if result.SegmentCount != 1 {
		t.Errorf("segment count = %d, want 1", result.SegmentCount)
	}

	raw, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("result is not valid base64: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("result is not a valid PNG: %v", err)
	}

	// The exact diagonal passes through (5,5); a corner away from the line
	// stays white.
	r, g, b, _ := decoded.At(5, 5).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("pixel on line = (%d,%d,%d), want red", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = decoded.At(9, 0).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("pixel off line = (%d,%d,%d), want white", r>>8, g>>8, b>>8)
	}
}

func TestRenderSegments_Scale(t *testing.T) {
	result, err := RenderSegments(fillImage(10, 8, white), nil, "#00FF00", 2.0)
	if err != nil {
		t.Fatalf("RenderSegments failed: %v", err)
	}
	if result.Width != 20 || result.Height != 16 {
		t.Errorf("scaled result is %dx%d, want 20x16", result.Width, result.Height)
	}
	if result.SegmentCount != 0 {
		t.Errorf("segment count = %d, want 0", result.SegmentCount)
	}
}

func TestRenderSegments_ClipsOutOfBounds(t *testing.T) {
	// Segments reaching outside the image must not panic; in-bounds pixels
	// still get drawn.
	img := fillImage(5, 5, white)
	segments := [][4]int{{-3, 2, 10, 2}}

	result, err := RenderSegments(img, segments, "#FF0000", 1.0)
	if err != nil {
		t.Fatalf("RenderSegments failed: %v", err)
	}

	raw, _ := base64.StdEncoding.DecodeString(result.ImageBase64)
	decoded, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("result is not a valid PNG: %v", err)
	}
	r, g, b, _ := decoded.At(2, 2).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("pixel on clipped line = (%d,%d,%d), want red", r>>8, g>>8, b>>8)
	}
}

func TestRenderSegments_BadColorFallsBack(t *testing.T) {
	// An unparsable color falls back to red instead of failing the render.
	result, err := RenderSegments(fillImage(4, 4, white), [][4]int{{0, 0, 3, 0}}, "nope", 1.0)
	if err != nil {
		t.Fatalf("RenderSegments failed: %v", err)
	}

	raw, _ := base64.StdEncoding.DecodeString(result.ImageBase64)
	decoded, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("result is not a valid PNG: %v", err)
	}
	r, g, b, _ := decoded.At(1, 0).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("pixel = (%d,%d,%d), want fallback red", r>>8, g>>8, b>>8)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
		r, g, b uint8
		a       uint8
	}{
		{"#FF0000", false, 255, 0, 0, 255},
		{"00FF00", false, 0, 255, 0, 255},
		{"#0000FF80", false, 0, 0, 255, 128},
		{"", true, 0, 0, 0, 0},
		{"#FFF", true, 0, 0, 0, 0},
		{"#GGGGGG", true, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		c, err := parseHexColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseHexColor(%q): expected error, got nil", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseHexColor(%q) failed: %v", tt.in, err)
			continue
		}
		if c.R != tt.r || c.G != tt.g || c.B != tt.b || c.A != tt.a {
			t.Errorf("parseHexColor(%q) = %v, want (%d,%d,%d,%d)", tt.in, c, tt.r, tt.g, tt.b, tt.a)
		}
	}
}

package imaging

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/image-transform/internal/transform"
)

// RGBColor represents an RGB color with 8-bit components (0-255).
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex string   `json:"hex"` // Hex format "#RRGGBB"
	RGB RGBColor `json:"rgb"` // RGB components
	HSL HSLColor `json:"hsl"` // HSL representation
}

// NewColorResult describes a pixel in hex, RGB and HSL form.
func NewColorResult(p transform.Pixel) ColorResult {
	return ColorResult{
		Hex: fmt.Sprintf("#%02X%02X%02X", p.R, p.G, p.B),
		RGB: RGBColor{R: p.R, G: p.G, B: p.B},
		HSL: rgbToHSL(p.R, p.G, p.B),
	}
}

// SampleColor returns the color of pixel (x, y) of buf.
//
// Coordinates are 0-based with origin at the top-left corner. An error is
// returned if (x, y) lies outside the buffer.
func SampleColor(buf *transform.Buffer, x, y int) (*ColorResult, error) {
	if !buf.In(x, y) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %dx%d", x, y, buf.Width, buf.Height)
	}
	c := NewColorResult(buf.At(x, y))
	return &c, nil
}

// ColorComparison pairs the same pixel before and after a transform.
type ColorComparison struct {
	X      int         `json:"x"`
	Y      int         `json:"y"`
	Before ColorResult `json:"before"`
	After  ColorResult `json:"after"`
	// DeltaE is the CIE76 distance between the two colors in Lab space,
	// scaled to roughly 0-100.
	DeltaE float64 `json:"delta_e"`
}

// CompareColors samples (x, y) in both buffers, which must have the same
// dimensions.
func CompareColors(before, after *transform.Buffer, x, y int) (*ColorComparison, error) {
	if before.Width != after.Width || before.Height != after.Height {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", transform.ErrInvalidDimensions,
			before.Width, before.Height, after.Width, after.Height)
	}
	b, err := SampleColor(before, x, y)
	if err != nil {
		return nil, err
	}
	a, err := SampleColor(after, x, y)
	if err != nil {
		return nil, err
	}

	d := toColorful(before.At(x, y)).DistanceLab(toColorful(after.At(x, y)))
	return &ColorComparison{
		X:      x,
		Y:      y,
		Before: *b,
		After:  *a,
		DeltaE: math.Round(d*100*100) / 100,
	}, nil
}

// AverageColor returns the per-channel mean of every pixel, rounded to the
// nearest integer. An empty buffer averages to black.
func AverageColor(buf *transform.Buffer) ColorResult {
	n := buf.Width * buf.Height
	if n == 0 {
		return NewColorResult(transform.Pixel{})
	}
	var r, g, b int
	for i := 0; i < len(buf.Pix); i += transform.Channels {
		r += int(buf.Pix[i])
		g += int(buf.Pix[i+1])
		b += int(buf.Pix[i+2])
	}
	return NewColorResult(transform.Pixel{
		R: uint8((r + n/2) / n),
		G: uint8((g + n/2) / n),
		B: uint8((b + n/2) / n),
	})
}

func toColorful(p transform.Pixel) colorful.Color {
	return colorful.Color{R: float64(p.R) / 255.0, G: float64(p.G) / 255.0, B: float64(p.B) / 255.0}
}

// rgbToHSL converts 8-bit RGB values to HSL with hue in degrees and
// saturation and lightness in percent.
func rgbToHSL(r, g, b uint8) HSLColor {
	h, s, l := toColorful(transform.Pixel{R: r, G: g, B: b}).Hsl()
	return HSLColor{
		H: int(h),
		S: int(s * 100),
		L: int(l * 100),
	}
}

package imaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/image-transform/internal/transform"
)

// newUniformBuffer creates an in-memory buffer filled with one color.
func newUniformBuffer(t *testing.T, width, height int, p transform.Pixel) *transform.Buffer {
	t.Helper()
	buf, err := transform.NewBuffer(width, height)
	require.NoError(t, err)
	buf.Fill(p)
	return buf
}

// newQuadrantBuffer creates a buffer with different colors in each quadrant.
func newQuadrantBuffer(t *testing.T, width, height int) *transform.Buffer {
	t.Helper()
	buf, err := transform.NewBuffer(width, height)
	require.NoError(t, err)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var p transform.Pixel
			switch {
			case x < width/2 && y < height/2:
				p = transform.Pixel{R: 255} // Red top-left
			case x >= width/2 && y < height/2:
				p = transform.Pixel{G: 255} // Green top-right
			case x < width/2:
				p = transform.Pixel{B: 255} // Blue bottom-left
			default:
				p = transform.Pixel{R: 255, G: 255, B: 255} // White bottom-right
			}
			buf.Set(x, y, p)
		}
	}
	return buf
}

func TestSampleColor(t *testing.T) {
	buf := newUniformBuffer(t, 100, 100, transform.Pixel{R: 255, G: 128, B: 64})

	result, err := SampleColor(buf, 50, 50)
	require.NoError(t, err)

	assert.Equal(t, "#FF8040", result.Hex)
	assert.Equal(t, RGBColor{R: 255, G: 128, B: 64}, result.RGB)
}

func TestSampleColor_Quadrants(t *testing.T) {
	buf := newQuadrantBuffer(t, 100, 100)

	tests := []struct {
		name    string
		x, y    int
		wantHex string
	}{
		{"red", 25, 25, "#FF0000"},
		{"green", 75, 25, "#00FF00"},
		{"blue", 25, 75, "#0000FF"},
		{"white", 75, 75, "#FFFFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := SampleColor(buf, tt.x, tt.y)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHex, result.Hex)
		})
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	buf := newUniformBuffer(t, 100, 100, transform.Pixel{R: 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
		{"both too large", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleColor(buf, tt.x, tt.y)
			assert.Error(t, err)
		})
	}
}

func TestSampleColor_EdgeCoordinates(t *testing.T) {
	buf := newUniformBuffer(t, 100, 100, transform.Pixel{R: 255})

	for _, pt := range [][2]int{{0, 0}, {99, 0}, {0, 99}, {99, 99}} {
		_, err := SampleColor(buf, pt[0], pt[1])
		assert.NoError(t, err, "(%d,%d)", pt[0], pt[1])
	}
}

func TestAverageColor(t *testing.T) {
	tests := []struct {
		name string
		buf  *transform.Buffer
		want string
	}{
		{"uniform", newUniformBuffer(t, 10, 10, transform.Pixel{R: 12, G: 34, B: 56}), "#0C2238"},
		{"quadrants", newQuadrantBuffer(t, 10, 10), "#808080"},
		{"empty", newUniformBuffer(t, 0, 0, transform.Pixel{}), "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AverageColor(tt.buf).Hex)
		})
	}
}

func TestCompareColors(t *testing.T) {
	before := newUniformBuffer(t, 4, 4, transform.Pixel{R: 10, G: 20, B: 30})
	after, err := transform.Apply(before, transform.Negative)
	require.NoError(t, err)

	cmp, err := CompareColors(before, after, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, "#0A141E", cmp.Before.Hex)
	assert.Equal(t, "#F5EBE1", cmp.After.Hex)
	assert.Greater(t, cmp.DeltaE, 50.0)

	same, err := CompareColors(before, before, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, same.DeltaE)
}

func TestCompareColors_Errors(t *testing.T) {
	a := newUniformBuffer(t, 4, 4, transform.Pixel{})
	b := newUniformBuffer(t, 4, 3, transform.Pixel{})

	_, err := CompareColors(a, b, 0, 0)
	assert.ErrorIs(t, err, transform.ErrInvalidDimensions)

	_, err = CompareColors(a, a, 4, 0)
	assert.Error(t, err)
}

func TestRgbToHSL(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		wantH   int
		wantS   int
		wantL   int
	}{
		{"red", 255, 0, 0, 0, 100, 50},
		{"green", 0, 255, 0, 120, 100, 50},
		{"blue", 0, 0, 255, 240, 100, 50},
		{"white", 255, 255, 255, 0, 0, 100},
		{"black", 0, 0, 0, 0, 0, 0},
		{"gray", 128, 128, 128, 0, 0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hsl := rgbToHSL(tt.r, tt.g, tt.b)

			// Allow some tolerance for rounding
			assert.InDelta(t, tt.wantH, hsl.H, 1, "H")
			assert.InDelta(t, tt.wantS, hsl.S, 1, "S")
			assert.InDelta(t, tt.wantL, hsl.L, 1, "L")
		})
	}
}

package imaging

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/image-transform/internal/transform"
)

func TestEncodeBuffer(t *testing.T) {
	buf := newQuadrantBuffer(t, 40, 30)

	enc, err := EncodeBuffer(buf, 1.0)
	require.NoError(t, err)

	assert.Equal(t, 40, enc.Width)
	assert.Equal(t, 30, enc.Height)
	assert.Equal(t, "image/png", enc.MimeType)

	img, err := DecodeBase64PNG(enc.ImageBase64)
	require.NoError(t, err)

	// lossless round trip
	assert.True(t, buf.Equal(ToBuffer(img)))
}

func TestEncodeBuffer_Scale(t *testing.T) {
	buf := newUniformBuffer(t, 100, 50, transform.Pixel{R: 200, G: 100, B: 50})

	tests := []struct {
		name          string
		scale         float64
		width, height int
	}{
		{"unchanged", 1.0, 100, 50},
		{"double", 2.0, 200, 100},
		{"half", 0.5, 50, 25},
		{"zero means original", 0, 100, 50},
		{"negative means original", -1, 100, 50},
		{"tiny never collapses", 0.001, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := EncodeBuffer(buf, tt.scale)
			require.NoError(t, err)
			assert.Equal(t, tt.width, enc.Width)
			assert.Equal(t, tt.height, enc.Height)
		})
	}
}

func TestEncodeBuffer_Invalid(t *testing.T) {
	_, err := EncodeBuffer(&transform.Buffer{Width: 2, Height: 2}, 1.0)
	assert.ErrorIs(t, err, transform.ErrInvalidDimensions)
}

func TestDecodeBase64PNG_Invalid(t *testing.T) {
	_, err := DecodeBase64PNG("!!not base64!!")
	assert.Error(t, err)

	_, err = DecodeBase64PNG("bm90IGEgcG5n") // "not a png"
	assert.Error(t, err)
}

func TestEncodePNG_KeepsColor(t *testing.T) {
	img := createInMemoryImage(8, 8, color.RGBA{10, 20, 30, 255})

	enc, err := EncodePNG(img, 1.0)
	require.NoError(t, err)

	decoded, err := DecodeBase64PNG(enc.ImageBase64)
	require.NoError(t, err)
	r, g, b, _ := decoded.At(4, 4).RGBA()
	assert.Equal(t, []uint32{10, 20, 30}, []uint32{r >> 8, g >> 8, b >> 8})
}

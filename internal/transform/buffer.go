package transform

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"math"
)

// Channels is the number of bytes stored per pixel (R, G, B).
const Channels = 3

var (
	// ErrInvalidDimensions is returned when a buffer's declared width and
	// height do not match the length of its pixel data.
	ErrInvalidDimensions = errors.New("invalid image dimensions")

	// ErrUnsupportedTransform is returned when a transform selector does not
	// name a known transform.
	ErrUnsupportedTransform = errors.New("unsupported transform")
)

// Pixel is an 8-bit RGB triple. No alpha channel is modeled.
type Pixel struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Buffer is a row-major grid of RGB pixels.
//
// Pixel (x, y) occupies Pix[(y*Width+x)*3 : (y*Width+x)*3+3]. A valid buffer
// always has len(Pix) == Width*Height*3.
type Buffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// pixLen returns the number of bytes needed for a width x height buffer.
// It reports false for negative sizes and for sizes whose byte count does
// not fit in an int.
func pixLen(width, height int) (int, bool) {
	if width < 0 || height < 0 {
		return 0, false
	}
	if width > 0 && height > math.MaxInt/Channels/width {
		return 0, false
	}
	return width * height * Channels, true
}

// NewBuffer allocates a zeroed (black) buffer of the given size.
func NewBuffer(width, height int) (*Buffer, error) {
	n, ok := pixLen(width, height)
	if !ok {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, n),
	}, nil
}

// Validate checks that the declared size matches the pixel storage.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidDimensions)
	}
	want, ok := pixLen(b.Width, b.Height)
	if !ok {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, b.Width, b.Height)
	}
	if len(b.Pix) != want {
		return fmt.Errorf("%w: %dx%d needs %d bytes, have %d",
			ErrInvalidDimensions, b.Width, b.Height, want, len(b.Pix))
	}
	return nil
}

// Bounds returns the buffer's extent with the origin at (0, 0).
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// Offset returns the index of the red byte of pixel (x, y).
func (b *Buffer) Offset(x, y int) int {
	return (y*b.Width + x) * Channels
}

// In reports whether (x, y) lies inside the buffer.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// At returns the pixel at (x, y). The coordinates must be in range.
func (b *Buffer) At(x, y int) Pixel {
	i := b.Offset(x, y)
	return Pixel{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2]}
}

// Set stores p at (x, y). The coordinates must be in range.
func (b *Buffer) Set(x, y int, p Pixel) {
	i := b.Offset(x, y)
	b.Pix[i], b.Pix[i+1], b.Pix[i+2] = p.R, p.G, p.B
}

// Fill sets every pixel to p.
func (b *Buffer) Fill(p Pixel) {
	for i := 0; i < len(b.Pix); i += Channels {
		b.Pix[i], b.Pix[i+1], b.Pix[i+2] = p.R, p.G, p.B
	}
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{Width: b.Width, Height: b.Height, Pix: pix}
}

// Equal reports whether both buffers have the same size and pixels.
func (b *Buffer) Equal(o *Buffer) bool {
	if b == nil || o == nil {
		return b == o
	}
	return b.Width == o.Width && b.Height == o.Height && bytes.Equal(b.Pix, o.Pix)
}

// row returns the bytes of row y.
func (b *Buffer) row(y int) []uint8 {
	stride := b.Width * Channels
	return b.Pix[y*stride : (y+1)*stride]
}

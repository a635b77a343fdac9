package transform

import (
	"fmt"
	"strings"
)

// Kernel is a 3x3 matrix of integer weights in row-major order.
type Kernel [9]int

// DetailKernel is the Laplacian sharpen kernel used by the detail transform.
var DetailKernel = Kernel{
	0, -1, 0,
	-1, 5, -1,
	0, -1, 0,
}

// Sum returns the sum of all weights. A kernel with sum 1 preserves flat
// regions.
func (k Kernel) Sum() int {
	s := 0
	for _, w := range k {
		s += w
	}
	return s
}

// BorderPolicy decides what the convolution writes to the outermost
// one-pixel frame, which has no full 3x3 neighborhood.
type BorderPolicy int

const (
	// BorderCopy copies border pixels unchanged from the source.
	BorderCopy BorderPolicy = iota
	// BorderZero sets border pixels to black.
	BorderZero
)

func (p BorderPolicy) String() string {
	switch p {
	case BorderCopy:
		return "copy"
	case BorderZero:
		return "zero"
	default:
		return fmt.Sprintf("BorderPolicy(%d)", int(p))
	}
}

// ParseBorderPolicy resolves "copy" or "zero".
func ParseBorderPolicy(s string) (BorderPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "copy", "":
		return BorderCopy, nil
	case "zero", "black":
		return BorderZero, nil
	default:
		return 0, fmt.Errorf("unknown border policy: %q", s)
	}
}

// Convolve writes the convolution of src with k into dst, which must have
// the same dimensions. Border pixels are handled according to border.
func Convolve(src, dst *Buffer, k Kernel, border BorderPolicy) error {
	if err := src.Validate(); err != nil {
		return err
	}
	if err := dst.Validate(); err != nil {
		return err
	}
	if src.Width != dst.Width || src.Height != dst.Height {
		return fmt.Errorf("%w: source %dx%d, destination %dx%d",
			ErrInvalidDimensions, src.Width, src.Height, dst.Width, dst.Height)
	}
	convolveRows(src, dst, k, border, 0, src.Height)
	return nil
}

// convolveRows processes rows [y0, y1). Interior pixels get the clamped
// kernel sum per channel; border pixels are copied or cleared.
func convolveRows(src, dst *Buffer, k Kernel, border BorderPolicy, y0, y1 int) {
	w, h := src.Width, src.Height
	for y := y0; y < y1; y++ {
		if y == 0 || y == h-1 || w < 3 {
			if border == BorderCopy {
				copy(dst.row(y), src.row(y))
			} else {
				clear(dst.row(y))
			}
			continue
		}
		left := dst.Pix[dst.Offset(0, y):dst.Offset(1, y)]
		right := dst.Pix[dst.Offset(w-1, y):dst.Offset(w, y)]
		if border == BorderCopy {
			copy(left, src.Pix[src.Offset(0, y):src.Offset(1, y)])
			copy(right, src.Pix[src.Offset(w-1, y):src.Offset(w, y)])
		} else {
			clear(left)
			clear(right)
		}
		for x := 1; x < w-1; x++ {
			var r, g, b int
			for i, weight := range k {
				if weight == 0 {
					continue
				}
				// neighbors in scan order (y-1,x-1) .. (y+1,x+1)
				j := src.Offset(x+i%3-1, y+i/3-1)
				r += int(src.Pix[j]) * weight
				g += int(src.Pix[j+1]) * weight
				b += int(src.Pix[j+2]) * weight
			}
			o := dst.Offset(x, y)
			dst.Pix[o], dst.Pix[o+1], dst.Pix[o+2] = Clamp(r), Clamp(g), Clamp(b)
		}
	}
}

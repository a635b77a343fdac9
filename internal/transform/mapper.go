package transform

import "math/rand/v2"

// Default parameters of the per-pixel transforms.
const (
	DefaultSepiaDepth       = 30
	DefaultNoiseFactor      = 60
	DefaultBrightnessFactor = 60

	// MonochromeThreshold is 255/2 in integer arithmetic. An average of 127
	// maps to black and 128 to white.
	MonochromeThreshold = 255 / 2
)

// PixelFunc maps one input pixel to one output pixel.
type PixelFunc func(p Pixel) Pixel

func average(p Pixel) int {
	return (int(p.R) + int(p.G) + int(p.B)) / 3
}

// GrayscalePixel replaces every channel with the channel average.
func GrayscalePixel(p Pixel) Pixel {
	avg := uint8(average(p))
	return Pixel{R: avg, G: avg, B: avg}
}

// NegativePixel inverts every channel.
func NegativePixel(p Pixel) Pixel {
	return Pixel{R: 255 - p.R, G: 255 - p.G, B: 255 - p.B}
}

// MonochromePixel maps the pixel to white if its channel average is above
// MonochromeThreshold and to black otherwise.
func MonochromePixel(p Pixel) Pixel {
	if average(p) > MonochromeThreshold {
		return Pixel{R: 255, G: 255, B: 255}
	}
	return Pixel{}
}

// SepiaFunc returns the sepia mapping for the given tint depth.
func SepiaFunc(depth int) PixelFunc {
	return func(p Pixel) Pixel {
		avg := average(p)
		return Pixel{
			R: Clamp(avg + 2*depth),
			G: Clamp(avg + depth),
			B: uint8(avg),
		}
	}
}

// BrightnessFunc returns the mapping that adds factor to every channel.
// Negative factors darken.
func BrightnessFunc(factor int) PixelFunc {
	return func(p Pixel) Pixel {
		return Pixel{
			R: Clamp(int(p.R) + factor),
			G: Clamp(int(p.G) + factor),
			B: Clamp(int(p.B) + factor),
		}
	}
}

// NoiseFunc returns a mapping that draws one offset uniformly from
// [-factor, factor] per call and adds it to all three channels. A factor of
// zero or less leaves pixels unchanged and draws nothing.
//
// The returned function advances r and must not be shared between goroutines.
func NoiseFunc(factor int, r *rand.Rand) PixelFunc {
	if factor <= 0 {
		return identity
	}
	span := 2*factor + 1
	return func(p Pixel) Pixel {
		n := r.IntN(span) - factor
		return Pixel{
			R: Clamp(int(p.R) + n),
			G: Clamp(int(p.G) + n),
			B: Clamp(int(p.B) + n),
		}
	}
}

func identity(p Pixel) Pixel { return p }

// mapRows applies the function returned by fnForRow(y) to every pixel of
// rows [y0, y1).
func mapRows(src, dst *Buffer, fnForRow func(y int) PixelFunc, y0, y1 int) {
	for y := y0; y < y1; y++ {
		fn := fnForRow(y)
		in, out := src.row(y), dst.row(y)
		for i := 0; i < len(in); i += Channels {
			p := fn(Pixel{R: in[i], G: in[i+1], B: in[i+2]})
			out[i], out[i+1], out[i+2] = p.R, p.G, p.B
		}
	}
}

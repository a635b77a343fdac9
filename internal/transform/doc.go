// Package transform implements the pixel transform engine.
//
// The engine takes a decoded 8-bit RGB Buffer and a transform Kind and
// returns a newly allocated Buffer with the same width and height. The input
// buffer is never modified.
//
// # Transforms
//
// Six transforms are per-pixel mappings, each reading only the pixel at its
// own coordinates:
//   - grayscale: channel average replicated to R, G and B
//   - sepia: average plus a warm tint of 2*depth on red and depth on green
//   - negative: 255 minus each channel
//   - noise: one uniform draw in [-factor, factor] added to all three channels
//   - brightness_change: a constant added to every channel
//   - monochrome: white when the average exceeds 127, black otherwise
//
// The seventh, detail, convolves every interior pixel with the 3x3 sharpen
// kernel {0,-1,0,-1,5,-1,0,-1,0}. Border pixels are copied from the source
// unless the engine is configured with BorderZero.
//
// All intermediate arithmetic is done on int and clamped to [0,255]; channel
// overflow is never reported as an error.
//
// # Concurrency
//
// Rows are split into contiguous bands processed by separate goroutines.
// Workers only read the shared input and only write their own rows of the
// output. The noise transform seeds one random stream per row from the
// engine's generator before any band starts, so for a fixed seed the result
// does not depend on the number of workers.
//
// An Engine may be shared between goroutines.
//
// # Errors
//
// Apply reports ErrUnsupportedTransform for an unknown Kind and
// ErrInvalidDimensions for a buffer whose size does not match its pixel
// storage. No partial output is returned in either case.
package transform

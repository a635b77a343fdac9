package transform

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// MinParallelPixels is the smallest image, in pixels, that is split across
// workers. Smaller images are processed on the calling goroutine.
const MinParallelPixels = 64 * 64

// rowStreamSalt is the second PCG word of every per-row noise stream.
const rowStreamSalt = 0x9e3779b97f4a7c15

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers sets the number of goroutines used per Apply. Values below 1
// select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

// WithNoiseFactor sets the half-width of the noise offset range.
func WithNoiseFactor(n int) Option {
	return func(e *Engine) { e.noiseFactor = n }
}

// WithBrightnessFactor sets the offset added by brightness_change.
func WithBrightnessFactor(n int) Option {
	return func(e *Engine) { e.brightnessFactor = n }
}

// WithSepiaDepth sets the sepia tint depth.
func WithSepiaDepth(n int) Option {
	return func(e *Engine) { e.sepiaDepth = n }
}

// WithBorder sets the border policy of the detail transform.
func WithBorder(p BorderPolicy) Option {
	return func(e *Engine) { e.border = p }
}

// WithSeed seeds the engine's random generator deterministically.
func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewPCG(seed, seed^rowStreamSalt)) }
}

// WithRand injects the random generator used by the noise transform. The
// engine serializes its own access to r; callers must not use r concurrently
// with Apply.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// Engine applies transforms to buffers.
type Engine struct {
	workers          int
	noiseFactor      int
	brightnessFactor int
	sepiaDepth       int
	border           BorderPolicy

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// New returns an engine with the default transform parameters, a time-seeded
// random generator and one worker per available CPU.
func New(opts ...Option) *Engine {
	e := &Engine{
		noiseFactor:      DefaultNoiseFactor,
		brightnessFactor: DefaultBrightnessFactor,
		sepiaDepth:       DefaultSepiaDepth,
		border:           BorderCopy,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.workers < 1 {
		e.workers = runtime.GOMAXPROCS(0)
	}
	if e.rng == nil {
		seed := uint64(time.Now().UnixNano())
		e.rng = rand.New(rand.NewPCG(seed, seed^rowStreamSalt))
	}
	return e
}

// Apply is a convenience wrapper around New(opts...).Apply(src, kind).
func Apply(src *Buffer, kind Kind, opts ...Option) (*Buffer, error) {
	return New(opts...).Apply(src, kind)
}

// Workers returns the configured worker count.
func (e *Engine) Workers() int { return e.workers }

// Apply runs the selected transform on src and returns a new buffer of the
// same size. src is not modified.
func (e *Engine) Apply(src *Buffer, kind Kind) (*Buffer, error) {
	return e.ApplyContext(context.Background(), src, kind)
}

// ApplyContext is Apply with cancellation. Workers stop at the next row
// boundary once ctx is done, and the partial result is discarded.
func (e *Engine) ApplyContext(ctx context.Context, src *Buffer, kind Kind) (*Buffer, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedTransform, kind)
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}

	dst := &Buffer{
		Width:  src.Width,
		Height: src.Height,
		Pix:    make([]uint8, len(src.Pix)),
	}

	var rows func(y0, y1 int)
	if kind == Detail {
		rows = func(y0, y1 int) {
			convolveRows(src, dst, DetailKernel, e.border, y0, y1)
		}
	} else {
		fnForRow := e.rowMapper(kind, src.Height)
		rows = func(y0, y1 int) {
			mapRows(src, dst, fnForRow, y0, y1)
		}
	}

	if err := e.runBands(ctx, src, rows); err != nil {
		return nil, err
	}
	return dst, nil
}

// rowMapper resolves kind to the per-row pixel function.
func (e *Engine) rowMapper(kind Kind, height int) func(y int) PixelFunc {
	var fn PixelFunc
	switch kind {
	case Grayscale:
		fn = GrayscalePixel
	case Sepia:
		fn = SepiaFunc(e.sepiaDepth)
	case Negative:
		fn = NegativePixel
	case BrightnessChange:
		fn = BrightnessFunc(e.brightnessFactor)
	case Monochrome:
		fn = MonochromePixel
	case Noise:
		return e.noiseRows(height)
	}
	return func(int) PixelFunc { return fn }
}

// noiseRows draws one seed per row, in row order, from the engine generator
// and gives each row its own stream.
func (e *Engine) noiseRows(height int) func(y int) PixelFunc {
	factor := e.noiseFactor
	if factor <= 0 {
		return func(int) PixelFunc { return identity }
	}
	seeds := make([]uint64, height)
	e.mu.Lock()
	for y := range seeds {
		seeds[y] = e.rng.Uint64()
	}
	e.mu.Unlock()
	return func(y int) PixelFunc {
		return NoiseFunc(factor, rand.New(rand.NewPCG(seeds[y], rowStreamSalt)))
	}
}

// runBands splits [0, src.Height) into contiguous bands and calls fn one row
// at a time within each band, concurrently when the image is large enough.
// It returns ctx's error if ctx is done before every row has run.
func (e *Engine) runBands(ctx context.Context, src *Buffer, fn func(y0, y1 int)) error {
	h := src.Height
	workers := min(e.workers, h)
	if workers <= 1 || src.Width*h < MinParallelPixels {
		return rowsUntilDone(ctx, fn, 0, h)
	}

	band := (h + workers - 1) / workers
	g, gctx := errgroup.WithContext(ctx)
	for y0 := 0; y0 < h; y0 += band {
		y1 := min(y0+band, h)
		g.Go(func() error {
			return rowsUntilDone(gctx, fn, y0, y1)
		})
	}
	return g.Wait()
}

func rowsUntilDone(ctx context.Context, fn func(y0, y1 int), y0, y1 int) error {
	for y := y0; y < y1; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(y, y+1)
	}
	return nil
}

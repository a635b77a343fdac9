// Package config holds the runtime settings shared by the CLI and the MCP
// server.
//
// Values start from Default, are overlaid by IMAGE_TRANSFORM_* environment
// variables in FromEnv, and finally by command-line flags in the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/image-transform/internal/transform"
)

// EnvPrefix prefixes every environment variable read by FromEnv.
const EnvPrefix = "IMAGE_TRANSFORM_"

// Environment variable names.
const (
	EnvLogLevel         = EnvPrefix + "LOG_LEVEL"
	EnvLogFile          = EnvPrefix + "LOG_FILE"
	EnvWorkers          = EnvPrefix + "WORKERS"
	EnvNoiseFactor      = EnvPrefix + "NOISE_FACTOR"
	EnvBrightnessFactor = EnvPrefix + "BRIGHTNESS_FACTOR"
	EnvSepiaDepth       = EnvPrefix + "SEPIA_DEPTH"
	EnvSeed             = EnvPrefix + "SEED"
	EnvBorder           = EnvPrefix + "BORDER"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full set of tunables.
type Config struct {
	LogLevel string
	LogFile  string

	// Workers is the number of row bands processed in parallel.
	// Zero means one per available CPU.
	Workers int

	NoiseFactor      int
	BrightnessFactor int
	SepiaDepth       int

	// Seed fixes the noise stream. Nil seeds from the clock.
	Seed *uint64

	// Border is the detail transform's border policy name ("copy" or "zero").
	Border string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:         "info",
		NoiseFactor:      transform.DefaultNoiseFactor,
		BrightnessFactor: transform.DefaultBrightnessFactor,
		SepiaDepth:       transform.DefaultSepiaDepth,
		Border:           transform.BorderCopy.String(),
	}
}

// FromEnv returns Default overlaid with any IMAGE_TRANSFORM_* variables.
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup(EnvBorder); ok && v != "" {
		cfg.Border = v
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{EnvWorkers, &cfg.Workers},
		{EnvNoiseFactor, &cfg.NoiseFactor},
		{EnvBrightnessFactor, &cfg.BrightnessFactor},
		{EnvSepiaDepth, &cfg.SepiaDepth},
	}
	for _, in := range ints {
		v, ok := lookup(in.name)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, in.name, v)
		}
		*in.dst = n
	}

	if v, ok := lookup(EnvSeed); ok && strings.TrimSpace(v) != "" {
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q is not an unsigned integer", ErrInvalidConfig, EnvSeed, v)
		}
		cfg.Seed = &seed
	}

	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalidConfig, err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.NoiseFactor < 0 {
		return fmt.Errorf("%w: noise factor must be >= 0, got %d", ErrInvalidConfig, c.NoiseFactor)
	}
	if _, err := transform.ParseBorderPolicy(c.Border); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// SetSeed fixes the noise seed.
func (c *Config) SetSeed(seed uint64) {
	c.Seed = &seed
}

// EngineOptions converts the transform-related settings to engine options.
func (c Config) EngineOptions() ([]transform.Option, error) {
	border, err := transform.ParseBorderPolicy(c.Border)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	opts := []transform.Option{
		transform.WithWorkers(c.Workers),
		transform.WithNoiseFactor(c.NoiseFactor),
		transform.WithBrightnessFactor(c.BrightnessFactor),
		transform.WithSepiaDepth(c.SepiaDepth),
		transform.WithBorder(border),
	}
	if c.Seed != nil {
		opts = append(opts, transform.WithSeed(*c.Seed))
	}
	return opts, nil
}

// NewEngine builds an engine from the settings.
func (c Config) NewEngine() (*transform.Engine, error) {
	opts, err := c.EngineOptions()
	if err != nil {
		return nil, err
	}
	return transform.New(opts...), nil
}

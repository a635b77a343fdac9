package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/image-transform/internal/transform"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 0, cfg.Workers)
	assert.Equal(t, transform.DefaultNoiseFactor, cfg.NoiseFactor)
	assert.Equal(t, transform.DefaultBrightnessFactor, cfg.BrightnessFactor)
	assert.Equal(t, transform.DefaultSepiaDepth, cfg.SepiaDepth)
	assert.Equal(t, "copy", cfg.Border)
	assert.Nil(t, cfg.Seed)
	assert.NoError(t, cfg.Validate())
}

func TestFromLookup(t *testing.T) {
	cfg, err := fromLookup(envMap(map[string]string{
		EnvLogLevel:         "debug",
		EnvLogFile:          "/tmp/transform.log",
		EnvWorkers:          "4",
		EnvNoiseFactor:      " 10 ",
		EnvBrightnessFactor: "-20",
		EnvSepiaDepth:       "15",
		EnvSeed:             "42",
		EnvBorder:           "zero",
	}))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/transform.log", cfg.LogFile)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 10, cfg.NoiseFactor)
	assert.Equal(t, -20, cfg.BrightnessFactor)
	assert.Equal(t, 15, cfg.SepiaDepth)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(42), *cfg.Seed)
	assert.Equal(t, "zero", cfg.Border)
}

func TestFromLookup_Empty(t *testing.T) {
	cfg, err := fromLookup(envMap(map[string]string{EnvWorkers: "", EnvLogLevel: ""}))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFromLookup_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"non-numeric workers", map[string]string{EnvWorkers: "many"}},
		{"non-numeric noise", map[string]string{EnvNoiseFactor: "1.5"}},
		{"negative seed", map[string]string{EnvSeed: "-1"}},
		{"negative workers", map[string]string{EnvWorkers: "-2"}},
		{"bad border", map[string]string{EnvBorder: "wrap"}},
		{"bad level", map[string]string{EnvLogLevel: "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fromLookup(envMap(tt.env))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvWorkers, "3")
	t.Setenv(EnvSeed, "7")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(7), *cfg.Seed)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.NoiseFactor = -1
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = Default()
	cfg.Border = "black"
	assert.NoError(t, cfg.Validate())
}

func TestEngineOptions(t *testing.T) {
	cfg := Default()
	cfg.Workers = 2
	cfg.SetSeed(99)

	opts, err := cfg.EngineOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 6)

	eng, err := cfg.NewEngine()
	require.NoError(t, err)
	assert.Equal(t, 2, eng.Workers())

	// Same seed, same noise.
	src, err := transform.NewBuffer(16, 16)
	require.NoError(t, err)
	src.Fill(transform.Pixel{R: 128, G: 128, B: 128})

	a, err := eng.Apply(src, transform.Noise)
	require.NoError(t, err)
	b, err := transform.Apply(src, transform.Noise, opts...)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestEngineOptions_BadBorder(t *testing.T) {
	cfg := Default()
	cfg.Border = "mirror"

	_, err := cfg.EngineOptions()
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = cfg.NewEngine()
	assert.Error(t, err)
}

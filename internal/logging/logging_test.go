package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var out bytes.Buffer
	logger, closer, err := New(Options{Level: "info", Output: &out})
	require.NoError(t, err)
	defer closer.Close()

	logger.WithFields(logrus.Fields{"transform": "sepia", "width": 4}).Info("applied")
	logger.Debug("hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
	assert.Equal(t, "applied", entry["msg"])
	assert.Equal(t, "sepia", entry["transform"])
	assert.Equal(t, float64(4), entry["width"])
	assert.NotContains(t, out.String(), "hidden")
}

func TestNew_DebugText(t *testing.T) {
	var out bytes.Buffer
	logger, _, err := New(Options{Level: "debug", Output: &out})
	require.NoError(t, err)

	logger.WithField("workers", 8).Debug("bands")

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.Contains(t, out.String(), "msg=bands")
	assert.Contains(t, out.String(), "workers=8")
}

func TestNew_DefaultLevel(t *testing.T) {
	logger, _, err := New(Options{})
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.Equal(t, os.Stderr, logger.Out)
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New(Options{Level: "chatty"})
	assert.Error(t, err)
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "transform.log")

	logger, closer, err := New(Options{Level: "warn", File: path})
	require.NoError(t, err)

	logger.Warn("disk check")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "disk check")
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("nothing")
}

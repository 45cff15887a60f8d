package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.log")

	cfg := &Config{
		Level:      "DEBUG",
		Filename:   filename,
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
		Compress:   false,
		Quiet:      true,
	}

	err := InitLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, Log)

	Log.Info("Test log message")
	Sync()

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"msg":"Test log message"`))
	assert.True(t, strings.Contains(string(data), `"level":"INFO"`))
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	cfg := &Config{
		Level:    "INVALID",
		Filename: filepath.Join(t.TempDir(), "test_invalid.log"),
	}

	err := InitLogger(cfg)
	assert.Error(t, err)
}

func TestInitLoggerRespectsLevel(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "warn.log")
	require.NoError(t, InitLogger(&Config{Level: "warn", Filename: filename, Quiet: true}))

	Log.Info("dropped")
	Log.Warn("kept")
	Sync()

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), `"level":"WARN"`)
}

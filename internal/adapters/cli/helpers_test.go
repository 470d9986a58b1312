package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/zodiakos-go/internal/adapters/cli"
	"github.com/andrescamacho/zodiakos-go/internal/infrastructure/config"
)

func TestNewConsoleLogger_FileOutputAppendsToPath(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "zodiakos.log")
	logger, err := cli.NewConsoleLogger(&config.LoggingConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: path,
	})
	require.NoError(t, err)

	// Act
	logger.Log("info", "Galaxy generated", map[string]interface{}{"stars": 50})

	// Assert
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Galaxy generated")
	assert.Contains(t, string(data), `"stars":50`)
}

func TestNewConsoleLogger_FileOutputRequiresPath(t *testing.T) {
	// Arrange
	_, err := cli.NewConsoleLogger(&config.LoggingConfig{
		Level:  "info",
		Format: "text",
		Output: "file",
	})

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file_path")
}

func TestNewConsoleLogger_DebugLevelBelowThresholdIsDropped(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "zodiakos.log")
	logger, err := cli.NewConsoleLogger(&config.LoggingConfig{
		Level:    "warn",
		Format:   "text",
		Output:   "file",
		FilePath: path,
	})
	require.NoError(t, err)

	// Act
	logger.Log("debug", "noise", nil)
	logger.Log("error", "signal", nil)

	// Assert
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "noise")
	assert.Contains(t, string(data), "signal")
}

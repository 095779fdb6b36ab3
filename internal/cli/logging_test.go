package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/perspective-retraites/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name     string
		config   config.LoggingConfig
		override string
		enabled  zapcore.Level
		disabled zapcore.Level
	}{
		{"defaults", config.LoggingConfig{}, "", zapcore.InfoLevel, zapcore.DebugLevel},
		{"configured level", config.LoggingConfig{Level: "warn", Format: "json"}, "", zapcore.WarnLevel, zapcore.InfoLevel},
		{"override wins", config.LoggingConfig{Level: "debug"}, "error", zapcore.ErrorLevel, zapcore.WarnLevel},
		{"warning alias", config.LoggingConfig{Level: "warning"}, "", zapcore.WarnLevel, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := initializeLogger(tt.config, tt.override)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.disabled))
		})
	}
}

func TestInitializeLoggerErrors(t *testing.T) {
	_, err := initializeLogger(config.LoggingConfig{Level: "verbose"}, "")
	assert.EqualError(t, err, "invalid log level: verbose")

	_, err = initializeLogger(config.LoggingConfig{Format: "xml"}, "")
	assert.EqualError(t, err, "invalid log format: xml")
}

func TestInitializeLoggerOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "retraites.log")

	logger, err := initializeLogger(config.LoggingConfig{Level: "info", Format: "json", OutputFile: path}, "")
	require.NoError(t, err)

	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBootstrapLevels(t *testing.T) {
	Bootstrap(false)
	assert.False(t, Log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, Log.Core().Enabled(zapcore.InfoLevel))

	Bootstrap(true)
	assert.True(t, Log.Core().Enabled(zapcore.DebugLevel))

	Debug("debug message")
	Sync()
}

func TestHelpersWriteToLog(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	previous := Log
	Log = zap.New(core)
	t.Cleanup(func() { Log = previous })

	Info("Loaded config file", zap.String("path", "tcode.yaml"))
	Warn("Failed to load .env file")
	Error("Unexpected failure")

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "tcode.yaml", entries[0].ContextMap()["path"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "Failed to load .env file", entries[1].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}

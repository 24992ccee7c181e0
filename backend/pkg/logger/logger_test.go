package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { Logger = nil })

	require.NoError(t, Init("production", ""))
	assert.True(t, Get().Core().Enabled(zapcore.InfoLevel))
	assert.False(t, Get().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Init("development", "warn"))
	assert.False(t, Get().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Get().Core().Enabled(zapcore.WarnLevel))
}

func TestInit_InvalidLevel(t *testing.T) {
	t.Cleanup(func() { Logger = nil })

	assert.Error(t, Init("development", "loud"))
}

func TestGet_Fallback(t *testing.T) {
	Logger = nil
	assert.NotNil(t, Get())
}

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSetup(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	t.Run("production logs warnings and up", func(t *testing.T) {
		require.NoError(t, Setup(false, "amalgam", "test"))
		require.NotNil(t, Logger)
		assert.False(t, Logger.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, Logger.Core().Enabled(zapcore.WarnLevel))
		assert.Same(t, Logger, zap.L())
	})

	t.Run("debug enables debug level", func(t *testing.T) {
		require.NoError(t, Setup(true, "amalgam", "test"))
		assert.True(t, Logger.Core().Enabled(zapcore.DebugLevel))
	})
}

func TestL(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	Logger = nil
	assert.NotNil(t, L())

	Logger = zap.NewExample()
	assert.Same(t, Logger, L())
}

package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitAndLevel(t *testing.T) {
	require.NoError(t, Init("warn", "json"))
	require.Equal(t, zapcore.WarnLevel, GetLevel())

	// Hot-reload to debug.
	require.NoError(t, SetLevel("debug"))
	require.Equal(t, zapcore.DebugLevel, GetLevel())

	require.NotNil(t, L())
	require.NotNil(t, S())
}

func TestSetLevelInvalid(t *testing.T) {
	require.NoError(t, Init("info", "console"))
	require.Error(t, SetLevel("not-a-level"))
}

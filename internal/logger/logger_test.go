package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func restore(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })
}

func TestInitRejectsBadLevel(t *testing.T) {
	restore(t)
	assert.Error(t, Init("loud"))
	assert.NoError(t, Init("debug"))
	assert.True(t, Log.Core().Enabled(zap.DebugLevel))
}

func TestInitFileWritesJSON(t *testing.T) {
	restore(t)
	path := filepath.Join(t.TempDir(), "game.log")
	require.NoError(t, InitFile("info", path))

	Log.Debug("hidden")
	Log.Info("wave started", zap.Int("wave", 3))
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"wave started"`)
	assert.Contains(t, string(data), `"wave":3`)
	assert.NotContains(t, string(data), "hidden")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBalance(t *testing.T) {
	b := DefaultBalance()
	require.NoError(t, b.Validate())

	assert.Equal(t, 120, b.Economy.StartMoney)
	assert.Equal(t, 10, b.Economy.StartLives)
	assert.Len(t, b.Path, 12)
	assert.Len(t, b.Trees.Positions, 2)

	sniper, ok := b.Tower("sniper")
	require.True(t, ok)
	assert.Equal(t, 140, sniper.Cost)
	assert.Equal(t, 80, sniper.Damage)
	assert.Equal(t, 320.0, sniper.Range)

	_, ok = b.Tower("laser")
	assert.False(t, ok)
}

func TestParseBalanceOverridesDefaults(t *testing.T) {
	b, err := ParseBalance([]byte("economy:\n  start_money: 500\n"))
	require.NoError(t, err)
	assert.Equal(t, 500, b.Economy.StartMoney)
	assert.Equal(t, 10, b.Economy.StartLives, "unset fields keep the built-in value")
	assert.Len(t, b.Towers, 3)
}

func TestParseBalanceEmpty(t *testing.T) {
	b, err := ParseBalance(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultBalance(), b)
}

func TestParseBalanceErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown key", "economy:\n  start_gold: 1\n", "start_gold"},
		{"no lives", "economy:\n  start_lives: 0\n", "start_lives"},
		{"short path", "path:\n  - [0, 0]\n", "path"},
		{"duplicate tower", "towers:\n  - {id: a, cost: 1, damage: 1, fire_rate: 1, range: 1, projectile_speed: 1}\n  - {id: a, cost: 1, damage: 1, fire_rate: 1, range: 1, projectile_speed: 1}\n", "duplicate"},
		{"bad tower stats", "towers:\n  - {id: a, cost: 1, damage: 0, fire_rate: 1, range: 1, projectile_speed: 1}\n", "tower \"a\""},
		{"not yaml", "economy: [", "unmarshal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBalance([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadBalance(t *testing.T) {
	b, err := LoadBalance("")
	require.NoError(t, err)
	assert.Equal(t, 120, b.Economy.StartMoney)

	path := filepath.Join(t.TempDir(), "balance.yaml")
	require.NoError(t, os.WriteFile(path, []byte("waves:\n  spawn_interval: 20\n"), 0o644))
	b, err = LoadBalance(path)
	require.NoError(t, err)
	assert.Equal(t, 20, b.Waves.SpawnInterval)

	_, err = LoadBalance(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvBalance, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvMute, "")

	env := LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
	assert.Equal(t, "info", env.LogLevel)
	assert.False(t, env.Mute)

	dotenv := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("DEFENSE_TOWER_LOG_LEVEL=debug\nDEFENSE_TOWER_MUTE=true\n"), 0o644))
	// godotenv не перезаписывает уже выставленные переменные, поэтому убираем их
	os.Unsetenv(EnvLogLevel)
	os.Unsetenv(EnvMute)
	t.Cleanup(func() {
		os.Unsetenv(EnvLogLevel)
		os.Unsetenv(EnvMute)
	})

	env = LoadEnv(dotenv)
	assert.Equal(t, "debug", env.LogLevel)
	assert.True(t, env.Mute)

	t.Setenv(EnvLogLevel, "warn")
	env = LoadEnv(dotenv)
	assert.Equal(t, "warn", env.LogLevel, "process environment wins over .env")
}

func TestRGBA(t *testing.T) {
	c := RGB{1, 2, 3}.RGBA()
	assert.Equal(t, uint8(255), c.A)
	assert.Equal(t, uint8(2), c.G)
}

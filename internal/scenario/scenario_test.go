package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go-defense-tower/internal/app"
	"go-defense-tower/internal/component"
	"go-defense-tower/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame() *app.Game {
	return app.NewGame(config.DefaultBalance())
}

func TestParseScenario(t *testing.T) {
	sc, err := Parse([]byte(`
ticks: 600
stop_on_game_over: true
towers:
  - {type: basic, x: 220, y: 280}
  - {type: rapid, x: 400, y: 300, at_tick: 120}
upgrades:
  - {x: 220, y: 280, at_tick: 300}
`))
	require.NoError(t, err)
	assert.Equal(t, 600, sc.Ticks)
	assert.True(t, sc.StopOnGameOver)
	require.Len(t, sc.Towers, 2)
	assert.Equal(t, 120, sc.Towers[1].AtTick)
	require.Len(t, sc.Upgrades, 1)
	assert.Equal(t, 300, sc.Upgrades[0].AtTick)
}

func TestParseScenarioErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"unknown key", "ticks: 10\nspeed: 2\n", "speed"},
		{"no ticks", "towers: []\n", "ticks must be > 0"},
		{"missing type", "ticks: 10\ntowers:\n  - {x: 1, y: 2}\n", "type is required"},
		{"tower too late", "ticks: 10\ntowers:\n  - {type: basic, x: 1, y: 2, at_tick: 10}\n", "towers[0]: at_tick"},
		{"negative upgrade tick", "ticks: 10\nupgrades:\n  - {x: 1, y: 2, at_tick: -1}\n", "upgrades[0]: at_tick"},
		{"upgrade on control band", "ticks: 10\nupgrades:\n  - {x: 870, y: 30}\n", "upgrades[0]: (870, 30) is outside the field"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ticks: 5\n"), 0o644))

	sc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, sc.Ticks)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRunPlacesAndUpgrades(t *testing.T) {
	g := newGame()
	sc := &Scenario{
		Ticks:    10,
		Towers:   []TowerOrder{{Type: "basic", X: 220, Y: 280}},
		Upgrades: []UpgradeOrder{{X: 220, Y: 280}},
	}

	s, err := Run(g, sc)
	require.NoError(t, err)
	assert.Equal(t, 10, s.Ticks)
	assert.Equal(t, 20, s.Money)
	assert.Equal(t, 1, s.Wave)
	assert.False(t, s.GameOver)
	assert.Empty(t, s.Failed)
	require.Len(t, s.Towers, 1)
	assert.Equal(t, "basic", s.Towers[0].Type)
	assert.Equal(t, 2, s.Towers[0].Level)
	assert.Equal(t, 16, s.Towers[0].Damage)
	assert.Equal(t, 100, s.Stats.Spent)
}

func TestRunRecordsFailedOrders(t *testing.T) {
	g := newGame()
	sc := &Scenario{
		Ticks: 3,
		Towers: []TowerOrder{
			{Type: "basic", X: 150, Y: 300},
			{Type: "sniper", X: 400, Y: 300, AtTick: 1},
		},
		Upgrades: []UpgradeOrder{{X: 600, Y: 650, AtTick: 2}},
	}

	s, err := Run(g, sc)
	require.NoError(t, err)
	assert.Len(t, s.Failed, 3)
	assert.Contains(t, s.Failed[0], "tick 0")
	assert.Contains(t, s.Failed[2], app.ErrNothingSelected.Error())
	assert.Empty(t, s.Towers)
	assert.Equal(t, 120, s.Money)
}

func TestRunRejectsUnknownTowerType(t *testing.T) {
	_, err := Run(newGame(), &Scenario{Ticks: 1, Towers: []TowerOrder{{Type: "laser", X: 400, Y: 300}}})
	assert.ErrorIs(t, err, app.ErrUnknownTowerType)
}

func TestRunStopsOnGameOver(t *testing.T) {
	g := newGame()
	s, err := Run(g, &Scenario{Ticks: 50000, StopOnGameOver: true})
	require.NoError(t, err)
	assert.True(t, s.GameOver)
	assert.Zero(t, s.Lives)
	assert.Less(t, s.Ticks, 50000)
	assert.GreaterOrEqual(t, s.Stats.Escapes, 10)
}

func TestRunRejectsUpgradeOnControlBand(t *testing.T) {
	g := newGame()
	sc := &Scenario{
		Ticks:    600,
		Towers:   []TowerOrder{{Type: "basic", X: 220, Y: 280}},
		Upgrades: []UpgradeOrder{{X: 870, Y: 30, AtTick: 300}},
	}

	_, err := Run(g, sc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside the field")
	assert.Empty(t, g.World.Towers)
	assert.Equal(t, component.Stopped, g.State)
	assert.Zero(t, g.World.Tick)
}

func TestSummarizeReportsGameTick(t *testing.T) {
	g := newGame()
	g.Start()
	for i := 0; i < 7; i++ {
		g.Update()
	}

	s := Summarize(g)
	assert.Equal(t, 7, s.Ticks)
	assert.Equal(t, 1, s.Wave)
	assert.Equal(t, g.Money, s.Money)
}

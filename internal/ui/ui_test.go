package ui

import (
	"testing"
	"time"

	game "go-defense-tower/internal/app"
	"go-defense-tower/internal/component"
	"go-defense-tower/internal/config"
	"go-defense-tower/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func TestToRoman(t *testing.T) {
	tests := map[int]string{0: "", 1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for n, want := range tests {
		assert.Equal(t, want, toRoman(n), "n=%d", n)
	}
}

func TestPopScaleDecays(t *testing.T) {
	assert.InDelta(t, 1.3, popScale(0, 0.3), 1e-9)
	assert.Less(t, popScale(100*time.Millisecond, 0.3), 1.3)
	assert.InDelta(t, 1.0, popScale(5*time.Second, 0.3), 1e-6)
}

func TestLivesCellColor(t *testing.T) {
	// 10 жизней из 10: первые пять "запасные"
	assert.Equal(t, livesExtraColor, cellColor(0, 10, 10))
	assert.Equal(t, config.LivesTextColor, cellColor(5, 10, 10))
	// Половина и меньше — всё красное
	assert.Equal(t, config.LivesTextColor, cellColor(0, 4, 10))
	assert.Equal(t, livesEmptyColor, cellColor(4, 4, 10))
}

func TestLevelProgress(t *testing.T) {
	assert.Equal(t, 0.0, levelProgress(3, 3))
	assert.InDelta(t, 2.0/3, levelProgress(5, 3), 1e-9)
	assert.Equal(t, 0.0, levelProgress(5, 0))
}

func newTestHUD(t *testing.T) (*HUD, *game.Game) {
	t.Helper()
	g := game.NewGame(config.DefaultBalance())
	h := NewHUD(basicfont.Face7x13, g)
	require.Len(t, h.towerButtons, len(g.Layout.TowerButtons))
	return h, g
}

func TestHUDPressesControlButtonOnStateChange(t *testing.T) {
	h, _ := newTestHUD(t)

	h.OnEvent(event.Event{Type: event.StateChanged, Data: event.StateChange{From: component.Stopped, To: component.Playing}})
	assert.False(t, h.startButton.LastClickTime.IsZero())
	assert.False(t, h.stateIndicator.LastClickTime.IsZero())
	assert.True(t, h.pauseButton.LastClickTime.IsZero())
	assert.True(t, h.stopButton.LastClickTime.IsZero())

	h.OnEvent(event.Event{Type: event.StateChanged, Data: event.StateChange{From: component.Playing, To: component.Paused}})
	assert.False(t, h.pauseButton.LastClickTime.IsZero())
	assert.True(t, h.stopButton.LastClickTime.IsZero())

	h.OnEvent(event.Event{Type: event.StateChanged, Data: event.StateChange{From: component.Paused, To: component.Stopped}})
	assert.False(t, h.stopButton.LastClickTime.IsZero())
}

func TestHUDPopsWaveIndicator(t *testing.T) {
	h, _ := newTestHUD(t)

	h.OnEvent(event.Event{Type: event.EnemyKilled})
	assert.True(t, h.waveIndicator.LastWaveTime.IsZero())

	h.OnEvent(event.Event{Type: event.WaveStarted})
	assert.False(t, h.waveIndicator.LastWaveTime.IsZero())
}

func TestHUDFollowsGameThroughDispatcher(t *testing.T) {
	h, g := newTestHUD(t)
	g.EventDispatcher.Subscribe(event.StateChanged, h)

	g.Start()
	assert.False(t, h.startButton.LastClickTime.IsZero())
}

func TestHUDUpdateSyncsWidgets(t *testing.T) {
	h, g := newTestHUD(t)

	g.SelectedTowerType = g.Layout.TowerButtons[1].Type
	h.Update(g)
	assert.False(t, h.towerButtons[1].LastClickTime.IsZero())
	assert.True(t, h.towerButtons[0].LastClickTime.IsZero())

	// Повторный Update с тем же выбором кнопку не нажимает
	pressed := h.towerButtons[1].LastClickTime
	h.Update(g)
	assert.Equal(t, pressed, h.towerButtons[1].LastClickTime)

	g.CycleSpeed()
	h.Update(g)
	assert.Equal(t, 1, h.speedIndicator.CurrentState)

	g.Start()
	g.TogglePause()
	h.Update(g)
	assert.True(t, h.pauseIcon.IsPaused)

	g.TogglePause()
	h.Update(g)
	assert.False(t, h.pauseIcon.IsPaused)
}

package tui

import (
	"strings"
	"testing"
	"time"

	game "go-defense-tower/internal/app"
	"go-defense-tower/internal/component"
	"go-defense-tower/internal/config"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFrontend(t *testing.T) (*Frontend, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(100, 64)
	t.Cleanup(screen.Fini)

	f := New(screen, game.NewGame(config.DefaultBalance()))
	f.Draw()
	return f, screen
}

func rowText(s tcell.Screen, row int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, row)
		b.WriteRune(r)
	}
	return b.String()
}

// findInRow возвращает колонку первого вхождения label в строке.
func findInRow(t *testing.T, s tcell.Screen, row int, label string) int {
	t.Helper()
	idx := strings.Index(rowText(s, row), label)
	require.GreaterOrEqual(t, idx, 0, "%q not found in row %d", label, row)
	return len([]rune(rowText(s, row)[:idx]))
}

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(100, 64)
	assert.Equal(t, 60, v.Rows)

	x, y := v.ToWorld(90, v.Top+20)
	assert.InDelta(t, 905, x, 1e-9)
	assert.InDelta(t, 305, y, 1e-9)

	col, row, ok := v.ToCell(component.Position{X: x, Y: y})
	require.True(t, ok)
	assert.Equal(t, 90, col)
	assert.Equal(t, v.Top+20, row)

	_, _, ok = v.ToCell(component.Position{X: 500, Y: 50})
	assert.False(t, ok)
}

func TestDrawShowsHUDAndBoard(t *testing.T) {
	f, screen := newTestFrontend(t)

	assert.Contains(t, rowText(screen, 0), "$120")
	assert.Contains(t, rowText(screen, 0), "[START]")
	assert.Contains(t, rowText(screen, 1), "Basic $50")

	// Дерево в (900, 300)
	col, row, ok := f.view.ToCell(component.Position{X: 900, Y: 300})
	require.True(t, ok)
	r, _, _, _ := screen.GetContent(col, row)
	assert.Equal(t, 'T', r)

	// Дорога проходит через (150, 300)
	col, row, _ = f.view.ToCell(component.Position{X: 150, Y: 300})
	r, _, _, _ = screen.GetContent(col, row)
	assert.Equal(t, '░', r)
}

func TestMouseDrivesGame(t *testing.T) {
	f, screen := newTestFrontend(t)

	x := findInRow(t, screen, 0, "[START]")
	f.HandleEvent(tcell.NewEventMouse(x+1, 0, tcell.Button1, 0))
	f.HandleEvent(tcell.NewEventMouse(x+1, 0, tcell.ButtonNone, 0))
	assert.Equal(t, component.Playing, f.game.State)

	f.Draw()
	x = findInRow(t, screen, 1, "Rapid")
	f.HandleEvent(tcell.NewEventMouse(x, 1, tcell.Button1, 0))
	f.HandleEvent(tcell.NewEventMouse(x, 1, tcell.ButtonNone, 0))
	assert.Equal(t, component.TowerRapid, f.game.SelectedTowerType)

	// Клетка с центром (225, 285): в стороне от дороги
	f.HandleEvent(tcell.NewEventMouse(22, f.view.Top+18, tcell.Button1, 0))
	require.Len(t, f.game.World.Towers, 1)
	assert.Equal(t, 30, f.game.Money)

	// Зажатая кнопка не кликает повторно
	f.HandleEvent(tcell.NewEventMouse(40, f.view.Top+40, tcell.Button1, 0))
	assert.Len(t, f.game.World.Towers, 1)
}

func TestKeysDriveGame(t *testing.T) {
	f, _ := newTestFrontend(t)

	assert.True(t, f.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	assert.Equal(t, component.Playing, f.game.State)

	f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone))
	assert.Equal(t, 2, f.game.SpeedMultiplier())

	f.Tick()
	assert.EqualValues(t, 2, f.game.World.Tick)

	f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	assert.Equal(t, component.Paused, f.game.State)

	f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone))
	assert.Equal(t, component.TowerSniper, f.game.SelectedTowerType)
	f.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	assert.Empty(t, f.game.SelectedTowerType)

	assert.False(t, f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
}

func TestInfoLineFollowsSelection(t *testing.T) {
	f, screen := newTestFrontend(t)

	col, row, _ := f.view.ToCell(component.Position{X: 900, Y: 300})
	f.HandleEvent(tcell.NewEventMouse(col, row, tcell.Button1, 0))
	require.NotNil(t, f.game.SelectedTree())

	f.Draw()
	assert.Contains(t, rowText(screen, 2), "Tree Lv 1")
	assert.Contains(t, rowText(screen, 2), "$100")
}

func TestPollEventsStopsWhenDone(t *testing.T) {
	f, screen := newTestFrontend(t)

	events := make(chan tcell.Event) // Никто не читает
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		f.pollEvents(done, events)
		close(finished)
	}()

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	time.Sleep(20 * time.Millisecond)
	close(done)

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("poll loop is stuck on a full channel")
	}
}

// internal/state/menu_state.go
package state

import (
	"go-defense-tower/internal/config"
	"go-defense-tower/internal/event"
	"go-defense-tower/internal/ui"
	"go-defense-tower/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState — стартовый экран с одной кнопкой
type MenuState struct {
	sm        *StateMachine
	balance   *config.Balance
	listeners []event.Listener
	playBtn   *ui.MenuButton
}

func NewMenuState(sm *StateMachine, balance *config.Balance, listeners ...event.Listener) *MenuState {
	rect := utils.Rect{X: config.ScreenWidth/2 - 80, Y: config.ScreenHeight/2 - 25, W: 160, H: 50}
	return &MenuState{
		sm:        sm,
		balance:   balance,
		listeners: listeners,
		playBtn:   ui.NewMenuButton(rect, "PLAY", basicfont.Face7x13),
	}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update() {
	start := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		start = start || m.playBtn.IsClicked(x, y)
	}
	if start {
		m.sm.SetState(NewGameState(m.sm, m.balance, m.listeners...))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.HUDColor)
	text.Draw(screen, "DEFENSE TOWER", basicfont.Face7x13, config.ScreenWidth/2-45, config.ScreenHeight/2-60, config.TextLightColor)
	m.playBtn.Draw(screen)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}

// internal/state/game_state.go
package state

import (
	game "go-defense-tower/internal/app"
	"go-defense-tower/internal/config"
	"go-defense-tower/internal/event"
	"go-defense-tower/internal/ui"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
)

// keyBindings — клавиши ebiten и действия игры.
var keyBindings = []struct {
	key    ebiten.Key
	action game.Key
}{
	{ebiten.KeyU, game.KeyUpgrade},
	{ebiten.Key1, game.KeyTower1},
	{ebiten.Key2, game.KeyTower2},
	{ebiten.Key3, game.KeyTower3},
	{ebiten.KeySpace, game.KeyPause},
	{ebiten.KeyP, game.KeyPause},
	{ebiten.KeyEnter, game.KeyStart},
	{ebiten.KeyS, game.KeyStop},
	{ebiten.KeyF, game.KeySpeed},
	{ebiten.KeyEscape, game.KeyCancel},
}

// GameState — состояние игры
type GameState struct {
	sm            *StateMachine
	game          *game.Game
	board         *ui.BoardRenderer
	hud           *ui.HUD
	infoPanel     *ui.InfoPanel
	lastClickTime time.Time
}

// NewGameState создаёт игру; listeners (звук и т.п.) подписываются на все её события.
func NewGameState(sm *StateMachine, balance *config.Balance, listeners ...event.Listener) *GameState {
	gameLogic := game.NewGame(balance)
	face := basicfont.Face7x13

	gs := &GameState{
		sm:        sm,
		game:      gameLogic,
		board:     ui.NewBoardRenderer(face, gameLogic.Path),
		hud:       ui.NewHUD(face, gameLogic),
		infoPanel: ui.NewInfoPanel(face),
	}
	gameLogic.EventDispatcher.SubscribeAll(gs.hud)
	for _, l := range listeners {
		gameLogic.EventDispatcher.SubscribeAll(l)
	}
	return gs
}

// Game — игровая логика, для внешних подписчиков и тестов.
func (g *GameState) Game() *game.Game {
	return g.game
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update() {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.game.HandleKey(b.action)
		}
	}

	// Обработка левой кнопки; частые клики по кнопкам панели гасим
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if y > config.HUDHeight || time.Since(g.lastClickTime) >= time.Duration(config.ClickCooldown)*time.Millisecond {
			g.game.HandleClick(float64(x), float64(y))
			g.lastClickTime = time.Now()
		}
	}

	// Правый клик снимает любой выбор
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.game.HandleKey(game.KeyCancel)
	}

	g.game.Advance()

	g.hud.Update(g.game)
	g.infoPanel.Update(g.game)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	x, y := ebiten.CursorPosition()
	g.board.Draw(screen, g.game, x, y)
	g.infoPanel.Draw(screen, g.game)
	g.hud.Draw(screen, g.game)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}

// internal/tui/frontend.go
package tui

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	game "go-defense-tower/internal/app"
	"go-defense-tower/internal/component"
	"go-defense-tower/internal/config"
	"go-defense-tower/internal/logger"
	"go-defense-tower/internal/utils"
	"go-defense-tower/pkg/render"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

const footer = "click/1-3 build  U upgrade  Enter start  Space pause  S stop  F speed  Esc cancel  Q quit"

// hotspot — кликабельная надпись HUD. Клик передаётся игре в центр соответствующей кнопки,
// так что терминал проходит через тот же InputHandler, что и окно.
type hotspot struct {
	row, x0, x1 int
	wx, wy      float64
}

// Frontend рисует игру в терминале и переводит события tcell в действия игры.
type Frontend struct {
	screen      tcell.Screen
	game        *game.Game
	view        Viewport
	roadMask    []bool
	hotspots    []hotspot
	lastButtons tcell.ButtonMask
}

func New(screen tcell.Screen, g *game.Game) *Frontend {
	f := &Frontend{screen: screen, game: g}
	f.resize()
	return f
}

func (f *Frontend) resize() {
	w, h := f.screen.Size()
	f.view = NewViewport(w, h)

	// Дорога не меняется, считаем клетки один раз на размер экрана
	f.roadMask = make([]bool, f.view.Cols*f.view.Rows)
	path := f.game.Path
	for r := 0; r < f.view.Rows; r++ {
		for c := 0; c < f.view.Cols; c++ {
			x, y := f.view.ToWorld(c, f.view.Top+r)
			p := component.Position{X: x, Y: y}
			for i := 0; i+1 < len(path); i++ {
				if utils.DistanceToSegment(p, path[i], path[i+1]) <= config.RoadWidth/2 {
					f.roadMask[r*f.view.Cols+c] = true
					break
				}
			}
		}
	}
}

// HandleEvent обрабатывает одно событие. false — пользователь выходит.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.handleKey(ev)
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && f.lastButtons&tcell.Button1 == 0
		f.lastButtons = buttons
		if pressed {
			x, y := ev.Position()
			f.click(x, y)
		} else if buttons&tcell.Button2 != 0 || buttons&tcell.Button3 != 0 {
			f.game.HandleKey(game.KeyCancel)
		}
	case *tcell.EventResize:
		f.screen.Sync()
		f.resize()
	}
	return true
}

func (f *Frontend) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		f.game.HandleKey(game.KeyCancel)
	case tcell.KeyEnter:
		f.game.HandleKey(game.KeyStart)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'u', 'U':
			f.game.HandleKey(game.KeyUpgrade)
		case '1':
			f.game.HandleKey(game.KeyTower1)
		case '2':
			f.game.HandleKey(game.KeyTower2)
		case '3':
			f.game.HandleKey(game.KeyTower3)
		case ' ', 'p', 'P':
			f.game.HandleKey(game.KeyPause)
		case 's', 'S':
			f.game.HandleKey(game.KeyStop)
		case 'f', 'F':
			f.game.HandleKey(game.KeySpeed)
		}
	}
	return true
}

func (f *Frontend) click(x, y int) {
	for _, h := range f.hotspots {
		if y == h.row && x >= h.x0 && x < h.x1 {
			f.game.HandleClick(h.wx, h.wy)
			return
		}
	}
	if f.view.InBoard(y) {
		wx, wy := f.view.ToWorld(x, y)
		f.game.HandleClick(wx, wy)
	}
}

// Tick — один кадр: столько тиков, сколько задаёт множитель скорости.
func (f *Frontend) Tick() {
	f.game.Advance()
}

// Run крутит игру с частотой tps, пока не придёт выход или не отменят ctx.
func (f *Frontend) Run(ctx context.Context, tps int) error {
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go f.pollEvents(done, events)

	f.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !f.HandleEvent(ev) {
				logger.Log.Info("quit requested", zap.Uint64("tick", f.game.World.Tick))
				return nil
			}
		case <-ticker.C:
			f.Tick()
			f.Draw()
		}
	}
}

// pollEvents читает события экрана в events, пока не закроют done или экран.
func (f *Frontend) pollEvents(done <-chan struct{}, events chan<- tcell.Event) {
	defer close(events)
	for {
		select {
		case <-done:
			return
		default:
		}
		ev := f.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// --- Отрисовка ---

func rgb(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

var (
	styleHUD   = tcell.StyleDefault.Background(rgb(config.HUDColor)).Foreground(rgb(config.TextLightColor))
	styleBoard = tcell.StyleDefault.Background(rgb(config.BackgroundColor)).Foreground(rgb(config.TextDarkColor))
	styleRoad  = tcell.StyleDefault.Background(rgb(config.RoadColor)).Foreground(rgb(config.TextLightColor))
)

func (f *Frontend) Draw() {
	f.screen.Clear()
	f.hotspots = f.hotspots[:0]

	f.drawBoard()
	f.drawHUD()
	f.putString(0, f.view.Top+f.view.Rows, footer, tcell.StyleDefault.Foreground(tcell.ColorGray))

	f.screen.Show()
}

func (f *Frontend) drawBoard() {
	for r := 0; r < f.view.Rows; r++ {
		for c := 0; c < f.view.Cols; c++ {
			style := styleBoard
			ch := ' '
			if f.roadMask[r*f.view.Cols+c] {
				style = styleRoad
				ch = '░'
			}
			f.screen.SetContent(c, f.view.Top+r, ch, nil, style)
		}
	}

	g := f.game
	for _, t := range g.World.Trees {
		style := styleBoard.Foreground(rgb(config.FoliageColor)).Bold(true)
		if t.ID == g.SelectedID {
			style = style.Reverse(true)
		}
		f.putAt(t.Pos, 'T', style)
	}
	for _, t := range g.World.Towers {
		style := styleBoard.Foreground(rgb(t.Color)).Bold(true)
		if t.ID == g.SelectedID {
			style = style.Reverse(true)
		}
		f.putAt(t.Pos, towerRune(t.Type), style)
	}
	for _, e := range g.World.Enemies {
		ch := 'e'
		if e.HasTree {
			ch = 'E'
		}
		f.putAt(e.Pos, ch, f.cellStyle(e.Pos).Foreground(rgb(render.HealthColor(e.HealthRatio()))).Bold(true))
	}
	for _, p := range g.World.Projectiles {
		f.putAt(p.Pos, '*', f.cellStyle(p.Pos).Foreground(tcell.ColorYellow))
	}
}

func towerRune(t component.TowerType) rune {
	if t == "" {
		return '?'
	}
	return []rune(strings.ToUpper(string(t)))[0]
}

// cellStyle — фон клетки под точкой: дорога или снег.
func (f *Frontend) cellStyle(p component.Position) tcell.Style {
	col, row, ok := f.view.ToCell(p)
	if ok && f.roadMask[(row-f.view.Top)*f.view.Cols+col] {
		return styleRoad
	}
	return styleBoard
}

func (f *Frontend) putAt(p component.Position, ch rune, style tcell.Style) {
	if col, row, ok := f.view.ToCell(p); ok {
		f.screen.SetContent(col, row, ch, nil, style)
	}
}

func (f *Frontend) drawHUD() {
	g := f.game
	w := f.view.Cols
	for row := 0; row < hudRows; row++ {
		for x := 0; x < w; x++ {
			f.screen.SetContent(x, row, ' ', nil, styleHUD)
		}
	}

	state := strings.ToUpper(g.State.String())
	if g.GameOver {
		state = "GAME OVER"
	}
	status := fmt.Sprintf("$%d  Lives %d  Wave %d  Lv %d  %s  x%d", g.Money, g.Lives, g.Wave, g.Level, state, g.SpeedMultiplier())
	x := f.putString(0, 0, status, styleHUD.Foreground(rgb(config.MoneyTextColor)))

	l := g.Layout
	x += 2
	x = f.button(x, 0, "[START]", l.Start, render.ButtonColor(config.StartColors, g.State == component.Playing))
	x = f.button(x+1, 0, "[PAUSE]", l.Pause, render.ButtonColor(config.PauseColors, g.State == component.Paused))
	f.button(x+1, 0, "[STOP]", l.Stop, render.ButtonColor(config.StopColors, g.State == component.Stopped))

	x = 0
	for i, b := range l.TowerButtons {
		c := render.DarkenColor(b.Color)
		if b.Type == g.SelectedTowerType {
			c = b.Color
		}
		x = f.button(x, 1, fmt.Sprintf("[%d %s]", i+1, b.Label), b.Rect, c) + 1
	}

	f.putString(0, 2, f.infoLine(), styleHUD)
}

// button рисует надпись-кнопку и запоминает её зону клика.
func (f *Frontend) button(x, row int, label string, rect utils.Rect, bg color.Color) int {
	style := tcell.StyleDefault.Background(rgb(bg)).Foreground(tcell.ColorBlack)
	end := f.putString(x, row, label, style)
	f.hotspots = append(f.hotspots, hotspot{
		row: row, x0: x, x1: end,
		wx: rect.X + rect.W/2, wy: rect.Y + rect.H/2,
	})
	return end
}

func (f *Frontend) infoLine() string {
	g := f.game
	if g.SelectedTowerType != "" {
		return fmt.Sprintf("Building %s: click the field, Esc to cancel", g.SelectedTowerType)
	}
	if t := g.SelectedTower(); t != nil {
		return fmt.Sprintf("Tower %s Lv %d  damage %d  range %.0f  upgrade [U] $%d", t.Type, t.Level, t.Damage, t.Range, t.UpgradeCost)
	}
	if t := g.SelectedTree(); t != nil {
		return fmt.Sprintf("Tree Lv %d  income $%d  %d%%  upgrade [U] $%d", t.Level, t.Income*t.Level, int(t.Progress()*100), t.NextUpgradeCost())
	}
	return fmt.Sprintf("kills %d  escapes %d  shots %d", g.Stats.Kills, g.Stats.Escapes, g.Stats.ShotsFired)
}

// putString пишет строку с позиции x и возвращает колонку после неё.
func (f *Frontend) putString(x, row int, s string, style tcell.Style) int {
	for _, r := range s {
		f.screen.SetContent(x, row, r, nil, style)
		x++
	}
	return x
}

// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	game "go-defense-tower/internal/app"
	"go-defense-tower/internal/component"
	"go-defense-tower/internal/config"
	"go-defense-tower/internal/event"
	"go-defense-tower/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// HUD — верхняя панель: деньги, жизни, волна, кнопки. Подписан на события игры
// только ради анимаций.
type HUD struct {
	fontFace       font.Face
	startButton    *Button
	pauseButton    *Button
	stopButton     *Button
	towerButtons   []*Button
	towerTypes     []component.TowerType
	livesIndicator *LivesIndicator
	waveIndicator  *WaveIndicator
	levelIndicator *LevelIndicator
	stateIndicator *StateIndicator
	speedIndicator *SpeedIndicator
	uIndicator     *UIndicator
	pauseIcon      *PauseIcon
	selectedType   component.TowerType
}

func NewHUD(face font.Face, g *game.Game) *HUD {
	l := g.Layout
	h := &HUD{
		fontFace:       face,
		startButton:    NewButton(l.Start, "START", config.StartColors),
		pauseButton:    NewButton(l.Pause, "PAUSE", config.PauseColors),
		stopButton:     NewButton(l.Stop, "STOP", config.StopColors),
		livesIndicator: NewLivesIndicator(config.LivesIndicatorX, config.LivesIndicatorY),
		waveIndicator:  NewWaveIndicator(config.WaveIndicatorX, 25),
		levelIndicator: NewLevelIndicator(config.WaveIndicatorX, 32),
		stateIndicator: NewStateIndicator(config.IndicatorX, config.IndicatorY, config.IndicatorRadius),
		speedIndicator: NewSpeedIndicator(config.SpeedIndicatorX, config.SpeedIndicatorY, config.SpeedIndicatorSz, config.SpeedColors),
		uIndicator:     NewUIndicator(config.UIndicatorX, config.UIndicatorY, face),
		pauseIcon:      NewPauseIcon(config.ScreenWidth/2, (config.ScreenHeight+config.HUDHeight)/2, 30, config.PauseIconColor, config.PlayIconColor),
	}
	for _, tb := range l.TowerButtons {
		b := NewButton(tb.Rect, tb.Label, [2]color.RGBA{render.DarkenColor(tb.Color), tb.Color})
		b.DrawHeight = config.TowerButtonDrawHeight
		h.towerButtons = append(h.towerButtons, b)
		h.towerTypes = append(h.towerTypes, tb.Type)
	}
	return h
}

// OnEvent реализует интерфейс event.Listener.
func (h *HUD) OnEvent(e event.Event) {
	switch e.Type {
	case event.StateChanged:
		h.stateIndicator.Pop()
		if sc, ok := e.Data.(event.StateChange); ok {
			switch sc.To {
			case component.Playing:
				h.startButton.Press()
			case component.Paused:
				h.pauseButton.Press()
			case component.Stopped:
				h.stopButton.Press()
			}
		}
	case event.WaveStarted:
		h.waveIndicator.Pop()
	}
}

// Update синхронизирует виджеты с состоянием игры.
func (h *HUD) Update(g *game.Game) {
	if g.SelectedTowerType != h.selectedType {
		h.selectedType = g.SelectedTowerType
		for i, t := range h.towerTypes {
			if t == h.selectedType {
				h.towerButtons[i].Press()
			}
		}
	}
	h.speedIndicator.SetState(g.SpeedIndex())
	h.pauseIcon.SetPaused(g.State == component.Paused)
}

func (h *HUD) Draw(screen *ebiten.Image, g *game.Game) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.HUDHeight, config.HUDColor, false)

	text.Draw(screen, fmt.Sprintf("$%d", g.Money), h.fontFace, config.MoneyTextX, 25, config.MoneyTextColor)
	h.livesIndicator.Draw(screen, h.fontFace, g.Lives, g.Balance.Economy.StartLives)
	h.waveIndicator.Draw(screen, h.fontFace, g.Wave, g.Balance.Waves.WavesPerLevel)
	h.levelIndicator.Draw(screen, g.Level, g.Wave, g.Balance.Waves.WavesPerLevel)
	text.Draw(screen, stateLabel(g), h.fontFace, config.StateTextX, 25, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Enemy Lv %d", g.Level), h.fontFace, config.StateTextX, 45, config.TextLightColor)

	h.startButton.Draw(screen, h.fontFace, g.State == component.Playing)
	h.pauseButton.Draw(screen, h.fontFace, g.State == component.Paused)
	h.stopButton.Draw(screen, h.fontFace, g.State == component.Stopped)
	for i, b := range h.towerButtons {
		b.Draw(screen, h.fontFace, h.towerTypes[i] == g.SelectedTowerType)
	}

	if g.SelectedTowerType != "" {
		text.Draw(screen, "Click the field to build, Esc to cancel", h.fontFace, config.InfoTextX, 85, config.TextLightColor)
	}

	h.stateIndicator.Draw(screen, render.StateColor(g.State))
	h.speedIndicator.Draw(screen)
	text.Draw(screen, fmt.Sprintf("x%d", g.SpeedMultiplier()), h.fontFace, config.SpeedIndicatorX+14, config.SpeedIndicatorY+5, config.TextLightColor)

	_, cost, ok := g.SelectedUpgrade()
	h.uIndicator.Draw(screen, ok, g.Money >= cost)

	if g.State != component.Playing && !g.GameOver {
		h.pauseIcon.Draw(screen)
	}
	if g.GameOver {
		drawCenteredText(screen, "GAME OVER. Press START to play again", h.fontFace,
			config.ScreenWidth/2, config.ScreenHeight/2, config.LivesTextColor)
	}
}

func stateLabel(g *game.Game) string {
	if g.GameOver {
		return "GAME OVER"
	}
	switch g.State {
	case component.Playing:
		return "PLAYING"
	case component.Paused:
		return "PAUSED"
	}
	return "STOPPED"
}

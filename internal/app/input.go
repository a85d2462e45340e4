// internal/app/input.go
package app

import (
	"go-defense-tower/internal/component"
	"go-defense-tower/internal/config"
	"go-defense-tower/internal/logger"

	"go.uber.org/zap"
)

// Key — действие с клавиатуры, независимое от фронтенда.
type Key int

const (
	KeyNone Key = iota
	KeyUpgrade
	KeyTower1
	KeyTower2
	KeyTower3
	KeyPause
	KeyStart
	KeyStop
	KeySpeed
	KeyCancel
)

// HandleClick переводит клик в координатах экрана в действие.
func (g *Game) HandleClick(x, y float64) {
	l := g.Layout

	// Кнопки управления
	if l.ControlBand.Contains(x, y) {
		switch {
		case l.Start.Contains(x, y):
			g.Start()
		case l.Pause.Contains(x, y):
			g.TogglePause()
		case l.Stop.Contains(x, y):
			g.Stop()
		}
		return
	}

	// Выбор типа башни; клик мимо кнопок сбрасывает выбор
	if l.TowerBand.Contains(x, y) {
		g.SelectedTowerType = ""
		for _, b := range l.TowerButtons {
			if b.Rect.Contains(x, y) {
				g.SelectedTowerType = b.Type
				break
			}
		}
		return
	}

	if y <= config.HUDHeight {
		return
	}

	if g.SelectedTowerType != "" {
		if _, err := g.PlaceTower(g.SelectedTowerType, x, y); err != nil {
			logger.Log.Debug("tower not placed",
				zap.String("type", string(g.SelectedTowerType)),
				zap.Float64("x", x), zap.Float64("y", y),
				zap.Error(err))
			return
		}
		g.SelectedTowerType = ""
		return
	}

	g.SelectAt(x, y)
}

// SelectAt выбирает башню в точке (x, y), иначе дерево, иначе снимает выбор.
// Кнопки панели не трогает. Возвращает true, если что-то выбрано.
func (g *Game) SelectAt(x, y float64) bool {
	pos := component.Position{X: x, Y: y}
	g.SelectedID = 0
	for _, t := range g.World.Towers {
		if pos.DistanceTo(t.Pos) < config.TowerSelectRadius {
			g.SelectedID = t.ID
			return true
		}
	}
	for _, t := range g.World.Trees {
		if pos.DistanceTo(t.Pos) < config.TreeSelectRadius {
			g.SelectedID = t.ID
			return true
		}
	}
	return false
}

// HandleKey выполняет клавиатурное действие.
func (g *Game) HandleKey(k Key) {
	switch k {
	case KeyUpgrade:
		if err := g.UpgradeSelected(); err != nil {
			logger.Log.Debug("upgrade rejected", zap.Error(err))
		}
	case KeyTower1, KeyTower2, KeyTower3:
		i := int(k - KeyTower1)
		if i < len(g.Layout.TowerButtons) {
			g.SelectedTowerType = g.Layout.TowerButtons[i].Type
		}
	case KeyPause:
		g.TogglePause()
	case KeyStart:
		g.Start()
	case KeyStop:
		g.Stop()
	case KeySpeed:
		g.CycleSpeed()
	case KeyCancel:
		g.SelectedTowerType = ""
		g.SelectedID = 0
	}
}

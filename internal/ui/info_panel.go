// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"math"

	game "go-defense-tower/internal/app"
	"go-defense-tower/internal/config"
	"go-defense-tower/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelMargin    = 5
	animationSpeed = 6.0
	lineHeight     = 18
)

// InfoPanel — выезжающая снизу панель с данными выбранной башни или дерева.
type InfoPanel struct {
	IsVisible    bool
	TargetEntity types.EntityID
	fontFace     font.Face
	currentY     float64
	targetY      float64
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(face font.Face) *InfoPanel {
	return &InfoPanel{
		fontFace: face,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

func (p *InfoPanel) SetTarget(entityID types.EntityID) {
	p.TargetEntity = entityID
	p.IsVisible = true
	p.targetY = config.ScreenHeight - config.InfoPanelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Update следит за выбором в игре и двигает панель.
func (p *InfoPanel) Update(g *game.Game) {
	if g.SelectedID != 0 {
		p.SetTarget(g.SelectedID)
	} else {
		p.Hide()
	}

	// Анимация панели
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}

		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
			p.TargetEntity = 0
		}
	}
}

// Lines — строки панели для выбранного объекта; nil, если объекта уже нет.
func (p *InfoPanel) Lines(g *game.Game) []string {
	if t := g.World.Tower(p.TargetEntity); t != nil {
		return []string{
			fmt.Sprintf("Tower %s  Lv %d  damage %d  range %.0f  reload %.2fs",
				t.Type, t.Level, t.Damage, t.Range, float64(t.FireRate)/config.TicksPerSecond),
			upgradeLine(g.Money, t.UpgradeCost),
		}
	}
	if t := g.World.Tree(p.TargetEntity); t != nil {
		return []string{
			fmt.Sprintf("Tree  Lv %d  income $%d every %.1fs",
				t.Level, t.Income*t.Level, float64(t.Interval)/config.TicksPerSecond),
			upgradeLine(g.Money, t.NextUpgradeCost()),
		}
	}
	return nil
}

func upgradeLine(money, cost int) string {
	if money < cost {
		return fmt.Sprintf("Upgrade [U]: $%d (need $%d more)", cost, cost-money)
	}
	return fmt.Sprintf("Upgrade [U]: $%d", cost)
}

func (p *InfoPanel) Draw(screen *ebiten.Image, g *game.Game) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+config.InfoPanelHeight-panelMargin,
	)
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), config.PanelColor, true)
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, config.PanelBorderColor, true)

	for i, line := range p.Lines(g) {
		text.Draw(screen, line, p.fontFace, panelRect.Min.X+15, panelRect.Min.Y+20+i*lineHeight, config.TextLightColor)
	}
}

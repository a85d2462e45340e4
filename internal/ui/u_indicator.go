// internal/ui/u_indicator.go
package ui

import (
	"go-defense-tower/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// UIndicator — буква "U" у выбранного объекта: яркая, если улучшение по карману,
// перечёркнутая, если денег не хватает.
type UIndicator struct {
	X, Y float32
	Font font.Face
}

// NewUIndicator создает новый индикатор улучшения.
func NewUIndicator(x, y float32, face font.Face) *UIndicator {
	return &UIndicator{
		X:    x,
		Y:    y,
		Font: face,
	}
}

// Draw отрисовывает индикатор. visible=false — нечего улучшать.
func (i *UIndicator) Draw(screen *ebiten.Image, visible, affordable bool) {
	if !visible {
		return
	}
	c := config.UIndicatorInactiveColor
	if affordable {
		c = config.UIndicatorActiveColor
	}
	drawCenteredText(screen, "U", i.Font, float64(i.X), float64(i.Y), c)

	if !affordable {
		vector.StrokeLine(screen, i.X-6, i.Y+7, i.X+6, i.Y-7, 2, config.LivesTextColor, true)
	}
}

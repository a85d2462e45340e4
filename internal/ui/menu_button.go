// internal/ui/menu_button.go
package ui

import (
	"image/color"

	"go-defense-tower/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// MenuButton представляет собой простую кнопку для использования в меню.
type MenuButton struct {
	Rect    utils.Rect
	Text    string
	bgColor color.RGBA
	fgColor color.RGBA
	font    font.Face
}

// NewMenuButton создает новую кнопку меню.
func NewMenuButton(rect utils.Rect, text string, face font.Face) *MenuButton {
	return &MenuButton{
		Rect:    rect,
		Text:    text,
		bgColor: color.RGBA{128, 128, 128, 255},
		fgColor: color.RGBA{0, 0, 0, 255},
		font:    face,
	}
}

// Draw отрисовывает кнопку.
func (b *MenuButton) Draw(screen *ebiten.Image) {
	r := b.Rect
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), b.bgColor, true)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, color.RGBA{211, 211, 211, 255}, true)
	drawCenteredText(screen, b.Text, b.font, r.X+r.W/2, r.Y+r.H/2, b.fgColor)
}

// IsClicked проверяет, был ли клик по кнопке.
func (b *MenuButton) IsClicked(x, y int) bool {
	return b.Rect.Contains(float64(x), float64(y))
}

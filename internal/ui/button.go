// internal/ui/button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-defense-tower/internal/config"
	"go-defense-tower/internal/utils"
	"go-defense-tower/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button — прямоугольная кнопка панели управления с анимацией нажатия.
type Button struct {
	Rect          utils.Rect
	Label         string
	Colors        [2]color.RGBA // неактивна / активна
	DrawHeight    float64       // 0 — как у зоны клика
	LastClickTime time.Time
}

// NewButton создает новую кнопку.
func NewButton(rect utils.Rect, label string, colors [2]color.RGBA) *Button {
	return &Button{
		Rect:   rect,
		Label:  label,
		Colors: colors,
	}
}

// Press запускает анимацию нажатия.
func (b *Button) Press() {
	b.LastClickTime = time.Now()
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, active bool) {
	scale := popScale(time.Since(b.LastClickTime), 0.08)

	h := b.Rect.H
	if b.DrawHeight > 0 {
		h = b.DrawHeight
	}
	w := b.Rect.W * scale
	h *= scale
	x := b.Rect.X + (b.Rect.W-w)/2
	y := b.Rect.Y + (b.Rect.H-h)/2
	if b.DrawHeight > 0 {
		y = b.Rect.Y
	}

	bg := render.ButtonColor(b.Colors, active)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), bg, true)
	border := config.StrokeColor
	if active {
		border = config.SelectionColor
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, border, true)

	drawCenteredText(screen, b.Label, face, x+w/2, y+h/2, render.ContrastTextColor(bg))
}

// popScale — масштаб "выпрыгивания" элемента после клика, затухает за ~0.5 с.
func popScale(elapsed time.Duration, amplitude float64) float64 {
	return 1.0 + amplitude*math.Exp(-elapsed.Seconds()*8)
}

// drawCenteredText рисует строку с центром в (cx, cy).
func drawCenteredText(screen *ebiten.Image, s string, face font.Face, cx, cy float64, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := int(cx) - bounds.Dx()/2
	y := int(cy) - bounds.Dy()/2 - bounds.Min.Y
	text.Draw(screen, s, face, x, y, clr)
}

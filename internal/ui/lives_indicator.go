// internal/ui/lives_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"go-defense-tower/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	LivesCols          = 5
	LivesCircleRadius  = 6.0
	LivesCircleSpacing = 3.0
)

var (
	livesExtraColor = color.RGBA{60, 120, 255, 255}
	livesEmptyColor = color.RGBA{0, 0, 0, 255}
)

// LivesIndicator отображает жизни игрока сеткой кружков.
type LivesIndicator struct {
	X, Y float32
}

// NewLivesIndicator создает новый индикатор жизней.
func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

// cellColor — цвет j-го кружка: "запас" выше половины синий, остальное красное, пустые чёрные.
func cellColor(j, lives, maxLives int) color.RGBA {
	if j >= lives {
		return livesEmptyColor
	}
	half := maxLives / 2
	if lives > half && j < lives-half {
		return livesExtraColor
	}
	return config.LivesTextColor
}

// Draw рисует кружки и число жизней справа от сетки.
func (i *LivesIndicator) Draw(screen *ebiten.Image, face font.Face, lives, maxLives int) {
	step := float32(LivesCircleRadius*2 + LivesCircleSpacing)
	for j := 0; j < maxLives; j++ {
		row := j / LivesCols
		col := j % LivesCols
		cx := i.X + float32(col)*step + LivesCircleRadius
		cy := i.Y + float32(row)*step + LivesCircleRadius

		vector.DrawFilledCircle(screen, cx, cy, LivesCircleRadius, cellColor(j, lives, maxLives), true)
		vector.StrokeCircle(screen, cx, cy, LivesCircleRadius, 1, color.White, true)
	}

	textX := int(i.X + LivesCols*step + 6)
	text.Draw(screen, strconv.Itoa(lives), face, textX, int(i.Y)+18, config.LivesTextColor)
}

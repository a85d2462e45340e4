// internal/ui/level_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LevelIndicator отображает уровень врагов и сколько волн осталось до следующего.
type LevelIndicator struct {
	X, Y float32
}

const (
	levelBarWidth   = 100
	levelBarHeight  = 8
	levelRectWidth  = 12
	levelRectHeight = 8
	levelRectGap    = 10
	maxLevelPips    = 5
	borderWidth     = 1
)

var (
	levelBarColorFill = color.RGBA{70, 100, 120, 220}
	borderColor       = color.White
)

// NewLevelIndicator создает новый индикатор уровня.
func NewLevelIndicator(x, y float32) *LevelIndicator {
	return &LevelIndicator{X: x, Y: y}
}

// levelProgress — доля пройденных волн текущего уровня.
func levelProgress(wave, wavesPerLevel int) float64 {
	if wavesPerLevel <= 0 {
		return 0
	}
	return float64(wave%wavesPerLevel) / float64(wavesPerLevel)
}

// Draw отрисовывает индикатор.
func (i *LevelIndicator) Draw(screen *ebiten.Image, level, wave, wavesPerLevel int) {
	// 1. Обводка полосы прогресса
	vector.StrokeRect(screen, i.X, i.Y, levelBarWidth, levelBarHeight, borderWidth, borderColor, true)

	// 2. Заполненная часть
	fillWidth := float32(float64(levelBarWidth-borderWidth*2) * levelProgress(wave, wavesPerLevel))
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, levelBarHeight-borderWidth*2, levelBarColorFill, true)
	}

	// 3. Прямоугольники уровня; выше maxLevelPips все заполнены
	rectY := i.Y + levelBarHeight + 6
	for j := 0; j < maxLevelPips; j++ {
		rectX := i.X + float32(j)*(levelRectWidth+levelRectGap)
		vector.StrokeRect(screen, rectX, rectY, levelRectWidth, levelRectHeight, borderWidth, borderColor, true)
		if j < level {
			vector.DrawFilledRect(screen, rectX+borderWidth, rectY+borderWidth, levelRectWidth-borderWidth*2, levelRectHeight-borderWidth*2, levelBarColorFill, true)
		}
	}
}

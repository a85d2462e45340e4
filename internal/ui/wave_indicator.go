// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"
	"time"

	"go-defense-tower/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             float32
	Color            color.RGBA
	LevelUpColor     color.RGBA // Волна, с которой враги стали сильнее
	OutlineColor     color.RGBA
	OutlineThickness int
	LastWaveTime     time.Time
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y float32) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.MoneyTextColor,
		LevelUpColor:     config.LivesTextColor,
		OutlineColor:     config.StrokeColor,
		OutlineThickness: 1,
	}
}

// Pop — анимация начала новой волны.
func (i *WaveIndicator) Pop() {
	i.LastWaveTime = time.Now()
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, waveNumber, wavesPerLevel int) {
	if waveNumber <= 0 {
		return
	}

	label := "Wave " + toRoman(waveNumber)

	textColor := i.Color
	if wavesPerLevel > 0 && waveNumber%wavesPerLevel == 0 {
		textColor = i.LevelUpColor
	}

	// Сдвиг вверх, пока волна "только что" началась
	lift := int(6 * (popScale(time.Since(i.LastWaveTime), 1) - 1))
	x := int(i.X)
	y := int(i.Y) - lift

	// Рисуем обводку
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, face, x+dx, y+dy, i.OutlineColor)
		}
	}

	// Рисуем основной текст
	text.Draw(screen, label, face, x, y, textColor)
}

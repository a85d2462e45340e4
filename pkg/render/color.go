// pkg/render/color.go
package render

import (
	"image/color"

	"go-defense-tower/internal/component"
	"go-defense-tower/internal/config"
)

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor смешивает цвет с белым на долю amount (0..1).
func LightenColor(c color.RGBA, amount float64) color.RGBA {
	mix := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*amount)
	}
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}

// ContrastTextColor — тёмный текст на светлом фоне и светлый на тёмном.
func ContrastTextColor(bg color.RGBA) color.RGBA {
	if (int(bg.R)+int(bg.G)+int(bg.B))/3 > 128 {
		return config.TextDarkColor
	}
	return config.TextLightColor
}

// HealthColor — цвет полоски здоровья по доле оставшегося HP.
func HealthColor(ratio float64) color.RGBA {
	switch {
	case ratio > 0.6:
		return config.HealthHighColor
	case ratio > 0.3:
		return config.HealthMidColor
	default:
		return config.HealthLowColor
	}
}

// EnemyColor — обычный враг или несущий дерево.
func EnemyColor(e *component.Enemy) color.RGBA {
	if e.HasTree {
		return config.CarrierColor
	}
	return config.EnemyColor
}

// StateColor — цвет индикатора состояния игры.
func StateColor(s component.GameState) color.RGBA {
	switch s {
	case component.Playing:
		return config.PlayingStateColor
	case component.Paused:
		return config.PausedStateColor
	}
	return config.StoppedStateColor
}

// ButtonColor выбирает цвет кнопки: активная ярче.
func ButtonColor(colors [2]color.RGBA, active bool) color.RGBA {
	if active {
		return colors[1]
	}
	return colors[0]
}

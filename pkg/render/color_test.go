package render

import (
	"image/color"
	"testing"

	"go-defense-tower/internal/component"
	"go-defense-tower/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestHealthColor(t *testing.T) {
	assert.Equal(t, config.HealthHighColor, HealthColor(1))
	assert.Equal(t, config.HealthMidColor, HealthColor(0.5))
	assert.Equal(t, config.HealthLowColor, HealthColor(0.3))
	assert.Equal(t, config.HealthLowColor, HealthColor(0))
}

func TestContrastTextColor(t *testing.T) {
	assert.Equal(t, config.TextDarkColor, ContrastTextColor(color.RGBA{255, 255, 0, 255}))
	assert.Equal(t, config.TextLightColor, ContrastTextColor(color.RGBA{0, 0, 150, 255}))
}

func TestDarkenAndLighten(t *testing.T) {
	c := color.RGBA{200, 100, 0, 255}
	assert.Equal(t, color.RGBA{100, 50, 0, 255}, DarkenColor(c))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, LightenColor(c, 1))
	assert.Equal(t, c, LightenColor(c, 0))
}

func TestEnemyAndStateColors(t *testing.T) {
	assert.Equal(t, config.EnemyColor, EnemyColor(&component.Enemy{}))
	assert.Equal(t, config.CarrierColor, EnemyColor(&component.Enemy{HasTree: true}))
	assert.Equal(t, config.PlayingStateColor, StateColor(component.Playing))
	assert.Equal(t, config.StoppedStateColor, StateColor(component.Stopped))
	assert.Equal(t, config.StopColors[1], ButtonColor(config.StopColors, true))
}

// internal/app/layout.go
package app

import (
	"fmt"
	"go-defense-tower/internal/component"
	"go-defense-tower/internal/config"
	"go-defense-tower/internal/utils"
	"image/color"
)

// TowerButton — кнопка выбора типа башни.
type TowerButton struct {
	Type  component.TowerType
	Label string
	Rect  utils.Rect
	Color color.RGBA
}

// Layout — зоны клика панели управления. Фронтенды рисуют кнопки по этим же прямоугольникам.
type Layout struct {
	ControlBand  utils.Rect
	TowerBand    utils.Rect
	Start        utils.Rect
	Pause        utils.Rect
	Stop         utils.Rect
	TowerButtons []TowerButton
}

func NewLayout(balance *config.Balance) Layout {
	control := func(x float64) utils.Rect {
		return utils.Rect{X: x, Y: config.ControlButtonY, W: config.ControlButtonWidth, H: config.ControlButtonHeight}
	}

	l := Layout{
		ControlBand: utils.Rect{X: -1, Y: config.ControlButtonY, W: config.ScreenWidth + 2, H: config.ControlButtonHeight},
		TowerBand:   utils.Rect{X: -1, Y: config.TowerButtonY, W: config.ScreenWidth + 2, H: config.TowerButtonHeight},
		Start:       control(config.StartButtonX),
		Pause:       control(config.PauseButtonX),
		Stop:        control(config.StopButtonX),
	}
	for i, spec := range balance.Towers {
		l.TowerButtons = append(l.TowerButtons, TowerButton{
			Type:  component.TowerType(spec.ID),
			Label: fmt.Sprintf("%s $%d", spec.Name, spec.Cost),
			Rect: utils.Rect{
				X: float64(config.TowerButtonStartX + i*config.TowerButtonStepX),
				Y: config.TowerButtonY,
				W: config.TowerButtonWidth,
				H: config.TowerButtonHeight,
			},
			Color: spec.Color.RGBA(),
		})
	}
	return l
}

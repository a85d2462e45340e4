// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth    = 1000
	ScreenHeight   = 700
	TicksPerSecond = 60 // Фиксированный шаг симуляции

	HUDHeight = 100 // Всё, что выше, — панель управления, не поле

	RoadWidth        = 30.0
	TowerRadius      = 17.0
	TreeRadius       = 25.0
	EnemyRadius      = 12.0
	ProjectileRadius = 5.0

	TowerSelectRadius = 20.0 // Радиус клика по башне
	TreeSelectRadius  = 25.0 // Радиус клика по дереву

	// Кнопки управления (START / PAUSE / STOP)
	ControlButtonY      = 10
	ControlButtonWidth  = 100
	ControlButtonHeight = 40
	StartButtonX        = 600
	PauseButtonX        = 710
	StopButtonX         = 820

	// Кнопки выбора башни
	TowerButtonY          = 60
	TowerButtonWidth      = 100
	TowerButtonHeight     = 40 // Зона клика
	TowerButtonDrawHeight = 35
	TowerButtonStartX     = 10
	TowerButtonStepX      = 110

	HealthBarWidth  = 32
	HealthBarHeight = 6
	HealthBarOffset = 25

	TreeTimerOffsetX = 30
	TreeTimerOffsetY = -20
	TreeTimerRadius  = 18.0

	ClickCooldown = 150 // мс, анимация "нажатия" кнопки

	// HUD
	MoneyTextX       = 10
	LivesIndicatorX  = 120
	LivesIndicatorY  = 12
	WaveIndicatorX   = 300
	StateTextX       = 420
	IndicatorX       = 960
	IndicatorY       = 30
	IndicatorRadius  = 12
	SpeedIndicatorX  = 955
	SpeedIndicatorY  = 80
	SpeedIndicatorSz = 10
	InfoTextX        = 360
	InfoPanelHeight  = 60
	UIndicatorX      = 335
	UIndicatorY      = 80
)

// Скорость симуляции: количество тиков за кадр.
var SpeedMultipliers = []int{1, 2, 4}

var (
	BackgroundColor  = color.RGBA{240, 248, 255, 255} // Снег
	RoadColor        = color.RGBA{128, 128, 128, 255}
	HUDColor         = color.RGBA{0, 100, 0, 255}
	TrunkColor       = color.RGBA{139, 69, 19, 255}
	FoliageColor     = color.RGBA{0, 100, 0, 255}
	TimerBackColor   = color.RGBA{50, 50, 50, 255}
	TimerFillColor   = color.RGBA{255, 255, 0, 255}
	TextLightColor   = color.RGBA{255, 255, 255, 255}
	TextDarkColor    = color.RGBA{0, 0, 0, 255}
	MoneyTextColor   = color.RGBA{255, 255, 0, 255}
	LivesTextColor   = color.RGBA{255, 0, 0, 255}
	StrokeColor      = color.RGBA{0, 0, 0, 255}
	EnemyColor       = color.RGBA{138, 43, 226, 255}
	CarrierColor     = color.RGBA{220, 20, 20, 255} // Враг, несущий дерево
	HealthBackColor  = color.RGBA{80, 0, 0, 255}
	HealthHighColor  = color.RGBA{0, 200, 0, 255}
	HealthMidColor   = color.RGBA{255, 165, 0, 255}
	HealthLowColor   = color.RGBA{255, 0, 0, 255}
	ProjectileColor  = color.RGBA{255, 255, 0, 255}
	ProjectileStroke = color.RGBA{255, 200, 0, 255}
	SelectionColor   = color.RGBA{255, 255, 255, 255}
	RangeColor       = color.RGBA{255, 255, 255, 60}
	PanelColor       = color.RGBA{25, 35, 45, 230}
	PanelBorderColor = color.RGBA{70, 130, 180, 255}
	PauseIconColor   = color.RGBA{0, 0, 0, 120}
	PlayIconColor    = color.RGBA{0, 150, 0, 120}

	UIndicatorActiveColor   = color.RGBA{255, 255, 0, 255}
	UIndicatorInactiveColor = color.RGBA{120, 120, 120, 255}

	StoppedStateColor = color.RGBA{150, 0, 0, 255}
	PlayingStateColor = color.RGBA{0, 200, 0, 255}
	PausedStateColor  = color.RGBA{255, 255, 0, 255}
	SpeedColors       = []color.RGBA{{255, 255, 255, 255}, {255, 165, 0, 255}, {255, 60, 60, 255}} // x1, x2, x4

	StartColors = [2]color.RGBA{{0, 150, 0, 255}, {0, 200, 0, 255}} // неактивна / активна
	PauseColors = [2]color.RGBA{{200, 200, 0, 255}, {255, 255, 0, 255}}
	StopColors  = [2]color.RGBA{{150, 0, 0, 255}, {255, 0, 0, 255}}
)

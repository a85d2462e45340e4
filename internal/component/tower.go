// internal/component/tower.go
package component

import (
	"go-defense-tower/internal/types"
	"image/color"
)

// TowerType — ID типа башни из баланса.
type TowerType string

const (
	TowerBasic  TowerType = "basic"
	TowerRapid  TowerType = "rapid"
	TowerSniper TowerType = "sniper"
)

// Tower — стреляющая башня.
type Tower struct {
	ID              types.EntityID
	Pos             Position
	Type            TowerType
	Level           int
	Damage          int
	FireRate        int     // Тиков между выстрелами
	Range           float64 // Радиус поиска цели, пиксели
	ProjectileSpeed float64 // Пикселей за тик
	Cooldown        int     // Тиков до следующего выстрела, не меньше 0
	UpgradeCost     int     // Цена следующего улучшения
	TargetID        types.EntityID
	Color           color.RGBA
}

// internal/system/utils.go
package system

import (
	"go-defense-tower/internal/component"
	"go-defense-tower/internal/config"
)

// ApplyDamage наносит урон врагу. Здоровье не опускается ниже нуля;
// возвращает true, если этот удар убил врага.
func ApplyDamage(enemy *component.Enemy, damage int) bool {
	if enemy == nil || !enemy.Alive || damage <= 0 {
		return false
	}
	enemy.HP -= damage
	if enemy.HP <= 0 {
		enemy.HP = 0
		enemy.Alive = false
		return true
	}
	return false
}

// PathPositions переводит точки пути из баланса в позиции.
func PathPositions(points []config.Point) []component.Position {
	path := make([]component.Position, len(points))
	for i, p := range points {
		path[i] = component.Position{X: p.X(), Y: p.Y()}
	}
	return path
}

// internal/system/movement.go
package system

import (
	"go-defense-tower/internal/component"
	"go-defense-tower/internal/entity"
	"go-defense-tower/internal/utils"
)

// MovementSystem ведёт врагов по пути: туда за деревом и обратно.
type MovementSystem struct {
	world *entity.World
	path  []component.Position
}

func NewMovementSystem(world *entity.World, path []component.Position) *MovementSystem {
	return &MovementSystem{world: world, path: path}
}

func (s *MovementSystem) Update() {
	for _, enemy := range s.world.Enemies {
		s.step(enemy)
	}
}

// waypoint — i-я точка текущего направления движения.
func (s *MovementSystem) waypoint(enemy *component.Enemy, i int) component.Position {
	if enemy.ReturnPath {
		return s.path[len(s.path)-1-i]
	}
	return s.path[i]
}

func (s *MovementSystem) step(enemy *component.Enemy) {
	if !enemy.Alive {
		return
	}

	if enemy.PathIndex < len(s.path) {
		target := s.waypoint(enemy, enemy.PathIndex)
		var reached bool
		enemy.Pos, reached = utils.MoveTowards(enemy.Pos, target, enemy.Speed)
		if reached {
			enemy.PathIndex++
		}
		return
	}

	if !enemy.ReturnPath {
		// Конец пути: враг хватает дерево и идёт обратно
		enemy.HasTree = true
		enemy.ReturnPath = true
		enemy.PathIndex = 0
		return
	}

	enemy.Alive = false
	enemy.Escaped = true
}

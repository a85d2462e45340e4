// internal/entity/ecs.go
package entity

import (
	"go-defense-tower/internal/component"
	"go-defense-tower/internal/types"
)

// World — все сущности игры. Слайсы, а не мапы: порядок обхода влияет на выбор цели
// при равных расстояниях и должен быть детерминированным.
type World struct {
	Tick        uint64
	NextID      types.EntityID
	Trees       []*component.Tree
	Towers      []*component.Tower
	Enemies     []*component.Enemy
	Projectiles []*component.Projectile
	Wave        *component.Wave
}

func NewWorld() *World {
	return &World{NextID: 1}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Enemy ищет врага по ID; nil, если его уже нет в мире.
func (w *World) Enemy(id types.EntityID) *component.Enemy {
	for _, e := range w.Enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func (w *World) Tower(id types.EntityID) *component.Tower {
	for _, t := range w.Towers {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (w *World) Tree(id types.EntityID) *component.Tree {
	for _, t := range w.Trees {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// ProjectilesOwnedBy считает живые снаряды башни.
func (w *World) ProjectilesOwnedBy(towerID types.EntityID) int {
	n := 0
	for _, p := range w.Projectiles {
		if p.OwnerID == towerID && !p.Hit {
			n++
		}
	}
	return n
}

// RemoveHitProjectiles удаляет отработавшие снаряды, сохраняя порядок остальных.
func (w *World) RemoveHitProjectiles() {
	kept := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if !p.Hit {
			kept = append(kept, p)
		}
	}
	clearTail(w.Projectiles, len(kept))
	w.Projectiles = kept
}

// RemoveEnemies удаляет врагов, для которых remove вернул true.
func (w *World) RemoveEnemies(remove func(*component.Enemy) bool) {
	kept := w.Enemies[:0]
	for _, e := range w.Enemies {
		if !remove(e) {
			kept = append(kept, e)
		}
	}
	clearTail(w.Enemies, len(kept))
	w.Enemies = kept
}

// ClearEnemies убирает врагов вместе с их снарядами и текущей волной.
func (w *World) ClearEnemies() {
	w.Enemies = nil
	w.Projectiles = nil
	w.Wave = nil
}

// Clear сбрасывает мир целиком. ID продолжают расти, чтобы старые ссылки не ожили.
func (w *World) Clear() {
	w.Tick = 0
	w.Trees = nil
	w.Towers = nil
	w.ClearEnemies()
}

// clearTail обнуляет хвост слайса после фильтрации на месте, чтобы не держать указатели.
func clearTail[T any](s []*T, from int) {
	for i := from; i < len(s); i++ {
		s[i] = nil
	}
}

// internal/system/combat.go
package system

import (
	"go-defense-tower/internal/component"
	"go-defense-tower/internal/config"
	"go-defense-tower/internal/entity"
	"go-defense-tower/internal/event"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	world           *entity.World
	balance         *config.Balance
	projectiles     *ProjectileSystem
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, balance *config.Balance, projectiles *ProjectileSystem, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		world:           world,
		balance:         balance,
		projectiles:     projectiles,
		eventDispatcher: eventDispatcher,
	}
}

// Update обходит башни по порядку. Каждая башня стреляет и сразу двигает свои снаряды,
// поэтому убийство первой башней видно следующей на этом же тике.
func (s *CombatSystem) Update() {
	for _, tower := range s.world.Towers {
		s.updateTower(tower)
		s.projectiles.UpdateOwnedBy(tower.ID)
	}
}

func (s *CombatSystem) updateTower(tower *component.Tower) {
	if tower.Cooldown > 0 {
		tower.Cooldown--
	}
	if tower.Cooldown > 0 {
		return
	}

	target := s.FindNearestEnemyInRange(tower)
	if target == nil {
		return
	}
	tower.TargetID = target.ID
	s.fire(tower, target)
}

// FindNearestEnemyInRange — ближайший живой враг в радиусе башни. При равных
// расстояниях побеждает тот, что раньше в списке.
func (s *CombatSystem) FindNearestEnemyInRange(tower *component.Tower) *component.Enemy {
	var nearest *component.Enemy
	minDist := 0.0
	for _, enemy := range s.world.Enemies {
		if !enemy.Alive {
			continue
		}
		dist := tower.Pos.DistanceTo(enemy.Pos)
		if dist > tower.Range {
			continue
		}
		if nearest == nil || dist < minDist {
			nearest = enemy
			minDist = dist
		}
	}
	return nearest
}

// fire выпускает снаряд, если у башни не превышен лимит летящих снарядов.
// Без выстрела перезарядка не начинается, башня попробует снова на следующем тике.
func (s *CombatSystem) fire(tower *component.Tower, target *component.Enemy) {
	if s.world.ProjectilesOwnedBy(tower.ID) >= s.balance.Projectile.MaxPerTower {
		return
	}
	proj := &component.Projectile{
		ID:       s.world.NewEntity(),
		Pos:      tower.Pos,
		OwnerID:  tower.ID,
		TargetID: target.ID,
		Damage:   tower.Damage,
		Speed:    tower.ProjectileSpeed,
	}
	s.world.Projectiles = append(s.world.Projectiles, proj)
	tower.Cooldown = tower.FireRate

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ProjectileFired,
		Data: event.Shot{TowerID: tower.ID, TargetID: target.ID, ProjectileID: proj.ID},
	})
}

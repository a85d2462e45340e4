// internal/system/projectile.go
package system

import (
	"go-defense-tower/internal/component"
	"go-defense-tower/internal/config"
	"go-defense-tower/internal/entity"
	"go-defense-tower/internal/types"
	"go-defense-tower/internal/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	world   *entity.World
	balance *config.Balance
}

func NewProjectileSystem(world *entity.World, balance *config.Balance) *ProjectileSystem {
	return &ProjectileSystem{world: world, balance: balance}
}

func (s *ProjectileSystem) Update() {
	for _, proj := range s.world.Projectiles {
		s.updateProjectile(proj)
	}
	s.world.RemoveHitProjectiles()
}

// UpdateOwnedBy двигает только снаряды башни towerID и убирает отработавшие.
func (s *ProjectileSystem) UpdateOwnedBy(towerID types.EntityID) {
	for _, proj := range s.world.Projectiles {
		if proj.OwnerID == towerID {
			s.updateProjectile(proj)
		}
	}
	s.world.RemoveHitProjectiles()
}

func (s *ProjectileSystem) updateProjectile(proj *component.Projectile) {
	if proj.Hit {
		return
	}

	target := s.world.Enemy(proj.TargetID)
	if target == nil || !target.Alive {
		// Цель пропала — снаряд просто исчезает
		proj.Hit = true
		return
	}

	if proj.Pos.DistanceTo(target.Pos) < s.balance.Projectile.HitRadius {
		ApplyDamage(target, proj.Damage)
		proj.Hit = true
		return
	}

	proj.Pos, _ = utils.MoveTowards(proj.Pos, target.Pos, proj.Speed)
}

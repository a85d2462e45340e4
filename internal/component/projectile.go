// internal/component/projectile.go
package component

import "go-defense-tower/internal/types"

// Projectile представляет летящий снаряд.
type Projectile struct {
	ID       types.EntityID
	Pos      Position
	OwnerID  types.EntityID // Башня, выпустившая снаряд
	TargetID types.EntityID
	Damage   int
	Speed    float64
	Hit      bool // Снаряд отработал и будет удалён
}

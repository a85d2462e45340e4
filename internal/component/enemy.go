// internal/component/enemy.go
package component

import "go-defense-tower/internal/types"

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID         types.EntityID
	Pos        Position
	Level      int
	MaxHP      int
	HP         int     // 0..MaxHP
	Speed      float64 // Пикселей за тик
	Reward     int
	PathIndex  int  // Индекс следующей точки пути
	HasTree    bool // Дошёл до конца и утащил дерево
	ReturnPath bool // Идёт по пути в обратную сторону
	Alive      bool
	Escaped    bool // Ушёл с деревом — минус жизнь
}

// HealthRatio — доля оставшегося здоровья, 0..1.
func (e *Enemy) HealthRatio() float64 {
	if e.MaxHP <= 0 {
		return 0
	}
	return float64(e.HP) / float64(e.MaxHP)
}

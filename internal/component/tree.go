// internal/component/tree.go
package component

import "go-defense-tower/internal/types"

// Tree — ёлка, периодически приносящая деньги.
type Tree struct {
	ID          types.EntityID
	Pos         Position
	Level       int
	Income      int
	Timer       int // Тиков с последнего сбора
	Interval    int // Тиков между сборами
	UpgradeCost int // Базовая цена; фактическая — UpgradeCost * (Level+1)
	Radius      float64
}

// Progress — заполненность таймера, 0..1.
func (t *Tree) Progress() float64 {
	if t.Interval <= 0 {
		return 0
	}
	return float64(t.Timer) / float64(t.Interval)
}

// NextUpgradeCost — сколько стоит следующий уровень.
func (t *Tree) NextUpgradeCost() int {
	return t.UpgradeCost * (t.Level + 1)
}

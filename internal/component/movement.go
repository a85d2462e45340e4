// internal/component/movement.go
package component

import "math"

// Position — компонент позиции, в пикселях поля
type Position struct {
	X, Y float64
}

// DistanceTo — евклидово расстояние до другой точки.
func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

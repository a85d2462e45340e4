// internal/utils/math.go
package utils

import (
	"go-defense-tower/internal/component"
	"math"
)

// MoveTowards сдвигает from к to не больше чем на step. Второй результат — true,
// если точка достигнута (и тогда позиция ровно равна to).
func MoveTowards(from, to component.Position, step float64) (component.Position, bool) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	dist := math.Hypot(dx, dy)
	if dist < step || dist == 0 {
		return to, true
	}
	return component.Position{
		X: from.X + dx/dist*step,
		Y: from.Y + dy/dist*step,
	}, false
}

// DistanceToSegment — расстояние от точки p до отрезка ab.
func DistanceToSegment(p, a, b component.Position) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return p.DistanceTo(a)
	}
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / lenSq
	t = Clamp(t, 0, 1)
	return p.DistanceTo(component.Position{X: a.X + t*abx, Y: a.Y + t*aby})
}

// Clamp ограничивает v отрезком [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

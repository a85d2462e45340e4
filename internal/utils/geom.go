// internal/utils/geom.go
package utils

// Rect — прямоугольник UI в пикселях экрана.
type Rect struct {
	X, Y, W, H float64
}

// Contains — строгая проверка попадания: граница кнопки кликом не считается.
func (r Rect) Contains(x, y float64) bool {
	return x > r.X && x < r.X+r.W && y > r.Y && y < r.Y+r.H
}

// internal/tui/viewport.go
package tui

import (
	"go-defense-tower/internal/component"
	"go-defense-tower/internal/config"
)

const (
	hudRows    = 3 // Деньги/кнопки, башни, подсказка
	footerRows = 1
)

// Viewport переводит координаты поля (пиксели) в клетки терминала и обратно.
// HUD игры (y < HUDHeight) в клетки не попадает: его заменяют строки сверху.
type Viewport struct {
	Cols, Rows int // Размер области поля в клетках
	Top        int // Первая строка поля на экране
}

func NewViewport(width, height int) Viewport {
	rows := height - hudRows - footerRows
	if rows < 1 {
		rows = 1
	}
	if width < 1 {
		width = 1
	}
	return Viewport{Cols: width, Rows: rows, Top: hudRows}
}

func (v Viewport) cellW() float64 { return float64(config.ScreenWidth) / float64(v.Cols) }
func (v Viewport) cellH() float64 {
	return float64(config.ScreenHeight-config.HUDHeight) / float64(v.Rows)
}

// ToWorld — центр клетки в координатах поля.
func (v Viewport) ToWorld(col, row int) (float64, float64) {
	x := (float64(col) + 0.5) * v.cellW()
	y := config.HUDHeight + (float64(row-v.Top)+0.5)*v.cellH()
	return x, y
}

// ToCell — клетка, в которую попадает точка поля. ok=false, если точка вне поля.
func (v Viewport) ToCell(p component.Position) (col, row int, ok bool) {
	if p.X < 0 || p.X >= config.ScreenWidth || p.Y <= config.HUDHeight || p.Y >= config.ScreenHeight {
		return 0, 0, false
	}
	col = int(p.X / v.cellW())
	row = v.Top + int((p.Y-config.HUDHeight)/v.cellH())
	return col, row, true
}

// InBoard — лежит ли строка экрана на поле.
func (v Viewport) InBoard(row int) bool {
	return row >= v.Top && row < v.Top+v.Rows
}

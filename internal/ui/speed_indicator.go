// internal/ui/speed_indicator.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedIndicator — значок ">>", цвет которого показывает множитель скорости.
type SpeedIndicator struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.RGBA
	CurrentState  int

	fillImg *ebiten.Image
	vs      []ebiten.Vertex
	is      []uint16
}

func NewSpeedIndicator(x, y, size float32, stateColors []color.RGBA) *SpeedIndicator {
	return &SpeedIndicator{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

// SetState переключает цвет; при смене запускает анимацию.
func (b *SpeedIndicator) SetState(state int) {
	if state == b.CurrentState {
		return
	}
	b.CurrentState = state % len(b.StateColors)
	b.LastClickTime = time.Now()
}

func (b *SpeedIndicator) Draw(screen *ebiten.Image) {
	if b.fillImg == nil {
		b.fillImg = whitePixel()
	}
	triangleSize := b.Size * float32(popScale(time.Since(b.LastClickTime), 0.3))
	c := b.StateColors[b.CurrentState]

	// Параметры треугольников
	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	var path vector.Path
	// Левый треугольник
	path.MoveTo(b.X-width, b.Y-height/2)
	path.LineTo(b.X, b.Y)
	path.LineTo(b.X-width, b.Y+height/2)
	path.Close()
	// Правый треугольник
	path.MoveTo(b.X-width+offset, b.Y-height/2)
	path.LineTo(b.X+offset, b.Y)
	path.LineTo(b.X-width+offset, b.Y+height/2)
	path.Close()

	b.vs, b.is = path.AppendVerticesAndIndicesForFilling(b.vs[:0], b.is[:0])
	for i := range b.vs {
		b.vs[i].ColorR = float32(c.R) / 255
		b.vs[i].ColorG = float32(c.G) / 255
		b.vs[i].ColorB = float32(c.B) / 255
		b.vs[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(b.vs, b.is, b.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// whitePixel — текстура для DrawTriangles. Создаётся при первой отрисовке,
// чтобы индикаторы можно было собирать без графического контекста.
func whitePixel() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}

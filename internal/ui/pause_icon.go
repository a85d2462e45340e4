// internal/ui/pause_icon.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseIcon — крупный значок посреди поля: "||" на паузе, "▶" когда игра остановлена.
type PauseIcon struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.RGBA
	PlayColor     color.RGBA

	fillImg *ebiten.Image
	vs      []ebiten.Vertex
	is      []uint16
}

func NewPauseIcon(x, y, size float32, pauseColor, playColor color.RGBA) *PauseIcon {
	return &PauseIcon{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

// SetPaused переключает значок и запускает анимацию при смене.
func (b *PauseIcon) SetPaused(paused bool) {
	if b.IsPaused != paused {
		b.LastClickTime = time.Now()
	}
	b.IsPaused = paused
}

func (b *PauseIcon) Draw(screen *ebiten.Image) {
	if b.fillImg == nil {
		b.fillImg = whitePixel()
	}
	rectSize := b.Size * float32(popScale(time.Since(b.LastClickTime), 0.3))

	if !b.IsPaused {
		// Треугольник (play)
		var path vector.Path
		path.MoveTo(b.X-rectSize, b.Y-rectSize*1.2)
		path.LineTo(b.X-rectSize, b.Y+rectSize*1.2)
		path.LineTo(b.X+rectSize, b.Y)
		path.Close()
		b.vs, b.is = path.AppendVerticesAndIndicesForFilling(b.vs[:0], b.is[:0])
		for i := range b.vs {
			b.vs[i].ColorR = float32(b.PlayColor.R) / 255
			b.vs[i].ColorG = float32(b.PlayColor.G) / 255
			b.vs[i].ColorB = float32(b.PlayColor.B) / 255
			b.vs[i].ColorA = float32(b.PlayColor.A) / 255
		}
		screen.DrawTriangles(b.vs, b.is, b.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
		return
	}

	// Два прямоугольника (pause)
	width := rectSize * 0.6
	height := rectSize * 2.0
	spacing := rectSize * 0.4
	// Левый
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
	vector.StrokeRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, 1, color.White, true)
	// Правый
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
	vector.StrokeRect(screen, b.X+spacing/2, b.Y-height/2, width, height, 1, color.White, true)
}

// internal/snapshot/snapshot.go
package snapshot

import (
	"fmt"
	"image"
	"math"

	"go-defense-tower/internal/app"
	"go-defense-tower/internal/component"
	"go-defense-tower/internal/config"
	"go-defense-tower/pkg/render"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Render рисует текущее поле в картинку размером с экран игры.
func Render(g *app.Game) image.Image {
	dc := gg.NewContext(config.ScreenWidth, config.ScreenHeight)
	dc.SetColor(config.BackgroundColor)
	dc.Clear()

	drawRoad(dc, g.Path)
	for _, t := range g.World.Trees {
		drawTree(dc, t)
	}
	for _, t := range g.World.Towers {
		drawTower(dc, t)
	}
	for _, e := range g.World.Enemies {
		drawEnemy(dc, e)
	}
	for _, p := range g.World.Projectiles {
		dc.SetColor(config.ProjectileColor)
		dc.DrawCircle(p.Pos.X, p.Pos.Y, config.ProjectileRadius)
		dc.Fill()
	}
	drawHUD(dc, g)

	return dc.Image()
}

// SavePNG сохраняет поле в PNG. width > 0 уменьшает картинку до этой ширины.
func SavePNG(g *app.Game, path string, width int) error {
	img := Render(g)
	if width > 0 && width < config.ScreenWidth {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

func drawRoad(dc *gg.Context, path []component.Position) {
	dc.SetColor(config.RoadColor)
	dc.SetLineWidth(config.RoadWidth)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	for i, p := range path {
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
		} else {
			dc.LineTo(p.X, p.Y)
		}
	}
	dc.Stroke()
}

func drawTree(dc *gg.Context, t *component.Tree) {
	x, y := t.Pos.X, t.Pos.Y

	dc.SetColor(config.TrunkColor)
	dc.DrawRectangle(x-4, y+5, 8, 15)
	dc.Fill()

	dc.SetColor(config.FoliageColor)
	dc.MoveTo(x, y-t.Radius)
	dc.LineTo(x-20, y+8)
	dc.LineTo(x+20, y+8)
	dc.ClosePath()
	dc.Fill()

	// Таймер дохода
	tx, ty := x+config.TreeTimerOffsetX, y+config.TreeTimerOffsetY
	dc.SetColor(config.TimerBackColor)
	dc.DrawCircle(tx, ty, config.TreeTimerRadius)
	dc.Fill()
	if progress := t.Progress(); progress > 0 {
		dc.SetColor(config.TimerFillColor)
		dc.MoveTo(tx, ty)
		dc.DrawArc(tx, ty, config.TreeTimerRadius, -math.Pi/2, -math.Pi/2+2*math.Pi*progress)
		dc.ClosePath()
		dc.Fill()
	}

	dc.SetColor(config.TextDarkColor)
	dc.DrawStringAnchored(fmt.Sprintf("Lv%d", t.Level), x, y+30, 0.5, 0.5)
}

func drawTower(dc *gg.Context, t *component.Tower) {
	dc.SetColor(config.StrokeColor)
	dc.DrawCircle(t.Pos.X, t.Pos.Y, config.TowerRadius+2)
	dc.Fill()
	dc.SetColor(t.Color)
	dc.DrawCircle(t.Pos.X, t.Pos.Y, config.TowerRadius)
	dc.Fill()

	dc.SetColor(render.ContrastTextColor(t.Color))
	dc.DrawStringAnchored(fmt.Sprint(t.Level), t.Pos.X, t.Pos.Y, 0.5, 0.5)
}

func drawEnemy(dc *gg.Context, e *component.Enemy) {
	x, y := e.Pos.X, e.Pos.Y
	dc.SetColor(render.EnemyColor(e))
	dc.DrawCircle(x, y, config.EnemyRadius)
	dc.Fill()

	ratio := e.HealthRatio()
	bx, by := x-config.HealthBarWidth/2, y-config.HealthBarOffset
	dc.SetColor(config.HealthBackColor)
	dc.DrawRectangle(bx, by, config.HealthBarWidth, config.HealthBarHeight)
	dc.Fill()
	dc.SetColor(render.HealthColor(ratio))
	dc.DrawRectangle(bx, by, config.HealthBarWidth*ratio, config.HealthBarHeight)
	dc.Fill()
}

func drawHUD(dc *gg.Context, g *app.Game) {
	dc.SetColor(config.HUDColor)
	dc.DrawRectangle(0, 0, config.ScreenWidth, config.HUDHeight)
	dc.Fill()

	dc.SetColor(config.MoneyTextColor)
	dc.DrawString(fmt.Sprintf("$%d", g.Money), config.MoneyTextX, 30)
	dc.SetColor(config.TextLightColor)
	dc.DrawString(fmt.Sprintf("Lives %d   Wave %d   Lv %d   tick %d", g.Lives, g.Wave, g.Level, g.World.Tick), config.LivesIndicatorX, 30)
}

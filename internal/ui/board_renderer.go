// internal/ui/board_renderer.go
package ui

import (
	"fmt"
	"image/color"
	"math"

	game "go-defense-tower/internal/app"
	"go-defense-tower/internal/component"
	"go-defense-tower/internal/config"
	"go-defense-tower/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var (
	previewOKColor      = color.RGBA{0, 200, 0, 90}
	previewBlockedColor = color.RGBA{220, 0, 0, 90}
)

// BoardRenderer рисует поле: дорогу, деревья, башни, врагов и снаряды.
type BoardRenderer struct {
	fontFace font.Face
	fillImg  *ebiten.Image
	roadImg  *ebiten.Image // Дорога не меняется, рисуется один раз
	fillVs   []ebiten.Vertex
	fillIs   []uint16
}

func NewBoardRenderer(face font.Face, path []component.Position) *BoardRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &BoardRenderer{
		fontFace: face,
		fillImg:  fillImg,
		roadImg:  ebiten.NewImage(config.ScreenWidth, config.ScreenHeight),
	}
	r.renderRoad(path)
	return r
}

func (r *BoardRenderer) renderRoad(path []component.Position) {
	r.roadImg.Fill(config.BackgroundColor)
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		vector.StrokeLine(r.roadImg, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), config.RoadWidth, config.RoadColor, true)
	}
	// Скругляем повороты
	for _, p := range path {
		vector.DrawFilledCircle(r.roadImg, float32(p.X), float32(p.Y), config.RoadWidth/2, config.RoadColor, true)
	}
}

// Draw рисует всё поле. cursorX/cursorY нужны для превью ставящейся башни.
func (r *BoardRenderer) Draw(screen *ebiten.Image, g *game.Game, cursorX, cursorY int) {
	screen.DrawImage(r.roadImg, nil)

	for _, tree := range g.World.Trees {
		r.drawTree(screen, tree, tree.ID == g.SelectedID)
	}
	for _, tower := range g.World.Towers {
		r.drawTower(screen, tower, tower.ID == g.SelectedID)
	}
	for _, enemy := range g.World.Enemies {
		r.drawEnemy(screen, enemy)
	}
	for _, p := range g.World.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), config.ProjectileRadius, config.ProjectileColor, true)
		vector.StrokeCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), config.ProjectileRadius, 1, config.ProjectileStroke, true)
	}

	if g.SelectedTowerType != "" {
		r.drawPlacementPreview(screen, g, float64(cursorX), float64(cursorY))
	}
}

func (r *BoardRenderer) drawTree(screen *ebiten.Image, tree *component.Tree, selected bool) {
	x, y := float32(tree.Pos.X), float32(tree.Pos.Y)

	// Ствол
	vector.DrawFilledRect(screen, x-4, y+5, 8, 15, config.TrunkColor, true)

	// Крона
	var path vector.Path
	path.MoveTo(x, y-float32(tree.Radius))
	path.LineTo(x-20, y+8)
	path.LineTo(x+20, y+8)
	path.Close()
	r.fillPath(screen, &path, config.FoliageColor)

	// Таймер дохода: сектор растёт до полного круга
	tx := x + config.TreeTimerOffsetX
	ty := y + config.TreeTimerOffsetY
	vector.DrawFilledCircle(screen, tx, ty, config.TreeTimerRadius, config.TimerBackColor, true)
	if progress := tree.Progress(); progress > 0 {
		start := float32(-math.Pi / 2)
		end := start + float32(2*math.Pi*progress)
		var arc vector.Path
		arc.MoveTo(tx, ty)
		arc.Arc(tx, ty, config.TreeTimerRadius, start, end, vector.Clockwise)
		arc.Close()
		r.fillPath(screen, &arc, config.TimerFillColor)
	}
	drawCenteredText(screen, "$", r.fontFace, float64(tx), float64(ty), config.TextDarkColor)

	drawCenteredText(screen, fmt.Sprintf("Lv%d", tree.Level), r.fontFace, float64(x), float64(y)+30, config.TextDarkColor)

	if selected {
		vector.StrokeCircle(screen, x, y, float32(tree.Radius)+5, 2, config.SelectionColor, true)
	}
}

func (r *BoardRenderer) drawTower(screen *ebiten.Image, tower *component.Tower, selected bool) {
	x, y := float32(tower.Pos.X), float32(tower.Pos.Y)

	if selected {
		vector.StrokeCircle(screen, x, y, float32(tower.Range), 1, config.RangeColor, true)
		vector.StrokeCircle(screen, x, y, config.TowerRadius+5, 2, config.SelectionColor, true)
	}
	vector.DrawFilledCircle(screen, x, y, config.TowerRadius+2, config.StrokeColor, true)
	vector.DrawFilledCircle(screen, x, y, config.TowerRadius, tower.Color, true)

	drawCenteredText(screen, fmt.Sprint(tower.Level), r.fontFace, float64(x), float64(y), render.ContrastTextColor(tower.Color))
}

func (r *BoardRenderer) drawEnemy(screen *ebiten.Image, enemy *component.Enemy) {
	x, y := float32(enemy.Pos.X), float32(enemy.Pos.Y)

	vector.DrawFilledCircle(screen, x, y, config.EnemyRadius, render.EnemyColor(enemy), true)
	vector.StrokeCircle(screen, x, y, config.EnemyRadius, 2, config.StrokeColor, true)

	if enemy.HasTree {
		var path vector.Path
		path.MoveTo(x, y-8)
		path.LineTo(x-6, y+4)
		path.LineTo(x+6, y+4)
		path.Close()
		r.fillPath(screen, &path, config.FoliageColor)
	}

	// Полоска здоровья
	ratio := enemy.HealthRatio()
	bx := x - config.HealthBarWidth/2
	by := y - config.HealthBarOffset
	vector.DrawFilledRect(screen, bx, by, config.HealthBarWidth, config.HealthBarHeight, config.HealthBackColor, true)
	vector.DrawFilledRect(screen, bx, by, float32(config.HealthBarWidth*ratio), config.HealthBarHeight, render.HealthColor(ratio), true)
	vector.StrokeRect(screen, bx, by, config.HealthBarWidth, config.HealthBarHeight, 1, config.StrokeColor, true)
}

func (r *BoardRenderer) drawPlacementPreview(screen *ebiten.Image, g *game.Game, x, y float64) {
	if y <= config.HUDHeight {
		return
	}
	spec, ok := g.Balance.Tower(string(g.SelectedTowerType))
	if !ok {
		return
	}
	c := previewOKColor
	if g.CanPlace(component.Position{X: x, Y: y}) != nil || g.Money < spec.Cost {
		c = previewBlockedColor
	}
	vector.DrawFilledCircle(screen, float32(x), float32(y), config.TowerRadius, c, true)
	vector.StrokeCircle(screen, float32(x), float32(y), float32(spec.Range), 1, config.RangeColor, true)
}

// fillPath заливает замкнутый контур одним цветом.
func (r *BoardRenderer) fillPath(target *ebiten.Image, path *vector.Path, c color.RGBA) {
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(c.R) / 255
		r.fillVs[i].ColorG = float32(c.G) / 255
		r.fillVs[i].ColorB = float32(c.B) / 255
		r.fillVs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

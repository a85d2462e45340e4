package snapshot

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"go-defense-tower/internal/app"
	"go-defense-tower/internal/component"
	"go-defense-tower/internal/config"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pixel(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestRenderDrawsEntities(t *testing.T) {
	g := app.NewGame(config.DefaultBalance())
	tower, err := g.PlaceTower(component.TowerBasic, 220, 280)
	require.NoError(t, err)
	enemy := g.WaveSystem.NewEnemy(1)
	enemy.Pos = component.Position{X: 400, Y: 500}
	g.World.Enemies = append(g.World.Enemies, enemy)

	img := Render(g)
	require.Equal(t, image.Rect(0, 0, config.ScreenWidth, config.ScreenHeight), img.Bounds())

	assert.Equal(t, config.HUDColor, pixel(img, 500, 90))
	assert.Equal(t, config.BackgroundColor, pixel(img, 400, 650))
	assert.Equal(t, config.RoadColor, pixel(img, 150, 275))
	assert.Equal(t, tower.Color, pixel(img, 230, 280))
	assert.Equal(t, config.FoliageColor, pixel(img, 900, 295))
	assert.Equal(t, config.EnemyColor, pixel(img, 406, 500))
}

func TestSavePNG(t *testing.T) {
	g := app.NewGame(config.DefaultBalance())
	dir := t.TempDir()

	full := filepath.Join(dir, "full.png")
	require.NoError(t, SavePNG(g, full, 0))
	img, err := imaging.Open(full)
	require.NoError(t, err)
	assert.Equal(t, config.ScreenWidth, img.Bounds().Dx())

	small := filepath.Join(dir, "small.png")
	require.NoError(t, SavePNG(g, small, 500))
	img, err = imaging.Open(small)
	require.NoError(t, err)
	assert.Equal(t, 500, img.Bounds().Dx())
	assert.Equal(t, 350, img.Bounds().Dy())

	err = SavePNG(g, filepath.Join(dir, "missing", "x.png"), 0)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

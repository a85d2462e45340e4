package entity

import (
	"testing"

	"go-defense-tower/internal/component"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntityIsMonotonic(t *testing.T) {
	w := NewWorld()
	a := w.NewEntity()
	b := w.NewEntity()
	assert.NotZero(t, a)
	assert.Greater(t, b, a)

	w.Clear()
	assert.Greater(t, w.NewEntity(), b, "ids are never reused after a reset")
}

func TestRemoveHitProjectilesKeepsOrder(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 5; i++ {
		w.Projectiles = append(w.Projectiles, &component.Projectile{ID: w.NewEntity(), OwnerID: 42, Hit: i%2 == 1})
	}
	assert.Equal(t, 3, w.ProjectilesOwnedBy(42))

	w.RemoveHitProjectiles()
	require.Len(t, w.Projectiles, 3)
	assert.EqualValues(t, 1, w.Projectiles[0].ID)
	assert.EqualValues(t, 3, w.Projectiles[1].ID)
	assert.EqualValues(t, 5, w.Projectiles[2].ID)
}

func TestRemoveEnemiesAndLookup(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 4; i++ {
		w.Enemies = append(w.Enemies, &component.Enemy{ID: w.NewEntity(), Alive: i != 2})
	}
	dead := w.Enemies[2].ID

	w.RemoveEnemies(func(e *component.Enemy) bool { return !e.Alive })
	assert.Len(t, w.Enemies, 3)
	assert.Nil(t, w.Enemy(dead))
	assert.NotNil(t, w.Enemy(w.Enemies[0].ID))
}

func TestClearEnemiesKeepsStructures(t *testing.T) {
	w := NewWorld()
	w.Towers = append(w.Towers, &component.Tower{ID: w.NewEntity()})
	w.Trees = append(w.Trees, &component.Tree{ID: w.NewEntity()})
	w.Enemies = append(w.Enemies, &component.Enemy{ID: w.NewEntity()})
	w.Projectiles = append(w.Projectiles, &component.Projectile{ID: w.NewEntity()})
	w.Wave = &component.Wave{Number: 1, EnemiesToSpawn: 3}

	w.ClearEnemies()
	assert.Empty(t, w.Enemies)
	assert.Empty(t, w.Projectiles)
	assert.Nil(t, w.Wave)
	assert.Len(t, w.Towers, 1)
	assert.NotNil(t, w.Tree(w.Trees[0].ID))
	assert.NotNil(t, w.Tower(w.Towers[0].ID))
}

package utils

import (
	"testing"

	"go-defense-tower/internal/component"

	"github.com/stretchr/testify/assert"
)

func TestMoveTowards(t *testing.T) {
	pos, reached := MoveTowards(component.Position{}, component.Position{X: 10}, 4)
	assert.False(t, reached)
	assert.Equal(t, component.Position{X: 4}, pos)

	pos, reached = MoveTowards(component.Position{X: 8}, component.Position{X: 10}, 4)
	assert.True(t, reached)
	assert.Equal(t, component.Position{X: 10}, pos)

	_, reached = MoveTowards(component.Position{X: 3, Y: 3}, component.Position{X: 3, Y: 3}, 0)
	assert.True(t, reached)
}

func TestDistanceToSegment(t *testing.T) {
	a := component.Position{X: 0, Y: 0}
	b := component.Position{X: 10, Y: 0}
	tests := []struct {
		p    component.Position
		want float64
	}{
		{component.Position{X: 5, Y: 3}, 3},
		{component.Position{X: -3, Y: 4}, 5},
		{component.Position{X: 13, Y: 4}, 5},
		{component.Position{X: 7, Y: 0}, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, DistanceToSegment(tt.p, a, b), 1e-9, "%+v", tt.p)
	}
	assert.InDelta(t, 5, DistanceToSegment(component.Position{X: 3, Y: 4}, a, a), 1e-9)
}

func TestRectContainsIsStrict(t *testing.T) {
	r := Rect{X: 600, Y: 10, W: 100, H: 40}
	assert.True(t, r.Contains(650, 30))
	assert.False(t, r.Contains(600, 30))
	assert.False(t, r.Contains(700, 30))
	assert.False(t, r.Contains(650, 50))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(2, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
}

package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2AngleTo(t *testing.T) {
	right := V(1, 0)
	assert.InDelta(t, math.Pi/2, right.AngleTo(V(0, 1)), 1e-9)
	assert.InDelta(t, -math.Pi/2, right.AngleTo(V(0, -1)), 1e-9)
	assert.InDelta(t, 0, right.AngleTo(V(5, 0)), 1e-9)
}

func TestVec2Normalize(t *testing.T) {
	assert.Equal(t, Vec2{}, Vec2{}.Normalize())
	n := V(3, 4).Normalize()
	assert.InDelta(t, 1, n.Len(), 1e-9)
	assert.InDelta(t, 0.6, n.X, 1e-9)
}

func TestVec2Rotate(t *testing.T) {
	r := V(1, 0).Rotate(math.Pi / 2)
	assert.InDelta(t, 0, r.X, 1e-9)
	assert.InDelta(t, 1, r.Y, 1e-9)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(0.5, 1, 1.5))
	assert.Equal(t, 1.5, Clamp(2, 1, 1.5))
	assert.Equal(t, 1.2, Clamp(1.2, 1, 1.5))
}

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInRectExcludesEdges(t *testing.T) {
	rect := func() (int, int, int, int) { return 10, 10, 20, 20 }

	assert.True(t, InRect(15, 15, rect))
	assert.False(t, InRect(10, 15, rect))
	assert.False(t, InRect(15, 20, rect))
	assert.False(t, InRect(0, 0, rect))
}

func TestLerpClampsFactorAboveOne(t *testing.T) {
	assert.InDelta(t, 100.0, Lerp(100, 0, 0), 1e-9)
	assert.InDelta(t, 50.0, Lerp(100, 0, 0.5), 1e-9)
	assert.InDelta(t, 0.0, Lerp(100, 0, 1), 1e-9)
	assert.InDelta(t, 0.0, Lerp(100, 0, 3), 1e-9)
}

func TestMapValue(t *testing.T) {
	assert.InDelta(t, 75.0, MapValue(0.25, 0, 1, 100, 0), 1e-9)
	assert.InDelta(t, 0.5, Normalize(2, 4, 3), 1e-9)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3, 0, 10))
	assert.Equal(t, 10.0, Clamp(12, 0, 10))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 3, Max(3, -1))
	assert.Equal(t, -1, Min(3, -1))
}

func TestIndexOf(t *testing.T) {
	elems := []string{"menu", "about", "play"}
	assert.Equal(t, 1, IndexOf(elems, "about"))
	assert.Equal(t, -1, IndexOf(elems, "exit"))
	assert.True(t, Contains(elems, "play"))
	assert.False(t, Contains(elems, "exit"))
}

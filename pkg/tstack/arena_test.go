package tstack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArenaAllocateRoundTrips(t *testing.T) {
	a := NewArena()
	s := a.Allocate("hello")
	assert.Equal(t, "hello", s)
}

func TestArenaPopScopeDiscardsAllocations(t *testing.T) {
	a := NewArena()
	a.PushScope()
	a.Allocate("outer")
	a.PushScope()
	a.Allocate("inner")
	assert.Equal(t, 2, a.Depth())
	a.PopScope()
	assert.Equal(t, 1, a.Depth())
	// Re-allocating after the pop reuses the freed slab space without
	// clobbering "outer", which lives below the popped mark.
	s := a.Allocate("x")
	assert.Equal(t, "x", s)
}

func TestArenaResetClosesAllScopes(t *testing.T) {
	a := NewArena()
	a.PushScope()
	a.PushScope()
	a.Allocate("text")
	a.Reset()
	assert.Equal(t, 0, a.Depth())
}

package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/stonestack/puzzle"
)

func TestCursor(t *testing.T) {
	t.Run("free cursor skips gaps to the next left edge", func(t *testing.T) {
		g := layout(t, 2, ".aa.b.ccc")
		c := puzzle.NewCursor(g)

		var stops []int
		for c.Move(1, 0) {
			stops = append(stops, c.X)
		}
		assert.Equal(t, []int{1, 4, 6}, stops)

		stops = stops[:0]
		for c.Move(-1, 0) {
			stops = append(stops, c.X)
		}
		assert.Equal(t, []int{4, 1, 0}, stops, "leftward lands on left edges, then steps into the gap")
	})

	t.Run("free cursor on an empty row steps one cell", func(t *testing.T) {
		g := puzzle.NewGrid(4, 3)
		c := puzzle.NewCursor(g)

		assert.True(t, c.Move(1, 0))
		assert.Equal(t, 1, c.X)
		assert.True(t, c.Move(0, 1))
		assert.Equal(t, 1, c.Y)
		assert.False(t, c.Move(0, -2))
		assert.False(t, c.Move(0, 0))
	})

	t.Run("free cursor stops at the grid edge", func(t *testing.T) {
		g := layout(t, 2, "..aa")
		c := puzzle.NewCursor(g)
		c.X = 2

		assert.False(t, c.Move(1, 0))
		assert.Equal(t, 2, c.X)
	})

	t.Run("held wide stone respects the right edge", func(t *testing.T) {
		g := layout(t, 2, "aaa.")
		c := puzzle.NewCursor(g)
		s := g.StoneAt(0, 0)
		require.True(t, c.PickUp())

		assert.False(t, c.Move(-1, 0), "x=-1 is outside the grid")
		assert.Equal(t, 0, s.X)

		assert.True(t, c.Move(1, 0), "cells 1..3 are inside a width 4 grid")
		assert.Equal(t, 1, s.X)
		assert.Equal(t, 1, c.X)

		assert.False(t, c.Move(1, 0), "cells 2..4 would leave the grid")
		assert.Equal(t, 1, s.X)
		require.NoError(t, g.Validate())
	})

	t.Run("held stone is blocked by another stone", func(t *testing.T) {
		g := layout(t, 2, "aaab")
		c := puzzle.NewCursor(g)
		require.True(t, c.PickUp())

		assert.False(t, c.Move(1, 0))
		assert.Equal(t, 0, g.StoneAt(0, 0).X)
	})

	t.Run("held stone refuses vertical moves", func(t *testing.T) {
		g := layout(t, 3, "a...")
		c := puzzle.NewCursor(g)
		require.True(t, c.PickUp())

		assert.False(t, c.Move(0, 1))
		assert.Equal(t, 0, c.Y)
	})

	t.Run("pick up snaps to the left edge", func(t *testing.T) {
		g := layout(t, 2, ".bbb")
		c := puzzle.NewCursor(g)
		c.X = 3

		require.True(t, c.PickUp())
		assert.Equal(t, 1, c.X)
		assert.Same(t, g.StoneAt(1, 0), c.Held())
		assert.False(t, c.PickUp(), "already holding")

		x, y := c.Origin()
		assert.Equal(t, 1, x)
		assert.Equal(t, 0, y)
	})

	t.Run("drop reports displacement", func(t *testing.T) {
		g := layout(t, 2, "a...")
		c := puzzle.NewCursor(g)

		require.True(t, c.PickUp())
		assert.False(t, c.Drop(), "dropped where it was picked up")

		require.True(t, c.PickUp())
		require.True(t, c.Move(1, 0))
		assert.True(t, c.Drop())
		assert.Nil(t, c.Held())
		assert.False(t, c.Drop())
	})

	t.Run("empty cell cannot be picked up", func(t *testing.T) {
		g := puzzle.NewGrid(4, 2)
		c := puzzle.NewCursor(g)
		assert.False(t, c.PickUp())
		assert.Nil(t, c.Target())
	})
}

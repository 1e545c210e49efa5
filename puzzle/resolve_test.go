package puzzle_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/stonestack/puzzle"
)

func TestDropAll(t *testing.T) {
	t.Run("stones fall until their whole footprint is blocked", func(t *testing.T) {
		g := layout(t, 4,
			"..c.",
			"bbb.",
			"....",
			"a...",
		)
		moved := puzzle.DropAll(g)

		assert.Equal(t, 2, moved)
		assert.Equal(t, "....\n..c.\nbbb.\na...\n", g.String())
		require.NoError(t, g.Validate())
	})

	t.Run("idempotent", func(t *testing.T) {
		g := layout(t, 6,
			"dd..",
			".ccc",
			"....",
			"b...",
			"....",
			"..aa",
		)
		require.Positive(t, puzzle.DropAll(g))
		before := g.String()

		assert.Zero(t, puzzle.DropAll(g))
		assert.Equal(t, before, g.String())
		require.NoError(t, g.Validate())
	})

	t.Run("settled stack does not move", func(t *testing.T) {
		g := layout(t, 3,
			".b..",
			"aaaa",
		)
		assert.Zero(t, puzzle.DropAll(g))
	})

	t.Run("events carry the landing cell", func(t *testing.T) {
		g := layout(t, 3,
			"aa..",
			"....",
			"....",
		)
		events := puzzle.NewEvents()
		r := puzzle.NewResolver(g, events)
		r.DropTween = 50 * time.Millisecond
		r.DropAll()

		rec := &recorder{}
		events.Flush(rec)
		assert.Equal(t, []string{"move 0,0 50ms"}, rec.log)
		assert.Zero(t, events.Len())
	})
}

func TestClearFullRows(t *testing.T) {
	t.Run("two stones filling a row", func(t *testing.T) {
		g := layout(t, 5, "aabb")

		assert.Equal(t, 1, puzzle.ClearFullRows(g))
		assert.True(t, g.RowEmpty(0))
		assert.True(t, g.Empty())
	})

	t.Run("unaligned widths", func(t *testing.T) {
		g := layout(t, 3,
			"..c...",
			"abbbdd",
		)
		assert.Equal(t, 1, puzzle.ClearFullRows(g))
		assert.Equal(t, 1, g.Count())
		assert.NotNil(t, g.StoneAt(2, 1))
	})

	t.Run("simultaneous rows count together", func(t *testing.T) {
		g := layout(t, 5,
			"e...",
			"dddd",
			"abbc",
		)
		events := puzzle.NewEvents()
		r := puzzle.NewResolver(g, events)

		assert.Equal(t, 2, r.ClearFullRows())
		assert.Equal(t, 1, g.Count())
		assert.Equal(t, 4, events.Len(), "one destroy per stone")
		require.NoError(t, g.Validate())
	})

	t.Run("no full row", func(t *testing.T) {
		g := layout(t, 2, "aab.")
		assert.Zero(t, puzzle.ClearFullRows(g))
		assert.Equal(t, 2, g.Count())
	})
}

func TestPushUp(t *testing.T) {
	t.Run("shifts every stone one row", func(t *testing.T) {
		g := layout(t, 5,
			".bb.",
			"aaa.",
		)
		r := puzzle.NewResolver(g, nil)

		assert.True(t, r.PushUp(3, 0))
		assert.Equal(t, "....\n....\n.bb.\naaa.\n....\n", g.String())
		require.NoError(t, g.Validate())
	})

	t.Run("shift happens before the ceiling check", func(t *testing.T) {
		g := layout(t, 5,
			"c...",
			"bb..",
			"aaa.",
		)
		r := puzzle.NewResolver(g, nil)

		assert.False(t, r.PushUp(3, 0))
		assert.Equal(t, "c...\nbb..\naaa.\n....\n", g.String()[5:])
		assert.True(t, g.RowEmpty(0), "no row is generated by the shift")
		require.NoError(t, g.Validate())
	})

	t.Run("occupied top row fails without moving", func(t *testing.T) {
		g := layout(t, 3,
			"a...",
			"....",
			"b...",
		)
		before := g.String()
		r := puzzle.NewResolver(g, nil)

		assert.False(t, r.PushUp(2, 0))
		assert.Equal(t, before, g.String())
	})

	t.Run("wide stones move once", func(t *testing.T) {
		g := layout(t, 4, "aaaa")
		events := puzzle.NewEvents()
		r := puzzle.NewResolver(g, events)

		require.True(t, r.PushUp(3, 0))
		assert.Equal(t, 1, events.Len())
	})
}

func ExampleDropAll() {
	g := puzzle.NewGrid(4, 3)
	g.Place(&puzzle.Stone{Id: puzzle.NewStoneId(0, 1), X: 0, Y: 2, Width: 2, Color: puzzle.ColorRed})
	g.Place(&puzzle.Stone{Id: puzzle.NewStoneId(0, 2), X: 3, Y: 0, Width: 1, Color: puzzle.ColorBlue})

	moved := puzzle.DropAll(g)
	fmt.Println("moved:", moved)
	fmt.Print(g)
	// Output:
	// moved: 1
	// ....
	// ....
	// rr.b
}

func ExampleClearFullRows() {
	g := puzzle.NewGrid(4, 5)
	g.Place(&puzzle.Stone{Id: puzzle.NewStoneId(0, 1), X: 0, Y: 0, Width: 2, Color: puzzle.ColorGreen})
	g.Place(&puzzle.Stone{Id: puzzle.NewStoneId(0, 2), X: 2, Y: 0, Width: 2, Color: puzzle.ColorYellow})

	fmt.Println("lines:", puzzle.ClearFullRows(g))
	fmt.Println("empty:", g.Empty())
	// Output:
	// lines: 1
	// empty: true
}

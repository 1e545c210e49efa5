package puzzle_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/stonestack/puzzle"
)

func TestEvents(t *testing.T) {
	t.Run("flush preserves order", func(t *testing.T) {
		s := &puzzle.Stone{Id: puzzle.NewStoneId(0, 1), X: 1, Y: 0, Width: 2}
		events := puzzle.NewEvents()

		events.Spawn(s)
		events.Move(s, 3, 2, 100*time.Millisecond)
		events.Destroy(s, time.Second)
		assert.Equal(t, 3, events.Len())

		rec := &recorder{}
		events.Flush(rec)
		assert.Equal(t, []string{
			"spawn 1,0 w2",
			"move 3,2 100ms",
			"destroy 1,0 1s",
		}, rec.log)
		assert.Zero(t, events.Len())
	})

	t.Run("nil buffer and nil sink", func(t *testing.T) {
		var events *puzzle.Events
		s := &puzzle.Stone{Width: 1}

		assert.NotPanics(t, func() {
			events.Spawn(s)
			events.Move(s, 0, 0, 0)
			events.Destroy(s, 0)
			events.Flush(nil)
		})
		assert.Zero(t, events.Len())

		buffered := puzzle.NewEvents()
		buffered.Spawn(s)
		assert.NotPanics(t, func() { buffered.Flush(nil) })
		assert.Zero(t, buffered.Len())
	})
}

func TestGarbageQueue(t *testing.T) {
	var q puzzle.GarbageQueue
	assert.False(t, q.Take())

	q.Add(3)
	q.Add(0)
	q.Add(-1)
	assert.Equal(t, 3, q.Pending())

	assert.True(t, q.Take())
	assert.Equal(t, 2, q.Pending())
	q.Add(2)
	assert.Equal(t, 4, q.Pending())
	assert.Equal(t, 5, q.Received())
}

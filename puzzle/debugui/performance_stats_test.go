package debugui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/stonestack/puzzle"
)

func TestFrameHistory(t *testing.T) {
	ps := NewPerformanceStatsWindow(puzzle.NewScheduler(), 4)
	assert.Zero(t, ps.average())

	for _, ms := range []float32{4, 8, 4, 8} {
		ps.record(ms)
	}
	assert.Equal(t, float32(6), ps.average())

	// the ring wraps onto the oldest sample
	ps.record(12)
	assert.Equal(t, []float32{12, 8, 4, 8}, ps.frameMs)
	assert.Equal(t, float32(8), ps.average())

	var clock frameClock
	assert.Zero(t, clock.tick(), "first tick has nothing to measure against")
}

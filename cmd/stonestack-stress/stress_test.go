package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/plus3/stonestack/puzzle"
)

func TestPlayMatch(t *testing.T) {
	cfg := puzzle.DefaultConfig().Instant()
	cfg.Seed = 3
	report := &Report{FrameLimit: 500}

	result, err := playMatch(context.Background(), cfg, 0, report.FrameLimit, report, zap.NewNop())
	require.NoError(t, err)

	assert.Zero(t, report.Violations, report.FirstError)
	assert.LessOrEqual(t, result.Frames, int64(500))
	assert.Equal(t, result.Frames, report.TotalUpdates)
	assert.Len(t, result.Systems, 5, "two bots, two boards and the validator")
	assert.Positive(t, result.Boards[0].Cycles+result.Boards[1].Cycles, "bots make moves that start cycles")
	if result.Winner >= 0 {
		assert.Less(t, result.Frames, int64(500))
	}
}

func TestReport(t *testing.T) {
	r := &Report{
		Width:  8,
		Height: 10,
		Rule:   puzzle.RuleLinesCleared.String(),
		Matches: []MatchResult{
			{Winner: 1, Boards: [2]puzzle.BoardStats{{LinesCleared: 2, Cycles: 4}, {LinesCleared: 1, Cycles: 3}}},
			{Winner: -1, Boards: [2]puzzle.BoardStats{{Cycles: 1}, {}}},
		},
		Decided: 1,
		Wins:    [2]int{0, 1},
	}
	r.UpdateTime.Samples = []time.Duration{3, 1, 2}
	r.UpdateTime.Finalize()
	assert.Equal(t, time.Duration(1), r.UpdateTime.Min)
	assert.Equal(t, time.Duration(3), r.UpdateTime.Max)
	assert.Equal(t, time.Duration(2), r.UpdateTime.Avg)

	totals := r.Totals()
	assert.Equal(t, 8, totals.Cycles)
	assert.Equal(t, 3, totals.LinesCleared)

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.Generate(&buf))
		assert.Contains(t, buf.String(), "**Matches:** 2 (1 decided)")
		assert.Contains(t, buf.String(), "**Cycles:** 8")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.GenerateJSON(&buf))

		var decoded map[string]any
		require.NoError(t, jsoniter.Unmarshal(buf.Bytes(), &decoded))
		assert.EqualValues(t, 1, decoded["decided"])
		assert.Len(t, decoded["matches"], 2)
		assert.NotContains(t, decoded, "MemStatsStart")
	})
}

package puzzle_test

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/plus3/stonestack/puzzle"
)

// fixtureBoard tags test-built stones so their IDs never collide with the
// ones a board generates itself.
const fixtureBoard = 7

var fixtureSerial uint32

// fill empties g and places the stones drawn by rows, top row first, with the
// last string landing on row 0. Each run of one letter is a single stone; '#'
// runs are garbage, '.' is an empty cell.
func fill(t testing.TB, g *puzzle.Grid, rows ...string) {
	t.Helper()
	require.LessOrEqual(t, len(rows), g.Height(), "too many rows")

	var stones []*puzzle.Stone
	for s := range g.Stones() {
		stones = append(stones, s)
	}
	for _, s := range stones {
		g.Lift(s)
	}

	for i, row := range rows {
		require.Len(t, row, g.Width(), "row %d", i)
		y := len(rows) - 1 - i
		for x := 0; x < len(row); {
			c := row[x]
			if c == '.' {
				x++
				continue
			}
			w := 1
			for x+w < len(row) && row[x+w] == c {
				w++
			}
			fixtureSerial++
			g.Place(&puzzle.Stone{
				Id:    puzzle.NewStoneId(fixtureBoard, fixtureSerial),
				X:     x,
				Y:     y,
				Width: w,
				Color: colorFor(c),
			})
			x += w
		}
	}
	require.NoError(t, g.Validate())
}

// layout builds a grid of the given height, width taken from the rows.
func layout(t testing.TB, height int, rows ...string) *puzzle.Grid {
	t.Helper()
	require.NotEmpty(t, rows)
	g := puzzle.NewGrid(len(rows[0]), height)
	fill(t, g, rows...)
	return g
}

func colorFor(c byte) puzzle.Color {
	if c == '#' {
		return puzzle.ColorGarbage
	}
	return puzzle.Palette[int(c-'a')%len(puzzle.Palette)]
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func instantConfig() puzzle.Config {
	cfg := puzzle.DefaultConfig().Instant()
	cfg.Seed = 42
	return cfg
}

// solidConfig generates normal rows whose only gap is the last cell, so
// nothing ever falls into a freshly generated row.
func solidConfig() puzzle.Config {
	cfg := instantConfig()
	cfg.BlockChance = 1
	return cfg
}

func startedBoard(t testing.TB, cfg puzzle.Config, opts ...puzzle.Option) *puzzle.Board {
	t.Helper()
	b, err := puzzle.NewBoard(cfg, opts...)
	require.NoError(t, err)
	b.Start()
	require.Equal(t, puzzle.StateIdle, b.State())
	return b
}

// recorder is an EventSink that keeps a readable log of what it saw.
type recorder struct {
	log []string
}

func (r *recorder) StoneSpawned(s *puzzle.Stone) {
	r.log = append(r.log, fmt.Sprintf("spawn %d,%d w%d", s.X, s.Y, s.Width))
}

func (r *recorder) StoneMoved(s *puzzle.Stone, x, y int, d time.Duration) {
	r.log = append(r.log, fmt.Sprintf("move %d,%d %s", x, y, d))
}

func (r *recorder) StoneDestroyed(s *puzzle.Stone, d time.Duration) {
	r.log = append(r.log, fmt.Sprintf("destroy %d,%d %s", s.X, s.Y, d))
}

func (r *recorder) count(prefix string) int {
	n := 0
	for _, line := range r.log {
		if strings.HasPrefix(line, prefix) {
			n++
		}
	}
	return n
}

package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/stonestack/puzzle"
)

func screenText(s tcell.Screen, x, y, n int) string {
	out := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		r, _, _, _ := s.GetContent(x+i, y)
		out = append(out, r)
	}
	return string(out)
}

func TestDrawMatch(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(80, 24)

	cfg := puzzle.DefaultConfig().Instant()
	cfg.Seed = 9
	m, err := puzzle.NewMatch(cfg)
	require.NoError(t, err)
	m.Start()

	drawMatch(screen, m)

	_, h := screen.Size()
	assert.Equal(t, helpString, screenText(screen, boardLeft, h-1, len(helpString)))

	for i, b := range m.Boards() {
		ox, oy := boardOrigin(i, cfg.Width)
		assert.Equal(t, "Player", screenText(screen, ox-1, oy-2, 6))

		bottom := oy + cfg.Height - 1
		for x := 0; x < cfg.Width; x++ {
			r, _, _, _ := screen.GetContent(ox+x*cellWidth, bottom)
			if b.Grid().StoneAt(x, 0) == nil {
				assert.Equal(t, '·', r, "board %d cell %d", i, x)
			} else {
				assert.Contains(t, []rune{'█', '▐'}, r, "board %d cell %d", i, x)
			}
		}
	}

	t.Run("cursor is reversed", func(t *testing.T) {
		b := m.Board(0)
		ox, oy := boardOrigin(0, cfg.Width)
		c := b.Cursor()
		_, _, style, _ := screen.GetContent(ox+c.X*cellWidth, oy+cfg.Height-1-c.Y)
		_, _, attrs := style.Decompose()
		assert.NotZero(t, attrs&tcell.AttrReverse)
	})
}

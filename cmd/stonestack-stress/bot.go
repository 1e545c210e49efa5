package main

import (
	"math/rand/v2"

	"github.com/plus3/stonestack/puzzle"
)

// Bot plays one board with random intents. It never looks at the opponent.
type Bot struct {
	board *puzzle.Board
	rng   *rand.Rand
	// Patience is the number of frames the bot waits between intents.
	Patience int
	wait     int
}

func NewBot(board *puzzle.Board, seed uint64, patience int) *Bot {
	return &Bot{
		board:    board,
		rng:      rand.New(rand.NewPCG(seed, 0xb07)),
		Patience: patience,
	}
}

func (b *Bot) Name() string { return "bot-" + b.board.Name() }

func (b *Bot) Execute(*puzzle.Frame) {
	if b.wait > 0 {
		b.wait--
		return
	}
	b.wait = b.Patience

	board := b.board
	if board.GameOver() || board.Busy() {
		return
	}

	switch b.rng.IntN(4) {
	case 0:
		dx, dy := 0, 0
		if b.rng.IntN(2) == 0 {
			dx = b.rng.IntN(3) - 1
		} else {
			dy = b.rng.IntN(3) - 1
		}
		board.MoveCursor(dx, dy)
	case 1:
		board.PickOrDrop()
	case 2:
		g := board.Grid()
		x, y := b.rng.IntN(g.Width()), b.rng.IntN(max(g.Highest()+1, 1))
		board.DragStone(x, y, b.rng.IntN(g.Width()))
	case 3:
		g := board.Grid()
		board.Swap(b.rng.IntN(g.Width()-1), b.rng.IntN(max(g.Highest()+1, 1)))
	}
}

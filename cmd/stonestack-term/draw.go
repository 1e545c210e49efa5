package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/stonestack/puzzle"
)

const (
	cellWidth  = 2
	boardGap   = 8
	boardLeft  = 2
	boardTop   = 2
	helpString = "P1: WASD+Space  P2: arrows+Enter  r: restart  q/Esc: quit"
)

var (
	frameStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	ceilingStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	emptyStyle   = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
)

func stoneStyle(c puzzle.Color) tcell.Style {
	rgb := c.Display()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B)))
}

// boardOrigin returns the screen column of cell x=0 and the screen row of the top row.
func boardOrigin(i, width int) (int, int) {
	return boardLeft + 1 + i*(width*cellWidth+boardGap), boardTop + 1
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func drawMatch(screen tcell.Screen, m *puzzle.Match) {
	screen.Clear()
	for i, b := range m.Boards() {
		drawBoard(screen, i, b)
	}
	_, h := screen.Size()
	drawText(screen, boardLeft, h-1, frameStyle, helpString)
	screen.Show()
}

func drawBoard(screen tcell.Screen, i int, b *puzzle.Board) {
	g := b.Grid()
	ox, oy := boardOrigin(i, g.Width())
	ceiling := b.Config().CeilingRow()

	drawText(screen, ox-1, oy-2, textStyle, fmt.Sprintf("Player %d  %s", i+1, b.State()))

	for y := 0; y < g.Height(); y++ {
		sy := oy + g.Height() - 1 - y
		border := frameStyle
		if y == ceiling {
			border = ceilingStyle
		}
		screen.SetContent(ox-1, sy, '│', nil, border)
		screen.SetContent(ox+g.Width()*cellWidth, sy, '│', nil, border)

		for x := 0; x < g.Width(); x++ {
			sx := ox + x*cellWidth
			s := g.StoneAt(x, y)
			switch {
			case s == nil:
				screen.SetContent(sx, sy, '·', nil, emptyStyle)
				screen.SetContent(sx+1, sy, ' ', nil, emptyStyle)
			default:
				style := stoneStyle(s.Color)
				left, right := '█', '█'
				if x == s.X {
					left = '▐'
				}
				if x == s.Right()-1 {
					right = '▌'
				}
				screen.SetContent(sx, sy, left, nil, style)
				screen.SetContent(sx+1, sy, right, nil, style)
			}
		}
	}

	bottom := oy + g.Height()
	for x := -1; x <= g.Width()*cellWidth; x++ {
		screen.SetContent(ox+x, bottom, '─', nil, frameStyle)
	}

	if !b.GameOver() {
		drawCursor(screen, ox, oy, b)
	}

	stats := b.Stats()
	drawText(screen, ox-1, bottom+1, textStyle,
		fmt.Sprintf("lines %d  garbage %d", stats.LinesCleared, b.Garbage()))
	if b.GameOver() {
		msg := "YOU LOSE"
		if b.Result() == puzzle.ResultWon {
			msg = "YOU WIN"
		}
		drawText(screen, ox-1, bottom+2, textStyle.Bold(true), msg)
	}
}

// drawCursor reverses the cells under the cursor, or under the held stone.
func drawCursor(screen tcell.Screen, ox, oy int, b *puzzle.Board) {
	g := b.Grid()
	c := b.Cursor()
	width := 1
	if held := c.Held(); held != nil {
		width = held.Width
	}
	sy := oy + g.Height() - 1 - c.Y
	for x := c.X; x < c.X+width; x++ {
		for k := 0; k < cellWidth; k++ {
			sx := ox + x*cellWidth + k
			r, _, style, _ := screen.GetContent(sx, sy)
			screen.SetContent(sx, sy, r, nil, style.Reverse(true))
		}
	}
}

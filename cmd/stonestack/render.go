package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/stonestack/puzzle"
)

var (
	backgroundColor = color.RGBA{24, 24, 30, 255}
	wellColor       = color.RGBA{36, 36, 46, 255}
	gridLineColor   = color.RGBA{48, 48, 60, 255}
	ceilingColor    = color.RGBA{200, 60, 60, 255}
	cursorColor     = color.RGBA{250, 250, 250, 255}
	heldColor       = color.RGBA{255, 220, 90, 255}
)

// Renderer draws both boards from their sprites. The grid itself is only
// consulted for the cursor and the status lines.
type Renderer struct {
	Layout  Layout
	Match   *puzzle.Match
	Sprites [2]*Sprites
}

func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	for i, b := range r.Match.Boards() {
		r.drawWell(screen, i, b)
		r.drawSprites(screen, i)
		r.drawCursor(screen, i, b)
		r.drawStatus(screen, i, b)
	}
	ebitenutil.DebugPrintAt(screen, "P1: WASD + Space   P2: arrows + Enter   mouse: drag   R: restart   F1: debug", BoardMargin, 10)

	if r.Match.Board(0).State() == puzzle.StatePending {
		w, h := r.Layout.Screen()
		ebitenutil.DebugPrintAt(screen, "STONESTACK - press Enter or Space to start", w/2-126, h/2)
	}
}

func (r *Renderer) drawWell(screen *ebiten.Image, i int, b *puzzle.Board) {
	l := r.Layout
	x, y := l.ToScreen(i, 0, float32(l.Height-1))
	w, h := float32(l.Width)*l.Cell, float32(l.Height)*l.Cell
	vector.DrawFilledRect(screen, x, y, w, h, wellColor, false)

	for cx := 0; cx < l.Width; cx++ {
		for cy := 0; cy < l.Height; cy++ {
			sx, sy := l.ToScreen(i, float32(cx), float32(cy))
			vector.StrokeRect(screen, sx, sy, l.Cell, l.Cell, 1, gridLineColor, false)
		}
	}

	// the ceiling row's lower edge
	_, cy := l.ToScreen(i, 0, float32(b.Config().CeilingRow()-1))
	vector.StrokeLine(screen, x, cy, x+w, cy, 2, ceilingColor, false)
}

func (r *Renderer) drawSprites(screen *ebiten.Image, i int) {
	l := r.Layout
	r.Sprites[i].Each(func(s *sprite) {
		cx, cy := s.pos()
		sx, sy := l.ToScreen(i, cx, cy)
		c := fade(s.color, s.alpha())
		vector.DrawFilledRect(screen, sx+2, sy+2, float32(s.width)*l.Cell-4, l.Cell-4, c, false)
	})
}

func (r *Renderer) drawCursor(screen *ebiten.Image, i int, b *puzzle.Board) {
	if b.GameOver() {
		return
	}
	l := r.Layout
	c := b.Cursor()
	width, col := 1, cursorColor
	if held := c.Held(); held != nil {
		width, col = held.Width, heldColor
	}
	sx, sy := l.ToScreen(i, float32(c.X), float32(c.Y))
	vector.StrokeRect(screen, sx, sy, float32(width)*l.Cell, l.Cell, 3, col, false)
}

func (r *Renderer) drawStatus(screen *ebiten.Image, i int, b *puzzle.Board) {
	l := r.Layout
	x, _ := l.ToScreen(i, 0, 0)
	top := int(l.Origins[i][1]) - 24
	bottom := int(l.Origins[i][1]+float32(l.Height)*l.Cell) + 10

	stats := b.Stats()
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Player %d  %s  garbage %d", i+1, b.State(), b.Garbage()),
		int(x), top)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("lines %d  moves %d  cycles %d", stats.LinesCleared, stats.Moves, stats.Cycles),
		int(x), bottom)

	if b.GameOver() {
		msg := "YOU LOSE"
		if b.Result() == puzzle.ResultWon {
			msg = "YOU WIN"
		}
		_, my := l.ToScreen(i, 0, float32(l.Height/2))
		ebitenutil.DebugPrintAt(screen, msg, int(x+float32(l.Width)*l.Cell/2)-24, int(my))
	}
}

// fade scales a straight-alpha color into ebiten's premultiplied form.
func fade(c color.RGBA, alpha float32) color.RGBA {
	alpha = min(max(alpha, 0), 1)
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

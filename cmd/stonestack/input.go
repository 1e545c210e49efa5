package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/stonestack/puzzle"
	"github.com/plus3/stonestack/puzzle/debugui"
)

type binding struct {
	left, right, up, down, action ebiten.Key
}

var bindings = [2]binding{
	{ebiten.KeyA, ebiten.KeyD, ebiten.KeyW, ebiten.KeyS, ebiten.KeySpace},
	{ebiten.KeyArrowLeft, ebiten.KeyArrowRight, ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyEnter},
}

type dragState struct {
	active bool
	board  int
	x, y   int
}

// InputSystem routes keyboard and mouse input to the boards. Input the debug
// overlay wants is left alone.
type InputSystem struct {
	Match   *puzzle.Match
	Layout  Layout
	Overlay *debugui.Overlay

	drag dragState
}

func (s *InputSystem) Execute(frame *puzzle.Frame) {
	if !s.Overlay.Input.WantCaptureKeyboard {
		for i, b := range s.Match.Boards() {
			s.keys(b, bindings[i])
		}
	}
	if !s.Overlay.Input.WantCaptureMouse {
		s.mouse()
	}
}

func (s *InputSystem) keys(b *puzzle.Board, k binding) {
	switch {
	case inpututil.IsKeyJustPressed(k.left):
		b.MoveCursor(-1, 0)
	case inpututil.IsKeyJustPressed(k.right):
		b.MoveCursor(1, 0)
	case inpututil.IsKeyJustPressed(k.up):
		b.MoveCursor(0, 1)
	case inpututil.IsKeyJustPressed(k.down):
		b.MoveCursor(0, -1)
	}
	if inpututil.IsKeyJustPressed(k.action) {
		b.PickOrDrop()
	}
}

// mouse drags a stone along its row: the stone moves by as many columns as
// the pointer did between press and release.
func (s *InputSystem) mouse() {
	mx, my := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		board, x, y, ok := s.Layout.CellAt(mx, my)
		s.drag = dragState{active: ok, board: board, x: x, y: y}
		return
	}

	if !s.drag.active || !inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		return
	}
	s.drag.active = false

	board, col, _, ok := s.Layout.CellAt(mx, s.rowPixel())
	if !ok || board != s.drag.board {
		return
	}
	b := s.Match.Board(board)
	stone := b.Grid().StoneAt(s.drag.x, s.drag.y)
	if stone == nil {
		return
	}
	b.DragStone(s.drag.x, s.drag.y, stone.X+col-s.drag.x)
}

// rowPixel returns a pixel row inside the dragged stone's row, so releasing
// the button above or below the board still counts as a horizontal drag.
func (s *InputSystem) rowPixel() int {
	_, py := s.Layout.ToScreen(s.drag.board, 0, float32(s.drag.y))
	return int(py + s.Layout.Cell/2)
}

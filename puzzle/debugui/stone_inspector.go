package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/stonestack/puzzle"
)

func NewStoneInspectorWindow(board *puzzle.Board, browser *StoneBrowserWindow) *StoneInspectorWindow {
	return &StoneInspectorWindow{board: board, browser: browser}
}

func (si *StoneInspectorWindow) Render() {
	if !imgui.BeginV(fmt.Sprintf("Stone Inspector (%s)", si.board.Name()), nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	id := si.browser.Selected()
	if id == 0 {
		imgui.Text("No stone selected")
		imgui.End()
		return
	}

	stone := si.find(id)
	if stone == nil {
		imgui.Text(fmt.Sprintf("Stone %s is gone", id))
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Stone ID: %s", stone.Id))
	imgui.Text(fmt.Sprintf("Position: (%d, %d)", stone.X, stone.Y))
	imgui.Text(fmt.Sprintf("Width: %d", stone.Width))
	imgui.Text(fmt.Sprintf("Color: %s", stone.Color))
	imgui.Separator()

	lo, hi := si.board.MovableRange(stone)
	imgui.Text(fmt.Sprintf("Movable: %d..%d", lo, hi))

	if imgui.Button("Slide Left") {
		si.board.DragStone(stone.X, stone.Y, lo)
	}
	imgui.SameLine()
	if imgui.Button("Slide Right") {
		si.board.DragStone(stone.X, stone.Y, hi)
	}
	if stone.Width == 1 {
		imgui.SameLine()
		if imgui.Button("Swap Right") {
			si.board.Swap(stone.X, stone.Y)
		}
	}

	imgui.End()
}

func (si *StoneInspectorWindow) find(id puzzle.StoneId) *puzzle.Stone {
	for s := range si.board.Grid().Stones() {
		if s.Id == id {
			return s
		}
	}
	return nil
}

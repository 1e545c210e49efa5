package debugui

import (
	"fmt"
	"image/color"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/stonestack/puzzle"
)

func NewMatchWindow(match *puzzle.Match) *MatchWindow {
	return &MatchWindow{match: match, cellSize: 10}
}

func (mw *MatchWindow) Render() {
	if !imgui.BeginV("Match", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := mw.match.Stats()
	imgui.Text(fmt.Sprintf("Garbage rule: %s", mw.match.Rule()))
	if winner := mw.match.Winner(); winner != nil {
		imgui.Text(fmt.Sprintf("Winner: %s", winner.Name()))
	} else {
		imgui.Text("Winner: -")
	}
	imgui.Separator()

	for _, b := range mw.match.Boards() {
		if imgui.TreeNodeStr(b.Name()) {
			mw.renderBoard(b, stats)
			imgui.TreePop()
		}
	}

	imgui.End()
}

func (mw *MatchWindow) renderBoard(b *puzzle.Board, stats puzzle.MatchStats) {
	esc := b.Escalation()
	bs := b.Stats()

	imgui.Text(fmt.Sprintf("State: %s  Result: %s", b.State(), b.Result()))
	imgui.Text(fmt.Sprintf("Phase: %s (%s left)", esc.Phase(), esc.Remaining()))
	imgui.Text(fmt.Sprintf("Garbage pending: %d", b.Garbage()))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("BoardStats", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		row := func(name string, value int) {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", value))
		}
		row("Cycles", bs.Cycles)
		row("Moves", bs.Moves)
		row("Lines cleared", bs.LinesCleared)
		row("Clears", bs.Clears)
		row("Normal rows", bs.NormalRows)
		row("Garbage rows", bs.GarbageRows)
		row("Garbage sent", stats.GarbageSent[b.Index()])
		row("Attacks", stats.Attacks[b.Index()])
		imgui.EndTable()
	}

	if imgui.Button(fmt.Sprintf("Send garbage##%d", b.Index())) {
		b.ReceiveGarbage(1)
	}
	imgui.SameLine()
	if imgui.Button(fmt.Sprintf("Push up##%d", b.Index())) {
		b.RequestCycle()
	}

	mw.renderGrid(b.Grid())
}

// renderGrid draws a minimap of the grid, row 0 at the bottom.
func (mw *MatchWindow) renderGrid(g *puzzle.Grid) {
	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	size := mw.cellSize
	height := float32(g.Height()) * size

	empty := imgui.ColorU32Vec4(imgui.NewVec4(0.15, 0.15, 0.15, 1))
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			col := empty
			if s := g.StoneAt(x, y); s != nil {
				col = imgui.ColorU32Vec4(vec4(s.Color.Display()))
			}
			minX := origin.X + float32(x)*size
			minY := origin.Y + height - float32(y+1)*size
			drawList.AddRectFilled(imgui.NewVec2(minX+1, minY+1), imgui.NewVec2(minX+size-1, minY+size-1), col)
		}
	}

	imgui.Dummy(imgui.NewVec2(float32(g.Width())*size, height))
}

func vec4(c color.RGBA) imgui.Vec4 {
	return imgui.NewVec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
}

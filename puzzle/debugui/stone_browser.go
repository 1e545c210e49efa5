package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/stonestack/puzzle"
)

type StoneInfo struct {
	ID    puzzle.StoneId
	X, Y  int
	Width int
	Color puzzle.Color
}

func NewStoneBrowserWindow(board *puzzle.Board) *StoneBrowserWindow {
	return &StoneBrowserWindow{
		board:         board,
		sortColumn:    2,
		sortAscending: true,
	}
}

func (sb *StoneBrowserWindow) Render() {
	if !imgui.BeginV(fmt.Sprintf("Stones (%s)", sb.board.Name()), nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	sb.rebuildCache()

	imgui.InputTextWithHint("##search", "Search...", &sb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		sb.filterText = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("StoneTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Stone ID")
		imgui.TableSetupColumn("X")
		imgui.TableSetupColumn("Y")
		imgui.TableSetupColumn("Width")
		imgui.TableSetupColumn("Color")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			sb.sortColumn = int(spec.ColumnIndex())
			sb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sb.sortStones()
			sortSpecs.SetSpecsDirty(false)
		}

		for _, stone := range sb.filtered() {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := sb.selected == stone.ID
			if imgui.SelectableBoolV(stone.ID.String(), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				sb.selected = stone.ID
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", stone.X))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", stone.Y))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", stone.Width))
			imgui.TableNextColumn()
			imgui.Text(stone.Color.String())
		}

		imgui.EndTable()
	}

	imgui.Text(fmt.Sprintf("Total: %d stones", len(sb.cache)))
	imgui.End()
}

// The grid changes every cycle, so the cache is refilled on each render and
// only its backing array is reused.
func (sb *StoneBrowserWindow) rebuildCache() {
	sb.cache = sb.cache[:0]
	for s := range sb.board.Grid().Stones() {
		sb.cache = append(sb.cache, StoneInfo{
			ID:    s.Id,
			X:     s.X,
			Y:     s.Y,
			Width: s.Width,
			Color: s.Color,
		})
	}
	sb.sortStones()
}

func (sb *StoneBrowserWindow) sortStones() {
	sort.SliceStable(sb.cache, func(i, j int) bool {
		a, b := sb.cache[i], sb.cache[j]
		var less bool

		switch sb.sortColumn {
		case 0:
			less = a.ID < b.ID
		case 1:
			less = a.X < b.X
		case 2:
			less = a.Y < b.Y
		case 3:
			less = a.Width < b.Width
		case 4:
			less = a.Color < b.Color
		default:
			less = a.ID < b.ID
		}

		if !sb.sortAscending {
			return !less
		}
		return less
	})
}

func (sb *StoneBrowserWindow) filtered() []StoneInfo {
	if sb.filterText == "" {
		return sb.cache
	}

	filterLower := strings.ToLower(sb.filterText)
	out := make([]StoneInfo, 0, len(sb.cache))
	for _, stone := range sb.cache {
		if strings.Contains(stone.ID.String(), filterLower) || strings.Contains(stone.Color.String(), filterLower) {
			out = append(out, stone)
		}
	}
	return out
}

// Selected returns the stone picked in the table, or 0.
func (sb *StoneBrowserWindow) Selected() puzzle.StoneId {
	return sb.selected
}

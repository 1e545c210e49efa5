package debugui

import (
	"github.com/plus3/stonestack/puzzle"
)

type StoneBrowserWindow struct {
	board         *puzzle.Board
	cache         []StoneInfo
	selected      puzzle.StoneId
	filterText    string
	sortColumn    int
	sortAscending bool
}

type StoneInspectorWindow struct {
	board   *puzzle.Board
	browser *StoneBrowserWindow
}

type MatchWindow struct {
	match    *puzzle.Match
	cellSize float32
}

type PerformanceStatsWindow struct {
	scheduler *puzzle.Scheduler
	frameMs   []float32
	next      int
}

package debugui

import "github.com/plus3/stonestack/puzzle"

// SpawnDebugUI registers the standard windows for a match on the overlay.
func SpawnDebugUI(overlay *Overlay, match *puzzle.Match, scheduler *puzzle.Scheduler) {
	overlay.Add(NewMatchWindow(match).Render)

	for _, b := range match.Boards() {
		browser := NewStoneBrowserWindow(b)
		overlay.Add(browser.Render)
		overlay.Add(NewStoneInspectorWindow(b, browser).Render)
	}

	var clock frameClock
	perf := NewPerformanceStatsWindow(scheduler, 120)
	overlay.Add(func() {
		perf.Render(clock.tick())
	})
}

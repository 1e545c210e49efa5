package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/stonestack/puzzle"
)

func NewPerformanceStatsWindow(scheduler *puzzle.Scheduler, history int) *PerformanceStatsWindow {
	return &PerformanceStatsWindow{
		scheduler: scheduler,
		frameMs:   make([]float32, history),
	}
}

// record stores one frame time in the ring.
func (ps *PerformanceStatsWindow) record(ms float32) {
	ps.frameMs[ps.next] = ms
	ps.next = (ps.next + 1) % len(ps.frameMs)
}

func (ps *PerformanceStatsWindow) average() float32 {
	var sum float32
	for _, ms := range ps.frameMs {
		sum += ms
	}
	return sum / float32(len(ps.frameMs))
}

func (ps *PerformanceStatsWindow) Render(dt time.Duration) {
	ps.record(float32(dt.Seconds() * 1000))

	if !imgui.BeginV("Scheduler", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ps.scheduler.GetStats()
	imgui.Text(fmt.Sprintf("Frame %d  %d systems  %d executions", stats.Frames, stats.SystemCount, stats.TotalExecutions))
	if avg := ps.average(); avg > 0 {
		imgui.Text(fmt.Sprintf("%.2f ms/frame (%.0f FPS)", avg, 1000/avg))
	}
	imgui.PlotLinesFloatPtr("ms##frametime", &ps.frameMs[0], int32(len(ps.frameMs)))

	imgui.Separator()
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("##systems", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		for _, h := range []string{"System", "Runs", "Last", "Avg", "Max"} {
			imgui.TableSetupColumn(h)
		}
		imgui.TableHeadersRow()

		for _, sys := range stats.Systems {
			imgui.TableNextRow()
			for _, cell := range []string{
				sys.Name,
				fmt.Sprint(sys.ExecutionCount),
				sys.LastDuration.String(),
				sys.AvgDuration.String(),
				sys.MaxDuration.String(),
			} {
				imgui.TableNextColumn()
				imgui.Text(cell)
			}
		}
		imgui.EndTable()
	}

	imgui.End()
}

// frameClock measures wall time between overlay renders, which is what the
// frame graph shows.
type frameClock struct {
	last time.Time
}

func (c *frameClock) tick() time.Duration {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
	}
	d := now.Sub(c.last)
	c.last = now
	return d
}

package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/plus3/stonestack/puzzle"
)

type Report struct {
	// Configuration
	Duration   time.Duration `json:"duration"`
	Seed       uint64        `json:"seed"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Rule       string        `json:"rule"`
	FrameLimit int           `json:"frame_limit"`

	// Results
	Matches      []MatchResult `json:"matches"`
	Decided      int           `json:"decided"`
	Wins         [2]int        `json:"wins"`
	Violations   int           `json:"violations"`
	FirstError   string        `json:"first_error,omitempty"`
	TotalUpdates int64         `json:"total_updates"`
	TotalTime    time.Duration `json:"total_time"`
	UpdateTime   Stats         `json:"update_time"`

	GCPauseMetrics bool             `json:"-"`
	MemStatsStart  runtime.MemStats `json:"-"`
	MemStatsEnd    runtime.MemStats `json:"-"`
}

// MatchResult is what one finished (or abandoned) match leaves behind.
type MatchResult struct {
	Frames  int64                `json:"frames"`
	Winner  int                  `json:"winner"` // -1 when the frame limit ran out
	Boards  [2]puzzle.BoardStats `json:"boards"`
	Garbage [2]int               `json:"garbage_sent"`
	Systems []puzzle.SystemStats `json:"systems"`
}

type Stats struct {
	Min     time.Duration   `json:"min"`
	Max     time.Duration   `json:"max"`
	Avg     time.Duration   `json:"avg"`
	Samples []time.Duration `json:"-"`
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Totals sums the per-board counters over every match.
func (r *Report) Totals() puzzle.BoardStats {
	var t puzzle.BoardStats
	for _, m := range r.Matches {
		for _, b := range m.Boards {
			t.Cycles += b.Cycles
			t.LinesCleared += b.LinesCleared
			t.Clears += b.Clears
			t.GarbageRows += b.GarbageRows
			t.NormalRows += b.NormalRows
			t.Moves += b.Moves
		}
	}
	return t
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Stonestack Stress Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Board:** {{.Width}}x{{.Height}}
- **Garbage Rule:** {{.Rule}}
- **Seed:** {{.Seed}}
- **Frame Limit per Match:** {{.FrameLimit}}

## Results
- **Matches:** {{len .Matches}} ({{.Decided}} decided)
- **Wins:** board-0 {{index .Wins 0}}, board-1 {{index .Wins 1}}
- **Grid Violations:** {{.Violations}}{{if .FirstError}} (first: {{.FirstError}}){{end}}
{{with .Totals}}- **Cycles:** {{.Cycles}}
- **Lines Cleared:** {{.LinesCleared}} in {{.Clears}} clears
- **Rows Pushed:** {{.NormalRows}} normal, {{.GarbageRows}} garbage
- **Moves:** {{.Moves}}
{{end}}
## Performance
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{with last .Matches}}
## Systems (last match)
{{range .Systems}}- {{.Name}}: {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}{{end}}
## Memory Usage (MB)
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end)
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end)
- Num GC:         {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
		"last": func(ms []MatchResult) *MatchResult {
			if len(ms) == 0 {
				return nil
			}
			return &ms[len(ms)-1]
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}

// GenerateJSON writes the report as indented JSON.
func (r *Report) GenerateJSON(w io.Writer) error {
	out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(out, '\n'))
	return err
}

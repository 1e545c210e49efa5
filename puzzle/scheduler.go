package puzzle

import (
	"context"
	"reflect"
	"slices"
	"time"
)

// Frame carries the elapsed presentation time for one scheduler tick.
type Frame struct {
	DeltaTime float64
	Number    int64
}

// Delta returns DeltaTime as a duration.
func (f *Frame) Delta() time.Duration {
	return time.Duration(f.DeltaTime * float64(time.Second))
}

// System is anything advanced once per scheduler tick. Boards are systems;
// frontends register their own for input and rendering.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *Frame)

func (f SystemFunc) Execute(frame *Frame) { f(frame) }

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

func (st *SystemStats) record(d time.Duration) {
	if st.ExecutionCount == 0 || d < st.MinDuration {
		st.MinDuration = d
	}
	st.MaxDuration = max(st.MaxDuration, d)
	st.ExecutionCount++
	st.LastDuration = d
	st.TotalDuration += d
	st.AvgDuration = st.TotalDuration / time.Duration(st.ExecutionCount)
}

// Scheduler executes registered systems in order, one tick at a time.
type Scheduler struct {
	systems []System
	stats   []SystemStats
	frames  int64
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Register appends a system. Systems with a Name method are reported under
// that name, others under their type name.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)
	s.stats = append(s.stats, SystemStats{Name: systemName(system)})
}

func systemName(system System) string {
	if named, ok := system.(interface{ Name() string }); ok {
		return named.Name()
	}
	t := reflect.TypeOf(system)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}

// Once runs every system with a frame of dt seconds.
func (s *Scheduler) Once(dt float64) {
	s.frames++
	frame := &Frame{DeltaTime: dt, Number: s.frames}

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.stats[i].record(time.Since(start))
	}
}

// Run ticks every interval, passing the measured elapsed time, until ctx is
// cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Once(now.Sub(last).Seconds())
			last = now
		}
	}
}

// GetStats returns a snapshot of the execution statistics.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     slices.Clone(s.stats),
	}
	for _, st := range s.stats {
		stats.TotalExecutions += st.ExecutionCount
	}
	return stats
}

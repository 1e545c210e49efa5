package puzzle_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/stonestack/puzzle"
)

type tickCounter struct {
	Frames int
	Total  float64
}

func (c *tickCounter) Execute(frame *puzzle.Frame) {
	c.Frames++
	c.Total += frame.DeltaTime
}

func TestScheduler(t *testing.T) {
	t.Run("systems run in registration order", func(t *testing.T) {
		scheduler := puzzle.NewScheduler()

		var order []string
		scheduler.Register(puzzle.SystemFunc(func(*puzzle.Frame) { order = append(order, "first") }))
		scheduler.Register(puzzle.SystemFunc(func(*puzzle.Frame) { order = append(order, "second") }))

		scheduler.Once(0.016)
		if len(order) != 2 || order[0] != "first" || order[1] != "second" {
			t.Errorf("Expected [first second], got %v", order)
		}
	})

	t.Run("frame numbers and delta", func(t *testing.T) {
		scheduler := puzzle.NewScheduler()
		var numbers []int64
		scheduler.Register(puzzle.SystemFunc(func(frame *puzzle.Frame) {
			numbers = append(numbers, frame.Number)
			if frame.Delta() != 500*time.Millisecond {
				t.Errorf("Expected 500ms delta, got %v", frame.Delta())
			}
		}))

		scheduler.Once(0.5)
		scheduler.Once(0.5)
		if len(numbers) != 2 || numbers[0] != 1 || numbers[1] != 2 {
			t.Errorf("Expected frame numbers [1 2], got %v", numbers)
		}
	})

	t.Run("stats", func(t *testing.T) {
		scheduler := puzzle.NewScheduler()
		counter := &tickCounter{}
		scheduler.Register(counter)
		scheduler.Register(puzzle.SystemFunc(func(*puzzle.Frame) {}))

		stats := scheduler.GetStats()
		if stats.Systems[0].MinDuration != 0 {
			t.Errorf("Expected zero min duration before any run, got %v", stats.Systems[0].MinDuration)
		}

		for i := 0; i < 5; i++ {
			scheduler.Once(0.1)
		}

		stats = scheduler.GetStats()
		if stats.SystemCount != 2 {
			t.Errorf("Expected 2 systems, got %d", stats.SystemCount)
		}
		if stats.TotalExecutions != 10 {
			t.Errorf("Expected 10 executions, got %d", stats.TotalExecutions)
		}
		if stats.Systems[0].Name != "tickCounter" {
			t.Errorf("Expected name tickCounter, got %s", stats.Systems[0].Name)
		}
		if stats.Systems[1].Name != "SystemFunc" {
			t.Errorf("Expected name SystemFunc, got %s", stats.Systems[1].Name)
		}
		if stats.Systems[0].MaxDuration < stats.Systems[0].MinDuration {
			t.Errorf("Max %v below min %v", stats.Systems[0].MaxDuration, stats.Systems[0].MinDuration)
		}
		if counter.Frames != 5 {
			t.Errorf("Expected 5 frames, got %d", counter.Frames)
		}
	})

	t.Run("run until cancelled", func(t *testing.T) {
		scheduler := puzzle.NewScheduler()
		counter := &tickCounter{}
		scheduler.Register(counter)

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
		defer cancel()
		scheduler.Run(ctx, 5*time.Millisecond)

		if counter.Frames == 0 {
			t.Error("Expected the system to run at least once")
		}
		if counter.Total <= 0 {
			t.Errorf("Expected positive accumulated time, got %v", counter.Total)
		}
	})
}

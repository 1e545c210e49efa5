package puzzle

import "time"

// EventSink receives the presentation-facing side of every grid mutation.
// Implementations own all visual interpolation and must not feed positions
// back into the board.
type EventSink interface {
	// StoneSpawned is called when row generation creates a stone.
	StoneSpawned(s *Stone)
	// StoneMoved is called when a stone lands on a new cell; the move should be animated over d.
	StoneMoved(s *Stone, x, y int, d time.Duration)
	// StoneDestroyed is called when a stone is cleared; it should be animated over d and then removed.
	StoneDestroyed(s *Stone, d time.Duration)
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) StoneSpawned(*Stone)                        {}
func (NopSink) StoneMoved(*Stone, int, int, time.Duration) {}
func (NopSink) StoneDestroyed(*Stone, time.Duration)       {}

type eventKind uint8

const (
	eventSpawn eventKind = iota
	eventMove
	eventDestroy
)

type event struct {
	kind     eventKind
	stone    *Stone
	x, y     int
	duration time.Duration
}

// Events buffers presentation events raised while a phase mutates the grid.
// They are delivered in order when the owning board flushes them, so the sink
// only ever observes a grid between phases.
type Events struct {
	queue []event
}

// NewEvents creates an empty event buffer.
func NewEvents() *Events {
	return &Events{}
}

// Spawn queues a stone-created event.
func (e *Events) Spawn(s *Stone) {
	if e == nil {
		return
	}
	e.queue = append(e.queue, event{kind: eventSpawn, stone: s, x: s.X, y: s.Y})
}

// Move queues a stone-moved event.
func (e *Events) Move(s *Stone, x, y int, d time.Duration) {
	if e == nil {
		return
	}
	e.queue = append(e.queue, event{kind: eventMove, stone: s, x: x, y: y, duration: d})
}

// Destroy queues a stone-destroyed event.
func (e *Events) Destroy(s *Stone, d time.Duration) {
	if e == nil {
		return
	}
	e.queue = append(e.queue, event{kind: eventDestroy, stone: s, duration: d})
}

// Len returns the number of pending events.
func (e *Events) Len() int {
	if e == nil {
		return 0
	}
	return len(e.queue)
}

// Flush delivers all pending events to the sink, resetting the buffer state.
func (e *Events) Flush(sink EventSink) {
	if e == nil {
		return
	}
	if sink == nil {
		sink = NopSink{}
	}
	for _, ev := range e.queue {
		switch ev.kind {
		case eventSpawn:
			sink.StoneSpawned(ev.stone)
		case eventMove:
			sink.StoneMoved(ev.stone, ev.x, ev.y, ev.duration)
		case eventDestroy:
			sink.StoneDestroyed(ev.stone, ev.duration)
		}
	}
	clear(e.queue)
	e.queue = e.queue[:0]
}

package puzzle

import (
	"time"

	"go.uber.org/zap"
)

// phase is one resumable step of an escalation cycle. Each step mutates the
// grid and then schedules a presentation pause before the next one.
type phase uint8

const (
	phaseNone phase = iota
	phaseSettle
	phaseClear
	phaseCollapse
	phasePush
	phaseSettleAfterPush
	phaseClearAfterPush
	phaseCollapseAfterPush
	phaseDone
)

var phaseNames = [...]string{
	phaseNone:              "none",
	phaseSettle:            "settle",
	phaseClear:             "clear",
	phaseCollapse:          "collapse",
	phasePush:              "push",
	phaseSettleAfterPush:   "settle-after-push",
	phaseClearAfterPush:    "clear-after-push",
	phaseCollapseAfterPush: "collapse-after-push",
	phaseDone:              "done",
}

func (p phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// CycleOutcome describes how a finished or interrupted cycle ended.
type CycleOutcome uint8

const (
	CyclePending CycleOutcome = iota
	CycleComplete
	CycleBreached
)

// Escalation runs the push-up cycle of one board:
// drop, clear, push-up with a normal or garbage row, drop, clear.
// It is an explicit state machine; Advance resumes it after the pause
// scheduled by the previous phase, and a zero pause resumes at once.
type Escalation struct {
	resolver *Resolver
	rows     *RowGenerator
	queue    *GarbageQueue
	ceiling  int
	delays   Delays
	tween    time.Duration
	log      *zap.Logger

	phase phase
	wait  time.Duration
	mode  RowMode

	// OnCleared receives the line count of every clear pass that removed something.
	OnCleared func(lines int)
	// OnBreach fires when a push-up reaches the ceiling; the cycle stops there.
	OnBreach func()
}

func newEscalation(cfg Config, resolver *Resolver, rows *RowGenerator, queue *GarbageQueue, log *zap.Logger) *Escalation {
	return &Escalation{
		resolver: resolver,
		rows:     rows,
		queue:    queue,
		ceiling:  cfg.CeilingRow(),
		delays:   cfg.Delays,
		tween:    cfg.Tweens.Push,
		log:      log,
	}
}

// Active reports whether a cycle is in progress.
func (e *Escalation) Active() bool {
	return e.phase != phaseNone
}

// Phase returns the name of the next step to run, for debugging.
func (e *Escalation) Phase() string {
	return e.phase.String()
}

// Remaining returns how long the current pause still lasts.
func (e *Escalation) Remaining() time.Duration {
	return max(e.wait, 0)
}

// Begin arms a new cycle. The first phase runs on the next Advance.
func (e *Escalation) Begin() {
	e.phase = phaseSettle
	e.wait = 0
}

// Abort drops the cycle where it stands.
func (e *Escalation) Abort() {
	e.phase = phaseNone
	e.wait = 0
}

// Advance lets dt pass and runs every phase whose pause has elapsed.
func (e *Escalation) Advance(dt time.Duration) CycleOutcome {
	if e.phase == phaseNone {
		return CyclePending
	}
	e.wait -= dt
	for e.phase != phaseNone && e.wait <= 0 {
		if outcome := e.step(); outcome != CyclePending {
			return outcome
		}
	}
	return CyclePending
}

func (e *Escalation) pause(d time.Duration, next phase) {
	e.wait += d
	e.phase = next
}

func (e *Escalation) step() CycleOutcome {
	current := e.phase
	if ce := e.log.Check(zap.DebugLevel, "escalation phase"); ce != nil {
		ce.Write(zap.Stringer("phase", current))
	}

	switch current {
	case phaseSettle:
		e.resolver.DropAll()
		e.pause(e.delays.Drop, phaseClear)

	case phaseClear:
		e.clear(phaseCollapse, phasePush)

	case phaseCollapse:
		e.resolver.DropAll()
		e.pause(e.delays.Drop, phasePush)

	case phasePush:
		e.mode = RowNormal
		if e.queue.Pending() > 0 {
			e.mode = RowGarbage
		}
		if !e.resolver.PushUp(e.ceiling, e.tween) {
			e.Abort()
			e.log.Info("ceiling reached", zap.Int("ceiling", e.ceiling))
			if e.OnBreach != nil {
				e.OnBreach()
			}
			return CycleBreached
		}
		if e.mode == RowGarbage {
			e.queue.Take()
		}
		for _, s := range e.rows.Generate(e.resolver.grid, e.mode) {
			e.resolver.events.Spawn(s)
		}
		e.pause(e.delays.Push, phaseSettleAfterPush)

	case phaseSettleAfterPush:
		e.resolver.DropAll()
		e.pause(e.delays.Drop, phaseClearAfterPush)

	case phaseClearAfterPush:
		e.clear(phaseCollapseAfterPush, phaseDone)

	case phaseCollapseAfterPush:
		e.resolver.DropAll()
		e.pause(e.delays.Drop, phaseDone)

	case phaseDone:
		e.Abort()
		return CycleComplete
	}

	// A hook may have ended the cycle from outside (the opponent lost and this board won).
	if e.phase == phaseNone {
		return CycleComplete
	}
	return CyclePending
}

// clear runs a clear pass and moves on to collapse when lines were removed,
// otherwise straight to skip. The hook runs after the next phase is set.
func (e *Escalation) clear(collapse, skip phase) {
	lines := e.resolver.ClearFullRows()
	if lines == 0 {
		e.phase = skip
		return
	}
	e.pause(e.delays.Clear, collapse)
	if e.OnCleared != nil {
		e.OnCleared(lines)
	}
}

// LastMode returns the row mode chosen by the most recent push-up.
func (e *Escalation) LastMode() RowMode {
	return e.mode
}

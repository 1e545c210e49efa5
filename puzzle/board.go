package puzzle

import (
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// State is the lifecycle state of a board.
type State uint8

const (
	// StatePending is the pre-game state; the board ignores input until Start.
	StatePending State = iota
	StateIdle
	// StateResolving means an escalation cycle is running; input is blocked.
	StateResolving
	// StateOver is terminal.
	StateOver
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateIdle:
		return "idle"
	case StateResolving:
		return "resolving"
	case StateOver:
		return "over"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Result is how the game ended for a board.
type Result uint8

const (
	ResultNone Result = iota
	ResultLost
	ResultWon
)

func (r Result) String() string {
	switch r {
	case ResultLost:
		return "lost"
	case ResultWon:
		return "won"
	}
	return "none"
}

// Hooks are the board's outgoing signals. Any of them may be nil.
type Hooks struct {
	OnLinesCleared func(b *Board, lines int)
	OnLose         func(b *Board)
	OnWin          func(b *Board)
}

// BoardStats are running counters for a board.
type BoardStats struct {
	Cycles       int
	LinesCleared int
	Clears       int
	GarbageRows  int
	NormalRows   int
	Moves        int
}

// Board is one player's playfield: the grid plus everything that mutates it.
// It is not safe for concurrent use.
type Board struct {
	index  int
	cfg    Config
	grid   *Grid
	events *Events
	sink   EventSink
	hooks  Hooks
	log    *zap.Logger
	rng    *rand.Rand

	resolver   *Resolver
	rows       *RowGenerator
	queue      GarbageQueue
	escalation *Escalation
	cursor     *Cursor

	state  State
	result Result
	stats  BoardStats
}

// Option configures a Board.
type Option func(*Board)

// WithLogger sets the logger; the board logs under the "board" name.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Board) { b.log = logger }
}

// WithSink sets the presentation event sink.
func WithSink(sink EventSink) Option {
	return func(b *Board) { b.sink = sink }
}

// WithHooks sets the board's outgoing signals.
func WithHooks(hooks Hooks) Option {
	return func(b *Board) { b.hooks = hooks }
}

// WithIndex sets the board index encoded into every StoneId.
func WithIndex(index int) Option {
	return func(b *Board) { b.index = index }
}

// WithRand sets the random source used for row generation.
func WithRand(rng *rand.Rand) Option {
	return func(b *Board) { b.rng = rng }
}

// NewBoard creates a pending board. Call Start to begin play.
func NewBoard(cfg Config, opts ...Option) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &Board{
		cfg:    cfg,
		grid:   NewGrid(cfg.Width, cfg.Height),
		events: NewEvents(),
		sink:   NopSink{},
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewPCG(seedFor(cfg.Seed), uint64(b.index)))
	}
	b.log = b.log.Named("board").With(zap.Int("board", b.index))

	b.resolver = NewResolver(b.grid, b.events)
	b.resolver.DropTween = cfg.Tweens.Drop
	b.resolver.DestroyTween = cfg.Tweens.Destroy

	b.rows = NewRowGenerator(b.rng, cfg.BlockChance)
	b.rows.factory.board = uint32(b.index)

	b.escalation = newEscalation(cfg, b.resolver, b.rows, &b.queue, b.log)
	b.escalation.OnCleared = b.cleared
	b.escalation.OnBreach = b.lose

	b.cursor = NewCursor(b.grid)
	return b, nil
}

func seedFor(seed uint64) uint64 {
	if seed == 0 {
		return rand.Uint64()
	}
	return seed
}

func (b *Board) Index() int        { return b.index }
func (b *Board) Name() string      { return fmt.Sprintf("board-%d", b.index) }
func (b *Board) Config() Config    { return b.cfg }
func (b *Board) Grid() *Grid       { return b.grid }
func (b *Board) Cursor() *Cursor   { return b.cursor }
func (b *Board) State() State      { return b.state }
func (b *Board) Result() Result    { return b.result }
func (b *Board) Stats() BoardStats { return b.stats }
func (b *Board) Garbage() int      { return b.queue.Pending() }

// Escalation exposes the cycle state machine for inspection.
func (b *Board) Escalation() *Escalation {
	return b.escalation
}

// Busy reports whether an escalation cycle is running.
func (b *Board) Busy() bool { return b.state == StateResolving }

// GameOver reports whether the board has reached its terminal state.
func (b *Board) GameOver() bool { return b.state == StateOver }

// SetSink replaces the presentation event sink.
func (b *Board) SetSink(sink EventSink) {
	if sink == nil {
		sink = NopSink{}
	}
	b.sink = sink
}

// SetHooks replaces the board's outgoing signals.
func (b *Board) SetHooks(hooks Hooks) {
	b.hooks = hooks
}

// Start moves a pending board to Idle and runs the first cycle, which
// generates the opening row.
func (b *Board) Start() {
	if b.state != StatePending {
		return
	}
	b.state = StateIdle
	b.log.Info("game start")
	b.RequestCycle()
}

// RequestCycle starts an escalation cycle. It is a no-op unless the board is
// Idle. A stone still held by the cursor is dropped where it is first, since
// the cycle may move or clear it. Phases with no pending delay run before it
// returns.
func (b *Board) RequestCycle() bool {
	if b.state != StateIdle {
		return false
	}
	if b.cursor.Held() != nil && b.cursor.Drop() {
		b.stats.Moves++
	}
	b.state = StateResolving
	b.stats.Cycles++
	b.escalation.Begin()
	b.Advance(0)
	return true
}

// Advance lets dt of presentation time pass, resuming a suspended cycle.
func (b *Board) Advance(dt time.Duration) {
	if b.state == StateResolving {
		outcome := b.escalation.Advance(dt)
		if outcome == CycleComplete && b.state == StateResolving {
			b.state = StateIdle
			b.countRow()
		}
	}
	b.Flush()
}

// Settle advances in steps of dt until no cycle is running, up to limit steps.
// It reports whether the board came to rest.
func (b *Board) Settle(dt time.Duration, limit int) bool {
	for i := 0; i < limit && b.state == StateResolving; i++ {
		b.Advance(dt)
	}
	return b.state != StateResolving
}

// Execute implements System.
func (b *Board) Execute(frame *Frame) {
	b.Advance(frame.Delta())
}

// Flush delivers buffered events to the sink.
func (b *Board) Flush() {
	b.events.Flush(b.sink)
}

func (b *Board) countRow() {
	if b.escalation.LastMode() == RowGarbage {
		b.stats.GarbageRows++
	} else {
		b.stats.NormalRows++
	}
}

// ReceiveGarbage queues n garbage rows and, if the board is Idle, starts a
// cycle right away so the first one is injected.
func (b *Board) ReceiveGarbage(n int) {
	if n <= 0 || b.state == StateOver {
		return
	}
	b.queue.Add(n)
	b.log.Info("garbage received", zap.Int("rows", n), zap.Int("pending", b.queue.Pending()))
	if b.state == StateIdle {
		b.RequestCycle()
	}
}

func (b *Board) cleared(lines int) {
	b.stats.LinesCleared += lines
	b.stats.Clears++
	if ce := b.log.Check(zap.DebugLevel, "lines cleared"); ce != nil {
		ce.Write(zap.Int("lines", lines))
	}
	if b.hooks.OnLinesCleared != nil {
		b.hooks.OnLinesCleared(b, lines)
	}
}

func (b *Board) lose() {
	if b.state == StateOver {
		return
	}
	b.state = StateOver
	b.result = ResultLost
	b.cursor.Release()
	b.log.Info("game over", zap.Stringer("result", b.result), zap.Int("cycles", b.stats.Cycles))
	if b.hooks.OnLose != nil {
		b.hooks.OnLose(b)
	}
}

// Win ends the game for this board as the winner. A running cycle is dropped.
func (b *Board) Win() {
	if b.state == StateOver {
		return
	}
	b.escalation.Abort()
	b.state = StateOver
	b.result = ResultWon
	b.cursor.Release()
	b.log.Info("game over", zap.Stringer("result", b.result), zap.Int("cycles", b.stats.Cycles))
	if b.hooks.OnWin != nil {
		b.hooks.OnWin(b)
	}
}

func (b *Board) interactive() bool {
	return b.state == StateIdle
}

// MoveCursor moves the cursor (and the held stone, if any).
func (b *Board) MoveCursor(dx, dy int) bool {
	if !b.interactive() {
		return false
	}
	held := b.cursor.Held()
	if !b.cursor.Move(dx, dy) {
		return false
	}
	if held != nil {
		b.events.Move(held, held.X, held.Y, 0)
		b.Flush()
	}
	return true
}

// PickOrDrop picks up the stone under the cursor, or drops the held one.
// A drop that moved the stone starts a cycle.
func (b *Board) PickOrDrop() bool {
	if !b.interactive() {
		return false
	}
	if b.cursor.Held() == nil {
		return b.cursor.PickUp()
	}
	if b.cursor.Drop() {
		b.stats.Moves++
		b.RequestCycle()
	}
	return true
}

// MovableRange returns the leftmost and rightmost X the stone can slide to on
// its row without passing through another stone.
func (b *Board) MovableRange(s *Stone) (minX, maxX int) {
	minX, maxX = s.X, s.X
	for x := s.X - 1; x >= 0 && b.grid.StoneAt(x, s.Y) == nil; x-- {
		minX = x
	}
	for x := s.Right(); x < b.grid.width && b.grid.StoneAt(x, s.Y) == nil; x++ {
		maxX = x - s.Width + 1
	}
	return minX, maxX
}

// DragStone slides the stone covering (x, y) toward targetX, one cell at a
// time, clamped to its movable range. A stone that moved starts a cycle.
func (b *Board) DragStone(x, y, targetX int) bool {
	if !b.interactive() || b.cursor.Held() != nil {
		return false
	}
	s := b.grid.StoneAt(x, y)
	if s == nil {
		return false
	}
	lo, hi := b.MovableRange(s)
	targetX = min(max(targetX, lo), hi)

	from := s.X
	for s.X != targetX {
		next := s.X + sign(targetX-s.X)
		if !b.grid.Fits(next, s.Y, s.Width, s) {
			break
		}
		b.grid.Move(s, next, s.Y)
	}
	if s.X == from {
		return false
	}

	b.events.Move(s, s.X, s.Y, b.cfg.Tweens.Drop)
	b.stats.Moves++
	b.RequestCycle()
	return true
}

// Swap exchanges the contents of cells x and x+1 on row y. Only empty cells
// and single-width stones can be swapped; wider stones would be split.
func (b *Board) Swap(x, y int) bool {
	if !b.interactive() || b.cursor.Held() != nil {
		return false
	}
	if !b.grid.IsInside(x, y) || !b.grid.IsInside(x+1, y) {
		return false
	}
	left, right := b.grid.StoneAt(x, y), b.grid.StoneAt(x+1, y)
	if left == nil && right == nil {
		return false
	}
	if (left != nil && left.Width != 1) || (right != nil && right.Width != 1) {
		return false
	}

	b.grid.SetStoneAt(x, y, right)
	b.grid.SetStoneAt(x+1, y, left)
	if left != nil {
		b.events.Move(left, x+1, y, b.cfg.Tweens.Drop)
	}
	if right != nil {
		b.events.Move(right, x, y, b.cfg.Tweens.Drop)
	}
	b.stats.Moves++
	b.RequestCycle()
	return true
}

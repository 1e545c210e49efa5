package puzzle

import (
	"math/rand/v2"

	"go.uber.org/zap"
)

// MatchStats summarizes the attacks exchanged in a match.
type MatchStats struct {
	GarbageSent [2]int
	Attacks     [2]int
}

// Match pairs two boards as opponents. Lines cleared on one board become
// garbage on the other according to the configured rule, and the first board
// to reach its ceiling hands the win to its opponent.
type Match struct {
	boards [2]*Board
	rule   GarbageRule
	log    *zap.Logger
	stats  MatchStats

	winner *Board
	loser  *Board

	// OnLose and OnWin carry the end-of-game signal of each board.
	OnLose func(b *Board)
	OnWin  func(b *Board)
	// OnFinish fires once when the match is decided, after OnLose and OnWin.
	OnFinish func(winner, loser *Board)
}

// MatchOption configures a Match.
type MatchOption func(*matchSetup)

type matchSetup struct {
	logger *zap.Logger
	sinks  [2]EventSink
	rands  [2]*rand.Rand
}

// WithMatchLogger sets the logger shared by the match and both boards.
func WithMatchLogger(logger *zap.Logger) MatchOption {
	return func(m *matchSetup) { m.logger = logger }
}

// WithBoardSink sets the event sink of board i (0 or 1).
func WithBoardSink(i int, sink EventSink) MatchOption {
	return func(m *matchSetup) { m.sinks[i] = sink }
}

// WithBoardRand sets the row-generation source of board i (0 or 1).
func WithBoardRand(i int, rng *rand.Rand) MatchOption {
	return func(m *matchSetup) { m.rands[i] = rng }
}

// NewMatch builds two pending boards from cfg and wires them together.
// Both boards derive their row generators from cfg.Seed, with independent streams.
func NewMatch(cfg Config, opts ...MatchOption) (*Match, error) {
	setup := matchSetup{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&setup)
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}

	m := &Match{
		rule: cfg.Garbage,
		log:  setup.logger.Named("match"),
	}

	for i := range m.boards {
		boardOpts := []Option{
			WithIndex(i),
			WithLogger(setup.logger),
			WithHooks(Hooks{
				OnLinesCleared: m.linesCleared,
				OnLose:         m.lost,
				OnWin:          m.won,
			}),
		}
		if setup.sinks[i] != nil {
			boardOpts = append(boardOpts, WithSink(setup.sinks[i]))
		}
		if setup.rands[i] != nil {
			boardOpts = append(boardOpts, WithRand(setup.rands[i]))
		}

		b, err := NewBoard(cfg, boardOpts...)
		if err != nil {
			return nil, err
		}
		m.boards[i] = b
	}

	m.log.Info("match created",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Uint64("seed", cfg.Seed),
		zap.Stringer("garbage", m.rule),
	)
	return m, nil
}

// Board returns board i (0 or 1).
func (m *Match) Board(i int) *Board {
	return m.boards[i]
}

// Boards returns both boards.
func (m *Match) Boards() [2]*Board {
	return m.boards
}

// Opponent returns the other board of the match.
func (m *Match) Opponent(b *Board) *Board {
	if b == m.boards[0] {
		return m.boards[1]
	}
	return m.boards[0]
}

// Rule returns the garbage rule in effect.
func (m *Match) Rule() GarbageRule {
	return m.rule
}

// Stats returns attack counters.
func (m *Match) Stats() MatchStats {
	return m.stats
}

// Start sends the start signal to both boards.
func (m *Match) Start() {
	for _, b := range m.boards {
		b.Start()
	}
}

// Register adds both boards to a scheduler.
func (m *Match) Register(s *Scheduler) {
	for _, b := range m.boards {
		s.Register(b)
	}
}

// Advance lets dt pass on both boards.
func (m *Match) Advance(dt float64) {
	frame := &Frame{DeltaTime: dt}
	for _, b := range m.boards {
		b.Execute(frame)
	}
}

// Finished reports whether a board has lost.
func (m *Match) Finished() bool {
	return m.winner != nil
}

// Winner returns the winning board, or nil while the match is running.
func (m *Match) Winner() *Board {
	return m.winner
}

// Loser returns the losing board, or nil while the match is running.
func (m *Match) Loser() *Board {
	return m.loser
}

func (m *Match) linesCleared(from *Board, lines int) {
	amount := m.rule.Amount(lines)
	if amount <= 0 || m.Finished() {
		return
	}
	to := m.Opponent(from)
	m.stats.GarbageSent[from.Index()] += amount
	m.stats.Attacks[from.Index()]++
	m.log.Info("garbage sent",
		zap.Int("from", from.Index()),
		zap.Int("to", to.Index()),
		zap.Int("lines", lines),
		zap.Int("rows", amount),
	)
	to.ReceiveGarbage(amount)
}

func (m *Match) lost(loser *Board) {
	if m.Finished() {
		return
	}
	winner := m.Opponent(loser)
	m.winner, m.loser = winner, loser
	if m.OnLose != nil {
		m.OnLose(loser)
	}
	winner.Win()
	m.log.Info("match finished", zap.Int("winner", winner.Index()), zap.Int("loser", loser.Index()))
	if m.OnFinish != nil {
		m.OnFinish(winner, loser)
	}
}

func (m *Match) won(b *Board) {
	if m.OnWin != nil {
		m.OnWin(b)
	}
}

package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/plus3/stonestack/puzzle"
)

type binding struct {
	left, right, up, down tcell.Key
	runes                 [4]rune // left, right, up, down
	action                rune
	actionKey             tcell.Key
}

var bindings = [2]binding{
	{runes: [4]rune{'a', 'd', 'w', 's'}, action: ' '},
	{left: tcell.KeyLeft, right: tcell.KeyRight, up: tcell.KeyUp, down: tcell.KeyDown, actionKey: tcell.KeyEnter},
}

// Game runs a match in the terminal. All board access happens on the
// goroutine that calls run; the event poller only forwards events.
type Game struct {
	screen tcell.Screen
	sound  *SoundManager
	cfg    puzzle.Config
	log    *zap.Logger

	match     *puzzle.Match
	scheduler *puzzle.Scheduler
	seen      [2]puzzle.BoardStats
	finished  bool
}

func NewGame(cfg puzzle.Config, log *zap.Logger, sound *SoundManager) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &Game{
		screen: screen,
		sound:  sound,
		cfg:    cfg,
		log:    log,
	}
	if err := g.reset(); err != nil {
		screen.Fini()
		return nil, err
	}
	return g, nil
}

func (g *Game) reset() error {
	match, err := puzzle.NewMatch(g.cfg, puzzle.WithMatchLogger(g.log))
	if err != nil {
		return err
	}
	scheduler := puzzle.NewScheduler()
	match.Register(scheduler)

	g.match = match
	g.scheduler = scheduler
	g.seen = [2]puzzle.BoardStats{}
	g.finished = false

	match.Start()
	return nil
}

// handleInput returns false when the player asked to quit.
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'r' {
			if err := g.reset(); err != nil {
				g.log.Error("restart", zap.Error(err))
			}
			return true
		}
		for i, b := range g.match.Boards() {
			g.route(b, bindings[i], ev)
		}

	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *Game) route(b *puzzle.Board, k binding, ev *tcell.EventKey) {
	dirs := [4][2]int{{-1, 0}, {1, 0}, {0, 1}, {0, -1}}
	keys := [4]tcell.Key{k.left, k.right, k.up, k.down}

	if ev.Key() == tcell.KeyRune {
		for i, r := range k.runes {
			if r != 0 && ev.Rune() == r {
				b.MoveCursor(dirs[i][0], dirs[i][1])
				return
			}
		}
		if k.action != 0 && ev.Rune() == k.action {
			g.pickOrDrop(b)
		}
		return
	}

	for i, key := range keys {
		if key != 0 && ev.Key() == key {
			b.MoveCursor(dirs[i][0], dirs[i][1])
			return
		}
	}
	if k.actionKey != 0 && ev.Key() == k.actionKey {
		g.pickOrDrop(b)
	}
}

func (g *Game) pickOrDrop(b *puzzle.Board) {
	moves := b.Stats().Moves
	if b.PickOrDrop() && b.Stats().Moves > moves {
		g.sound.PlayMove()
	}
}

// tick advances the match and plays a sound for whatever changed since the
// previous tick.
func (g *Game) tick(dt time.Duration) {
	g.scheduler.Once(dt.Seconds())

	for i, b := range g.match.Boards() {
		stats := b.Stats()
		if lines := stats.LinesCleared - g.seen[i].LinesCleared; lines > 0 {
			g.sound.PlayClear(lines)
		}
		if stats.GarbageRows > g.seen[i].GarbageRows {
			g.sound.PlayGarbage()
		}
		g.seen[i] = stats
	}

	if g.match.Finished() && !g.finished {
		g.finished = true
		g.sound.PlayFinish()
	}
}

func (g *Game) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			g.tick(now.Sub(last))
			last = now
			drawMatch(g.screen, g.match)
		}
	}
}

func (g *Game) cleanup() {
	g.sound.Cleanup()
	g.screen.Fini()
}

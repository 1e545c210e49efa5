package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/plus3/stonestack/puzzle"
	"github.com/plus3/stonestack/puzzle/debugui"
	debugui_ebiten "github.com/plus3/stonestack/puzzle/debugui/ebiten"
)

// Game implements ebiten.Game for a local two-player match.
type Game struct {
	cfg     puzzle.Config
	log     *zap.Logger
	layout  Layout
	backend *debugui_ebiten.ImguiBackend

	match     *puzzle.Match
	scheduler *puzzle.Scheduler
	overlay   *debugui.Overlay
	renderer  *Renderer
}

func NewGame(cfg puzzle.Config, log *zap.Logger, backend *debugui_ebiten.ImguiBackend, debug bool) (*Game, error) {
	g := &Game{
		cfg:     cfg,
		log:     log,
		layout:  NewLayout(cfg.Width, cfg.Height),
		backend: backend,
		overlay: debugui.NewOverlay(),
	}
	g.overlay.Visible = debug
	if err := g.reset(false); err != nil {
		return nil, err
	}
	return g, nil
}

// reset throws the current match away and builds a fresh one, started
// right away or left pending on the title. The scheduler and overlay windows
// are rebuilt since they hold the old boards.
func (g *Game) reset(start bool) error {
	sprites := [2]*Sprites{
		NewSprites(g.cfg.Tweens.Push),
		NewSprites(g.cfg.Tweens.Push),
	}

	match, err := puzzle.NewMatch(g.cfg,
		puzzle.WithMatchLogger(g.log),
		puzzle.WithBoardSink(0, sprites[0]),
		puzzle.WithBoardSink(1, sprites[1]),
	)
	if err != nil {
		return err
	}
	match.OnFinish = func(winner, loser *puzzle.Board) {
		g.log.Info("press R to play again", zap.String("winner", winner.Name()))
	}

	overlay := debugui.NewOverlay()
	overlay.Visible = g.overlay.Visible

	scheduler := puzzle.NewScheduler()
	scheduler.Register(&InputSystem{Match: match, Layout: g.layout, Overlay: overlay})
	match.Register(scheduler)
	scheduler.Register(sprites[0])
	scheduler.Register(sprites[1])
	scheduler.Register(overlay)
	debugui.SpawnDebugUI(overlay, match, scheduler)

	g.match = match
	g.scheduler = scheduler
	g.overlay = overlay
	g.renderer = &Renderer{Layout: g.layout, Match: match, Sprites: sprites}

	if start {
		match.Start()
	}
	return nil
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.overlay.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && !g.overlay.Input.WantCaptureKeyboard {
		if err := g.reset(true); err != nil {
			return err
		}
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.backend.Frame(func() {
		g.scheduler.Once(dt)
	})

	// Started after the tick so the key that starts the match is not also
	// taken as a pick-up.
	if g.match.Board(0).State() == puzzle.StatePending &&
		(inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)) {
		g.match.Start()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/stonestack/puzzle"
	"github.com/plus3/stonestack/puzzle/debugui"
	debugui_ebiten "github.com/plus3/stonestack/puzzle/debugui/ebiten"
)

// Game implements ebiten.Game and draws the debug overlay over a match.
type Game struct {
	scheduler    *puzzle.Scheduler
	imguiBackend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Systems, including the overlay, run inside the ImGui frame
	g.imguiBackend.Frame(func() {
		g.scheduler.Once(1.0 / 60.0)
	})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the boards first
	// ...

	// Draw ImGui overlay on top
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	imguiBackend := debugui_ebiten.NewImguiBackend("stonestack debug", 1280, 720)

	match, err := puzzle.NewMatch(puzzle.DefaultConfig())
	if err != nil {
		panic(err)
	}

	scheduler := puzzle.NewScheduler()
	match.Register(scheduler)

	overlay := debugui.NewOverlay()
	overlay.Visible = true
	debugui.SpawnDebugUI(overlay, match, scheduler)
	overlay.Add(func() {
		imgui.Begin("Debug Window")
		imgui.Text("Hello from stonestack!")
		imgui.End()
	})
	scheduler.Register(overlay)

	match.Start()

	game := &Game{
		scheduler:    scheduler,
		imguiBackend: imguiBackend,
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}

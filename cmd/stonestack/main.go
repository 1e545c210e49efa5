// Command stonestack runs a local two-player match in a window.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/plus3/stonestack/internal/cli"
	debugui_ebiten "github.com/plus3/stonestack/puzzle/debugui/ebiten"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file")
		seed       = flag.Uint64("seed", 0, "row generator seed (0 for random)")
		debug      = flag.Bool("debug", false, "show the debug overlay at start")
		logLevel   = flag.String("log-level", "info", "log level")
	)
	flag.Parse()

	log, err := cli.NewLogger(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync()

	cfg, err := cli.LoadConfig(*configPath, *seed)
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}

	layout := NewLayout(cfg.Width, cfg.Height)
	width, height := layout.Screen()

	backend := debugui_ebiten.NewImguiBackend("stonestack", width, height)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("stonestack")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game, err := NewGame(cfg, log, backend, *debug)
	if err != nil {
		log.Fatal("new game", zap.Error(err))
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("run", zap.Error(err))
	}
}

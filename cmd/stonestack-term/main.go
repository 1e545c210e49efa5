// Command stonestack-term runs a local two-player match in the terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/plus3/stonestack/internal/cli"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file")
		seed       = flag.Uint64("seed", 0, "row generator seed (0 for random)")
		logPath    = flag.String("log", "stonestack-term.log", "log file")
		logLevel   = flag.String("log-level", "info", "log level")
		mute       = flag.Bool("mute", false, "disable sound")
	)
	flag.Parse()

	log, err := cli.NewLogger(*logLevel, *logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync()

	cfg, err := cli.LoadConfig(*configPath, *seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sound := NewSoundManager()
	if !*mute {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, the game runs without sound
			log.Warn("audio initialization failed", zap.Error(err))
		}
	}

	game, err := NewGame(cfg, log, sound)
	if err != nil {
		sound.Cleanup()
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run()
}

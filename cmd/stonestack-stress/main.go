// Command stonestack-stress runs bot-versus-bot matches headless with zero
// phase delays and checks the grid invariants on every frame.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/plus3/stonestack/internal/cli"
	"github.com/plus3/stonestack/puzzle"
)

const frameDelta = 1.0 / 60

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	configPath := flag.String("config", "", "YAML config file")
	seed := flag.Uint64("seed", 1, "Seed for row generators and bots.")
	frameLimit := flag.Int("frames", 20000, "Frames before an undecided match is abandoned.")
	patience := flag.Int("patience", 2, "Frames each bot waits between moves.")
	format := flag.String("format", "text", "Report format: text or json.")
	logLevel := flag.String("log-level", "warn", "log level")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
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
	cfg = cfg.Instant()

	report := &Report{
		Duration:       *duration,
		Seed:           cfg.Seed,
		Width:          cfg.Width,
		Height:         cfg.Height,
		Rule:           cfg.Garbage.String(),
		FrameLimit:     *frameLimit,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Info("running matches", zap.Duration("duration", *duration))
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	for n := uint64(0); ctx.Err() == nil; n++ {
		cfg.Seed = report.Seed + n
		result, err := playMatch(ctx, cfg, *patience, *frameLimit, report, log)
		if err != nil {
			log.Fatal("match setup", zap.Error(err))
		}
		report.Matches = append(report.Matches, result)
		if result.Winner >= 0 {
			report.Decided++
			report.Wins[result.Winner]++
		}
	}
	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info("finished", zap.Int("matches", len(report.Matches)), zap.Int("violations", report.Violations))

	switch *format {
	case "json":
		err = report.GenerateJSON(os.Stdout)
	default:
		err = report.Generate(os.Stdout)
	}
	if err != nil {
		log.Fatal("generate report", zap.Error(err))
	}
	if report.Violations > 0 {
		os.Exit(1)
	}
}

// playMatch runs one match until a board loses, the frame limit is reached,
// or ctx expires. Frame timings and grid violations go into report.
func playMatch(ctx context.Context, cfg puzzle.Config, patience, frameLimit int, report *Report, log *zap.Logger) (MatchResult, error) {
	match, err := puzzle.NewMatch(cfg, puzzle.WithMatchLogger(log))
	if err != nil {
		return MatchResult{}, err
	}

	scheduler := puzzle.NewScheduler()
	for i, b := range match.Boards() {
		scheduler.Register(NewBot(b, cfg.Seed+uint64(i), patience))
	}
	match.Register(scheduler)
	scheduler.Register(puzzle.SystemFunc(func(*puzzle.Frame) {
		for _, b := range match.Boards() {
			if err := b.Grid().Validate(); err != nil {
				report.Violations++
				if report.FirstError == "" {
					report.FirstError = err.Error()
				}
			}
		}
	}))

	match.Start()
	for frame := 0; frame < frameLimit && !match.Finished() && ctx.Err() == nil; frame++ {
		updateStart := time.Now()
		scheduler.Once(frameDelta)
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		report.TotalUpdates++
	}

	result := MatchResult{
		Frames:  scheduler.GetStats().Frames,
		Winner:  -1,
		Garbage: match.Stats().GarbageSent,
		Systems: scheduler.GetStats().Systems,
	}
	for i, b := range match.Boards() {
		result.Boards[i] = b.Stats()
	}
	if w := match.Winner(); w != nil {
		result.Winner = w.Index()
	}
	return result, nil
}

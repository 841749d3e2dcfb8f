// Command homestead-soak drives the game headless with random input and
// reports frame timings.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/homestead/catalog"
	"github.com/plus3/homestead/config"
	"github.com/plus3/homestead/game"
	"github.com/plus3/homestead/platform/scripted"
	"go.uber.org/zap"
)

const frameTime = 1.0 / 60

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	maxFrames := flag.Int64("frames", 0, "Stop after this many frames. Zero runs until the duration elapses.")
	seed := flag.Uint64("seed", 0, "Seed for world population and input. Zero picks one.")
	configPath := flag.String("config", "", "Path to the TOML config file.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "homestead-soak: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.World.Seed = *seed
	}
	if cfg.World.Seed == 0 {
		cfg.World.Seed = rand.Uint64()
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "homestead-soak: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cat, err := catalog.Load(cfg.Assets.Catalog, logger.Named("catalog"))
	if err != nil {
		logger.Fatal("load catalog", zap.Error(err))
	}

	input := scripted.NewInput(float32(cfg.Window.Width), float32(cfg.Window.Height))
	clock := scripted.NewClock(0)
	g := game.New(game.Options{
		Config:  cfg,
		Catalog: cat,
		Input:   input,
		Clock:   clock,
		Logger:  logger.Named("game"),
	})

	rng := game.NewRand(cfg.World.Seed)
	game.Populate(g.World(), rng, cfg.World)
	logger.Info("world populated", zap.Int("entities", g.World().Pool.Len()))

	d := &driver{rng: rng, game: g, input: input, uiW: cfg.UI.Width, uiH: cfg.UI.Height}

	report := &Report{
		Duration:  *duration,
		MaxFrames: *maxFrames,
		Seed:      cfg.World.Seed,
		Entities:  g.World().Pool.Len(),
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("running soak", zap.Duration("duration", *duration), zap.Int64("frames", *maxFrames))
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}
		if *maxFrames > 0 && g.Frames() >= *maxFrames {
			break Loop
		}

		d.next()
		clock.Advance(frameTime)

		stepStart := time.Now()
		quit := g.Step()
		report.FrameTime.Add(time.Since(stepStart))

		if quit {
			logger.Warn("game requested quit", zap.Int64("frame", g.Frames()))
			break Loop
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalFrames = g.Frames()
	report.FrameTime.Finalize()
	report.Collect(g, d)
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info("soak finished", zap.Int64("frames", report.TotalFrames), zap.Duration("elapsed", report.TotalTime))

	fmt.Println("\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("generate report", zap.Error(err))
	}
	fmt.Println("--- End of Report ---")
}

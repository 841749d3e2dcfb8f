package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/plus3/homestead/catalog"
	"github.com/plus3/homestead/config"
	"github.com/plus3/homestead/game"
	hebiten "github.com/plus3/homestead/platform/ebiten"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "homestead.toml", "Path to the TOML config file.")
	overlay := flag.Bool("debug", false, "Start with the inspector overlay open.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "homestead: %v\n", err)
		os.Exit(1)
	}
	if *overlay {
		cfg.Debug.Overlay = true
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "homestead: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cat, err := catalog.Load(cfg.Assets.Catalog, logger.Named("catalog"))
	if err != nil {
		logger.Fatal("load catalog", zap.Error(err))
	}

	app := hebiten.NewApp(cfg, cat, logger)
	rng := game.NewRand(cfg.World.Seed)
	game.Populate(app.Game().World(), rng, cfg.World)

	logger.Info("starting",
		zap.String("config", *configPath),
		zap.Int("entities", app.Game().World().Pool.Len()),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height))

	if err := app.Run(); err != nil {
		logger.Fatal("run", zap.Error(err))
	}
	logger.Info("stopped", zap.Int64("frames", app.Game().Frames()))
}

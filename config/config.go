// Package config loads the game settings from TOML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Camera  CameraConfig  `toml:"camera"`
	World   WorldConfig   `toml:"world"`
	UI      UIConfig      `toml:"ui"`
	Assets  AssetsConfig  `toml:"assets"`
	Logging LoggingConfig `toml:"logging"`
	Debug   DebugConfig   `toml:"debug"`
}

type WindowConfig struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	ClearColor uint32 `toml:"clear_color"` // 0xRRGGBB
}

type CameraConfig struct {
	Zoom         float32 `toml:"zoom"`
	Rate         float32 `toml:"rate"`
	MaxDeltaTime float64 `toml:"max_delta_time"` // seconds
}

type WorldConfig struct {
	TileWidth       float32 `toml:"tile_width"`
	SelectionRadius float32 `toml:"selection_radius"`
	PickupRadius    float32 `toml:"pickup_radius"`
	PlayerSpeed     float32 `toml:"player_speed"`
	Barrels         int     `toml:"barrels"`
	Trees           int     `toml:"trees"`
	SpawnExtent     float32 `toml:"spawn_extent"`
	TileViewWidth   int     `toml:"tile_view_width"`
	TileViewHeight  int     `toml:"tile_view_height"`
	Seed            uint64  `toml:"seed"` // 0 picks a random seed
}

type UIConfig struct {
	Width     float32 `toml:"width"`
	Height    float32 `toml:"height"`
	PanelRate float32 `toml:"panel_rate"`
}

type AssetsConfig struct {
	SpriteDir string `toml:"sprite_dir"`
	Catalog   string `toml:"catalog"` // empty uses the built-in catalog
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"
}

type DebugConfig struct {
	Overlay bool `toml:"overlay"`
}

// Load reads path over Default. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the game cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Camera.Zoom <= 0 {
		errs = append(errs, fmt.Errorf("camera zoom %v", c.Camera.Zoom))
	}
	if c.Camera.Rate <= 0 {
		errs = append(errs, fmt.Errorf("camera rate %v", c.Camera.Rate))
	}
	if c.Camera.MaxDeltaTime <= 0 {
		errs = append(errs, fmt.Errorf("camera max delta time %v", c.Camera.MaxDeltaTime))
	}
	if c.World.TileWidth <= 0 {
		errs = append(errs, fmt.Errorf("tile width %v", c.World.TileWidth))
	}
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		errs = append(errs, fmt.Errorf("ui size %vx%v", c.UI.Width, c.UI.Height))
	}
	if c.UI.PanelRate <= 0 {
		errs = append(errs, fmt.Errorf("ui panel rate %v", c.UI.PanelRate))
	}
	if c.World.Barrels < 0 || c.World.Trees < 0 {
		errs = append(errs, errors.New("negative spawn count"))
	}
	return errors.Join(errs...)
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Homestead",
			Width:      1280,
			Height:     720,
			ClearColor: 0x2a2d3a,
		},
		Camera: CameraConfig{
			Zoom:         5.3,
			Rate:         15,
			MaxDeltaTime: 0.1,
		},
		World: WorldConfig{
			TileWidth:       16,
			SelectionRadius: 16,
			PickupRadius:    20,
			PlayerSpeed:     100,
			Barrels:         10,
			Trees:           10,
			SpawnExtent:     100,
			TileViewWidth:   12,
			TileViewHeight:  8,
		},
		UI: UIConfig{
			Width:     240,
			Height:    135,
			PanelRate: 15,
		},
		Assets: AssetsConfig{
			SpriteDir: "res/sprites",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

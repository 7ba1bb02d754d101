package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/weed-whacker/internal/catalog"
	"github.com/vovakirdan/weed-whacker/internal/config"
	"github.com/vovakirdan/weed-whacker/internal/game"
)

// Flags shared by every command that builds a garden.
var (
	flagConfig  string
	flagCatalog string
	flagPreset  string
	flagWeather string
)

func addGardenFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagCatalog, "catalog", "", "Path to custom tool/weed/weather catalog YAML")
	cmd.Flags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().StringVar(&flagWeather, "weather", "", "Weather event key to start every garden with")
}

// loadGameConfig resolves the config file and applies the preset.
func loadGameConfig() (config.GameConfig, error) {
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return config.GameConfig{}, err
	}
	cfg, err := config.LoadGame(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("preset %s: %w", preset, err)
	}
	return cfg, nil
}

// gameOptions loads everything a garden needs from the flags.
func gameOptions(logger *log.Logger) (game.Options, error) {
	cfg, err := loadGameConfig()
	if err != nil {
		return game.Options{}, err
	}
	cat, err := catalog.Load(flagCatalog, cfg.Player.ChopCooldownMS)
	if err != nil {
		return game.Options{}, err
	}
	if flagWeather != "" {
		if _, ok := cat.EventByKey(flagWeather); !ok {
			return game.Options{}, fmt.Errorf("unknown weather %q (see 'weedwhacker catalog')", flagWeather)
		}
	}
	logger.Debug("garden configured",
		"world", cfg.World.Size,
		"tools", cat.NumTools(),
		"weeds", cat.NumWeeds(),
		"events", cat.NumEvents(),
	)
	return game.Options{
		Config:  cfg,
		Catalog: cat,
		Logger:  logger,
		Weather: flagWeather,
	}, nil
}

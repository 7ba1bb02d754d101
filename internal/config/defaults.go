package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in garden configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{
			Size:         30,
			StartingSize: 5,
		},
		Player: PlayerConfig{
			MoveCooldownMS: 150,
			ChopCooldownMS: 1000,
		},
		Weeds: WeedsConfig{
			SpawnIntervalMS: 5000,
		},
		Economy: EconomyConfig{
			IncomePerTilePerSecond: 0.01,
			TileBaseCost:           10,
			TileCostIncrement:      1,
		},
		Weather: WeatherConfig{
			RollIntervalMS: 60000,
			EventChance:    0.35,
		},
	}
}

// DefaultGameYAML returns the embedded default YAML, e.g. for `--print-config`.
func DefaultGameYAML() []byte {
	return defaultGameYAML
}

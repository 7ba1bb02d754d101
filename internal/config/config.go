// Package config provides YAML-based game configuration loading,
// validation and difficulty presets.
package config

import "fmt"

// GameConfig contains every tunable constant of a garden session.
type GameConfig struct {
	World   WorldConfig   `yaml:"world"`
	Player  PlayerConfig  `yaml:"player"`
	Weeds   WeedsConfig   `yaml:"weeds"`
	Economy EconomyConfig `yaml:"economy"`
	Weather WeatherConfig `yaml:"weather"`
}

// WorldConfig defines the grid dimensions.
type WorldConfig struct {
	Size         int `yaml:"size"`          // Side length of the square world
	StartingSize int `yaml:"starting_size"` // Side length of the owned starting plot
}

// PlayerConfig defines base action cooldowns in milliseconds.
type PlayerConfig struct {
	MoveCooldownMS int `yaml:"move_cooldown_ms"`
	ChopCooldownMS int `yaml:"chop_cooldown_ms"` // Inherited by tools that omit their own cooldown
}

// WeedsConfig defines the weed spawn scheduler.
type WeedsConfig struct {
	SpawnIntervalMS int `yaml:"spawn_interval_ms"`
}

// EconomyConfig defines income and tile pricing.
type EconomyConfig struct {
	IncomePerTilePerSecond float64 `yaml:"income_per_tile_per_second"`
	TileBaseCost           int     `yaml:"tile_base_cost"`
	TileCostIncrement      int     `yaml:"tile_cost_increment"`
	StartingMoney          float64 `yaml:"starting_money"`
}

// WeatherConfig defines how often random weather is rolled.
type WeatherConfig struct {
	RollIntervalMS int     `yaml:"roll_interval_ms"` // 0 disables random weather
	EventChance    float64 `yaml:"event_chance"`     // Probability per roll, 0..1
}

// ValidationError reports an invalid configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s %s", e.Field, e.Message)
}

// Validate checks the configuration for values the simulation cannot run with.
func (c GameConfig) Validate() error {
	switch {
	case c.World.Size <= 0:
		return ValidationError{"world.size", "must be positive"}
	case c.World.StartingSize <= 0:
		return ValidationError{"world.starting_size", "must be positive"}
	case c.World.StartingSize > c.World.Size:
		return ValidationError{"world.starting_size", fmt.Sprintf("must not exceed world.size (%d)", c.World.Size)}
	case c.Player.MoveCooldownMS < 0:
		return ValidationError{"player.move_cooldown_ms", "must be non-negative"}
	case c.Player.ChopCooldownMS < 0:
		return ValidationError{"player.chop_cooldown_ms", "must be non-negative"}
	case c.Weeds.SpawnIntervalMS <= 0:
		return ValidationError{"weeds.spawn_interval_ms", "must be positive"}
	case c.Economy.IncomePerTilePerSecond < 0:
		return ValidationError{"economy.income_per_tile_per_second", "must be non-negative"}
	case c.Economy.TileBaseCost < 0:
		return ValidationError{"economy.tile_base_cost", "must be non-negative"}
	case c.Economy.TileCostIncrement < 0:
		return ValidationError{"economy.tile_cost_increment", "must be non-negative"}
	case c.Economy.StartingMoney < 0:
		return ValidationError{"economy.starting_money", "must be non-negative"}
	case c.Weather.RollIntervalMS < 0:
		return ValidationError{"weather.roll_interval_ms", "must be non-negative"}
	case c.Weather.EventChance < 0 || c.Weather.EventChance > 1:
		return ValidationError{"weather.event_chance", "must be within [0, 1]"}
	}
	return nil
}

package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty preset %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Weeds.SpawnIntervalMS = cfg.Weeds.SpawnIntervalMS * 3 / 2
		cfg.Economy.IncomePerTilePerSecond *= 1.5
		cfg.Economy.StartingMoney += 10
	case DifficultyHard:
		cfg.Weeds.SpawnIntervalMS = max(1, cfg.Weeds.SpawnIntervalMS*3/5)
		cfg.Economy.IncomePerTilePerSecond *= 0.75
		cfg.Economy.TileCostIncrement *= 2
		if cfg.Weather.EventChance < 0.5 {
			cfg.Weather.EventChance = 0.5
		}
	}
}

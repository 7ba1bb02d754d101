package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/catalog.yaml
var defaultCatalogYAML []byte

// DefaultChopCooldownMS is inherited by tools that omit cooldown_ms when no
// game config supplies another base.
const DefaultChopCooldownMS = 1000

// yamlCatalog is the on-disk catalog layout.
type yamlCatalog struct {
	Tools  []yamlTool  `yaml:"tools"`
	Weeds  []yamlWeed  `yaml:"weeds"`
	Events []yamlEvent `yaml:"events"`
}

type yamlTool struct {
	Key         string  `yaml:"key"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Efficiency  float64 `yaml:"efficiency"`
	CooldownMS  *int    `yaml:"cooldown_ms"`
	Longevity   int     `yaml:"longevity"`
	Reach       [][]int `yaml:"reach"`
	Cost        int     `yaml:"cost"`
	Starter     bool    `yaml:"starter"`
}

type yamlWeed struct {
	Key       string   `yaml:"key"`
	Name      string   `yaml:"name"`
	Toughness float64  `yaml:"toughness"`
	Regrow    int      `yaml:"regrow"`
	Weight    *float64 `yaml:"weight"`
}

type yamlEvent struct {
	Key         string          `yaml:"key"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	DurationMS  int             `yaml:"duration_ms"`
	Default     bool            `yaml:"default"`
	Multipliers yamlMultipliers `yaml:"multipliers"`
}

type yamlMultipliers struct {
	WeedSpawnRate  *float64 `yaml:"weed_spawn_rate"`
	WeedGrowthRate *float64 `yaml:"weed_growth_rate"`
	PlayerSpeed    *float64 `yaml:"player_speed"`
	Income         *float64 `yaml:"income"`
	ToolCooldown   *float64 `yaml:"tool_cooldown"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalogYAML, DefaultChopCooldownMS)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded defaults are invalid: %v", err))
	}
	return c
}

// DefaultYAML returns the embedded catalog source.
func DefaultYAML() []byte {
	return defaultCatalogYAML
}

// Parse decodes and validates a YAML catalog. Tools without cooldown_ms
// inherit baseChopCooldownMS.
func Parse(data []byte, baseChopCooldownMS int) (*Catalog, error) {
	var yc yamlCatalog
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("catalog: yaml unmarshal: %w", err)
	}

	tools := make([]Tool, 0, len(yc.Tools))
	for _, yt := range yc.Tools {
		reach, err := parseReach(yt.Key, yt.Reach)
		if err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		cooldown := baseChopCooldownMS
		if yt.CooldownMS != nil {
			cooldown = *yt.CooldownMS
		}
		tools = append(tools, Tool{
			Key:         yt.Key,
			Name:        orKey(yt.Name, yt.Key),
			Description: yt.Description,
			Efficiency:  yt.Efficiency,
			Cooldown:    cooldown,
			Longevity:   yt.Longevity,
			Reach:       reach,
			Cost:        yt.Cost,
			Starter:     yt.Starter,
		})
	}

	weeds := make([]Weed, 0, len(yc.Weeds))
	for _, yw := range yc.Weeds {
		weeds = append(weeds, Weed{
			Key:       yw.Key,
			Name:      orKey(yw.Name, yw.Key),
			Toughness: yw.Toughness,
			Regrow:    yw.Regrow,
			Weight:    orOne(yw.Weight),
		})
	}

	events := make([]Event, 0, len(yc.Events))
	for _, ye := range yc.Events {
		m := ye.Multipliers
		events = append(events, Event{
			Key:         ye.Key,
			Name:        orKey(ye.Name, ye.Key),
			Description: ye.Description,
			Duration:    ye.DurationMS,
			Default:     ye.Default,
			Multipliers: Multipliers{
				WeedSpawnRate:  orOne(m.WeedSpawnRate),
				WeedGrowthRate: orOne(m.WeedGrowthRate),
				PlayerSpeed:    orOne(m.PlayerSpeed),
				Income:         orOne(m.Income),
				ToolCooldown:   orOne(m.ToolCooldown),
			},
		})
	}

	return New(tools, weeds, events)
}

// Load reads a catalog.
// Search order: customPath -> ~/.weedwhacker/configs/catalog.yaml -> ./configs/catalog.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the other
// locations are skipped when unusable.
func Load(customPath string, baseChopCooldownMS int) (*Catalog, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("catalog: failed to read %s: %w", customPath, err)
		}
		return Parse(data, baseChopCooldownMS)
	}

	var candidates []string
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".weedwhacker", "configs", "catalog.yaml"))
	}
	candidates = append(candidates, filepath.Join("configs", "catalog.yaml"))

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if c, err := Parse(data, baseChopCooldownMS); err == nil {
			return c, nil
		}
	}

	return Parse(defaultCatalogYAML, baseChopCooldownMS)
}

func parseReach(key string, raw [][]int) ([]Offset, error) {
	reach := make([]Offset, 0, len(raw))
	for _, pair := range raw {
		if len(pair) != 2 {
			return nil, ValidationError{
				Code:    "INVALID_REACH",
				Message: fmt.Sprintf("tool %q: reach entries must be [dx, dy] pairs", key),
			}
		}
		reach = append(reach, Offset{DX: pair[0], DY: pair[1]})
	}
	return reach, nil
}

func orOne(v *float64) float64 {
	if v == nil {
		return 1
	}
	return *v
}

func orKey(name, key string) string {
	if name == "" {
		return key
	}
	return name
}

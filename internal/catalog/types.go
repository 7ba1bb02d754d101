// Package catalog holds the immutable tool, weed and event tables a garden
// session is built from. Entries are addressed by typed indices; string keys
// only exist at the YAML and CLI boundary.
package catalog

import "math"

// ToolID indexes a tool in a Catalog.
type ToolID int

// WeedID indexes a weed in a Catalog.
type WeedID int

// EventID indexes a weather event in a Catalog.
type EventID int

// Offset is a tile offset relative to the player.
type Offset struct {
	DX, DY int
}

// Tool describes a weed-clearing tool.
type Tool struct {
	ID          ToolID
	Key         string
	Name        string
	Description string
	Efficiency  float64  // Damage per chop
	Cooldown    int      // Base ms between chops
	Longevity   int      // Uses before breaking; <= 0 never breaks
	Reach       []Offset // Tiles hit by one chop, always includes (0,0)
	Cost        int
	Starter     bool // Owned from the start, cannot break
}

// Breakable reports whether the tool wears out.
func (t *Tool) Breakable() bool {
	return t.Longevity > 0
}

// SellPrice returns the resale value after the given number of uses.
// Unbreakable tools cannot be sold.
func (t *Tool) SellPrice(uses int) (int, bool) {
	if !t.Breakable() {
		return 0, false
	}
	wear := 1 - float64(uses)/float64(t.Longevity)
	if wear < 0 {
		wear = 0
	}
	return int(math.Floor(float64(t.Cost) / 2 * wear)), true
}

// Weed describes a weed species.
type Weed struct {
	ID        WeedID
	Key       string
	Name      string
	Toughness float64 // Health at spawn
	Regrow    int     // Player movements per regenerated health point; 0 disables regrowth
	Weight    float64 // Relative spawn weight
}

// ChopsRequired returns how many undisturbed hits of the given efficiency clear the weed.
func (w *Weed) ChopsRequired(efficiency float64) int {
	if efficiency <= 0 {
		return 0
	}
	return int(math.Ceil(w.Toughness / efficiency))
}

// Multipliers are the five global modifiers a weather event applies.
type Multipliers struct {
	WeedSpawnRate  float64
	WeedGrowthRate float64
	PlayerSpeed    float64
	Income         float64
	ToolCooldown   float64
}

// Neutral returns multipliers that change nothing.
func Neutral() Multipliers {
	return Multipliers{
		WeedSpawnRate:  1,
		WeedGrowthRate: 1,
		PlayerSpeed:    1,
		Income:         1,
		ToolCooldown:   1,
	}
}

// Event describes a weather event.
type Event struct {
	ID          EventID
	Key         string
	Name        string
	Description string
	Duration    int // ms; <= 0 lasts until replaced
	Multipliers Multipliers
	Default     bool // Active whenever no other event runs
}

// Indefinite reports whether the event never expires on its own.
func (e *Event) Indefinite() bool {
	return e.Duration <= 0
}

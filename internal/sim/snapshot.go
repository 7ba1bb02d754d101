package sim

import "github.com/vovakirdan/weed-whacker/internal/catalog"

// OwnedTool is an inventory entry as shown to the player.
type OwnedTool struct {
	ID       catalog.ToolID
	Uses     int
	Equipped bool
}

// PlayerView is the renderable part of the player.
type PlayerView struct {
	Pos             Coord
	MovementCount   int
	MoveCooldownPct float64
	ChopCooldownPct float64
	CurrentTool     catalog.ToolID
	Owned           []OwnedTool
}

// EconomyView is the renderable part of the economy.
type EconomyView struct {
	Money          float64
	MoneyDisplay   int
	IncomeRate     float64 // Per second, weather included
	NextTileCost   int
	CanAffordTile  bool
	OwnedTiles     int
	WeedTiles      int
	TilesPurchased int
}

// WeatherView is the renderable part of the event manager.
type WeatherView struct {
	Event       catalog.EventID
	Name        string
	Description string
	Default     bool
	Progress    float64 // Remaining fraction
	RemainingMS int
	Multipliers catalog.Multipliers
}

// Snapshot is a read-only copy of everything a renderer needs apart from
// per-tile state, which it reads through Grid.
type Snapshot struct {
	WorldSize   int
	ElapsedMS   int
	Player      PlayerView
	Economy     EconomyView
	Weather     WeatherView
	Purchasable []Coord
	Selected    int // Index into Purchasable, -1 when empty
	Stats       Stats
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	p := s.player
	owned := make([]OwnedTool, 0, len(p.owned))
	for _, id := range p.owned {
		owned = append(owned, OwnedTool{ID: id, Uses: p.Uses(id), Equipped: id == p.current})
	}

	ev := s.events.Current()
	purchasable := s.PurchasableTiles()
	selected := -1
	if len(purchasable) > 0 {
		selected = min(s.selection, len(purchasable)-1)
	}

	return Snapshot{
		WorldSize: s.grid.Size(),
		ElapsedMS: s.elapsed,
		Player: PlayerView{
			Pos:             p.Position(),
			MovementCount:   p.MovementCount(),
			MoveCooldownPct: p.MoveCooldownPercent(),
			ChopCooldownPct: p.ChopCooldownPercent(),
			CurrentTool:     p.CurrentTool(),
			Owned:           owned,
		},
		Economy: EconomyView{
			Money:          s.economy.Money(),
			MoneyDisplay:   s.economy.MoneyDisplay(),
			IncomeRate:     s.economy.IncomeRate(ev.Multipliers.Income),
			NextTileCost:   s.economy.NextTileCost(),
			CanAffordTile:  s.economy.CanAffordTile(),
			OwnedTiles:     s.economy.OwnedTileCount(),
			WeedTiles:      s.grid.CountTilesByType(TileWeed),
			TilesPurchased: s.economy.TilesPurchased(),
		},
		Weather: WeatherView{
			Event:       ev.ID,
			Name:        ev.Name,
			Description: ev.Description,
			Default:     s.events.IsDefault(),
			Progress:    s.events.ProgressPercent(),
			RemainingMS: s.events.Remaining(),
			Multipliers: ev.Multipliers,
		},
		Purchasable: purchasable,
		Selected:    selected,
		Stats:       s.stats,
	}
}

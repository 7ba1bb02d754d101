package sim

import (
	"testing"

	"github.com/vovakirdan/weed-whacker/internal/catalog"
	"github.com/vovakirdan/weed-whacker/internal/config"
)

// testConfig is the default config with random weather disabled.
func testConfig() config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.Weather.RollIntervalMS = 0
	return cfg
}

// testCatalog has a starter hoe, a fragile sprayer, a wide rake and a
// tough weed, plus one event per multiplier under test.
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	neutral := catalog.Neutral()
	frozen := catalog.Neutral()
	frozen.WeedSpawnRate = 0
	slow := catalog.Neutral()
	slow.PlayerSpeed = 0.5

	c, err := catalog.New(
		[]catalog.Tool{
			{Key: "hoe", Name: "Hoe", Efficiency: 1, Cooldown: 1000, Longevity: -1, Reach: []catalog.Offset{{DX: 0, DY: 0}}, Starter: true},
			{Key: "sprayer", Name: "Sprayer", Efficiency: 1.2, Cooldown: 200, Longevity: 3, Reach: []catalog.Offset{{DX: 0, DY: 0}}, Cost: 20},
			{Key: "rake", Name: "Rake", Efficiency: 1, Cooldown: 500, Longevity: 10, Reach: []catalog.Offset{{DX: 0, DY: 0}, {DX: 1, DY: 0}, {DX: -1, DY: 0}}, Cost: 40},
		},
		[]catalog.Weed{{Key: "thistle", Name: "Thistle", Toughness: 3, Regrow: 2, Weight: 1}},
		[]catalog.Event{
			{Key: "calm", Name: "Calm", Multipliers: neutral, Default: true},
			{Key: "frost", Name: "Frost", Duration: 10000, Multipliers: frozen},
			{Key: "mud", Name: "Mud", Duration: 10000, Multipliers: slow},
		},
	)
	if err != nil {
		t.Fatalf("catalog.New() failed: %v", err)
	}
	return c
}

func newTestSession(t *testing.T, cfg config.GameConfig, cat *catalog.Catalog) *Session {
	t.Helper()
	s, err := NewSession(cfg, cat, WithSeed(42))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

// checkTileInvariants verifies ownership and weed-field consistency on every tile.
func checkTileInvariants(t *testing.T, g *Grid) {
	t.Helper()
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			tile := g.Tile(x, y)
			if tile.Owned() != (tile.Type == TileGrass || tile.Type == TileWeed) {
				t.Fatalf("tile (%d,%d): Owned() inconsistent with %s", x, y, tile.Type)
			}
			if (tile.Weed != nil) != (tile.Type == TileWeed) {
				t.Fatalf("tile (%d,%d): weed=%v type=%s", x, y, tile.Weed, tile.Type)
			}
			if tile.Type != TileWeed && tile.WeedHealth != 0 {
				t.Fatalf("tile (%d,%d): health %v on %s", x, y, tile.WeedHealth, tile.Type)
			}
			if tile.Type == TileWeed && tile.WeedHealth > tile.Weed.Toughness {
				t.Fatalf("tile (%d,%d): health %v above toughness %v", x, y, tile.WeedHealth, tile.Weed.Toughness)
			}
		}
	}
}

// plantAt puts a weed directly on a tile.
func plantAt(t *testing.T, g *Grid, c Coord, w *catalog.Weed, movementCount int) *Tile {
	t.Helper()
	tile := g.At(c)
	if tile == nil || tile.Type != TileGrass {
		t.Fatalf("cannot plant at %s", c)
	}
	tile.plant(w, movementCount)
	return tile
}

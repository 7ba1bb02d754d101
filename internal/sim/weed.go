package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/weed-whacker/internal/catalog"
)

// plant turns a grass tile into a weed at full health.
func (t *Tile) plant(w *catalog.Weed, movementCount int) {
	t.Type = TileWeed
	t.Weed = w
	t.WeedHealth = w.Toughness
	t.LastMovementCount = movementCount
}

// regrow applies health recovered since the last damage. Regrowth is keyed
// to player movements, not wall-clock time.
func (t *Tile) regrow(movementCount int, growthMult float64) {
	if t.Type != TileWeed || t.Weed.Regrow <= 0 || growthMult <= 0 {
		return
	}
	moved := movementCount - t.LastMovementCount
	if moved <= 0 {
		return
	}
	gained := math.Floor(float64(moved) * growthMult / float64(t.Weed.Regrow))
	t.WeedHealth = math.Min(t.Weed.Toughness, t.WeedHealth+gained)
}

// damage regrows then hits the weed. Returns true when the weed dies.
func (t *Tile) damage(efficiency float64, movementCount int, growthMult float64) bool {
	if t.Type != TileWeed {
		return false
	}
	t.regrow(movementCount, growthMult)
	t.WeedHealth -= efficiency
	t.LastMovementCount = movementCount
	if t.WeedHealth <= 0 {
		t.clearWeed()
		return true
	}
	return false
}

func (t *Tile) clearWeed() {
	t.Type = TileGrass
	t.Weed = nil
	t.WeedHealth = 0
}

// spawnWeed plants a catalog-weighted weed on a uniformly random grass tile.
// Returns false when no grass is left.
func (g *Grid) spawnWeed(rng *rand.Rand, cat *catalog.Catalog, movementCount int) (Coord, bool) {
	grass := make([]int, 0, len(g.tiles))
	for i := range g.tiles {
		if g.tiles[i].Type == TileGrass {
			grass = append(grass, i)
		}
	}
	if len(grass) == 0 {
		return Coord{}, false
	}

	idx := grass[rng.Intn(len(grass))]
	g.tiles[idx].plant(cat.PickWeed(rng), movementCount)
	return C(idx%g.size, idx/g.size), true
}

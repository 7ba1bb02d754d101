// Package sim is the garden rules engine: tile ownership, weed lifecycle,
// tool combat, economy and weather. It is single-threaded; callers step it
// once per frame and read state back through Snapshot.
package sim

import "github.com/vovakirdan/weed-whacker/internal/catalog"

// TileType is the ownership state of a tile.
type TileType uint8

const (
	TileUnowned TileType = iota
	TileGrass
	TileWeed
)

// String returns the tile type name.
func (t TileType) String() string {
	switch t {
	case TileUnowned:
		return "unowned"
	case TileGrass:
		return "grass"
	case TileWeed:
		return "weed"
	default:
		return "unknown"
	}
}

// Tile is one cell of the garden.
// Weed is non-nil iff Type == TileWeed; WeedHealth is 0 otherwise.
type Tile struct {
	Type              TileType
	Weed              *catalog.Weed
	WeedHealth        float64
	LastMovementCount int // Player movement count at spawn or last damage
}

// Owned reports whether the tile belongs to the player.
func (t *Tile) Owned() bool {
	return t.Type == TileGrass || t.Type == TileWeed
}

// Walkable reports whether the player may stand on the tile.
func (t *Tile) Walkable() bool {
	return t.Owned()
}

// Grid is a fixed square lattice of tiles stored row-major: index = y*size + x.
type Grid struct {
	size  int
	tiles []Tile
}

// NewGrid creates a worldSize x worldSize grid with a centered
// startingSize x startingSize plot of grass.
func NewGrid(worldSize, startingSize int) *Grid {
	g := &Grid{
		size:  worldSize,
		tiles: make([]Tile, worldSize*worldSize),
	}
	start := worldSize/2 - startingSize/2
	for y := start; y < start+startingSize; y++ {
		for x := start; x < start+startingSize; x++ {
			if t := g.Tile(x, y); t != nil {
				t.Type = TileGrass
			}
		}
	}
	return g
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// Center returns the middle tile, which is always inside the starting plot.
func (g *Grid) Center() Coord {
	return C(g.size/2, g.size/2)
}

// InBounds returns true if the coordinate is inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// Tile returns the tile at (x, y), or nil when out of bounds.
func (g *Grid) Tile(x, y int) *Tile {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.tiles[y*g.size+x]
}

// At is Tile for a Coord.
func (g *Grid) At(c Coord) *Tile {
	return g.Tile(c.X, c.Y)
}

// CountTilesByType counts tiles of the given type.
func (g *Grid) CountTilesByType(t TileType) int {
	n := 0
	for i := range g.tiles {
		if g.tiles[i].Type == t {
			n++
		}
	}
	return n
}

// OwnedCount returns the number of grass and weed tiles.
func (g *Grid) OwnedCount() int {
	return g.CountTilesByType(TileGrass) + g.CountTilesByType(TileWeed)
}

// IsAdjacentToOwned reports whether any 4-neighbour of (x, y) is owned.
func (g *Grid) IsAdjacentToOwned(x, y int) bool {
	c := C(x, y)
	for _, d := range Directions {
		if t := g.At(c.Step(d)); t != nil && t.Owned() {
			return true
		}
	}
	return false
}

// IsPurchasable reports whether (x, y) is unowned and borders owned land.
func (g *Grid) IsPurchasable(x, y int) bool {
	t := g.Tile(x, y)
	return t != nil && t.Type == TileUnowned && g.IsAdjacentToOwned(x, y)
}

// claim flips an unowned tile to grass.
func (g *Grid) claim(x, y int) bool {
	t := g.Tile(x, y)
	if t == nil || t.Type != TileUnowned {
		return false
	}
	t.Type = TileGrass
	return true
}

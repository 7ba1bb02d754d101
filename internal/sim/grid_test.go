package sim

import "testing"

func TestNewGridStartingPlot(t *testing.T) {
	g := NewGrid(30, 5)

	if g.Size() != 30 {
		t.Fatalf("Size() = %d, want 30", g.Size())
	}
	if got := g.CountTilesByType(TileGrass); got != 25 {
		t.Errorf("grass = %d, want 25", got)
	}
	if got := g.CountTilesByType(TileUnowned); got != 900-25 {
		t.Errorf("unowned = %d, want 875", got)
	}

	// start = 30/2 - 5/2 = 13
	tests := []struct {
		x, y int
		want TileType
	}{
		{13, 13, TileGrass},
		{17, 17, TileGrass},
		{15, 15, TileGrass},
		{12, 13, TileUnowned},
		{18, 17, TileUnowned},
		{0, 0, TileUnowned},
	}
	for _, tt := range tests {
		if got := g.Tile(tt.x, tt.y).Type; got != tt.want {
			t.Errorf("Tile(%d,%d) = %s, want %s", tt.x, tt.y, got, tt.want)
		}
	}

	if c := g.Center(); g.At(c).Type != TileGrass {
		t.Errorf("center %s not grass", c)
	}
	checkTileInvariants(t, g)
}

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(10, 2)
	for _, c := range []Coord{{-1, 0}, {0, -1}, {10, 0}, {0, 10}, {99, 99}} {
		if g.At(c) != nil {
			t.Errorf("At(%s) should be nil", c)
		}
		if g.IsPurchasable(c.X, c.Y) {
			t.Errorf("IsPurchasable(%s) should be false", c)
		}
	}
}

func TestGridPurchasability(t *testing.T) {
	g := NewGrid(30, 5)
	center := g.Center()

	if g.IsPurchasable(center.X, center.Y) {
		t.Error("owned tile must not be purchasable")
	}

	// Manhattan distance 1 outside the plot
	if !g.IsPurchasable(12, 15) {
		t.Error("(12,15) should be purchasable")
	}
	// Diagonal only neighbours do not count
	if g.IsPurchasable(12, 12) {
		t.Error("(12,12) touches the plot only diagonally")
	}

	far := C(5, 15)
	if manhattan(center, far) != 10 {
		t.Fatalf("test setup: distance = %d", manhattan(center, far))
	}
	if g.IsPurchasable(far.X, far.Y) {
		t.Error("distant tile should not be purchasable")
	}

	for x := 12; x > far.X; x-- {
		if !g.claim(x, 15) {
			t.Fatalf("claim(%d,15) failed", x)
		}
	}
	if !g.IsPurchasable(far.X, far.Y) {
		t.Error("distant tile should become purchasable once the plot reaches it")
	}
	checkTileInvariants(t, g)
}

func TestGridClaim(t *testing.T) {
	g := NewGrid(10, 2)
	if g.claim(5, 5) {
		t.Error("claim on owned tile should fail")
	}
	if g.claim(-1, 0) {
		t.Error("claim out of bounds should fail")
	}
	if !g.claim(0, 0) || g.Tile(0, 0).Type != TileGrass {
		t.Error("claim on unowned tile should flip it to grass")
	}
}

func TestOwnedCountIncludesWeeds(t *testing.T) {
	g := NewGrid(10, 3)
	cat := testCatalog(t)
	plantAt(t, g, g.Center(), cat.Weed(0), 0)

	if g.OwnedCount() != 9 {
		t.Errorf("OwnedCount() = %d, want 9", g.OwnedCount())
	}
	if g.CountTilesByType(TileGrass) != 8 {
		t.Errorf("grass = %d, want 8", g.CountTilesByType(TileGrass))
	}
	if !g.At(g.Center()).Walkable() {
		t.Error("weed tiles are walkable")
	}
}

func manhattan(a, b Coord) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func TestDirDelta(t *testing.T) {
	origin := C(5, 5)
	want := map[Dir]Coord{
		DirUp:    {5, 4},
		DirDown:  {5, 6},
		DirLeft:  {4, 5},
		DirRight: {6, 5},
	}
	for d, c := range want {
		if got := origin.Step(d); got != c {
			t.Errorf("Step(%s) = %s, want %s", d, got, c)
		}
	}
}

package sim

// PurchasableTiles lists the player's purchasable neighbours in the order
// up, down, left, right.
func (s *Session) PurchasableTiles() []Coord {
	pos := s.player.Position()
	var tiles []Coord
	for _, d := range Directions {
		c := pos.Step(d)
		if s.grid.IsPurchasable(c.X, c.Y) {
			tiles = append(tiles, c)
		}
	}
	return tiles
}

// SelectionIndex returns the selected index into PurchasableTiles.
func (s *Session) SelectionIndex() int {
	return s.selection
}

// CycleSelection moves the selection by step, wrapping around.
func (s *Session) CycleSelection(step int) {
	n := len(s.PurchasableTiles())
	if n == 0 {
		s.selection = 0
		return
	}
	s.selection = ((s.selection+step)%n + n) % n
}

// SelectedTile returns the currently selected purchasable tile.
func (s *Session) SelectedTile() (Coord, bool) {
	tiles := s.PurchasableTiles()
	if len(tiles) == 0 {
		return Coord{}, false
	}
	if s.selection >= len(tiles) {
		s.selection = 0
	}
	return tiles[s.selection], true
}

// BuySelectedTile purchases the selected tile and resets the selection.
func (s *Session) BuySelectedTile() bool {
	c, ok := s.SelectedTile()
	if !ok {
		return false
	}
	if !s.PurchaseTile(c.X, c.Y) {
		return false
	}
	s.selection = 0
	return true
}

// PurchaseTile buys any purchasable tile, e.g. one picked with a pointer.
func (s *Session) PurchaseTile(x, y int) bool {
	cost := s.economy.NextTileCost()
	if !s.economy.TryPurchaseTile(x, y) {
		return false
	}
	s.stats.TilesBought++
	s.logger.Debug("tile bought", "at", C(x, y), "cost", cost)
	return true
}

func (s *Session) clampSelection() {
	if n := len(s.PurchasableTiles()); s.selection >= n {
		s.selection = 0
	}
}

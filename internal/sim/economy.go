package sim

import "github.com/vovakirdan/weed-whacker/internal/config"

// Economy tracks money and the escalating price of land.
type Economy struct {
	grid *Grid

	money          float64
	tilesPurchased int

	incomePerTile float64 // Per grass tile per second
	baseCost      int
	increment     int
}

// NewEconomy creates an economy over grid.
func NewEconomy(grid *Grid, cfg config.EconomyConfig) *Economy {
	return &Economy{
		grid:          grid,
		money:         cfg.StartingMoney,
		incomePerTile: cfg.IncomePerTilePerSecond,
		baseCost:      cfg.TileBaseCost,
		increment:     cfg.TileCostIncrement,
	}
}

// Money returns the current balance.
func (e *Economy) Money() float64 { return e.money }

// MoneyDisplay returns the balance as whole currency units for the HUD.
func (e *Economy) MoneyDisplay() int { return int(e.money) }

// TilesPurchased returns how many tiles have been bought.
func (e *Economy) TilesPurchased() int { return e.tilesPurchased }

// Update accrues income for dtMS. Only grass earns; weeds do not.
func (e *Economy) Update(dtMS int, incomeMult float64) {
	if dtMS <= 0 {
		return
	}
	e.money += e.IncomeRate(incomeMult) * float64(dtMS) / 1000
}

// IncomeRate returns income per second at the given multiplier.
func (e *Economy) IncomeRate(incomeMult float64) float64 {
	grass := e.grid.CountTilesByType(TileGrass)
	return float64(grass) * e.incomePerTile * incomeMult
}

// OwnedTileCount returns grass plus weed tiles.
func (e *Economy) OwnedTileCount() int {
	return e.grid.OwnedCount()
}

// NextTileCost returns the price of the next tile: base + purchased*increment.
func (e *Economy) NextTileCost() int {
	return e.baseCost + e.tilesPurchased*e.increment
}

// CanAffordTile reports whether the next tile is affordable.
func (e *Economy) CanAffordTile() bool {
	return e.money >= float64(e.NextTileCost())
}

// TryPurchaseTile buys (x, y) if it is unowned, adjacent to owned land and
// affordable. Nothing changes on failure.
func (e *Economy) TryPurchaseTile(x, y int) bool {
	if !e.grid.IsPurchasable(x, y) || !e.CanAffordTile() {
		return false
	}
	e.money -= float64(e.NextTileCost())
	e.tilesPurchased++
	e.grid.claim(x, y)
	return true
}

// Spend deducts amount if the balance covers it.
func (e *Economy) Spend(amount float64) bool {
	if amount < 0 || e.money < amount {
		return false
	}
	e.money -= amount
	return true
}

// Credit adds a non-negative amount.
func (e *Economy) Credit(amount float64) {
	if amount > 0 {
		e.money += amount
	}
}

package sim

import (
	"testing"

	"github.com/vovakirdan/weed-whacker/internal/config"
)

func TestEconomyIncome(t *testing.T) {
	g := NewGrid(30, 5)
	eco := NewEconomy(g, config.EconomyConfig{
		IncomePerTilePerSecond: 1,
		TileBaseCost:           10,
		TileCostIncrement:      1,
	})

	eco.Update(1000, 1.0)
	if eco.Money() != 25 {
		t.Errorf("money = %v, want 25", eco.Money())
	}

	eco.Update(500, 2.0)
	if eco.Money() != 50 {
		t.Errorf("money = %v, want 50", eco.Money())
	}
	if eco.IncomeRate(1) != 25 {
		t.Errorf("IncomeRate(1) = %v, want 25", eco.IncomeRate(1))
	}
	if eco.MoneyDisplay() != 50 {
		t.Errorf("MoneyDisplay() = %d, want 50", eco.MoneyDisplay())
	}
}

func TestEconomyWeedsDoNotEarn(t *testing.T) {
	g := NewGrid(10, 2)
	cat := testCatalog(t)
	plantAt(t, g, g.Center(), cat.Weed(0), 0)
	eco := NewEconomy(g, config.EconomyConfig{IncomePerTilePerSecond: 1})

	eco.Update(1000, 1)
	if eco.Money() != 3 {
		t.Errorf("money = %v, want 3", eco.Money())
	}
	if eco.OwnedTileCount() != 4 {
		t.Errorf("OwnedTileCount() = %d, want 4", eco.OwnedTileCount())
	}
}

func TestTileCostIsArithmetic(t *testing.T) {
	g := NewGrid(30, 5)
	eco := NewEconomy(g, config.EconomyConfig{TileBaseCost: 10, TileCostIncrement: 3, StartingMoney: 10000})

	if eco.NextTileCost() != 10 {
		t.Fatalf("cost(0) = %d, want 10", eco.NextTileCost())
	}
	// Buy westward along row 15
	for n := 0; n < 8; n++ {
		before := eco.NextTileCost()
		if !eco.TryPurchaseTile(12-n, 15) {
			t.Fatalf("purchase %d failed", n)
		}
		if got := eco.NextTileCost(); got != before+3 {
			t.Fatalf("cost(%d) = %d, want %d", n+1, got, before+3)
		}
	}
	if eco.TilesPurchased() != 8 {
		t.Errorf("TilesPurchased() = %d, want 8", eco.TilesPurchased())
	}
}

func TestPurchaseGuards(t *testing.T) {
	tests := []struct {
		name  string
		money float64
		x, y  int
	}{
		{"already owned", 100, 15, 15},
		{"not adjacent", 100, 5, 15},
		{"out of bounds", 100, -1, 15},
		{"unaffordable", 9.99, 12, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(30, 5)
			eco := NewEconomy(g, config.EconomyConfig{TileBaseCost: 10, TileCostIncrement: 1, StartingMoney: tt.money})
			before := g.Tile(max(tt.x, 0), tt.y).Type

			if eco.TryPurchaseTile(tt.x, tt.y) {
				t.Fatal("purchase should fail")
			}
			if eco.Money() != tt.money || eco.TilesPurchased() != 0 {
				t.Errorf("money=%v purchased=%d changed", eco.Money(), eco.TilesPurchased())
			}
			if g.Tile(max(tt.x, 0), tt.y).Type != before {
				t.Error("tile type changed")
			}
		})
	}
}

func TestPurchaseSuccess(t *testing.T) {
	g := NewGrid(30, 5)
	eco := NewEconomy(g, config.EconomyConfig{TileBaseCost: 10, TileCostIncrement: 1, StartingMoney: 10})

	if !eco.CanAffordTile() {
		t.Fatal("should afford exactly 10")
	}
	if !eco.TryPurchaseTile(12, 15) {
		t.Fatal("purchase failed")
	}
	if eco.Money() != 0 || g.Tile(12, 15).Type != TileGrass || eco.NextTileCost() != 11 {
		t.Errorf("money=%v tile=%s next=%d", eco.Money(), g.Tile(12, 15).Type, eco.NextTileCost())
	}
	if eco.CanAffordTile() {
		t.Error("should not afford the next tile")
	}
}

func TestSpendAndCredit(t *testing.T) {
	eco := NewEconomy(NewGrid(4, 2), config.EconomyConfig{StartingMoney: 5})
	if eco.Spend(6) {
		t.Error("overspend should fail")
	}
	if !eco.Spend(5) || eco.Money() != 0 {
		t.Error("exact spend should succeed")
	}
	eco.Credit(-3)
	if eco.Money() != 0 {
		t.Error("negative credit should be ignored")
	}
}

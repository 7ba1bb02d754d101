package sim

import (
	"testing"

	"github.com/vovakirdan/weed-whacker/internal/catalog"
	"github.com/vovakirdan/weed-whacker/internal/config"
)

func newTestPlayer(t *testing.T) (*Player, *Grid, *catalog.Catalog) {
	t.Helper()
	cat := testCatalog(t)
	g := NewGrid(30, 5)
	return NewPlayer(cat, g, g.Center()), g, cat
}

func toolID(t *testing.T, cat *catalog.Catalog, key string) catalog.ToolID {
	t.Helper()
	id, ok := cat.ToolByKey(key)
	if !ok {
		t.Fatalf("tool %q missing", key)
	}
	return id
}

func TestPlayerStartsWithStarter(t *testing.T) {
	p, _, cat := newTestPlayer(t)
	if p.CurrentTool() != cat.Starter() {
		t.Errorf("CurrentTool() = %d, want starter", p.CurrentTool())
	}
	if owned := p.OwnedTools(); len(owned) != 1 || owned[0] != cat.Starter() {
		t.Errorf("OwnedTools() = %v", owned)
	}
}

func TestPlayerMove(t *testing.T) {
	p, g, _ := newTestPlayer(t)
	start := p.Position()

	if !p.TryMove(1, 0, 150) {
		t.Fatal("first move should succeed")
	}
	if p.Position() != start.Add(1, 0) || p.MovementCount() != 1 || p.MoveCooldown() != 150 {
		t.Errorf("after move: pos=%s count=%d cd=%d", p.Position(), p.MovementCount(), p.MoveCooldown())
	}

	// Cooldown gating
	pos := p.Position()
	if p.TryMove(1, 0, 150) {
		t.Error("move during cooldown should fail")
	}
	if p.Position() != pos || p.MovementCount() != 1 {
		t.Error("failed move must not mutate state")
	}

	p.Update(149)
	if p.TryMove(1, 0, 150) {
		t.Error("move with 1ms cooldown left should fail")
	}
	p.Update(1)
	if !p.TryMove(0, 1, 150) {
		t.Error("move after cooldown should succeed")
	}

	// Non-unit and diagonal steps
	p.Update(1000)
	for _, d := range [][2]int{{0, 0}, {1, 1}, {2, 0}, {-1, -1}} {
		if p.TryMove(d[0], d[1], 150) {
			t.Errorf("TryMove(%d,%d) should fail", d[0], d[1])
		}
	}

	// Walk to the west edge of the plot, the next step is unowned
	p.pos = C(13, 15)
	if p.TryMove(-1, 0, 150) {
		t.Error("move onto unowned tile should fail")
	}
	if g.At(p.Position().Add(-1, 0)).Owned() {
		t.Fatal("test setup: west tile should be unowned")
	}
}

func TestPlayerUpdateFloorsAtZero(t *testing.T) {
	p, g, cat := newTestPlayer(t)
	plantAt(t, g, p.Position(), cat.Weed(0), 0)

	p.TryMove(1, 0, 100)
	p.pos = g.Center()
	p.TryChop(1000, 1)
	p.Update(5000)
	if p.MoveCooldown() != 0 || p.ChopCooldown() != 0 {
		t.Errorf("cooldowns = %d/%d, want 0/0", p.MoveCooldown(), p.ChopCooldown())
	}
	p.Update(-50)
	if p.MoveCooldown() != 0 {
		t.Error("negative dt must not raise cooldowns")
	}
}

func TestStarterChopDestroysBasicWeed(t *testing.T) {
	cat := catalog.Default()
	g := NewGrid(30, 5)
	p := NewPlayer(cat, g, g.Center())
	tile := plantAt(t, g, g.Center(), cat.Weed(0), 0)

	res := p.TryChop(1000, 1)
	if !res.OK || res.Hit != 1 || len(res.Cleared) != 1 {
		t.Fatalf("TryChop() = %+v", res)
	}
	if tile.Type != TileGrass || tile.WeedHealth != 0 || tile.Weed != nil {
		t.Errorf("tile = %+v, want cleared grass", tile)
	}
	if p.ChopCooldown() != 1000 {
		t.Errorf("ChopCooldown() = %d, want 1000", p.ChopCooldown())
	}
	if p.Uses(cat.Starter()) != 1 {
		t.Errorf("Uses = %d, want 1", p.Uses(cat.Starter()))
	}
}

func TestChopsToDestroyIsCeilToughnessOverEfficiency(t *testing.T) {
	p, g, cat := newTestPlayer(t)
	sprayer := toolID(t, cat, "sprayer")
	p.owned = append(p.owned, sprayer)
	p.Equip(sprayer)

	weed := cat.Weed(0) // toughness 3
	tile := plantAt(t, g, p.Position(), weed, 0)
	want := weed.ChopsRequired(cat.Tool(sprayer).Efficiency)
	if want != 3 {
		t.Fatalf("ChopsRequired = %d, want 3", want)
	}

	// Sprayer breaks after 3 uses; its third chop is also the killing blow
	chops := 0
	for tile.Type == TileWeed {
		res := p.TryChop(200, 1)
		if !res.OK {
			t.Fatalf("chop %d failed", chops+1)
		}
		chops++
		p.Update(200)
	}
	if chops != want {
		t.Errorf("chops = %d, want %d", chops, want)
	}
}

func TestChopCooldownGating(t *testing.T) {
	p, g, cat := newTestPlayer(t)
	tile := plantAt(t, g, p.Position(), cat.Weed(0), 0)

	if !p.TryChop(1000, 1).OK {
		t.Fatal("first chop should land")
	}
	health := tile.WeedHealth
	uses := p.Uses(p.CurrentTool())

	p.Update(999)
	if res := p.TryChop(1000, 1); res.OK || res.Hit != 0 {
		t.Errorf("chop during cooldown = %+v", res)
	}
	if tile.WeedHealth != health || p.Uses(p.CurrentTool()) != uses {
		t.Error("failed chop must not mutate state")
	}
}

func TestChopAtNothingIsFree(t *testing.T) {
	p, _, cat := newTestPlayer(t)
	res := p.TryChop(1000, 1)
	if res.OK {
		t.Error("chop at grass should not succeed")
	}
	if p.ChopCooldown() != 0 || p.Uses(cat.Starter()) != 0 {
		t.Errorf("cooldown=%d uses=%d, want 0/0", p.ChopCooldown(), p.Uses(cat.Starter()))
	}
}

func TestChopReach(t *testing.T) {
	p, g, cat := newTestPlayer(t)
	rake := toolID(t, cat, "rake")
	p.owned = append(p.owned, rake)
	p.Equip(rake)

	pos := p.Position()
	plantAt(t, g, pos.Add(-1, 0), cat.Weed(0), 0)
	plantAt(t, g, pos.Add(1, 0), cat.Weed(0), 0)
	plantAt(t, g, pos.Add(0, 1), cat.Weed(0), 0) // outside reach

	res := p.TryChop(500, 1)
	if !res.OK || res.Hit != 2 {
		t.Fatalf("TryChop() = %+v, want 2 hits", res)
	}
	if g.At(pos.Add(0, 1)).WeedHealth != 3 {
		t.Error("tile outside reach was damaged")
	}
	if p.Uses(rake) != 1 {
		t.Errorf("multi-hit chop counted %d uses, want 1", p.Uses(rake))
	}
}

func TestToolBreaksExactlyAtLongevity(t *testing.T) {
	p, g, cat := newTestPlayer(t)
	rake := toolID(t, cat, "rake") // longevity 10
	p.owned = append(p.owned, rake)
	p.Equip(rake)

	weed := &catalog.Weed{Key: "tree", Toughness: 1000, Regrow: 0, Weight: 1}
	plantAt(t, g, p.Position(), weed, 0)

	for i := 1; i <= 10; i++ {
		res := p.TryChop(500, 1)
		if !res.OK {
			t.Fatalf("chop %d failed", i)
		}
		if i < 10 && res.Broken {
			t.Fatalf("tool broke early on chop %d", i)
		}
		if i == 10 {
			if !res.Broken || res.BrokenTool != rake {
				t.Fatalf("chop 10 = %+v, want broken rake", res)
			}
		}
		p.Update(500)
	}

	if p.Owns(rake) {
		t.Error("broken tool still owned")
	}
	if p.CurrentTool() != cat.Starter() {
		t.Error("current tool should revert to starter")
	}
	if p.Uses(rake) != 0 {
		t.Error("uses of a broken tool should be forgotten")
	}
}

func TestInventoryOperations(t *testing.T) {
	p, g, cat := newTestPlayer(t)
	cfg := config.DefaultGameConfig().Economy
	eco := NewEconomy(g, cfg)
	sprayer := toolID(t, cat, "sprayer") // cost 20, longevity 3
	rake := toolID(t, cat, "rake")       // cost 40, longevity 10

	if p.Equip(sprayer) {
		t.Error("equip unowned tool should fail")
	}
	if p.BuyTool(sprayer, eco) {
		t.Error("buy without money should fail")
	}

	eco.Credit(100)
	if !p.BuyTool(sprayer, eco) {
		t.Fatal("BuyTool(sprayer) failed")
	}
	if eco.Money() != 80 {
		t.Errorf("money = %v, want 80", eco.Money())
	}
	if p.BuyTool(sprayer, eco) {
		t.Error("buying an owned tool should fail")
	}
	if !p.BuyTool(rake, eco) || eco.Money() != 40 {
		t.Fatalf("BuyTool(rake) money = %v", eco.Money())
	}

	// Starter is unbreakable and therefore never for sale
	if _, ok := p.SellTool(cat.Starter(), eco); ok {
		t.Error("selling the unbreakable starter should fail")
	}

	// Wear the rake halfway, equip and sell it
	p.uses[rake] = 5
	p.Equip(rake)
	price, ok := p.SellTool(rake, eco)
	if !ok || price != 10 { // floor(40/2 * (1 - 5/10))
		t.Fatalf("SellTool(rake) = %d, %v; want 10", price, ok)
	}
	if eco.Money() != 50 {
		t.Errorf("money = %v, want 50", eco.Money())
	}
	if p.Owns(rake) || p.CurrentTool() != p.OwnedTools()[0] {
		t.Error("selling the equipped tool should re-equip the first owned tool")
	}

	// Rebuying resets usage
	if !p.BuyTool(rake, eco) || p.Uses(rake) != 0 {
		t.Error("rebuy should reset uses")
	}
}

func TestCannotSellOnlyTool(t *testing.T) {
	p, g, cat := newTestPlayer(t)
	eco := NewEconomy(g, config.DefaultGameConfig().Economy)
	sprayer := toolID(t, cat, "sprayer")

	// Force an inventory holding only a breakable tool
	p.owned = []catalog.ToolID{sprayer}
	p.current = sprayer
	if _, ok := p.SellTool(sprayer, eco); ok {
		t.Error("selling the last tool should fail")
	}
	if eco.Money() != 0 {
		t.Error("failed sale must not credit money")
	}
}

func TestCooldownPercent(t *testing.T) {
	p, _, _ := newTestPlayer(t)
	if p.MoveCooldownPercent() != 0 {
		t.Error("idle cooldown percent should be 0")
	}
	p.TryMove(1, 0, 200)
	p.Update(50)
	if got := p.MoveCooldownPercent(); got != 0.75 {
		t.Errorf("MoveCooldownPercent() = %v, want 0.75", got)
	}
}

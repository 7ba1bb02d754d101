package sim

import "github.com/vovakirdan/weed-whacker/internal/catalog"

// ChopResult reports the outcome of a chop attempt.
type ChopResult struct {
	OK         bool           // At least one weed was hit
	Hit        int            // Weed tiles damaged
	Cleared    []Coord        // Weed tiles destroyed by this chop
	Tool       catalog.ToolID // Tool that swung
	Broken     bool           // Tool reached its longevity and was removed
	BrokenTool catalog.ToolID
}

// Player is the gardener: position, cooldowns and tool inventory.
type Player struct {
	cat  *catalog.Catalog
	grid *Grid

	pos           Coord
	movementCount int

	moveCooldown     int // Remaining ms
	chopCooldown     int
	lastMoveCooldown int // Cooldown most recently applied, for percent display
	lastChopCooldown int

	current catalog.ToolID
	owned   []catalog.ToolID // Starter is always first
	uses    map[catalog.ToolID]int
}

// NewPlayer creates a player at pos holding only the catalog starter tool.
func NewPlayer(cat *catalog.Catalog, grid *Grid, pos Coord) *Player {
	starter := cat.Starter()
	return &Player{
		cat:     cat,
		grid:    grid,
		pos:     pos,
		current: starter,
		owned:   []catalog.ToolID{starter},
		uses:    map[catalog.ToolID]int{starter: 0},
	}
}

// Position returns the player's tile.
func (p *Player) Position() Coord { return p.pos }

// MovementCount returns the number of successful moves.
func (p *Player) MovementCount() int { return p.movementCount }

// MoveCooldown returns the remaining move cooldown in ms.
func (p *Player) MoveCooldown() int { return p.moveCooldown }

// ChopCooldown returns the remaining chop cooldown in ms.
func (p *Player) ChopCooldown() int { return p.chopCooldown }

// MoveCooldownPercent returns the remaining fraction of the last move cooldown.
func (p *Player) MoveCooldownPercent() float64 {
	return cooldownPercent(p.moveCooldown, p.lastMoveCooldown)
}

// ChopCooldownPercent returns the remaining fraction of the last chop cooldown.
func (p *Player) ChopCooldownPercent() float64 {
	return cooldownPercent(p.chopCooldown, p.lastChopCooldown)
}

func cooldownPercent(remaining, applied int) float64 {
	if remaining <= 0 || applied <= 0 {
		return 0
	}
	return min(1, float64(remaining)/float64(applied))
}

// CurrentTool returns the equipped tool.
func (p *Player) CurrentTool() catalog.ToolID { return p.current }

// OwnedTools returns a copy of the owned tools in acquisition order.
func (p *Player) OwnedTools() []catalog.ToolID {
	return append([]catalog.ToolID(nil), p.owned...)
}

// Owns reports whether the tool is in the inventory.
func (p *Player) Owns(id catalog.ToolID) bool {
	return p.ownedIndex(id) >= 0
}

// Uses returns how many successful chops the tool has made since it was acquired.
func (p *Player) Uses(id catalog.ToolID) int {
	return p.uses[id]
}

func (p *Player) ownedIndex(id catalog.ToolID) int {
	for i, o := range p.owned {
		if o == id {
			return i
		}
	}
	return -1
}

// Update advances cooldowns by dtMS, stopping at zero.
func (p *Player) Update(dtMS int) {
	if dtMS <= 0 {
		return
	}
	p.moveCooldown = max(0, p.moveCooldown-dtMS)
	p.chopCooldown = max(0, p.chopCooldown-dtMS)
}

// TryMove steps one tile in a cardinal direction. It fails without changing
// anything while on cooldown, for non-unit steps, or onto unowned tiles.
func (p *Player) TryMove(dx, dy, cooldownMS int) bool {
	if p.moveCooldown > 0 {
		return false
	}
	if abs(dx)+abs(dy) != 1 {
		return false
	}
	target := p.pos.Add(dx, dy)
	if t := p.grid.At(target); t == nil || !t.Walkable() {
		return false
	}

	p.pos = target
	p.moveCooldown = cooldownMS
	p.lastMoveCooldown = cooldownMS
	p.movementCount++
	return true
}

// TryChop swings the equipped tool at every tile in its reach.
// Swinging at nothing neither starts the cooldown nor counts a use.
func (p *Player) TryChop(cooldownMS int, growthMult float64) ChopResult {
	res := ChopResult{Tool: p.current}
	if p.chopCooldown > 0 {
		return res
	}

	tool := p.cat.Tool(p.current)
	for _, off := range tool.Reach {
		target := p.pos.Offset(off)
		t := p.grid.At(target)
		if t == nil || t.Type != TileWeed {
			continue
		}
		res.Hit++
		if t.damage(tool.Efficiency, p.movementCount, growthMult) {
			res.Cleared = append(res.Cleared, target)
		}
	}
	if res.Hit == 0 {
		return res
	}

	res.OK = true
	p.uses[p.current]++
	p.chopCooldown = cooldownMS
	p.lastChopCooldown = cooldownMS

	if tool.Breakable() && p.uses[p.current] >= tool.Longevity {
		res.Broken = true
		res.BrokenTool = p.current
		p.remove(p.current)
		p.current = p.cat.Starter()
	}
	return res
}

// Equip selects an owned tool.
func (p *Player) Equip(id catalog.ToolID) bool {
	if !p.Owns(id) {
		return false
	}
	p.current = id
	return true
}

// BuyTool purchases a tool not yet owned. Usage starts at zero.
func (p *Player) BuyTool(id catalog.ToolID, eco *Economy) bool {
	tool := p.cat.Tool(id)
	if tool == nil || p.Owns(id) {
		return false
	}
	if !eco.Spend(float64(tool.Cost)) {
		return false
	}
	p.owned = append(p.owned, id)
	p.uses[id] = 0
	return true
}

// SellTool sells an owned breakable tool for its worn resale price.
// The last tool can never be sold. Selling the equipped tool re-equips the
// first remaining one.
func (p *Player) SellTool(id catalog.ToolID, eco *Economy) (int, bool) {
	tool := p.cat.Tool(id)
	if tool == nil || len(p.owned) <= 1 || !p.Owns(id) {
		return 0, false
	}
	price, ok := tool.SellPrice(p.uses[id])
	if !ok {
		return 0, false
	}

	eco.Credit(float64(price))
	p.remove(id)
	if p.current == id {
		p.current = p.owned[0]
	}
	return price, true
}

func (p *Player) remove(id catalog.ToolID) {
	if i := p.ownedIndex(id); i >= 0 {
		p.owned = append(p.owned[:i], p.owned[i+1:]...)
	}
	delete(p.uses, id)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

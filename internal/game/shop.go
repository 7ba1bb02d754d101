package game

import (
	"fmt"

	"github.com/vovakirdan/weed-whacker/internal/catalog"
	"github.com/vovakirdan/weed-whacker/internal/core"
)

// ShopCursor returns the highlighted catalog tool.
func (g *Game) ShopCursor() catalog.ToolID {
	return catalog.ToolID(g.shopCursor)
}

// handleShop maps input while the shop panel is open. The garden keeps
// growing underneath.
func (g *Game) handleShop(in core.InputFrame) {
	n := g.opts.Catalog.NumTools()
	switch {
	case in.Has(core.ActionUp):
		g.shopCursor = (g.shopCursor - 1 + n) % n
		g.sellArmed = false
	case in.Has(core.ActionDown):
		g.shopCursor = (g.shopCursor + 1) % n
		g.sellArmed = false
	}

	id := g.ShopCursor()
	switch {
	case in.Has(core.ActionEquip):
		g.sellArmed = false
		g.equip(id)
	case in.Has(core.ActionBuyTool):
		g.sellArmed = false
		g.buyTool(id)
	case in.Has(core.ActionSellTool):
		g.sellTool(id)
	}
}

func (g *Game) equip(id catalog.ToolID) {
	tool := g.opts.Catalog.Tool(id)
	if !g.session.EquipTool(id) {
		g.notify(fmt.Sprintf("You don't own the %s", tool.Name), core.ColorWarning)
		return
	}
	g.notify(fmt.Sprintf("Equipped %s", tool.Name), core.ColorHighlight)
}

func (g *Game) buyTool(id catalog.ToolID) {
	tool := g.opts.Catalog.Tool(id)
	p := g.session.Player()
	if p.Owns(id) {
		g.notify(fmt.Sprintf("You already own the %s", tool.Name), core.ColorMuted)
		return
	}
	if !g.session.BuyTool(id) {
		g.notify(fmt.Sprintf("Not enough money! Need $%d", tool.Cost), core.ColorWarning)
		return
	}
	g.session.EquipTool(id)
	g.notify(fmt.Sprintf("Bought %s for $%d", tool.Name, tool.Cost), core.ColorMoney)
}

// sellTool asks for confirmation on the first press and sells on the
// second. Any other shop action in between disarms it.
func (g *Game) sellTool(id catalog.ToolID) {
	tool := g.opts.Catalog.Tool(id)
	p := g.session.Player()
	armed := g.sellArmed
	g.sellArmed = false
	switch {
	case !p.Owns(id):
		g.notify(fmt.Sprintf("You don't own the %s", tool.Name), core.ColorWarning)
		return
	case len(p.OwnedTools()) <= 1:
		g.notify("Cannot sell your only tool!", core.ColorWarning)
		return
	case !tool.Breakable():
		g.notify(fmt.Sprintf("The %s cannot be sold", tool.Name), core.ColorWarning)
		return
	}

	if !armed {
		quote, _ := tool.SellPrice(p.Uses(id))
		g.sellArmed = true
		g.notify(fmt.Sprintf("Sell %s for $%d? Press x again", tool.Name, quote), core.ColorHighlight)
		return
	}

	price, ok := g.session.SellTool(id)
	if !ok {
		return
	}
	g.notify(fmt.Sprintf("Sold %s for $%d", tool.Name, price), core.ColorMoney)
}

// shopLine describes one catalog tool as the shop shows it.
func (g *Game) shopLine(t *catalog.Tool) string {
	p := g.session.Player()
	mark := ' '
	if p.CurrentTool() == t.ID {
		mark = '*'
	}

	if !p.Owns(t.ID) {
		return fmt.Sprintf("%c %-14s $%-5d", mark, t.Name, t.Cost)
	}

	uses := p.Uses(t.ID)
	if !t.Breakable() {
		return fmt.Sprintf("%c %-14s owned  %d uses", mark, t.Name, uses)
	}
	price, _ := t.SellPrice(uses)
	return fmt.Sprintf("%c %-14s owned  %d/%d  sell $%d", mark, t.Name, uses, t.Longevity, price)
}

// shopDetail describes the highlighted tool's stats.
func shopDetail(t *catalog.Tool) string {
	life := "unbreakable"
	if t.Breakable() {
		life = fmt.Sprintf("%d uses", t.Longevity)
	}
	return fmt.Sprintf("eff %.1f  cd %dms  reach %d  %s", t.Efficiency, t.Cooldown, len(t.Reach), life)
}

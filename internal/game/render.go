package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/weed-whacker/internal/core"
	"github.com/vovakirdan/weed-whacker/internal/sim"
)

const (
	minScreenW = 40
	minScreenH = 10

	hudRows    = 2
	footerRows = 1
	tileW      = 2 // Screen columns per tile
	barWidth   = 8
)

// Render draws the current garden into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Terminal too small (need %dx%d)", minScreenW, minScreenH), core.ColorWarning)
		return
	}

	snap := g.session.Snapshot()
	g.renderHUD(dst, snap)
	g.renderField(dst, snap)
	g.renderFooter(dst)

	if g.shopOpen {
		g.renderShop(dst)
	}
	if g.state.Paused {
		r := core.Centered(dst.Width(), dst.Height(), 16, 3)
		dst.DrawBox(r, core.ColorHighlight)
		dst.DrawTextCentered(r.Y+1, "PAUSED", core.ColorHighlight)
	}
}

// writer draws colored segments left to right on one row.
type writer struct {
	dst *core.Screen
	x   int
	y   int
}

func (w *writer) put(text string, c core.Color) {
	w.dst.DrawColoredText(w.x, w.y, text, c)
	w.x += len([]rune(text))
}

func (g *Game) renderHUD(dst *core.Screen, snap sim.Snapshot) {
	eco := snap.Economy
	w := &writer{dst: dst, x: 1, y: 0}
	w.put(fmt.Sprintf("$%d", eco.MoneyDisplay), core.ColorMoney)
	w.put(fmt.Sprintf(" (+%.2f/s)", eco.IncomeRate), core.ColorMuted)
	w.put(fmt.Sprintf("  Land %d", eco.OwnedTiles), core.ColorGrass)
	landColor := core.ColorWarning
	if eco.CanAffordTile {
		landColor = core.ColorMoney
	}
	w.put(fmt.Sprintf("  Next tile $%d", eco.NextTileCost), landColor)
	if eco.WeedTiles > 0 {
		w.put(fmt.Sprintf("  Weeds %d", eco.WeedTiles), core.ColorWeed)
	}
	title := " " + Title + " "
	dst.DrawColoredText(dst.Width()-len(title)-1, 0, title, core.ColorMuted)

	tool := g.opts.Catalog.Tool(snap.Player.CurrentTool)
	w = &writer{dst: dst, x: 1, y: 1}
	w.put("Tool ", core.ColorMuted)
	w.put(tool.Name, core.ColorHighlight)
	if tool.Breakable() {
		w.put(fmt.Sprintf(" %d/%d", g.session.Player().Uses(tool.ID), tool.Longevity), core.ColorMuted)
	}
	w.put(" "+bar(1-snap.Player.ChopCooldownPct, barWidth), core.ColorInfo)

	weatherColor := core.ColorInfo
	if snap.Weather.Default {
		weatherColor = core.ColorMuted
	}
	w.put("  Weather ", core.ColorMuted)
	w.put(snap.Weather.Name, weatherColor)
	if !snap.Weather.Default {
		w.put(fmt.Sprintf(" %s %ds", bar(snap.Weather.Progress, barWidth), (snap.Weather.RemainingMS+999)/1000), weatherColor)
	}
}

// viewport returns the first visible tile and the screen padding, in tiles,
// that centers a world narrower than the screen.
func viewport(player, worldSize, visible int) (origin, pad int) {
	if worldSize <= visible {
		return 0, (visible - worldSize) / 2
	}
	origin = core.Clamp(player-visible/2, 0, worldSize-visible)
	return origin, 0
}

func (g *Game) renderField(dst *core.Screen, snap sim.Snapshot) {
	grid := g.session.Grid()
	cols := dst.Width() / tileW
	rows := dst.Height() - hudRows - footerRows

	ox, padX := viewport(snap.Player.Pos.X, grid.Size(), cols)
	oy, padY := viewport(snap.Player.Pos.Y, grid.Size(), rows)

	purchasable := make(map[sim.Coord]int, len(snap.Purchasable))
	for i, c := range snap.Purchasable {
		purchasable[c] = i
	}

	for sy := 0; sy < rows; sy++ {
		ty := oy + sy - padY
		for sx := 0; sx < cols; sx++ {
			tx := ox + sx - padX
			tile := grid.Tile(tx, ty)
			if tile == nil {
				continue
			}
			c := sim.C(tx, ty)
			glyph, color := tileGlyph(tile, c)
			if i, ok := purchasable[c]; ok {
				glyph, color = "+ ", core.ColorPurchasable
				if i == snap.Selected {
					glyph, color = "[]", core.ColorSelected
				}
			}
			if c == snap.Player.Pos {
				glyph, color = "@ ", core.ColorPlayer
			}
			dst.DrawColoredText(sx*tileW, hudRows+sy, glyph, color)
		}
	}
}

func tileGlyph(t *sim.Tile, c sim.Coord) (string, core.Color) {
	switch t.Type {
	case sim.TileGrass:
		if (c.X+c.Y)%2 == 0 {
			return ", ", core.ColorGrass
		}
		return ". ", core.ColorGrassAlt
	case sim.TileWeed:
		if t.Weed.Toughness > 1 {
			return "# ", core.ColorToughWeed
		}
		if t.WeedHealth < t.Weed.Toughness {
			return "x ", core.ColorWeed
		}
		return "* ", core.ColorWeed
	default:
		return "· ", core.ColorUnowned
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	y := dst.Height() - 1
	if g.toast.active() {
		dst.DrawColoredText(1, y, truncate(g.toast.text, dst.Width()-2), g.toast.color)
		return
	}
	hint := "space chop  tab cycle land  b buy land  i shop  p pause  q quit"
	dst.DrawColoredText(1, y, truncate(hint, dst.Width()-2), core.ColorMuted)
}

func (g *Game) renderShop(dst *core.Screen) {
	tools := g.opts.Catalog.Tools()
	w := min(56, dst.Width()-2)
	h := min(len(tools)+7, dst.Height()-hudRows)
	r := core.NewRect(dst.Width()-w-1, hudRows, w, h)
	dst.DrawBox(r, core.ColorMuted)
	dst.DrawColoredText(r.X+2, r.Y, " Shop ", core.ColorHighlight)

	body := r.Inset(2, 1)
	inner := body.W
	y := body.Y
	for i := range tools {
		if y >= body.Bottom()-4 {
			break
		}
		color := core.ColorDefault
		prefix := "  "
		if i == g.shopCursor {
			color = core.ColorSelected
			prefix = "> "
		}
		dst.DrawColoredText(body.X, y, truncate(prefix+g.shopLine(&tools[i]), inner), color)
		y++
	}

	cur := &tools[g.shopCursor]
	dst.DrawColoredText(body.X, body.Bottom()-3, truncate(shopDetail(cur), inner), core.ColorInfo)
	dst.DrawColoredText(body.X, body.Bottom()-2, truncate(cur.Description, inner), core.ColorMuted)
	dst.DrawColoredText(body.X, body.Bottom()-1, truncate("e equip  enter buy  x sell  i close", inner), core.ColorMuted)
}

// bar draws a fixed-width progress bar for a fraction in [0, 1].
func bar(frac float64, width int) string {
	filled := int(math.Round(core.Clamp(frac, 0, 1) * float64(width)))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

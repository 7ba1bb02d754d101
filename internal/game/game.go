// Package game adapts a sim.Session to the platform: it turns input frames
// into session calls, keeps the shop panel and notifications, and draws the
// garden into a core.Screen. It knows nothing about Bubble Tea.
package game

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/weed-whacker/internal/catalog"
	"github.com/vovakirdan/weed-whacker/internal/config"
	"github.com/vovakirdan/weed-whacker/internal/core"
	"github.com/vovakirdan/weed-whacker/internal/sim"
)

const (
	// ID is used for screenshots and result storage.
	ID = "weedwhacker"
	// Title is shown in the HUD.
	Title = "Weed Whacker"

	// maxStepMS caps one simulation step so a stalled terminal cannot fast-forward the garden.
	maxStepMS = 250
)

// Options configure a Game.
type Options struct {
	Config  config.GameConfig
	Catalog *catalog.Catalog
	Logger  *log.Logger
	Weather string // Event key started at the beginning of each session; empty keeps the default
}

// Game runs one garden session at a time.
type Game struct {
	opts    Options
	runtime core.RuntimeConfig
	session *sim.Session
	state   core.GameState

	shopOpen   bool
	shopCursor int
	sellArmed  bool // a second sell press on the cursor tool confirms
	toast      toast
}

// New validates the options and starts a first session.
func New(opts Options, rc core.RuntimeConfig) (*Game, error) {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Weather != "" {
		if _, ok := opts.Catalog.EventByKey(opts.Weather); !ok {
			return nil, fmt.Errorf("game: unknown weather %q", opts.Weather)
		}
	}

	g := &Game{opts: opts}
	if err := g.start(rc); err != nil {
		return nil, err
	}
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the human-readable name.
func (g *Game) Title() string { return Title }

// Session exposes the running simulation.
func (g *Game) Session() *sim.Session { return g.session }

// State returns the current platform state.
func (g *Game) State() core.GameState { return g.state }

// ShopOpen reports whether the shop panel is showing.
func (g *Game) ShopOpen() bool { return g.shopOpen }

// Toast returns the active notification text, or "" when none is showing.
func (g *Game) Toast() string {
	if !g.toast.active() {
		return ""
	}
	return g.toast.text
}

// Reset discards the garden and starts a fresh one with the same options.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if err := g.start(rc); err != nil {
		// Options were validated in New, so this keeps the old session
		g.opts.Logger.Error("reset failed", "err", err)
	}
}

func (g *Game) start(rc core.RuntimeConfig) error {
	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s, err := sim.NewSession(g.opts.Config, g.opts.Catalog,
		sim.WithSeed(seed),
		sim.WithLogger(g.opts.Logger),
	)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	if g.opts.Weather != "" {
		s.StartEventByKey(g.opts.Weather)
	}

	g.runtime = rc
	g.session = s
	g.state = core.GameState{}
	g.shopOpen = false
	g.shopCursor = 0
	g.sellArmed = false
	g.toast = toast{}
	return nil
}

// Step applies the frame's input and advances the garden by dtMS.
func (g *Game) Step(in core.InputFrame, dtMS int) core.StepResult {
	if g.state.Quitting {
		return core.StepResult{State: g.state}
	}
	if in.Has(core.ActionQuit) {
		g.state.Quitting = true
		return core.StepResult{State: g.state}
	}
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	if g.state.Paused {
		return core.StepResult{State: g.state}
	}

	if in.Has(core.ActionInventory) {
		g.shopOpen = !g.shopOpen
		g.sellArmed = false
	}
	if g.shopOpen {
		g.handleShop(in)
	} else {
		g.handleField(in)
	}

	dtMS = core.Clamp(dtMS, 0, maxStepMS)
	rep := g.session.Update(dtMS)
	g.announceWeather(rep)
	g.toast.update(dtMS)

	return core.StepResult{State: g.state}
}

// handleField maps input while the player is walking the garden.
func (g *Game) handleField(in core.InputFrame) {
	s := g.session

	switch {
	case in.Has(core.ActionUp):
		s.Move(sim.DirUp)
	case in.Has(core.ActionDown):
		s.Move(sim.DirDown)
	case in.Has(core.ActionLeft):
		s.Move(sim.DirLeft)
	case in.Has(core.ActionRight):
		s.Move(sim.DirRight)
	}

	if in.Has(core.ActionChop) {
		res := s.Chop()
		if res.Broken {
			g.notify(fmt.Sprintf("Your %s broke!", g.opts.Catalog.Tool(res.BrokenTool).Name), core.ColorDanger)
		}
	}

	if in.Has(core.ActionCycleTile) {
		s.CycleSelection(1)
	}

	if in.Has(core.ActionBuyTile) {
		g.buyTile()
	}
}

func (g *Game) buyTile() {
	s := g.session
	if _, ok := s.SelectedTile(); !ok {
		g.notify("No land to buy next to you", core.ColorWarning)
		return
	}
	cost := s.Economy().NextTileCost()
	if !s.Economy().CanAffordTile() {
		g.notify(fmt.Sprintf("Not enough money! Need $%d", cost), core.ColorWarning)
		return
	}
	if s.BuySelectedTile() {
		g.notify(fmt.Sprintf("Bought a tile for $%d", cost), core.ColorMoney)
	}
}

func (g *Game) announceWeather(rep sim.FrameReport) {
	ev := g.opts.Catalog.Event(rep.Event)
	switch {
	case rep.EventStarted:
		g.notify(fmt.Sprintf("%s: %s", ev.Name, ev.Description), core.ColorInfo)
	case rep.EventExpired:
		g.notify(fmt.Sprintf("The weather returns to %s", ev.Name), core.ColorInfo)
	}
}

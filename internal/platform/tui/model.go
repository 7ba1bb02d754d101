package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/weed-whacker/internal/config"
	"github.com/vovakirdan/weed-whacker/internal/core"
	"github.com/vovakirdan/weed-whacker/internal/game"
	"github.com/vovakirdan/weed-whacker/internal/storage"
)

// maxFrameMS bounds the measured frame time fed to the game.
const maxFrameMS = 250

// Model is the Bubble Tea model for a running garden.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	player     string
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	lastTick   time.Time
	quitting   bool
	saved      *storage.SessionResult
}

// NewModel creates a Bubble Tea model around g. The last terminal row is
// reserved for the key help line.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		store:      store,
		logger:     logger,
		config:     cfg,
		player:     player,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize keeps the garden and only resizes the buffer; the field
// viewport follows the new size on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// frameDelta returns the whole milliseconds since the previous tick. The
// sub-millisecond remainder stays in lastTick for the next frame.
func (m *Model) frameDelta(now time.Time) int {
	if m.lastTick.IsZero() {
		m.lastTick = now
		return m.config.FrameInterval()
	}
	dt := int(now.Sub(m.lastTick) / time.Millisecond)
	if dt < 0 {
		m.lastTick = now
		return 0
	}
	m.lastTick = m.lastTick.Add(time.Duration(dt) * time.Millisecond)
	return min(dt, maxFrameMS)
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.frameDelta(now)
	result := m.game.Step(m.inputFrame, dt)
	m.inputFrame.Clear()

	if result.State.Quitting {
		m.quitting = true
		m.saveResult()
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// saveResult records the finished garden once.
func (m *Model) saveResult() {
	if m.saved != nil {
		return
	}
	r := Result(m.game, m.player)
	m.saved = &r
	if m.store == nil {
		return
	}
	id, err := m.store.SaveSession(r)
	if err != nil {
		m.logger.Error("cannot save session", "err", err)
		return
	}
	m.saved.ID = id
	m.logger.Debug("session saved", "id", id, "tiles", r.TilesOwned, "money", r.Money)
}

// Saved returns the stored result after the player quit, or nil.
func (m Model) Saved() *storage.SessionResult { return m.saved }

// Result summarizes the game's current session for storage.
func Result(g *game.Game, player string) storage.SessionResult {
	s := g.Session()
	snap := s.Snapshot()
	st := snap.Stats
	return storage.SessionResult{
		Player:         player,
		Money:          snap.Economy.MoneyDisplay,
		TilesOwned:     snap.Economy.OwnedTiles,
		TilesPurchased: snap.Economy.TilesPurchased,
		WeedsSpawned:   st.WeedsSpawned,
		WeedsCleared:   st.WeedsCleared,
		ChopsLanded:    st.ChopsLanded,
		ToolsBought:    st.ToolsBought,
		ToolsBroken:    st.ToolsBroken,
		EventsSeen:     st.EventsSeen,
		Duration:       s.Elapsed(),
		Seed:           s.Seed(),
	}
}

// saveScreenshot writes the plain-text screen to the screenshots directory.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir, err := config.ExpandHome(filepath.Join("~", config.AppDir, "screenshots"))
	if err != nil {
		m.logger.Warn("cannot locate screenshots directory", "err", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshots directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the garden followed by the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts the Bubble Tea program and returns the saved result once the
// player quits.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) (*storage.SessionResult, error) {
	model := NewModel(g, store, cfg, player, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if fm, ok := final.(Model); ok {
		return fm.Saved(), nil
	}
	return nil, nil
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/weed-whacker/internal/core"
)

// KeyMap defines the key bindings for the garden.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Chop       key.Binding
	CycleTile  key.Binding
	BuyTile    key.Binding
	Inventory  key.Binding
	Equip      key.Binding
	BuyTool    key.Binding
	SellTool   key.Binding
	Pause      key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Chop, k.CycleTile, k.BuyTile, k.Inventory, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Chop, k.CycleTile, k.BuyTile},
		{k.Inventory, k.Equip, k.BuyTool, k.SellTool},
		{k.Pause, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Chop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "chop"),
		),
		CycleTile: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next land"),
		),
		BuyTile: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "buy land"),
		),
		Inventory: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "shop"),
		),
		Equip: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "equip"),
		),
		BuyTool: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "buy tool"),
		),
		SellTool: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "sell tool"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
// Screenshot and help are handled by the model and map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Chop):
		return core.ActionChop
	case key.Matches(msg, k.CycleTile):
		return core.ActionCycleTile
	case key.Matches(msg, k.BuyTile):
		return core.ActionBuyTile
	case key.Matches(msg, k.Inventory):
		return core.ActionInventory
	case key.Matches(msg, k.Equip):
		return core.ActionEquip
	case key.Matches(msg, k.BuyTool):
		return core.ActionBuyTool
	case key.Matches(msg, k.SellTool):
		return core.ActionSellTool
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

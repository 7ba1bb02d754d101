package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - move up / shop cursor up
	ActionDown             // S, Down arrow - move down / shop cursor down
	ActionLeft             // A, Left arrow - move left
	ActionRight            // D, Right arrow - move right
	ActionChop             // Space - swing the equipped tool
	ActionBuyTile          // B - buy the selected tile
	ActionCycleTile        // Tab - cycle purchasable tile selection
	ActionInventory        // I - open/close the shop panel
	ActionEquip            // E - equip highlighted tool
	ActionBuyTool          // Enter - buy highlighted tool
	ActionSellTool         // X - sell highlighted tool
	ActionPause            // P - pause/unpause
	ActionQuit             // Q, Ctrl+C - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionChop:
		return "Chop"
	case ActionBuyTile:
		return "BuyTile"
	case ActionCycleTile:
		return "CycleTile"
	case ActionInventory:
		return "Inventory"
	case ActionEquip:
		return "Equip"
	case ActionBuyTool:
		return "BuyTool"
	case ActionSellTool:
		return "SellTool"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two simulation frames.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

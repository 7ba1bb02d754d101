package sim

import "github.com/vovakirdan/weed-whacker/internal/catalog"

// EventManager tracks the active weather event and its remaining time.
type EventManager struct {
	cat       *catalog.Catalog
	current   catalog.EventID
	remaining int // ms; <= 0 while an indefinite event runs
}

// NewEventManager starts on the catalog's default event.
func NewEventManager(cat *catalog.Catalog) *EventManager {
	m := &EventManager{cat: cat}
	m.StartEvent(cat.DefaultEvent())
	return m
}

// StartEvent activates an event, replacing whatever was running.
func (m *EventManager) StartEvent(id catalog.EventID) bool {
	ev := m.cat.Event(id)
	if ev == nil {
		return false
	}
	m.current = id
	m.remaining = ev.Duration
	return true
}

// StartEventByKey activates an event by its catalog key.
func (m *EventManager) StartEventByKey(key string) bool {
	id, ok := m.cat.EventByKey(key)
	if !ok {
		return false
	}
	return m.StartEvent(id)
}

// Update counts down a timed event and reverts to the default when it runs
// out. Returns true on expiry.
func (m *EventManager) Update(dtMS int) bool {
	if m.remaining <= 0 || dtMS <= 0 {
		return false
	}
	m.remaining -= dtMS
	if m.remaining <= 0 {
		m.StartEvent(m.cat.DefaultEvent())
		return true
	}
	return false
}

// Current returns the active event.
func (m *EventManager) Current() *catalog.Event { return m.cat.Event(m.current) }

// CurrentID returns the active event ID.
func (m *EventManager) CurrentID() catalog.EventID { return m.current }

// IsDefault reports whether the calm default event is active.
func (m *EventManager) IsDefault() bool { return m.current == m.cat.DefaultEvent() }

// Remaining returns ms left on a timed event, 0 for indefinite events.
func (m *EventManager) Remaining() int { return max(0, m.remaining) }

// ProgressPercent returns remaining/duration in [0, 1], 0 for indefinite events.
func (m *EventManager) ProgressPercent() float64 {
	ev := m.Current()
	if ev.Indefinite() || m.remaining <= 0 {
		return 0
	}
	return min(1, float64(m.remaining)/float64(ev.Duration))
}

// Multipliers returns the active event's modifiers.
func (m *EventManager) Multipliers() catalog.Multipliers { return m.Current().Multipliers }

// WeedSpawnRate scales how often new weeds appear.
func (m *EventManager) WeedSpawnRate() float64 { return m.Current().Multipliers.WeedSpawnRate }

// WeedGrowthRate scales how fast damaged weeds heal between chops.
func (m *EventManager) WeedGrowthRate() float64 { return m.Current().Multipliers.WeedGrowthRate }

// PlayerSpeed divides the movement cooldown.
func (m *EventManager) PlayerSpeed() float64 { return m.Current().Multipliers.PlayerSpeed }

// Income scales passive earnings.
func (m *EventManager) Income() float64 { return m.Current().Multipliers.Income }

// ToolCooldown scales the chop cooldown.
func (m *EventManager) ToolCooldown() float64 { return m.Current().Multipliers.ToolCooldown }

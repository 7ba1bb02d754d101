package catalog

import (
	"fmt"
	"math/rand"
)

// Catalog is an immutable, validated set of tools, weeds and events.
type Catalog struct {
	tools  []Tool
	weeds  []Weed
	events []Event

	toolByKey  map[string]ToolID
	weedByKey  map[string]WeedID
	eventByKey map[string]EventID

	starter      ToolID
	defaultEvent EventID
	totalWeight  float64
}

// New validates the tables and builds a catalog. IDs are assigned by slice
// position; any ID already set on the input is overwritten. The input slices
// are copied. An event whose Multipliers are all zero is treated as
// Neutral(); otherwise every multiplier must be set explicitly.
func New(tools []Tool, weeds []Weed, events []Event) (*Catalog, error) {
	c := &Catalog{
		tools:      make([]Tool, len(tools)),
		weeds:      make([]Weed, len(weeds)),
		events:     make([]Event, len(events)),
		toolByKey:  make(map[string]ToolID, len(tools)),
		weedByKey:  make(map[string]WeedID, len(weeds)),
		eventByKey: make(map[string]EventID, len(events)),
	}

	for i, t := range tools {
		t.ID = ToolID(i)
		t.Reach = append([]Offset(nil), t.Reach...)
		c.tools[i] = t
	}
	for i, w := range weeds {
		w.ID = WeedID(i)
		c.weeds[i] = w
	}
	for i, e := range events {
		e.ID = EventID(i)
		if e.Multipliers == (Multipliers{}) {
			e.Multipliers = Neutral()
		}
		c.events[i] = e
	}

	if err := c.validateTools(); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if err := c.validateWeeds(); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if err := c.validateEvents(); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return c, nil
}

// NumTools returns the number of tools.
func (c *Catalog) NumTools() int { return len(c.tools) }

// NumWeeds returns the number of weeds.
func (c *Catalog) NumWeeds() int { return len(c.weeds) }

// NumEvents returns the number of events.
func (c *Catalog) NumEvents() int { return len(c.events) }

// Tool returns the tool with the given ID, or nil when out of range.
// The tool is shared with every session and must not be modified.
func (c *Catalog) Tool(id ToolID) *Tool {
	if id < 0 || int(id) >= len(c.tools) {
		return nil
	}
	return &c.tools[id]
}

// ToolByKey looks a tool up by its YAML key.
func (c *Catalog) ToolByKey(key string) (ToolID, bool) {
	id, ok := c.toolByKey[key]
	return id, ok
}

// Tools returns a copy of all tools in catalog order.
func (c *Catalog) Tools() []Tool {
	out := make([]Tool, len(c.tools))
	for i, t := range c.tools {
		t.Reach = append([]Offset(nil), t.Reach...)
		out[i] = t
	}
	return out
}

// Starter returns the ID of the always-owned starter tool.
func (c *Catalog) Starter() ToolID { return c.starter }

// Weed returns the weed with the given ID, or nil when out of range.
// Weed tiles point at the same value, so it must not be modified.
func (c *Catalog) Weed(id WeedID) *Weed {
	if id < 0 || int(id) >= len(c.weeds) {
		return nil
	}
	return &c.weeds[id]
}

// WeedByKey looks a weed up by its YAML key.
func (c *Catalog) WeedByKey(key string) (WeedID, bool) {
	id, ok := c.weedByKey[key]
	return id, ok
}

// Weeds returns a copy of all weeds in catalog order.
func (c *Catalog) Weeds() []Weed { return append([]Weed(nil), c.weeds...) }

// PickWeed chooses a weed at random, weighted by spawn weight.
func (c *Catalog) PickWeed(rng *rand.Rand) *Weed {
	r := rng.Float64() * c.totalWeight
	var last *Weed
	for i := range c.weeds {
		w := &c.weeds[i]
		if w.Weight <= 0 {
			continue
		}
		if r < w.Weight {
			return w
		}
		r -= w.Weight
		last = w
	}
	// Float rounding can leave r just above the final bucket
	return last
}

// Event returns the event with the given ID, or nil when out of range.
// The event is shared and must not be modified.
func (c *Catalog) Event(id EventID) *Event {
	if id < 0 || int(id) >= len(c.events) {
		return nil
	}
	return &c.events[id]
}

// EventByKey looks an event up by its YAML key.
func (c *Catalog) EventByKey(key string) (EventID, bool) {
	id, ok := c.eventByKey[key]
	return id, ok
}

// Events returns a copy of all events in catalog order.
func (c *Catalog) Events() []Event { return append([]Event(nil), c.events...) }

// DefaultEvent returns the ID of the calm fallback event.
func (c *Catalog) DefaultEvent() EventID { return c.defaultEvent }

// RandomEvent picks a uniformly random non-default event.
// Returns false when the catalog has none.
func (c *Catalog) RandomEvent(rng *rand.Rand) (EventID, bool) {
	n := len(c.events) - 1
	if n <= 0 {
		return 0, false
	}
	i := EventID(rng.Intn(n))
	if i >= c.defaultEvent {
		i++
	}
	return i, true
}

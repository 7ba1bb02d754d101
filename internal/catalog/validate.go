package catalog

import "fmt"

// ValidationError contains details about a rejected catalog entry.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (c *Catalog) validateTools() error {
	if len(c.tools) == 0 {
		return ValidationError{Code: "NO_TOOLS", Message: "catalog has no tools"}
	}

	starters := 0
	for i := range c.tools {
		t := &c.tools[i]
		if err := validateKey("tool", t.Key, i); err != nil {
			return err
		}
		if _, dup := c.toolByKey[t.Key]; dup {
			return ValidationError{Code: "DUPLICATE_KEY", Message: fmt.Sprintf("tool %q defined twice", t.Key)}
		}
		c.toolByKey[t.Key] = t.ID

		if t.Efficiency <= 0 {
			return ValidationError{
				Code:    "INVALID_EFFICIENCY",
				Message: fmt.Sprintf("tool %q: efficiency %.2f must be positive", t.Key, t.Efficiency),
			}
		}
		if t.Cooldown < 0 {
			return ValidationError{
				Code:    "INVALID_COOLDOWN",
				Message: fmt.Sprintf("tool %q: cooldown %d must be non-negative", t.Key, t.Cooldown),
			}
		}
		if t.Cost < 0 {
			return ValidationError{
				Code:    "INVALID_COST",
				Message: fmt.Sprintf("tool %q: cost %d must be non-negative", t.Key, t.Cost),
			}
		}
		if err := validateReach(t.Key, t.Reach); err != nil {
			return err
		}
		if t.Starter {
			if t.Breakable() {
				return ValidationError{
					Code:    "BREAKABLE_STARTER",
					Message: fmt.Sprintf("starter tool %q must have unlimited longevity", t.Key),
				}
			}
			starters++
			c.starter = t.ID
		}
	}

	if starters != 1 {
		return ValidationError{
			Code:    "STARTER_COUNT",
			Message: fmt.Sprintf("catalog needs exactly one starter tool, found %d", starters),
		}
	}
	return nil
}

func (c *Catalog) validateWeeds() error {
	if len(c.weeds) == 0 {
		return ValidationError{Code: "NO_WEEDS", Message: "catalog has no weeds"}
	}

	for i := range c.weeds {
		w := &c.weeds[i]
		if err := validateKey("weed", w.Key, i); err != nil {
			return err
		}
		if _, dup := c.weedByKey[w.Key]; dup {
			return ValidationError{Code: "DUPLICATE_KEY", Message: fmt.Sprintf("weed %q defined twice", w.Key)}
		}
		c.weedByKey[w.Key] = w.ID

		if w.Toughness <= 0 {
			return ValidationError{
				Code:    "INVALID_TOUGHNESS",
				Message: fmt.Sprintf("weed %q: toughness %.2f must be positive", w.Key, w.Toughness),
			}
		}
		if w.Regrow < 0 {
			return ValidationError{
				Code:    "INVALID_REGROW",
				Message: fmt.Sprintf("weed %q: regrow %d must be non-negative", w.Key, w.Regrow),
			}
		}
		if w.Weight < 0 {
			return ValidationError{
				Code:    "INVALID_WEIGHT",
				Message: fmt.Sprintf("weed %q: weight %.2f must be non-negative", w.Key, w.Weight),
			}
		}
		c.totalWeight += w.Weight
	}

	if c.totalWeight <= 0 {
		return ValidationError{Code: "NO_SPAWNABLE_WEEDS", Message: "all weed weights are zero"}
	}
	return nil
}

func (c *Catalog) validateEvents() error {
	if len(c.events) == 0 {
		return ValidationError{Code: "NO_EVENTS", Message: "catalog has no events"}
	}

	defaults := 0
	for i := range c.events {
		e := &c.events[i]
		if err := validateKey("event", e.Key, i); err != nil {
			return err
		}
		if _, dup := c.eventByKey[e.Key]; dup {
			return ValidationError{Code: "DUPLICATE_KEY", Message: fmt.Sprintf("event %q defined twice", e.Key)}
		}
		c.eventByKey[e.Key] = e.ID

		m := e.Multipliers
		for _, v := range []float64{m.WeedSpawnRate, m.WeedGrowthRate, m.PlayerSpeed, m.Income, m.ToolCooldown} {
			if v < 0 {
				return ValidationError{
					Code:    "INVALID_MULTIPLIER",
					Message: fmt.Sprintf("event %q: multipliers must be non-negative", e.Key),
				}
			}
		}
		if m.PlayerSpeed == 0 {
			return ValidationError{
				Code:    "INVALID_MULTIPLIER",
				Message: fmt.Sprintf("event %q: player speed multiplier must be positive", e.Key),
			}
		}

		if e.Default {
			if !e.Indefinite() {
				return ValidationError{
					Code:    "TIMED_DEFAULT",
					Message: fmt.Sprintf("default event %q must not have a duration", e.Key),
				}
			}
			defaults++
			c.defaultEvent = e.ID
		}
	}

	if defaults != 1 {
		return ValidationError{
			Code:    "DEFAULT_EVENT_COUNT",
			Message: fmt.Sprintf("catalog needs exactly one default event, found %d", defaults),
		}
	}
	return nil
}

func validateKey(kind, key string, index int) error {
	if key == "" {
		return ValidationError{
			Code:    "MISSING_KEY",
			Message: fmt.Sprintf("%s #%d has no key", kind, index),
		}
	}
	return nil
}

// validateReach requires the origin and rejects repeated offsets, which
// would let one chop hit the same tile twice.
func validateReach(key string, reach []Offset) error {
	seen := make(map[Offset]bool, len(reach))
	for _, o := range reach {
		if seen[o] {
			return ValidationError{
				Code:    "DUPLICATE_REACH",
				Message: fmt.Sprintf("tool %q: reach lists (%d,%d) twice", key, o.DX, o.DY),
			}
		}
		seen[o] = true
	}
	if !seen[Offset{}] {
		return ValidationError{
			Code:    "INVALID_REACH",
			Message: fmt.Sprintf("tool %q: reach must include (0,0)", key),
		}
	}
	return nil
}

package component

import "math"

// Health is the combat state of any entity that can take damage.
//
// Current is stored exactly as damage leaves it and may go negative; use
// Display for presentation. Defeated latches once and is never cleared.
type Health struct {
	Max      float64
	Current  float64
	Defeated bool
}

// NewHealth creates a Health component at full health.
func NewHealth(max float64) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether the entity has not been defeated.
func (h *Health) IsAlive() bool {
	return h != nil && !h.Defeated
}

// Display returns Current floored at zero.
func (h *Health) Display() float64 {
	if h == nil || h.Current < 0 {
		return 0
	}
	return h.Current
}

// Fraction returns Display as a share of Max, capped at 1 for health bars.
func (h *Health) Fraction() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	return math.Min(h.Display()/h.Max, 1)
}

var HealthComponent = NewComponent[Health]()

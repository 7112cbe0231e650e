// Package combat owns health mutation and the hit-scan fire routine.
package combat

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
	"github.com/milk9111/skirmish/ports"
)

// DefeatFunc observes an entity entering the Defeated state.
type DefeatFunc func(e ecs.Entity)

// Model is the only writer of component.Health. The Defeated latch makes
// the defeat sequence run at most once per entity.
type Model struct {
	world      *ecs.World
	takeover   ports.PhysicsTakeover
	locomotion ports.LocomotionDisabler
	listeners  []DefeatFunc
	logger     *log.Logger
}

type ModelOption func(*Model)

func WithPhysicsTakeover(p ports.PhysicsTakeover) ModelOption {
	return func(m *Model) { m.takeover = p }
}

func WithLocomotionDisabler(l ports.LocomotionDisabler) ModelOption {
	return func(m *Model) { m.locomotion = l }
}

func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

func NewModel(w *ecs.World, opts ...ModelOption) *Model {
	m := &Model{world: w, logger: log.Default()}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With("component", "combat")
	return m
}

// OnDefeated registers fn to run after an entity's defeat sequence.
func (m *Model) OnDefeated(fn DefeatFunc) {
	if fn != nil {
		m.listeners = append(m.listeners, fn)
	}
}

// ApplyDamage subtracts amount from e's health. The stored value is never
// clamped and negative amounts heal. It returns true only for the call that
// defeats e.
func (m *Model) ApplyDamage(e ecs.Entity, amount float64) bool {
	if m == nil {
		return false
	}
	if math.IsNaN(amount) {
		m.logger.Warn("ignoring NaN damage", "entity", e)
		return false
	}
	h, ok := ecs.Get(m.world, e, component.HealthComponent.Kind())
	if !ok {
		return false
	}
	if amount < 0 {
		m.logger.Warn("negative damage applied", "entity", e, "amount", amount)
	}

	h.Current -= amount
	m.logger.Debug("damage", "entity", e, "amount", amount, "health", h.Current)

	if h.Defeated || h.Current > 0 {
		return false
	}

	h.Defeated = true
	if ecs.Has(m.world, e, component.PlayerTagComponent.Kind()) {
		m.logger.Info("player defeated", "entity", e)
	} else {
		m.logger.Info("entity defeated", "entity", e, "name", nameOf(m.world, e))
	}

	if m.takeover != nil {
		m.takeover.SimulatePhysics(e)
	}
	if m.locomotion != nil {
		m.locomotion.DisableMovement(e)
	}
	m.world.Events().Push(ecs.Event{Type: ecs.EventDefeated, Entity: e})
	for _, fn := range m.listeners {
		fn(e)
	}
	return true
}

// Health returns e's displayed health and whether it is still alive.
func (m *Model) Health(e ecs.Entity) (display float64, alive bool) {
	if m == nil {
		return 0, false
	}
	h, ok := ecs.Get(m.world, e, component.HealthComponent.Kind())
	if !ok {
		return 0, false
	}
	return h.Display(), h.IsAlive()
}

// IsAlive reports whether e exists and has not been defeated. Entities
// without health count as alive.
func (m *Model) IsAlive(e ecs.Entity) bool {
	if m == nil {
		return false
	}
	if !m.world.IsAlive(e) {
		return false
	}
	h, ok := ecs.Get(m.world, e, component.HealthComponent.Kind())
	return !ok || h.IsAlive()
}

func nameOf(w *ecs.World, e ecs.Entity) string {
	if n, ok := ecs.Get(w, e, component.NameComponent.Kind()); ok {
		return string(*n)
	}
	return e.String()
}

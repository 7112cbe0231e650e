package ecs

import (
	"time"

	"github.com/milk9111/skirmish/ecs/component"
)

// World owns entities, component storage and the per-step event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
	delta    time.Duration
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and invalidates the handle.
// It reports false for handles that were already dead.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns every live entity in slot order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.list()
}

// Query returns the live entities that carry every listed component kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s == nil {
			return nil
		}
		sets = append(sets, s)
	}
	// iterate smallest set
	smallest := 0
	for i, s := range sets {
		if s.Len() < sets[smallest].Len() {
			smallest = i
		}
	}
	var out []Entity
	for _, id := range sets[smallest].snapshot() {
		matched := true
		for _, s := range sets {
			if !s.Has(id) {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		if e, ok := w.entities.current(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns any live entity carrying kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	s := w.store(kind.ID(), false)
	if s == nil {
		return 0, false
	}
	for _, id := range s.denseEntities {
		if e, ok := w.entities.current(id); ok {
			return e, true
		}
	}
	return 0, false
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Delta is the duration of the step currently being run by a Scheduler.
func (w *World) Delta() time.Duration {
	if w == nil {
		return 0
	}
	return w.delta
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w == nil || id == 0 {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// CreateEntity allocates a new entity in w.
func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

// DestroyEntity destroys e in w.
func DestroyEntity(w *World, e Entity) bool {
	return w.DestroyEntity(e)
}

// IsAlive reports whether e is a live handle in w.
func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

// Entities lists the live entities of w.
func Entities(w *World) []Entity {
	return w.Entities()
}

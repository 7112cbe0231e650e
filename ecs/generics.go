package ecs

import (
	"fmt"

	"github.com/milk9111/skirmish/ecs/component"
)

// Add stores value for e, replacing any previous value of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !w.IsAlive(e) {
		return fmt.Errorf("ecs: add %s to %s: %w", kind, e, component.ErrEntityNotAlive)
	}
	if !kind.Valid() {
		return fmt.Errorf("ecs: add to %s: %w", e, component.ErrInvalidComponentKind)
	}
	if value == nil {
		return fmt.Errorf("ecs: add %s to %s: %w", kind, e, component.ErrNilComponent)
	}
	w.store(kind.ID(), true).Set(e.id(), value)
	return nil
}

// Remove deletes the component of kind from e.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Remove(e.id())
}

// Has reports whether e carries kind.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Has(e.id())
}

// Get returns the stored component pointer; mutations are visible to every
// other reader.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	v, ok := w.store(kind.ID(), false).Get(e.id()).(*T)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// ForEach visits every live entity carrying kind. The callback may add or
// remove components and destroy entities.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := w.store(kind.ID(), false)
	for _, id := range s.snapshot() {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		if v, ok := s.Get(id).(*T); ok && v != nil {
			fn(e, v)
		}
	}
}

// ForEach2 visits entities carrying both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, e := range w.Query(ka, kb) {
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		b, ok := Get(w, e, kb)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}

// ForEach3 visits entities carrying all three kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	for _, e := range w.Query(ka, kb, kc) {
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		b, ok := Get(w, e, kb)
		if !ok {
			continue
		}
		c, ok := Get(w, e, kc)
		if !ok {
			continue
		}
		fn(e, a, b, c)
	}
}

// First returns any live entity carrying kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	return w.First(kind)
}

package component

import (
	"errors"
	"reflect"
	"sync"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID indexes a component column in the world. Zero is never
// assigned.
type ComponentID uint32

// Kind is the untyped view of a ComponentKind, used by multi-kind queries.
type Kind interface {
	ID() ComponentID
}

// ComponentKind identifies the column that stores values of type T.
type ComponentKind[T any] struct {
	id ComponentID
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

// String is the registered type name, e.g. "component.Health".
func (k ComponentKind[T]) String() string {
	return KindName(k.id)
}

// ComponentHandle is the package-level registration of a component type.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}

var registry struct {
	sync.Mutex
	names []string
}

// NewComponent registers T under a fresh id. Call it once per type, from a
// package-level var.
func NewComponent[T any]() ComponentHandle[T] {
	registry.Lock()
	defer registry.Unlock()
	registry.names = append(registry.names, reflect.TypeFor[T]().String())
	return ComponentHandle[T]{kind: ComponentKind[T]{id: ComponentID(len(registry.names))}}
}

// KindName returns the type name registered for id, or "invalid".
func KindName(id ComponentID) string {
	registry.Lock()
	defer registry.Unlock()
	if id == 0 || int(id) > len(registry.names) {
		return "invalid"
	}
	return registry.names[id-1]
}

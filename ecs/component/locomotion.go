package component

// MovementMode mirrors a character movement mode.
type MovementMode int

const (
	MovementWalking MovementMode = iota
	MovementNone
)

// Locomotion drives an entity's active movement.
type Locomotion struct {
	Mode  MovementMode
	Speed float64
}

// Enabled reports whether steering may move the entity.
func (l *Locomotion) Enabled() bool {
	return l != nil && l.Mode != MovementNone
}

var LocomotionComponent = NewComponent[Locomotion]()

// MovementInput accumulates requested movement directions for one step.
type MovementInput struct {
	X, Y, Z float64
}

var MovementInputComponent = NewComponent[MovementInput]()

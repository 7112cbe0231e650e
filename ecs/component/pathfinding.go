package component

import "github.com/go-gl/mathgl/mgl64"

// MoveGoal is the active steering request of an agent. A goal either holds
// a fixed Point or follows Target, an entity handle stored as its raw value.
type MoveGoal struct {
	Point      mgl64.Vec3
	Target     uint64
	Acceptance float64
	Path       []mgl64.Vec3
	Reached    bool
}

// Following reports whether the goal tracks an entity.
func (g *MoveGoal) Following() bool {
	return g != nil && g.Target != 0
}

var MoveGoalComponent = NewComponent[MoveGoal]()

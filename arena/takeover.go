package arena

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

// ragdollImpulse knocks a defeated body backward along its facing.
const ragdollImpulse = 150.0

// SimulatePhysics hands the body over to the physics step: steering stops
// and a small impulse sends it sliding until damping settles it.
func (s *Space) SimulatePhysics(e ecs.Entity) {
	pb, ok := ecs.Get(s.world, e, component.PhysicsBodyComponent.Kind())
	if !ok || pb.Ragdoll || pb.Body == nil {
		return
	}
	pb.Ragdoll = true
	_ = ecs.Remove(s.world, e, component.MoveGoalComponent.Kind())

	back := cp.Vector{}
	if tf, ok := ecs.Get(s.world, e, component.TransformComponent.Kind()); ok {
		f := tf.YawForward()
		back = cp.Vector{X: -f.X(), Y: -f.Y()}
	}
	pb.Body.SetVelocityVector(cp.Vector{})
	pb.Body.ApplyImpulseAtWorldPoint(back.Mult(ragdollImpulse), pb.Body.Position())
	s.logger.Debug("ragdoll", "entity", e)
}

// DisableMovement switches locomotion off and discards pending movement.
func (s *Space) DisableMovement(e ecs.Entity) {
	loco, ok := ecs.Get(s.world, e, component.LocomotionComponent.Kind())
	if !ok {
		return
	}
	loco.Mode = component.MovementNone
	_ = ecs.Remove(s.world, e, component.MoveGoalComponent.Kind())
	_ = ecs.Remove(s.world, e, component.MovementInputComponent.Kind())
}

package arena

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
	"github.com/milk9111/skirmish/ports"
)

const maxPitch = 89.0

// MoveToPoint replaces the agent's goal with a walk to p along the
// navigation grid.
func (s *Space) MoveToPoint(agent ecs.Entity, p ports.Point, acceptance float64) {
	if !s.canSteer(agent) {
		return
	}
	goal := &component.MoveGoal{Point: p, Acceptance: acceptance}
	if tf, ok := ecs.Get(s.world, agent, component.TransformComponent.Kind()); ok {
		goal.Path = s.grid.path(tf.Position, p)
	}
	if len(goal.Path) == 0 {
		goal.Path = []ports.Point{p}
	}
	_ = ecs.Add(s.world, agent, component.MoveGoalComponent.Kind(), goal)
}

// MoveToEntity makes the agent follow target and turns it to face the
// target at once.
func (s *Space) MoveToEntity(agent, target ecs.Entity, acceptance float64) {
	if !s.canSteer(agent) || !s.world.IsAlive(target) {
		return
	}
	_ = ecs.Add(s.world, agent, component.MoveGoalComponent.Kind(), &component.MoveGoal{Target: uint64(target), Acceptance: acceptance})
	s.face(agent, s.position(target))
}

func (s *Space) canSteer(agent ecs.Entity) bool {
	if s == nil || !s.world.IsAlive(agent) {
		return false
	}
	loco, ok := ecs.Get(s.world, agent, component.LocomotionComponent.Kind())
	return ok && loco.Enabled()
}

func (s *Space) updateSteering(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.LocomotionComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody, loco *component.Locomotion) {
		if pb.Ragdoll || pb.Body == nil {
			return
		}
		if !loco.Enabled() {
			pb.Body.SetVelocityVector(cp.Vector{})
			return
		}

		var vel mgl64.Vec3
		if in, ok := ecs.Get(w, e, component.MovementInputComponent.Kind()); ok {
			dir := mgl64.Vec3{in.X, in.Y, 0}
			if l := dir.Len(); l > 1 {
				dir = dir.Mul(1 / l)
			}
			vel = dir.Mul(loco.Speed)
			*in = component.MovementInput{}
		}
		if goal, ok := ecs.Get(w, e, component.MoveGoalComponent.Kind()); ok {
			if v, keep := s.steer(e, goal, loco.Speed); keep {
				vel = vel.Add(v)
			} else {
				_ = ecs.Remove(w, e, component.MoveGoalComponent.Kind())
			}
		}
		pb.Body.SetVelocityVector(cp.Vector{X: vel.X(), Y: vel.Y()})
	})
}

// steer returns the velocity toward the goal's next waypoint. It reports
// false once the goal can be dropped.
func (s *Space) steer(e ecs.Entity, goal *component.MoveGoal, speed float64) (mgl64.Vec3, bool) {
	pos := s.position(e)
	var dest ports.Point
	if goal.Following() {
		target := ecs.Entity(goal.Target)
		if !s.world.IsAlive(target) {
			return mgl64.Vec3{}, false
		}
		dest = s.position(target)
		s.face(e, dest)
		if flat(dest.Sub(pos)).Len() <= goal.Acceptance {
			goal.Reached = true
			return mgl64.Vec3{}, true
		}
		goal.Reached = false
	} else {
		if flat(goal.Point.Sub(pos)).Len() <= goal.Acceptance {
			goal.Reached = true
			return mgl64.Vec3{}, false
		}
		for len(goal.Path) > 1 && flat(goal.Path[0].Sub(pos)).Len() <= s.grid.cell*0.5 {
			goal.Path = goal.Path[1:]
		}
		dest = goal.Point
		if len(goal.Path) > 0 {
			dest = goal.Path[0]
		}
		s.face(e, dest)
	}

	dir := flat(dest.Sub(pos))
	if dir.Len() == 0 {
		return mgl64.Vec3{}, true
	}
	return dir.Normalize().Mul(speed), true
}

func (s *Space) face(e ecs.Entity, at ports.Point) {
	tf, ok := ecs.Get(s.world, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	d := flat(at.Sub(tf.Position))
	if d.Len() == 0 {
		return
	}
	tf.Yaw = math.Atan2(d.Y(), d.X())
}

func (s *Space) position(e ecs.Entity) ports.Point {
	if tf, ok := ecs.Get(s.world, e, component.TransformComponent.Kind()); ok {
		return tf.Position
	}
	return ports.Point{}
}

// AddMovementInput queues a world-space movement request for the next
// steering pass.
func (s *Space) AddMovementInput(e ecs.Entity, dir mgl64.Vec3, scale float64) {
	if !s.canSteer(e) || scale == 0 {
		return
	}
	in, ok := ecs.Get(s.world, e, component.MovementInputComponent.Kind())
	if !ok {
		in = &component.MovementInput{}
		_ = ecs.Add(s.world, e, component.MovementInputComponent.Kind(), in)
	}
	in.X += dir.X() * scale
	in.Y += dir.Y() * scale
	in.Z += dir.Z() * scale
}

func (s *Space) AddYawInput(e ecs.Entity, degrees float64) {
	if tf, ok := ecs.Get(s.world, e, component.TransformComponent.Kind()); ok {
		tf.Yaw = wrapAngle(tf.Yaw + mgl64.DegToRad(degrees))
	}
}

func (s *Space) AddPitchInput(e ecs.Entity, degrees float64) {
	if tf, ok := ecs.Get(s.world, e, component.TransformComponent.Kind()); ok {
		pitch := mgl64.RadToDeg(tf.Pitch) + degrees
		tf.Pitch = mgl64.DegToRad(mgl64.Clamp(pitch, -maxPitch, maxPitch))
	}
}

// Facing returns yaw and pitch in degrees.
func (s *Space) Facing(e ecs.Entity) (float64, float64, bool) {
	tf, ok := ecs.Get(s.world, e, component.TransformComponent.Kind())
	if !ok {
		return 0, 0, false
	}
	return mgl64.RadToDeg(tf.Yaw), mgl64.RadToDeg(tf.Pitch), true
}

func flat(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), v.Y(), 0}
}

func wrapAngle(a float64) float64 {
	return math.Remainder(a, 2*math.Pi)
}

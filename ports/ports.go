// Package ports declares the narrow interfaces through which the agent,
// combat and player logic reach the surrounding world: navigation,
// movement, perception, hit-scan, physics takeover, locomotion and timers.
package ports

//go:generate go tool mockgen -destination=./mocks/ports_mock.go -package=mocks . Navigator,Mover,Perception,HitScanner,PhysicsTakeover,LocomotionDisabler,Timers,MuzzleLocator,TraceRenderer,Pawn

import (
	"errors"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/skirmish/ecs"
)

// ErrWorldNotReady is returned by collaborators whose backing world has not
// been created or was already torn down.
var ErrWorldNotReady = errors.New("ports: world not ready")

// Point is a world-space position.
type Point = mgl64.Vec3

// Muzzle is the world-space origin and facing of a weapon.
type Muzzle struct {
	Position Point
	Forward  mgl64.Vec3
}

// ShotRequest describes one hit-scan query. Ignore lists entities the
// segment passes through, the shooter at minimum.
type ShotRequest struct {
	Origin    Point
	End       Point
	Direction mgl64.Vec3
	Range     float64
	Ignore    []ecs.Entity
}

// ShotResult is the first blocking hit of a ShotRequest.
type ShotResult struct {
	Hit    bool
	Entity ecs.Entity
	Point  Point
	Normal mgl64.Vec3
}

// Navigator answers reachability questions.
type Navigator interface {
	RandomReachablePoint(origin Point, radius float64) (Point, bool)
}

// Mover issues asynchronous steering requests. A newer request replaces the
// agent's current one.
type Mover interface {
	MoveToPoint(agent ecs.Entity, p Point, acceptance float64)
	MoveToEntity(agent, target ecs.Entity, acceptance float64)
}

// SightedFunc is invoked once per sighting event.
type SightedFunc func(observer, target ecs.Entity)

type Perception interface {
	Subscribe(observer ecs.Entity, fn SightedFunc) (unsubscribe func())
}

type HitScanner interface {
	Raycast(req ShotRequest) (ShotResult, error)
}

type PhysicsTakeover interface {
	SimulatePhysics(e ecs.Entity)
}

type LocomotionDisabler interface {
	DisableMovement(e ecs.Entity)
}

// TimerHandle identifies a scheduled callback. The zero handle is never
// issued.
type TimerHandle uint64

// Timers schedules one-shot callbacks on the update thread.
type Timers interface {
	ScheduleOnce(delay time.Duration, fn func()) TimerHandle
	Cancel(h TimerHandle) bool
	Now() time.Duration
}

// MuzzleLocator resolves a named weapon socket on a shooter.
type MuzzleLocator interface {
	Muzzle(shooter ecs.Entity, socket string) (Muzzle, bool)
}

// TraceRenderer receives cosmetic shot feedback.
type TraceRenderer interface {
	DrawTrace(from, to Point, hit bool)
	MuzzleFlash(at Point)
}

// Pawn is the controllable body behind player input. Rates are in degrees.
type Pawn interface {
	AddMovementInput(e ecs.Entity, dir mgl64.Vec3, scale float64)
	AddYawInput(e ecs.Entity, degrees float64)
	AddPitchInput(e ecs.Entity, degrees float64)
	Facing(e ecs.Entity) (yaw, pitch float64, ok bool)
}

// Direction returns the normalized vector from a to b, or the zero vector
// when the points coincide.
func Direction(a, b Point) mgl64.Vec3 {
	d := b.Sub(a)
	if d.Len() == 0 {
		return mgl64.Vec3{}
	}
	return d.Normalize()
}

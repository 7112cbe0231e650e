// Package player maps continuous axes and the fire action onto the
// player's pawn and fire routine.
package player

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ports"
)

// Binding names accepted by Axis and Action.
const (
	BindMoveForward = "MoveForward"
	BindMoveRight   = "MoveRight"
	BindTurnRate    = "TurnRate"
	BindLookUpRate  = "LookUpRate"
	BindFire        = "Fire"
)

const (
	DefaultTurnRate   = 45.0
	DefaultLookUpRate = 45.0
)

// Firer fires the player's weapon from its muzzle socket.
type Firer interface {
	FireFrom(shooter ecs.Entity) ports.ShotResult
}

type aliveChecker interface {
	IsAlive(e ecs.Entity) bool
}

// Config holds turn rates in degrees per second at full axis deflection.
type Config struct {
	TurnRate   float64
	LookUpRate float64
}

func (c Config) normalized() Config {
	if c.TurnRate <= 0 {
		c.TurnRate = DefaultTurnRate
	}
	if c.LookUpRate <= 0 {
		c.LookUpRate = DefaultLookUpRate
	}
	return c
}

type Adapter struct {
	self   ecs.Entity
	pawn   ports.Pawn
	firer  Firer
	health aliveChecker
	cfg    Config
	frame  time.Duration
	logger *log.Logger
}

// NewAdapter drives self through pawn. health is usually the shared
// combat.Model so that a defeated player stops taking input.
func NewAdapter(self ecs.Entity, pawn ports.Pawn, firer Firer, health aliveChecker, cfg Config, logger *log.Logger) *Adapter {
	if logger == nil {
		logger = log.Default()
	}
	return &Adapter{
		self:   self,
		pawn:   pawn,
		firer:  firer,
		health: health,
		cfg:    cfg.normalized(),
		logger: logger.With("component", "player", "entity", self),
	}
}

func (a *Adapter) Entity() ecs.Entity {
	return a.self
}

// BeginFrame sets the frame delta used to scale rate axes.
func (a *Adapter) BeginFrame(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	a.frame = dt
}

// MoveForward walks along the yaw heading. Pitch is ignored.
func (a *Adapter) MoveForward(v float64) {
	if !a.accepts(v) {
		return
	}
	yaw, _, ok := a.pawn.Facing(a.self)
	if !ok {
		return
	}
	rad := mgl64.DegToRad(yaw)
	a.pawn.AddMovementInput(a.self, mgl64.Vec3{math.Cos(rad), math.Sin(rad), 0}, v)
}

// MoveRight strafes perpendicular to the yaw heading.
func (a *Adapter) MoveRight(v float64) {
	if !a.accepts(v) {
		return
	}
	yaw, _, ok := a.pawn.Facing(a.self)
	if !ok {
		return
	}
	rad := mgl64.DegToRad(yaw)
	a.pawn.AddMovementInput(a.self, mgl64.Vec3{-math.Sin(rad), math.Cos(rad), 0}, v)
}

func (a *Adapter) TurnAtRate(v float64) {
	if !a.accepts(v) {
		return
	}
	a.pawn.AddYawInput(a.self, v*a.cfg.TurnRate*a.frame.Seconds())
}

func (a *Adapter) LookUpAtRate(v float64) {
	if !a.accepts(v) {
		return
	}
	a.pawn.AddPitchInput(a.self, v*a.cfg.LookUpRate*a.frame.Seconds())
}

// Fire shoots from the player's own muzzle.
func (a *Adapter) Fire() ports.ShotResult {
	if a.firer == nil || !a.alive() {
		return ports.ShotResult{}
	}
	return a.firer.FireFrom(a.self)
}

// Axis dispatches a named axis value.
func (a *Adapter) Axis(name string, v float64) {
	switch name {
	case BindMoveForward:
		a.MoveForward(v)
	case BindMoveRight:
		a.MoveRight(v)
	case BindTurnRate:
		a.TurnAtRate(v)
	case BindLookUpRate:
		a.LookUpAtRate(v)
	default:
		a.logger.Warn("unknown axis binding", "name", name)
	}
}

// Action dispatches a named discrete action.
func (a *Adapter) Action(name string) {
	switch name {
	case BindFire:
		a.Fire()
	default:
		a.logger.Warn("unknown action binding", "name", name)
	}
}

func (a *Adapter) accepts(v float64) bool {
	if v == 0 || math.IsNaN(v) || a.pawn == nil {
		return false
	}
	return a.alive()
}

func (a *Adapter) alive() bool {
	return a.health == nil || a.health.IsAlive(a.self)
}

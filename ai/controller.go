// Package ai drives non-player agents through the Searching and Chasing
// modes.
package ai

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
	"github.com/milk9111/skirmish/ports"
)

// Firer fires the agent's weapon from its muzzle socket.
type Firer interface {
	FireFrom(shooter ecs.Entity) ports.ShotResult
}

// Deps are the ports a Controller talks to. Navigator, Mover, Perception
// and Firer may be nil; the matching actions are skipped. Timers is
// required for the search loop to keep running.
type Deps struct {
	Navigator  ports.Navigator
	Mover      ports.Mover
	Perception ports.Perception
	Timers     ports.Timers
	Firer      Firer
}

// Controller owns one agent's behavior loop. A single timer drives both
// the search step and the chase re-engage, re-armed at the end of every
// tick.
type Controller struct {
	world  *ecs.World
	self   ecs.Entity
	deps   Deps
	policy FirePolicy
	logger *log.Logger

	running     bool
	timer       ports.TimerHandle
	unsubscribe func()

	fired    bool
	lastShot time.Duration
}

type Option func(*Controller)

func WithFirePolicy(p FirePolicy) Option {
	return func(c *Controller) {
		if p != nil {
			c.policy = p
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewController attaches a controller to self, adding Searching state and
// default tuning when the entity has none.
func NewController(w *ecs.World, self ecs.Entity, deps Deps, opts ...Option) *Controller {
	c := &Controller{
		world:  w,
		self:   self,
		deps:   deps,
		policy: AlwaysFire{},
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("agent", self)

	if !ecs.Has(w, self, component.AIStateComponent.Kind()) {
		_ = ecs.Add(w, self, component.AIStateComponent.Kind(), &component.AIState{Mode: component.ModeSearching})
	}
	if !ecs.Has(w, self, component.AIConfigComponent.Kind()) {
		cfg := component.DefaultAIConfig()
		_ = ecs.Add(w, self, component.AIConfigComponent.Kind(), &cfg)
	}
	return c
}

// Entity is the controlled agent.
func (c *Controller) Entity() ecs.Entity {
	return c.self
}

// Start subscribes to perception and runs the first search step at once.
func (c *Controller) Start() {
	if c == nil || c.running || !c.selfAlive() {
		return
	}
	c.running = true
	if c.deps.Perception != nil {
		c.unsubscribe = c.deps.Perception.Subscribe(c.self, c.OnTargetSighted)
	}
	c.logger.Info("controller started")
	c.tick()
}

// Stop cancels the pending timer and drops the perception subscription.
// The owner must call it before destroying the agent.
func (c *Controller) Stop() {
	if c == nil || !c.running {
		return
	}
	c.running = false
	if c.timer != 0 && c.deps.Timers != nil {
		c.deps.Timers.Cancel(c.timer)
	}
	c.timer = 0
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.logger.Info("controller stopped")
}

func (c *Controller) Running() bool {
	return c != nil && c.running
}

// State returns a copy of the agent's behavior state.
func (c *Controller) State() component.AIState {
	if st, ok := ecs.Get(c.world, c.self, component.AIStateComponent.Kind()); ok {
		return *st
	}
	return component.AIState{}
}

// Target returns the chased entity, if any.
func (c *Controller) Target() (ecs.Entity, bool) {
	st := c.State()
	if st.Mode != component.ModeChasing {
		return 0, false
	}
	return ecs.Entity(st.Target), true
}

// OnTargetSighted is the perception callback: it switches to Chasing and
// engages the target, moving before firing.
func (c *Controller) OnTargetSighted(observer, target ecs.Entity) {
	if !c.Running() || observer != c.self {
		return
	}
	if !c.selfAlive() {
		c.Stop()
		return
	}
	if !c.acceptTarget(target) {
		return
	}
	st, ok := ecs.Get(c.world, c.self, component.AIStateComponent.Kind())
	if !ok {
		return
	}
	if st.Mode != component.ModeChasing || ecs.Entity(st.Target) != target {
		c.logger.Info("target sighted", "target", target, "from", st.Mode)
		st.Mode = component.ModeChasing
		st.Target = uint64(target)
		c.world.Events().Push(ecs.Event{Type: ecs.EventSighted, Entity: c.self, Other: target})
	}
	c.engage(target)
}

func (c *Controller) tick() {
	c.timer = 0
	if !c.running {
		return
	}
	if !c.selfAlive() {
		c.Stop()
		return
	}

	st, ok := ecs.Get(c.world, c.self, component.AIStateComponent.Kind())
	if !ok {
		c.Stop()
		return
	}
	switch st.Mode {
	case component.ModeChasing:
		target := ecs.Entity(st.Target)
		if reason, lost := c.targetLost(target); lost {
			c.logger.Info("target lost", "target", target, "reason", reason)
			st.Mode = component.ModeSearching
			st.Target = 0
			c.world.Events().Push(ecs.Event{Type: ecs.EventLost, Entity: c.self, Other: target, Data: reason})
			c.search()
		} else {
			c.engage(target)
		}
	default:
		c.search()
	}

	if c.running && c.deps.Timers != nil {
		c.timer = c.deps.Timers.ScheduleOnce(c.config().SearchInterval, c.tick)
	}
}

func (c *Controller) search() {
	if c.deps.Navigator == nil {
		return
	}
	cfg := c.config()
	p, ok := c.deps.Navigator.RandomReachablePoint(c.position(c.self), cfg.SearchRadius)
	if !ok {
		c.logger.Debug("no reachable point")
		return
	}
	if c.deps.Mover != nil {
		c.logger.Debug("search move", "point", p)
		c.deps.Mover.MoveToPoint(c.self, p, cfg.AcceptanceRadius)
	}
}

func (c *Controller) engage(target ecs.Entity) {
	if c.deps.Mover != nil {
		c.deps.Mover.MoveToEntity(c.self, target, c.config().AcceptanceRadius)
	}
	if c.deps.Firer == nil {
		return
	}

	now := c.now()
	ctx := FireContext{
		Shooter:       c.self,
		Target:        target,
		Distance:      c.position(c.self).Sub(c.position(target)).Len(),
		SinceLastShot: now - c.lastShot,
		FirstShot:     !c.fired,
		Now:           now,
	}
	if h, ok := ecs.Get(c.world, target, component.HealthComponent.Kind()); ok {
		ctx.TargetHealth = h.Display()
	}
	if !c.policy.ShouldFire(ctx) {
		return
	}
	c.fired = true
	c.lastShot = now
	c.deps.Firer.FireFrom(c.self)
}

// acceptTarget filters sightings: live, undefeated combatants other than
// self, and only players unless configured otherwise.
func (c *Controller) acceptTarget(target ecs.Entity) bool {
	if target == c.self || !c.world.IsAlive(target) {
		return false
	}
	h, ok := ecs.Get(c.world, target, component.HealthComponent.Kind())
	if !ok || !h.IsAlive() {
		return false
	}
	if c.config().SensePlayersOnly && !ecs.Has(c.world, target, component.PlayerTagComponent.Kind()) {
		return false
	}
	return true
}

func (c *Controller) targetLost(target ecs.Entity) (string, bool) {
	if !c.world.IsAlive(target) {
		return "destroyed", true
	}
	if h, ok := ecs.Get(c.world, target, component.HealthComponent.Kind()); ok && !h.IsAlive() {
		return "defeated", true
	}
	if lose := c.config().LoseRange; lose > 0 && c.position(c.self).Sub(c.position(target)).Len() > lose {
		return "out_of_range", true
	}
	return "", false
}

func (c *Controller) selfAlive() bool {
	if !c.world.IsAlive(c.self) {
		return false
	}
	h, ok := ecs.Get(c.world, c.self, component.HealthComponent.Kind())
	return !ok || h.IsAlive()
}

func (c *Controller) config() component.AIConfig {
	if cfg, ok := ecs.Get(c.world, c.self, component.AIConfigComponent.Kind()); ok {
		return cfg.Normalized()
	}
	return component.DefaultAIConfig()
}

func (c *Controller) position(e ecs.Entity) ports.Point {
	if t, ok := ecs.Get(c.world, e, component.TransformComponent.Kind()); ok {
		return t.Position
	}
	return ports.Point{}
}

func (c *Controller) now() time.Duration {
	if c.deps.Timers == nil {
		return 0
	}
	return c.deps.Timers.Now()
}

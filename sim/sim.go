// Package sim assembles an arena, its agents and the player into one
// steppable simulation.
package sim

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/milk9111/skirmish/ai"
	"github.com/milk9111/skirmish/arena"
	"github.com/milk9111/skirmish/clock"
	"github.com/milk9111/skirmish/combat"
	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
	"github.com/milk9111/skirmish/player"
	"github.com/milk9111/skirmish/prefabs"
)

const (
	DefaultPlayerPrefab = "player.yaml"
	defaultHealth       = 100.0
)

var ErrClosed = errors.New("sim: simulation closed")

type config struct {
	seed         uint64
	logger       *log.Logger
	policy       ai.FirePolicy
	driver       player.Driver
	playerPrefab string
}

type Option func(*config)

func WithSeed(seed uint64) Option {
	return func(c *config) { c.seed = seed }
}

func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithFirePolicy overrides every agent's prefab fire policy.
func WithFirePolicy(p ai.FirePolicy) Option {
	return func(c *config) { c.policy = p }
}

// WithPlayerDriver feeds the player adapter from d before each step.
func WithPlayerDriver(d player.Driver) Option {
	return func(c *config) { c.driver = d }
}

func WithPlayerPrefab(name string) Option {
	return func(c *config) {
		if name != "" {
			c.playerPrefab = name
		}
	}
}

type agent struct {
	prefab     string
	controller *ai.Controller
}

// Simulation is one self-contained skirmish. It is not safe for concurrent
// use; run separate simulations on separate goroutines.
type Simulation struct {
	RunID  uuid.UUID
	Seed   uint64
	World  *ecs.World
	Arena  *arena.Space
	Clock  *clock.Scheduler
	Model  *combat.Model
	Fire   *combat.FireRoutine
	Player ecs.Entity
	Input  *player.Adapter

	spec      prefabs.ArenaSpec
	agents    map[ecs.Entity]*agent
	order     []ecs.Entity
	scheduler *ecs.Scheduler
	driver    player.Driver
	logger    *log.Logger
	elapsed   time.Duration
	counts    map[ecs.EventType]int
	closed    bool
}

// Load reads the named arena prefab and builds a simulation from it.
func Load(name string, opts ...Option) (*Simulation, error) {
	spec, err := prefabs.LoadArenaSpec(name)
	if err != nil {
		return nil, fmt.Errorf("sim: load %s: %w", name, err)
	}
	return New(spec, opts...)
}

// New spawns the player and every agent listed in spec and starts the
// agent controllers.
func New(spec prefabs.ArenaSpec, opts ...Option) (*Simulation, error) {
	cfg := config{seed: 1, logger: log.Default(), playerPrefab: DefaultPlayerPrefab}
	for _, opt := range opts {
		opt(&cfg)
	}

	runID := uuid.New()
	logger := cfg.logger.With("run", runID.String()[:8])
	w := ecs.NewWorld()

	obstacles := make([]arena.Rect, 0, len(spec.Obstacles))
	for _, r := range spec.Obstacles {
		obstacles = append(obstacles, arena.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H})
	}
	space := arena.New(w, arena.Config{
		Width:         spec.Width,
		Height:        spec.Height,
		CellSize:      spec.CellSize,
		Obstacles:     obstacles,
		TraceLifetime: time.Duration(spec.TraceLifetime),
		TraceColor:    spec.TraceColor.RGBA8(arena.DefaultTraceColor),
		Seed:          cfg.seed,
	}, logger)

	model := combat.NewModel(w,
		combat.WithPhysicsTakeover(space),
		combat.WithLocomotionDisabler(space),
		combat.WithLogger(logger),
	)

	s := &Simulation{
		RunID:     runID,
		Seed:      cfg.seed,
		World:     w,
		Arena:     space,
		Clock:     clock.NewScheduler(),
		Model:     model,
		spec:      spec,
		agents:    make(map[ecs.Entity]*agent),
		scheduler: ecs.NewScheduler(space.Systems()...),
		driver:    cfg.driver,
		logger:    logger,
		counts:    make(map[ecs.EventType]int),
	}
	s.Fire = combat.NewFireRoutine(w, model, combat.FireDeps{
		Scanner: space,
		Muzzles: space,
		Traces:  space,
	}, logger)
	model.OnDefeated(s.onDefeated)

	if err := s.spawnPlayer(cfg.playerPrefab, spec.Player); err != nil {
		space.Close()
		return nil, err
	}

	policies := make(map[string]ai.FirePolicy)
	for _, spawn := range spec.Agents {
		if err := s.spawnAgent(spawn, cfg.policy, policies); err != nil {
			s.Close()
			return nil, err
		}
	}
	for _, e := range s.order {
		s.agents[e].controller.Start()
	}

	logger.Info("simulation ready", "arena", spec.Name, "agents", len(s.order), "seed", cfg.seed)
	return s, nil
}

func (s *Simulation) spawnPlayer(prefab string, at prefabs.SpawnSpec) error {
	ps, err := prefabs.LoadPlayerSpec(prefab)
	if err != nil {
		return fmt.Errorf("sim: player %s: %w", prefab, err)
	}
	name := ps.Name
	if name == "" {
		name = "player"
	}

	e := s.spawnPawn(name, ps.Health, at, ps.Weapon.Weapon(), prefabs.Sockets(ps.Sockets))
	_ = ecs.Add(s.World, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	s.Arena.AddActor(e, arena.ActorOptions{Radius: ps.Radius, Speed: ps.MoveSpeed})

	s.Player = e
	s.Input = player.NewAdapter(e, s.Arena, s.Fire, s.Model, player.Config{
		TurnRate:   ps.TurnRate,
		LookUpRate: ps.LookUpRate,
	}, s.logger)
	return nil
}

func (s *Simulation) spawnAgent(at prefabs.SpawnSpec, override ai.FirePolicy, policies map[string]ai.FirePolicy) error {
	as, err := prefabs.LoadAgentSpec(at.Prefab)
	if err != nil {
		return fmt.Errorf("sim: agent %s: %w", at.Prefab, err)
	}

	policy := override
	if policy == nil {
		policy, err = s.policyFor(at.Prefab, as.FirePolicy, policies)
		if err != nil {
			return fmt.Errorf("sim: agent %s: %w", at.Prefab, err)
		}
	}

	name := as.Name
	if name == "" {
		name = "agent"
	}
	e := s.spawnPawn(name, as.Health, at, as.Weapon.Weapon(), prefabs.Sockets(as.Sockets))
	aiCfg := as.AI.Config()
	sensor := as.Sensor.Sensor()
	_ = ecs.Add(s.World, e, component.AITagComponent.Kind(), &component.AITag{})
	_ = ecs.Add(s.World, e, component.AIConfigComponent.Kind(), &aiCfg)
	_ = ecs.Add(s.World, e, component.SensorComponent.Kind(), &sensor)
	s.Arena.AddActor(e, arena.ActorOptions{Radius: as.Radius, Speed: as.MoveSpeed})

	c := ai.NewController(s.World, e, ai.Deps{
		Navigator:  s.Arena,
		Mover:      s.Arena,
		Perception: s.Arena,
		Timers:     s.Clock,
		Firer:      s.Fire,
	}, ai.WithFirePolicy(policy), ai.WithLogger(s.logger))

	s.agents[e] = &agent{prefab: at.Prefab, controller: c}
	s.order = append(s.order, e)
	return nil
}

// policyFor builds one policy per prefab. Script policies carry VM state,
// so each agent gets its own clone.
func (s *Simulation) policyFor(prefab string, spec prefabs.FirePolicySpec, cache map[string]ai.FirePolicy) (ai.FirePolicy, error) {
	p, ok := cache[prefab]
	if !ok {
		var err error
		p, err = ai.PolicyFromSpec(spec, s.logger)
		if err != nil {
			return nil, err
		}
		cache[prefab] = p
	}
	if sp, ok := p.(*ai.ScriptPolicy); ok {
		return sp.Clone(), nil
	}
	return p, nil
}

func (s *Simulation) spawnPawn(name string, health float64, at prefabs.SpawnSpec, weapon component.Weapon, sockets component.Sockets) ecs.Entity {
	if health <= 0 {
		health = defaultHealth
	}
	e := s.World.CreateEntity()
	label := component.Name(name)
	_ = ecs.Add(s.World, e, component.NameComponent.Kind(), &label)
	_ = ecs.Add(s.World, e, component.TransformComponent.Kind(), &component.Transform{
		Position: mgl64.Vec3{at.X, at.Y, 0},
		Yaw:      mgl64.DegToRad(at.YawDeg),
	})
	_ = ecs.Add(s.World, e, component.HealthComponent.Kind(), component.NewHealth(health))
	_ = ecs.Add(s.World, e, component.WeaponComponent.Kind(), &weapon)
	if len(sockets) > 0 {
		_ = ecs.Add(s.World, e, component.SocketsComponent.Kind(), &sockets)
	}
	return e
}

func (s *Simulation) onDefeated(e ecs.Entity) {
	if a, ok := s.agents[e]; ok {
		a.controller.Stop()
	}
}

// Step feeds the player driver, runs due timers and then the arena
// systems.
func (s *Simulation) Step(dt time.Duration) error {
	if s.closed {
		return ErrClosed
	}
	if dt <= 0 {
		return nil
	}
	if s.driver != nil && s.Input != nil {
		s.Input.BeginFrame(dt)
		s.driver(s.Input, s.elapsed)
	}
	s.Clock.Advance(dt)
	s.scheduler.Step(s.World, dt)
	s.elapsed += dt

	for _, evt := range s.World.Events().Drain() {
		s.counts[evt.Type]++
	}
	return nil
}

// Run steps for d in increments of dt. It stops early once the player is
// defeated or every agent is.
func (s *Simulation) Run(d, dt time.Duration) (Report, error) {
	if dt <= 0 {
		return s.Report(), fmt.Errorf("sim: run: step %v must be positive", dt)
	}
	for elapsed := time.Duration(0); elapsed < d; elapsed += dt {
		if err := s.Step(dt); err != nil {
			return s.Report(), err
		}
		if s.Finished() {
			break
		}
	}
	return s.Report(), nil
}

// Finished reports whether one side has been wiped out.
func (s *Simulation) Finished() bool {
	if !s.Model.IsAlive(s.Player) {
		return true
	}
	for _, e := range s.order {
		if s.Model.IsAlive(e) {
			return false
		}
	}
	return len(s.order) > 0
}

// Elapsed is the simulated time stepped so far.
func (s *Simulation) Elapsed() time.Duration {
	return s.elapsed
}

func (s *Simulation) Spec() prefabs.ArenaSpec {
	return s.spec
}

// Agents lists agent entities in spawn order.
func (s *Simulation) Agents() []ecs.Entity {
	return append([]ecs.Entity(nil), s.order...)
}

func (s *Simulation) Controller(e ecs.Entity) (*ai.Controller, bool) {
	a, ok := s.agents[e]
	if !ok {
		return nil, false
	}
	return a.controller, true
}

// Despawn stops e's controller before removing it from the arena and
// world, so no timer fires against a destroyed entity.
func (s *Simulation) Despawn(e ecs.Entity) {
	if a, ok := s.agents[e]; ok {
		a.controller.Stop()
		delete(s.agents, e)
		for i, o := range s.order {
			if o == e {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	s.Arena.RemoveActor(e)
	s.World.DestroyEntity(e)
}

// ApplyTuning re-applies an edited agent prefab to the live agents spawned
// from it. Health and fire policy keep their current values.
func (s *Simulation) ApplyTuning(prefab string, spec prefabs.AgentSpec) int {
	applied := 0
	for _, e := range s.order {
		a := s.agents[e]
		if a.prefab != prefab {
			continue
		}
		if cfg, ok := ecs.Get(s.World, e, component.AIConfigComponent.Kind()); ok {
			*cfg = spec.AI.Config()
		}
		if sensor, ok := ecs.Get(s.World, e, component.SensorComponent.Kind()); ok {
			*sensor = spec.Sensor.Sensor()
		}
		if weapon, ok := ecs.Get(s.World, e, component.WeaponComponent.Kind()); ok {
			*weapon = spec.Weapon.Weapon()
		}
		if loco, ok := ecs.Get(s.World, e, component.LocomotionComponent.Kind()); ok && spec.MoveSpeed > 0 {
			loco.Speed = spec.MoveSpeed
		}
		applied++
	}
	if applied > 0 {
		s.logger.Info("tuning applied", "prefab", prefab, "agents", applied)
	}
	return applied
}

// Close stops every controller and releases the arena. It is safe to
// call more than once.
func (s *Simulation) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for _, e := range s.order {
		s.agents[e].controller.Stop()
	}
	s.Arena.Close()
	s.logger.Debug("simulation closed", "pending_timers", s.Clock.Pending())
}

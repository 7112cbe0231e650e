// Package arena is a top-down chipmunk world that implements every port
// the agent and combat code depend on. Positions are mgl64.Vec3 with Z
// carried along but ignored by physics.
package arena

import (
	"image/color"
	"math"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
	"github.com/milk9111/skirmish/ports"
)

const (
	defaultCellSize      = 100.0
	defaultTraceLifetime = time.Second
	defaultFlashLifetime = 100 * time.Millisecond
	defaultActorRadius   = 34.0
	wallThickness        = 4.0
	bodyDamping          = 0.05
)

var DefaultTraceColor = color.RGBA{R: 255, A: 255}

// Rect is an axis-aligned obstacle with its top-left corner at X, Y.
type Rect struct {
	X, Y, W, H float64
}

type Config struct {
	Width         float64
	Height        float64
	CellSize      float64
	Obstacles     []Rect
	TraceLifetime time.Duration
	FlashLifetime time.Duration
	TraceColor    color.RGBA
	Seed          uint64
}

func (c Config) normalized() Config {
	if c.CellSize <= 0 {
		c.CellSize = defaultCellSize
	}
	if c.TraceLifetime <= 0 {
		c.TraceLifetime = defaultTraceLifetime
	}
	if c.FlashLifetime <= 0 {
		c.FlashLifetime = defaultFlashLifetime
	}
	if c.TraceColor == (color.RGBA{}) {
		c.TraceColor = DefaultTraceColor
	}
	return c
}

// ActorOptions shape the physics body of a pawn.
type ActorOptions struct {
	Radius float64
	Speed  float64
}

type actor struct {
	body  *cp.Body
	shape *cp.Shape
	group uint
}

// Space owns the chipmunk space and the arena-wide port state.
type Space struct {
	world  *ecs.World
	cfg    Config
	space  *cp.Space
	grid   *navGrid
	rng    *rand.Rand
	logger *log.Logger

	actors    map[ecs.Entity]*actor
	owners    map[*cp.Shape]ecs.Entity
	walls     []ecs.Entity
	nextGroup uint

	sensing *perception
	elapsed time.Duration
}

var (
	_ ports.Navigator          = (*Space)(nil)
	_ ports.Mover              = (*Space)(nil)
	_ ports.Perception         = (*Space)(nil)
	_ ports.HitScanner         = (*Space)(nil)
	_ ports.PhysicsTakeover    = (*Space)(nil)
	_ ports.LocomotionDisabler = (*Space)(nil)
	_ ports.MuzzleLocator      = (*Space)(nil)
	_ ports.TraceRenderer      = (*Space)(nil)
	_ ports.Pawn               = (*Space)(nil)
)

// New builds the arena walls and navigation grid.
func New(w *ecs.World, cfg Config, logger *log.Logger) *Space {
	if logger == nil {
		logger = log.Default()
	}
	cfg = cfg.normalized()
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	space.SetDamping(bodyDamping)

	s := &Space{
		world:   w,
		cfg:     cfg,
		space:   space,
		rng:     rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		logger:  logger.With("component", "arena"),
		actors:  make(map[ecs.Entity]*actor),
		owners:  make(map[*cp.Shape]ecs.Entity),
		sensing: newPerception(),
	}
	s.buildWalls()
	s.grid = buildNavGrid(s)
	s.logger.Debug("arena built", "width", cfg.Width, "height", cfg.Height, "blocked", s.grid.blockedCount())
	return s
}

func (s *Space) buildWalls() {
	static := s.space.StaticBody
	wallFilter := cp.ShapeFilter{Group: cp.NO_GROUP, Categories: uint(component.LayerWall), Mask: cp.ALL_CATEGORIES}

	boundary := s.world.CreateEntity()
	name := component.Name("boundary")
	_ = ecs.Add(s.world, boundary, component.NameComponent.Kind(), &name)
	_ = ecs.Add(s.world, boundary, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: component.LayerWall})
	s.walls = append(s.walls, boundary)

	width, height := s.cfg.Width, s.cfg.Height
	edges := [][2]cp.Vector{
		{{X: 0, Y: 0}, {X: width, Y: 0}},
		{{X: 0, Y: height}, {X: width, Y: height}},
		{{X: 0, Y: 0}, {X: 0, Y: height}},
		{{X: width, Y: 0}, {X: width, Y: height}},
	}
	for _, edge := range edges {
		shape := cp.NewSegment(static, edge[0], edge[1], wallThickness)
		shape.SetFilter(wallFilter)
		shape.SetFriction(0)
		s.space.AddShape(shape)
		s.owners[shape] = boundary
	}

	for _, r := range s.cfg.Obstacles {
		if r.W <= 0 || r.H <= 0 {
			continue
		}
		e := s.world.CreateEntity()
		name := component.Name("wall")
		_ = ecs.Add(s.world, e, component.NameComponent.Kind(), &name)
		_ = ecs.Add(s.world, e, component.TransformComponent.Kind(), &component.Transform{Position: ports.Point{r.X + r.W/2, r.Y + r.H/2, 0}})
		_ = ecs.Add(s.world, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: component.LayerWall})

		shape := cp.NewBox2(static, cp.BB{L: r.X, B: r.Y, R: r.X + r.W, T: r.Y + r.H}, 0)
		shape.SetFilter(wallFilter)
		shape.SetFriction(0)
		s.space.AddShape(shape)
		s.owners[shape] = e
		s.walls = append(s.walls, e)
	}
}

// AddActor gives e a dynamic circle body at its Transform position. Each
// actor gets its own filter group so queries can skip it.
func (s *Space) AddActor(e ecs.Entity, opts ActorOptions) bool {
	tf, ok := ecs.Get(s.world, e, component.TransformComponent.Kind())
	if !ok || s.space == nil {
		return false
	}
	if _, exists := s.actors[e]; exists {
		return true
	}
	if opts.Radius <= 0 {
		opts.Radius = defaultActorRadius
	}

	s.nextGroup++
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: tf.Position.X(), Y: tf.Position.Y()})
	shape := cp.NewCircle(body, opts.Radius, cp.Vector{})
	shape.SetFilter(cp.ShapeFilter{Group: s.nextGroup, Categories: uint(component.LayerActor), Mask: cp.ALL_CATEGORIES})
	shape.SetFriction(0)
	shape.SetElasticity(0)
	s.space.AddBody(body)
	s.space.AddShape(shape)

	a := &actor{body: body, shape: shape, group: s.nextGroup}
	s.actors[e] = a
	s.owners[shape] = e

	pb := &component.PhysicsBody{Body: body, Shape: shape, Radius: opts.Radius}
	// steered bodies keep the commanded velocity; only ragdolls are damped
	body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping, dt float64) {
		if pb.Ragdoll {
			cp.BodyUpdateVelocity(b, gravity, damping, dt)
		}
	})
	_ = ecs.Add(s.world, e, component.PhysicsBodyComponent.Kind(), pb)
	_ = ecs.Add(s.world, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: component.LayerActor})
	if !ecs.Has(s.world, e, component.LocomotionComponent.Kind()) {
		_ = ecs.Add(s.world, e, component.LocomotionComponent.Kind(), &component.Locomotion{Mode: component.MovementWalking, Speed: opts.Speed})
	}
	return true
}

// RemoveActor drops e's body and any perception subscription it holds.
func (s *Space) RemoveActor(e ecs.Entity) {
	a, ok := s.actors[e]
	if !ok {
		return
	}
	if s.space != nil {
		s.space.RemoveShape(a.shape)
		s.space.RemoveBody(a.body)
	}
	delete(s.owners, a.shape)
	delete(s.actors, e)
	s.sensing.forget(e)
	_ = ecs.Remove(s.world, e, component.PhysicsBodyComponent.Kind())
}

// Teleport moves an actor without simulating the motion.
func (s *Space) Teleport(e ecs.Entity, p ports.Point) {
	if tf, ok := ecs.Get(s.world, e, component.TransformComponent.Kind()); ok {
		tf.Position = p
	}
	if a, ok := s.actors[e]; ok && s.space != nil {
		a.body.SetPosition(cp.Vector{X: p.X(), Y: p.Y()})
		a.body.SetVelocityVector(cp.Vector{})
		// re-adding refreshes the shape's entry in the spatial index
		s.space.RemoveShape(a.shape)
		s.space.AddShape(a.shape)
	}
}

// Close releases the chipmunk space. Queries afterwards report
// ports.ErrWorldNotReady.
func (s *Space) Close() {
	if s == nil {
		return
	}
	s.space = nil
	s.actors = map[ecs.Entity]*actor{}
	s.owners = map[*cp.Shape]ecs.Entity{}
}

// Config returns the normalized arena configuration.
func (s *Space) Config() Config {
	return s.cfg
}

// Walls lists the wall entities, the boundary first.
func (s *Space) Walls() []ecs.Entity {
	return append([]ecs.Entity(nil), s.walls...)
}

// Elapsed is the simulated time seen by the arena systems.
func (s *Space) Elapsed() time.Duration {
	return s.elapsed
}

// Systems returns the arena systems in update order.
func (s *Space) Systems() []ecs.System {
	return []ecs.System{
		ecs.SystemFunc(s.updateClock),
		ecs.SystemFunc(s.updatePerception),
		ecs.SystemFunc(s.updateSteering),
		ecs.SystemFunc(s.updatePhysics),
		ecs.SystemFunc(s.updateLifetimes),
	}
}

func (s *Space) updateClock(w *ecs.World) {
	s.elapsed += w.Delta()
}

func (s *Space) updatePhysics(w *ecs.World) {
	if s.space == nil {
		return
	}
	dt := w.Delta().Seconds()
	if dt > 0 {
		s.space.Step(dt)
	}
	for e, a := range s.actors {
		tf, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		p := a.body.Position()
		tf.Position = ports.Point{p.X, p.Y, tf.Position.Z()}
	}
}

func toVec(p ports.Point) cp.Vector {
	return cp.Vector{X: p.X(), Y: p.Y()}
}

package arena

import (
	"io"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
	"github.com/milk9111/skirmish/ports"
)

// testArena is 2000x1000 with a wall hanging from the top edge down to
// y=600 between x=900 and x=1100.
type testArena struct {
	t     *testing.T
	world *ecs.World
	space *Space
	sched *ecs.Scheduler
}

func newTestArena(t *testing.T) *testArena {
	t.Helper()
	w := ecs.NewWorld()
	s := New(w, Config{
		Width:     2000,
		Height:    1000,
		CellSize:  100,
		Obstacles: []Rect{{X: 900, Y: 0, W: 200, H: 600}},
		Seed:      7,
	}, log.New(io.Discard))
	return &testArena{t: t, world: w, space: s, sched: ecs.NewScheduler(s.Systems()...)}
}

func (a *testArena) spawn(pos mgl64.Vec3, yaw float64) ecs.Entity {
	a.t.Helper()
	e := a.world.CreateEntity()
	require.NoError(a.t, ecs.Add(a.world, e, component.TransformComponent.Kind(), &component.Transform{Position: pos, Yaw: yaw}))
	require.NoError(a.t, ecs.Add(a.world, e, component.HealthComponent.Kind(), component.NewHealth(100)))
	require.True(a.t, a.space.AddActor(e, ActorOptions{Radius: 34, Speed: 400}))
	return e
}

func (a *testArena) run(total, dt time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += dt {
		a.sched.Step(a.world, dt)
	}
}

func (a *testArena) pos(e ecs.Entity) mgl64.Vec3 {
	tf, _ := ecs.Get(a.world, e, component.TransformComponent.Kind())
	return tf.Position
}

func TestRaycast(t *testing.T) {
	a := newTestArena(t)
	shooter := a.spawn(mgl64.Vec3{200, 800, 50}, 0)
	target := a.spawn(mgl64.Vec3{600, 800, 50}, 0)
	walls := a.space.Walls()
	require.Len(t, walls, 2)

	tests := []struct {
		name   string
		req    ports.ShotRequest
		hit    bool
		entity ecs.Entity
		x      float64
	}{
		{
			name:   "hits_first_actor",
			req:    ports.ShotRequest{Origin: mgl64.Vec3{200, 800, 50}, End: mgl64.Vec3{3200, 800, 50}, Ignore: []ecs.Entity{shooter}},
			hit:    true,
			entity: target,
			x:      566,
		},
		{
			name:   "ignore_list_passes_through",
			req:    ports.ShotRequest{Origin: mgl64.Vec3{200, 800, 50}, End: mgl64.Vec3{3200, 800, 50}, Ignore: []ecs.Entity{shooter, target}},
			hit:    true,
			entity: walls[0],
			x:      1996,
		},
		{
			name:   "hits_obstacle",
			req:    ports.ShotRequest{Origin: mgl64.Vec3{200, 300, 0}, End: mgl64.Vec3{3200, 300, 0}},
			hit:    true,
			entity: walls[1],
			x:      900,
		},
		{
			name: "short_miss",
			req:  ports.ShotRequest{Origin: mgl64.Vec3{200, 300, 0}, End: mgl64.Vec3{500, 300, 0}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := a.space.Raycast(tc.req)
			require.NoError(t, err)
			assert.Equal(t, tc.hit, res.Hit)
			if !tc.hit {
				return
			}
			assert.Equal(t, tc.entity, res.Entity)
			assert.InDelta(t, tc.x, res.Point.X(), 0.5)
			assert.InDelta(t, tc.req.Origin.Z(), res.Point.Z(), 1e-9)
		})
	}
}

func TestRaycastAfterClose(t *testing.T) {
	a := newTestArena(t)
	a.space.Close()

	_, err := a.space.Raycast(ports.ShotRequest{End: mgl64.Vec3{1, 0, 0}})
	assert.ErrorIs(t, err, ports.ErrWorldNotReady)
}

func TestRandomReachablePoint(t *testing.T) {
	a := newTestArena(t)
	origin := mgl64.Vec3{250, 850, 10}

	for i := 0; i < 100; i++ {
		p, ok := a.space.RandomReachablePoint(origin, 500)
		require.True(t, ok)
		assert.LessOrEqual(t, flat(p.Sub(origin)).Len(), 500.0)
		assert.Equal(t, 10.0, p.Z())
		assert.False(t, a.space.Blocked(p))
	}

	_, ok := a.space.RandomReachablePoint(mgl64.Vec3{1000, 300, 0}, 500)
	assert.False(t, ok, "inside obstacle")
	_, ok = a.space.RandomReachablePoint(mgl64.Vec3{-50, 300, 0}, 500)
	assert.False(t, ok, "outside arena")
	_, ok = a.space.RandomReachablePoint(origin, 0)
	assert.False(t, ok, "zero radius")
}

func TestRandomReachablePointIsSeeded(t *testing.T) {
	a := newTestArena(t)
	b := newTestArena(t)
	for i := 0; i < 20; i++ {
		pa, _ := a.space.RandomReachablePoint(mgl64.Vec3{250, 850, 0}, 2000)
		pb, _ := b.space.RandomReachablePoint(mgl64.Vec3{250, 850, 0}, 2000)
		assert.Equal(t, pa, pb)
	}
}

func TestPathDetoursAroundWall(t *testing.T) {
	a := newTestArena(t)
	path := a.space.grid.path(mgl64.Vec3{550, 250, 0}, mgl64.Vec3{1450, 250, 0})
	require.NotEmpty(t, path)

	below := false
	for _, p := range path {
		assert.False(t, a.space.Blocked(p), "waypoint %v", p)
		if p.Y() > 600 {
			below = true
		}
	}
	assert.True(t, below)
	assert.Equal(t, mgl64.Vec3{1450, 250, 0}, path[len(path)-1])
}

func TestMoveToPointArrives(t *testing.T) {
	a := newTestArena(t)
	agent := a.spawn(mgl64.Vec3{250, 850, 0}, 0)
	goal := mgl64.Vec3{1650, 850, 0}

	a.space.MoveToPoint(agent, goal, 50)
	require.True(t, ecs.Has(a.world, agent, component.MoveGoalComponent.Kind()))
	a.run(8*time.Second, 20*time.Millisecond)

	assert.LessOrEqual(t, flat(a.pos(agent).Sub(goal)).Len(), 60.0)
	assert.False(t, ecs.Has(a.world, agent, component.MoveGoalComponent.Kind()))
}

func TestMoveToEntityFacesTarget(t *testing.T) {
	a := newTestArena(t)
	agent := a.spawn(mgl64.Vec3{250, 850, 0}, 0)
	target := a.spawn(mgl64.Vec3{250, 350, 0}, 0)

	a.space.MoveToEntity(agent, target, 300)

	tf, _ := ecs.Get(a.world, agent, component.TransformComponent.Kind())
	assert.InDelta(t, -math.Pi/2, tf.Yaw, 1e-9)

	a.run(3*time.Second, 20*time.Millisecond)
	assert.InDelta(t, 300, flat(a.pos(agent).Sub(a.pos(target))).Len(), 40)
	goal, ok := ecs.Get(a.world, agent, component.MoveGoalComponent.Kind())
	require.True(t, ok, "entity goals persist")
	assert.True(t, goal.Reached)

	a.world.DestroyEntity(target)
	a.run(40*time.Millisecond, 20*time.Millisecond)
	assert.False(t, ecs.Has(a.world, agent, component.MoveGoalComponent.Kind()))
}

func TestDisableMovementAndTakeover(t *testing.T) {
	a := newTestArena(t)
	agent := a.spawn(mgl64.Vec3{500, 850, 0}, 0)
	start := a.pos(agent)

	a.space.MoveToPoint(agent, mgl64.Vec3{1500, 850, 0}, 10)
	a.space.SimulatePhysics(agent)
	a.space.DisableMovement(agent)
	a.space.MoveToPoint(agent, mgl64.Vec3{1500, 850, 0}, 10)

	pb, _ := ecs.Get(a.world, agent, component.PhysicsBodyComponent.Kind())
	assert.True(t, pb.Ragdoll)
	loco, _ := ecs.Get(a.world, agent, component.LocomotionComponent.Kind())
	assert.Equal(t, component.MovementNone, loco.Mode)
	assert.False(t, ecs.Has(a.world, agent, component.MoveGoalComponent.Kind()))

	a.run(time.Second, 20*time.Millisecond)
	moved := a.pos(agent).Sub(start)
	assert.Less(t, moved.X(), -5.0, "knocked backward")
}

func TestPerceptionSightingCadence(t *testing.T) {
	a := newTestArena(t)
	observer := a.spawn(mgl64.Vec3{200, 800, 0}, 0)
	target := a.spawn(mgl64.Vec3{600, 800, 0}, 0)

	var seen []ecs.Entity
	unsubscribe := a.space.Subscribe(observer, func(o, tgt ecs.Entity) {
		assert.Equal(t, observer, o)
		seen = append(seen, tgt)
	})

	a.sched.Step(a.world, 100*time.Millisecond)
	assert.Equal(t, []ecs.Entity{target}, seen, "edge sighting")

	a.run(400*time.Millisecond, 100*time.Millisecond)
	assert.Len(t, seen, 1, "no repeat inside resight interval")

	a.sched.Step(a.world, 100*time.Millisecond)
	assert.Len(t, seen, 2, "resight after interval")

	unsubscribe()
	unsubscribe()
	a.run(time.Second, 100*time.Millisecond)
	assert.Len(t, seen, 2)
}

func TestPerceptionTargetReappears(t *testing.T) {
	a := newTestArena(t)
	observer := a.spawn(mgl64.Vec3{200, 800, 0}, 0)
	target := a.spawn(mgl64.Vec3{600, 800, 0}, 0)

	sightings := 0
	a.space.Subscribe(observer, func(ecs.Entity, ecs.Entity) { sightings++ })

	a.sched.Step(a.world, 100*time.Millisecond)
	require.Equal(t, 1, sightings)

	require.True(t, ecs.Remove(a.world, target, component.HealthComponent.Kind()))
	a.sched.Step(a.world, 100*time.Millisecond)
	assert.Equal(t, 1, sightings)

	require.NoError(t, ecs.Add(a.world, target, component.HealthComponent.Kind(), component.NewHealth(100)))
	a.sched.Step(a.world, 100*time.Millisecond)
	assert.Equal(t, 2, sightings, "reappearing target is a new sighting")
}

func TestPerceptionBlocked(t *testing.T) {
	tests := []struct {
		name   string
		target mgl64.Vec3
		yaw    float64
		sensor *component.Sensor
	}{
		{name: "behind", target: mgl64.Vec3{600, 800, 0}, yaw: math.Pi},
		{name: "behind_wall", target: mgl64.Vec3{1500, 300, 0}, yaw: 0},
		{name: "out_of_range", target: mgl64.Vec3{1800, 800, 0}, sensor: &component.Sensor{SightRadius: 1000, HalfAngle: math.Pi / 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newTestArena(t)
			observer := a.spawn(mgl64.Vec3{500, 300, 0}, tc.yaw)
			if tc.name != "behind_wall" {
				a.space.Teleport(observer, mgl64.Vec3{200, 800, 0})
			}
			if tc.sensor != nil {
				require.NoError(t, ecs.Add(a.world, observer, component.SensorComponent.Kind(), tc.sensor))
			}
			a.spawn(tc.target, 0)

			sightings := 0
			a.space.Subscribe(observer, func(ecs.Entity, ecs.Entity) { sightings++ })
			a.run(time.Second, 100*time.Millisecond)

			assert.Zero(t, sightings)
		})
	}
}

func TestDefeatedObserverSeesNothing(t *testing.T) {
	a := newTestArena(t)
	observer := a.spawn(mgl64.Vec3{200, 800, 0}, 0)
	a.spawn(mgl64.Vec3{600, 800, 0}, 0)
	hp, _ := ecs.Get(a.world, observer, component.HealthComponent.Kind())
	hp.Defeated = true

	sightings := 0
	a.space.Subscribe(observer, func(ecs.Entity, ecs.Entity) { sightings++ })
	a.run(time.Second, 100*time.Millisecond)

	assert.Zero(t, sightings)
}

func TestMuzzle(t *testing.T) {
	a := newTestArena(t)
	shooter := a.spawn(mgl64.Vec3{200, 800, 0}, math.Pi/2)
	sockets := component.Sockets{component.DefaultMuzzleSocket: {46, 12, 40}}
	require.NoError(t, ecs.Add(a.world, shooter, component.SocketsComponent.Kind(), &sockets))

	m, ok := a.space.Muzzle(shooter, component.DefaultMuzzleSocket)
	require.True(t, ok)
	assert.InDelta(t, 200-12, m.Position.X(), 1e-9)
	assert.InDelta(t, 800+46, m.Position.Y(), 1e-9)
	assert.InDelta(t, 40, m.Position.Z(), 1e-9)
	assert.InDelta(t, 1, m.Forward.Y(), 1e-9)

	_, ok = a.space.Muzzle(shooter, "b_missing")
	assert.False(t, ok)
	bare := a.spawn(mgl64.Vec3{400, 800, 0}, 0)
	_, ok = a.space.Muzzle(bare, component.DefaultMuzzleSocket)
	assert.False(t, ok)
}

func TestTracesExpire(t *testing.T) {
	a := newTestArena(t)
	a.space.DrawTrace(mgl64.Vec3{}, mgl64.Vec3{100, 0, 0}, true)
	a.space.MuzzleFlash(mgl64.Vec3{})

	require.Len(t, a.world.Query(component.LineRenderComponent.Kind()), 1)
	line, _ := ecs.Get(a.world, a.world.Query(component.LineRenderComponent.Kind())[0], component.LineRenderComponent.Kind())
	assert.Equal(t, DefaultTraceColor, line.Color)

	a.run(200*time.Millisecond, 100*time.Millisecond)
	assert.Empty(t, a.world.Query(component.MuzzleFlashComponent.Kind()))
	assert.Len(t, a.world.Query(component.LineRenderComponent.Kind()), 1)

	a.run(800*time.Millisecond, 100*time.Millisecond)
	assert.Empty(t, a.world.Query(component.LineRenderComponent.Kind()))
}

func TestPawnInput(t *testing.T) {
	a := newTestArena(t)
	player := a.spawn(mgl64.Vec3{250, 850, 0}, 0)

	a.space.AddYawInput(player, 90)
	a.space.AddPitchInput(player, 200)
	yaw, pitch, ok := a.space.Facing(player)
	require.True(t, ok)
	assert.InDelta(t, 90, yaw, 1e-9)
	assert.InDelta(t, maxPitch, pitch, 1e-9)

	a.space.AddMovementInput(player, mgl64.Vec3{1, 0, 0}, 1)
	a.sched.Step(a.world, 100*time.Millisecond)
	assert.InDelta(t, 290, a.pos(player).X(), 2)

	a.sched.Step(a.world, 100*time.Millisecond)
	assert.InDelta(t, 290, a.pos(player).X(), 2, "input is consumed each step")
}

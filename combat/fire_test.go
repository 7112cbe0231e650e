package combat

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
	"github.com/milk9111/skirmish/ports"
	"github.com/milk9111/skirmish/ports/mocks"
)

type fireFixture struct {
	world   *ecs.World
	model   *Model
	scanner *mocks.MockHitScanner
	traces  *mocks.MockTraceRenderer
	muzzles *mocks.MockMuzzleLocator
	fire    *FireRoutine
	shooter ecs.Entity
	target  ecs.Entity
}

func newFireFixture(t *testing.T) *fireFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fireFixture{
		world:   ecs.NewWorld(),
		scanner: mocks.NewMockHitScanner(ctrl),
		traces:  mocks.NewMockTraceRenderer(ctrl),
		muzzles: mocks.NewMockMuzzleLocator(ctrl),
	}
	f.model = NewModel(f.world, WithLogger(quietLogger()))
	f.fire = NewFireRoutine(f.world, f.model, FireDeps{
		Scanner: f.scanner,
		Muzzles: f.muzzles,
		Traces:  f.traces,
	}, quietLogger())
	f.shooter = spawnCombatant(t, f.world, 100)
	f.target = spawnCombatant(t, f.world, 100)
	return f
}

func (f *fireFixture) health(e ecs.Entity) float64 {
	h, _ := ecs.Get(f.world, e, component.HealthComponent.Kind())
	return h.Current
}

func TestFireHitAppliesWeaponDamage(t *testing.T) {
	f := newFireFixture(t)
	muzzle := ports.Muzzle{Position: mgl64.Vec3{0, 0, 50}, Forward: mgl64.Vec3{2, 0, 0}}
	hitPoint := mgl64.Vec3{400, 0, 50}

	f.scanner.EXPECT().Raycast(gomock.Any()).DoAndReturn(func(req ports.ShotRequest) (ports.ShotResult, error) {
		assert.Equal(t, muzzle.Position, req.Origin)
		assert.Equal(t, mgl64.Vec3{3000, 0, 50}, req.End)
		assert.Equal(t, mgl64.Vec3{1, 0, 0}, req.Direction)
		assert.Equal(t, component.DefaultWeaponRange, req.Range)
		assert.Equal(t, []ecs.Entity{f.shooter}, req.Ignore)
		return ports.ShotResult{Hit: true, Entity: f.target, Point: hitPoint}, nil
	})
	f.traces.EXPECT().MuzzleFlash(muzzle.Position)
	f.traces.EXPECT().DrawTrace(muzzle.Position, hitPoint, true)

	res := f.fire.Fire(f.shooter, &muzzle)

	assert.True(t, res.Hit)
	assert.Equal(t, 99.0, f.health(f.target))
	assert.Equal(t, 100.0, f.health(f.shooter))
	assert.Equal(t, FireStats{Shots: 1, Hits: 1, Damaged: 1}, f.fire.Stats())
}

func TestFireMissDoesNotDamage(t *testing.T) {
	f := newFireFixture(t)
	muzzle := ports.Muzzle{Forward: mgl64.Vec3{0, 1, 0}}

	f.scanner.EXPECT().Raycast(gomock.Any()).Return(ports.ShotResult{}, nil)
	f.traces.EXPECT().MuzzleFlash(gomock.Any())
	f.traces.EXPECT().DrawTrace(mgl64.Vec3{}, mgl64.Vec3{0, 3000, 0}, false)

	res := f.fire.Fire(f.shooter, &muzzle)

	assert.False(t, res.Hit)
	assert.Equal(t, 100.0, f.health(f.target))
	assert.Equal(t, FireStats{Shots: 1}, f.fire.Stats())
}

func TestFireHitOnGeometryWithoutHealth(t *testing.T) {
	f := newFireFixture(t)
	wall := f.world.CreateEntity()
	muzzle := ports.Muzzle{Forward: mgl64.Vec3{1, 0, 0}}

	f.scanner.EXPECT().Raycast(gomock.Any()).Return(ports.ShotResult{Hit: true, Entity: wall, Point: mgl64.Vec3{10, 0, 0}}, nil)
	f.traces.EXPECT().MuzzleFlash(gomock.Any())
	f.traces.EXPECT().DrawTrace(gomock.Any(), gomock.Any(), true)

	f.fire.Fire(f.shooter, &muzzle)

	assert.Equal(t, FireStats{Shots: 1, Hits: 1}, f.fire.Stats())
	assert.Equal(t, 100.0, f.health(f.target))
}

func TestFireUsesShooterWeapon(t *testing.T) {
	f := newFireFixture(t)
	require.NoError(t, ecs.Add(f.world, f.shooter, component.WeaponComponent.Kind(), &component.Weapon{Range: 500, Damage: 25}))
	muzzle := ports.Muzzle{Forward: mgl64.Vec3{-1, 0, 0}}

	f.scanner.EXPECT().Raycast(gomock.Any()).DoAndReturn(func(req ports.ShotRequest) (ports.ShotResult, error) {
		assert.Equal(t, 500.0, req.Range)
		assert.Equal(t, mgl64.Vec3{-500, 0, 0}, req.End)
		return ports.ShotResult{Hit: true, Entity: f.target}, nil
	})
	f.traces.EXPECT().MuzzleFlash(gomock.Any())
	f.traces.EXPECT().DrawTrace(gomock.Any(), gomock.Any(), true)

	f.fire.Fire(f.shooter, &muzzle)

	assert.Equal(t, 75.0, f.health(f.target))
}

func TestFireNoOps(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fireFixture) (*FireRoutine, *ports.Muzzle)
	}{
		{
			name: "nil_muzzle",
			setup: func(f *fireFixture) (*FireRoutine, *ports.Muzzle) {
				return f.fire, nil
			},
		},
		{
			name: "zero_forward",
			setup: func(f *fireFixture) (*FireRoutine, *ports.Muzzle) {
				return f.fire, &ports.Muzzle{Position: mgl64.Vec3{1, 2, 3}}
			},
		},
		{
			name: "scanner_not_ready",
			setup: func(f *fireFixture) (*FireRoutine, *ports.Muzzle) {
				f.scanner.EXPECT().Raycast(gomock.Any()).Return(ports.ShotResult{}, ports.ErrWorldNotReady)
				return f.fire, &ports.Muzzle{Forward: mgl64.Vec3{1, 0, 0}}
			},
		},
		{
			name: "scanner_missing",
			setup: func(f *fireFixture) (*FireRoutine, *ports.Muzzle) {
				return NewFireRoutine(f.world, f.model, FireDeps{Traces: f.traces}, quietLogger()), &ports.Muzzle{Forward: mgl64.Vec3{1, 0, 0}}
			},
		},
		{
			name: "defeated_shooter",
			setup: func(f *fireFixture) (*FireRoutine, *ports.Muzzle) {
				f.model.ApplyDamage(f.shooter, 1000)
				return f.fire, &ports.Muzzle{Forward: mgl64.Vec3{1, 0, 0}}
			},
		},
		{
			name: "destroyed_shooter",
			setup: func(f *fireFixture) (*FireRoutine, *ports.Muzzle) {
				f.world.DestroyEntity(f.shooter)
				return f.fire, &ports.Muzzle{Forward: mgl64.Vec3{1, 0, 0}}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFireFixture(t)
			routine, muzzle := tc.setup(f)

			res := routine.Fire(f.shooter, muzzle)

			assert.Equal(t, ports.ShotResult{}, res)
			assert.Zero(t, routine.Stats().Shots)
			assert.Equal(t, 100.0, f.health(f.target))
		})
	}
}

func TestFireFromResolvesSocket(t *testing.T) {
	f := newFireFixture(t)
	muzzle := ports.Muzzle{Position: mgl64.Vec3{5, 5, 0}, Forward: mgl64.Vec3{1, 0, 0}}

	f.muzzles.EXPECT().Muzzle(f.shooter, component.DefaultMuzzleSocket).Return(muzzle, true)
	f.scanner.EXPECT().Raycast(gomock.Any()).Return(ports.ShotResult{Hit: true, Entity: f.target}, nil)
	f.traces.EXPECT().MuzzleFlash(muzzle.Position)
	f.traces.EXPECT().DrawTrace(gomock.Any(), gomock.Any(), true)

	f.fire.FireFrom(f.shooter)
	assert.Equal(t, 99.0, f.health(f.target))

	f.muzzles.EXPECT().Muzzle(f.target, component.DefaultMuzzleSocket).Return(ports.Muzzle{}, false)
	res := f.fire.FireFrom(f.target)
	assert.False(t, res.Hit)
}

func TestFireDefeatCounted(t *testing.T) {
	f := newFireFixture(t)
	require.NoError(t, ecs.Add(f.world, f.shooter, component.WeaponComponent.Kind(), &component.Weapon{Damage: 60}))
	muzzle := ports.Muzzle{Forward: mgl64.Vec3{1, 0, 0}}

	f.scanner.EXPECT().Raycast(gomock.Any()).Return(ports.ShotResult{Hit: true, Entity: f.target}, nil).Times(3)
	f.traces.EXPECT().MuzzleFlash(gomock.Any()).Times(3)
	f.traces.EXPECT().DrawTrace(gomock.Any(), gomock.Any(), true).Times(3)

	for i := 0; i < 3; i++ {
		f.fire.Fire(f.shooter, &muzzle)
	}

	assert.Equal(t, -80.0, f.health(f.target))
	assert.Equal(t, 1, f.fire.Stats().Defeats)
	assert.Equal(t, 3, f.fire.Stats().Damaged)
}

func TestFireWithoutModelDealsNoDamage(t *testing.T) {
	f := newFireFixture(t)
	routine := NewFireRoutine(f.world, nil, FireDeps{Scanner: f.scanner, Traces: f.traces}, quietLogger())
	muzzle := ports.Muzzle{Forward: mgl64.Vec3{1, 0, 0}}

	f.scanner.EXPECT().Raycast(gomock.Any()).Return(ports.ShotResult{Hit: true, Entity: f.target, Point: mgl64.Vec3{50, 0, 0}}, nil)
	f.traces.EXPECT().MuzzleFlash(gomock.Any())
	f.traces.EXPECT().DrawTrace(gomock.Any(), mgl64.Vec3{50, 0, 0}, true)

	var res ports.ShotResult
	require.NotPanics(t, func() { res = routine.Fire(f.shooter, &muzzle) })

	assert.True(t, res.Hit)
	assert.Equal(t, 100.0, f.health(f.target))
	assert.Equal(t, FireStats{Shots: 1, Hits: 1}, routine.Stats())
}

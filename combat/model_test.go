package combat

import (
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
	"github.com/milk9111/skirmish/ports/mocks"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func spawnCombatant(t *testing.T, w *ecs.World, max float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	require.NoError(t, ecs.Add(w, e, component.HealthComponent.Kind(), component.NewHealth(max)))
	return e
}

func TestApplyDamageScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	takeover := mocks.NewMockPhysicsTakeover(ctrl)
	locomotion := mocks.NewMockLocomotionDisabler(ctrl)

	w := ecs.NewWorld()
	e := spawnCombatant(t, w, 100)

	gomock.InOrder(
		takeover.EXPECT().SimulatePhysics(e).Times(1),
		locomotion.EXPECT().DisableMovement(e).Times(1),
	)

	m := NewModel(w, WithPhysicsTakeover(takeover), WithLocomotionDisabler(locomotion), WithLogger(quietLogger()))
	defeats := 0
	m.OnDefeated(func(ecs.Entity) { defeats++ })

	want := []struct {
		health   float64
		alive    bool
		defeated bool
	}{
		{60, true, false},
		{20, true, false},
		{-20, false, true},
	}
	for i, step := range want {
		got := m.ApplyDamage(e, 40)
		h, _ := ecs.Get(w, e, component.HealthComponent.Kind())
		assert.Equalf(t, step.defeated, got, "call %d", i+1)
		assert.Equalf(t, step.health, h.Current, "call %d", i+1)
		assert.Equalf(t, step.alive, h.IsAlive(), "call %d", i+1)
	}

	assert.Equal(t, 1, defeats)
	events := w.Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, ecs.EventDefeated, events[0].Type)
	assert.Equal(t, e, events[0].Entity)
}

func TestDefeatSequenceRunsOnce(t *testing.T) {
	sequences := []struct {
		name    string
		amounts []float64
	}{
		{"single_overkill", []float64{500}},
		{"exact_zero", []float64{50, 50}},
		{"many_after_defeat", []float64{100, 1, 1, 1, 1000}},
		{"heal_after_defeat", []float64{150, -200, 300}},
		{"never_defeated", []float64{10, 20, -5}},
	}

	for _, tc := range sequences {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := spawnCombatant(t, w, 100)
			m := NewModel(w, WithLogger(quietLogger()))

			transitions := 0
			m.OnDefeated(func(ecs.Entity) { transitions++ })

			wantDefeated := false
			health := 100.0
			for _, a := range tc.amounts {
				before, _ := ecs.Get(w, e, component.HealthComponent.Kind())
				prev := before.Current

				m.ApplyDamage(e, a)
				h, _ := ecs.Get(w, e, component.HealthComponent.Kind())
				assert.Equal(t, prev-a, h.Current)

				health -= a
				if health <= 0 {
					wantDefeated = true
				}
			}

			h, _ := ecs.Get(w, e, component.HealthComponent.Kind())
			assert.Equal(t, wantDefeated, h.Defeated)
			if wantDefeated {
				assert.Equal(t, 1, transitions)
			} else {
				assert.Zero(t, transitions)
			}
		})
	}
}

func TestApplyDamageIgnoresInvalidTargets(t *testing.T) {
	w := ecs.NewWorld()
	m := NewModel(w, WithLogger(quietLogger()))

	noHealth := w.CreateEntity()
	assert.False(t, m.ApplyDamage(noHealth, 10))

	gone := spawnCombatant(t, w, 10)
	w.DestroyEntity(gone)
	assert.False(t, m.ApplyDamage(gone, 100))

	e := spawnCombatant(t, w, 10)
	assert.False(t, m.ApplyDamage(e, math.NaN()))
	h, _ := ecs.Get(w, e, component.HealthComponent.Kind())
	assert.Equal(t, 10.0, h.Current)

	var nilModel *Model
	assert.False(t, nilModel.ApplyDamage(e, 1))
	assert.False(t, nilModel.IsAlive(e))
	_, alive := nilModel.Health(e)
	assert.False(t, alive)
	assert.Zero(t, w.Events().Len())
}

func TestHealthQueries(t *testing.T) {
	w := ecs.NewWorld()
	m := NewModel(w, WithLogger(quietLogger()))
	e := spawnCombatant(t, w, 10)

	m.ApplyDamage(e, 25)
	display, alive := m.Health(e)
	assert.Zero(t, display)
	assert.False(t, alive)
	assert.False(t, m.IsAlive(e))

	wall := w.CreateEntity()
	assert.True(t, m.IsAlive(wall))
	w.DestroyEntity(wall)
	assert.False(t, m.IsAlive(wall))
}

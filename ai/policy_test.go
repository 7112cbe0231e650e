package ai

import (
	"testing"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/skirmish/prefabs"
)

func TestCooldownPolicy(t *testing.T) {
	p := CooldownPolicy{Cooldown: time.Second, MaxRange: 1000}
	tests := []struct {
		name string
		ctx  FireContext
		want bool
	}{
		{"first_shot_in_range", FireContext{Distance: 10, FirstShot: true}, true},
		{"first_shot_out_of_range", FireContext{Distance: 1001, FirstShot: true}, false},
		{"cooling_down", FireContext{Distance: 10, SinceLastShot: 999 * time.Millisecond}, false},
		{"cooled_down", FireContext{Distance: 10, SinceLastShot: time.Second}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.ShouldFire(tc.ctx))
		})
	}

	assert.True(t, CooldownPolicy{}.ShouldFire(FireContext{Distance: 1e9}))
	assert.True(t, AlwaysFire{}.ShouldFire(FireContext{}))
	assert.False(t, FirePolicyFunc(func(FireContext) bool { return false }).ShouldFire(FireContext{}))
}

func TestScriptPolicy(t *testing.T) {
	p, err := LoadScriptPolicy("fire_policy.tengo", quietLogger())
	require.NoError(t, err)

	tests := []struct {
		name string
		ctx  FireContext
		want bool
	}{
		{"first_shot", FireContext{Distance: 100, FirstShot: true, TargetHealth: 100}, true},
		{"too_far", FireContext{Distance: 6000, FirstShot: true}, false},
		{"cooling_down", FireContext{Distance: 100, SinceLastShot: 500 * time.Millisecond, TargetHealth: 100}, false},
		{"finish_weak_target", FireContext{Distance: 100, SinceLastShot: 500 * time.Millisecond, TargetHealth: 10}, true},
		{"cooled_down", FireContext{Distance: 100, SinceLastShot: time.Second, TargetHealth: 100}, true},
	}

	clone := p.Clone()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.ShouldFire(tc.ctx))
			assert.Equal(t, tc.want, clone.ShouldFire(tc.ctx))
		})
	}
}

func TestScriptPolicyErrors(t *testing.T) {
	_, err := NewScriptPolicy([]byte("fire = "), quietLogger())
	assert.Error(t, err)

	p, err := NewScriptPolicy([]byte(`fire = distance < 10 ? true : undefined_thing`), quietLogger())
	assert.Error(t, err)
	assert.Nil(t, p)

	p, err = NewScriptPolicy([]byte(`if !first_shot { fire = [true][int(distance) + 5] }`), quietLogger())
	require.NoError(t, err)
	assert.False(t, p.ShouldFire(FireContext{}))

	_, err = LoadScriptPolicy("missing.tengo", quietLogger())
	assert.Error(t, err)
}

func TestDeclareInputs(t *testing.T) {
	script := tengo.NewScript([]byte(`fire = first_shot`))
	require.NoError(t, declareInputs(script, scriptInputs))
	compiled, err := script.Compile()
	require.NoError(t, err)
	require.NoError(t, compiled.Run())
	assert.True(t, compiled.Get("fire").Bool())

	err = declareInputs(tengo.NewScript(nil), []scriptInput{{"distance", 1.0}, {"target", make(chan int)}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declare target")
}

func TestPolicyFromSpec(t *testing.T) {
	p, err := PolicyFromSpec(prefabs.FirePolicySpec{}, quietLogger())
	require.NoError(t, err)
	assert.IsType(t, AlwaysFire{}, p)

	p, err = PolicyFromSpec(prefabs.FirePolicySpec{Kind: "Cooldown", Cooldown: prefabs.Duration(time.Second), MaxRange: 50}, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, CooldownPolicy{Cooldown: time.Second, MaxRange: 50}, p)

	p, err = PolicyFromSpec(prefabs.FirePolicySpec{Kind: "script", Script: "fire_policy.tengo"}, quietLogger())
	require.NoError(t, err)
	assert.IsType(t, &ScriptPolicy{}, p)

	_, err = PolicyFromSpec(prefabs.FirePolicySpec{Kind: "script"}, quietLogger())
	assert.ErrorIs(t, err, ErrMissingScript)

	_, err = PolicyFromSpec(prefabs.FirePolicySpec{Kind: "burst"}, quietLogger())
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

package ai

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/prefabs"
)

var (
	ErrUnknownPolicy = errors.New("ai: unknown fire policy")
	ErrMissingScript = errors.New("ai: script policy needs a script")
)

// FireContext is what a FirePolicy sees when an agent engages a target.
type FireContext struct {
	Shooter       ecs.Entity
	Target        ecs.Entity
	Distance      float64
	SinceLastShot time.Duration
	FirstShot     bool
	TargetHealth  float64
	Now           time.Duration
}

// FirePolicy decides whether an engagement fires. It is the single gate
// between the chase state machine and the fire routine.
type FirePolicy interface {
	ShouldFire(ctx FireContext) bool
}

// FirePolicyFunc adapts a function to FirePolicy.
type FirePolicyFunc func(ctx FireContext) bool

func (f FirePolicyFunc) ShouldFire(ctx FireContext) bool {
	return f(ctx)
}

// AlwaysFire fires on every engagement.
type AlwaysFire struct{}

func (AlwaysFire) ShouldFire(FireContext) bool {
	return true
}

// CooldownPolicy fires at most once per Cooldown and only inside MaxRange.
// Zero values disable the respective check.
type CooldownPolicy struct {
	Cooldown time.Duration
	MaxRange float64
}

func (p CooldownPolicy) ShouldFire(ctx FireContext) bool {
	if p.MaxRange > 0 && ctx.Distance > p.MaxRange {
		return false
	}
	if !ctx.FirstShot && ctx.SinceLastShot < p.Cooldown {
		return false
	}
	return true
}

// PolicyFromSpec builds the fire policy a prefab asks for. An empty kind
// means AlwaysFire.
func PolicyFromSpec(spec prefabs.FirePolicySpec, logger *log.Logger) (FirePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(spec.Kind)) {
	case "", "always":
		return AlwaysFire{}, nil
	case "cooldown":
		return CooldownPolicy{Cooldown: time.Duration(spec.Cooldown), MaxRange: spec.MaxRange}, nil
	case "script":
		if spec.Script == "" {
			return nil, fmt.Errorf("ai: fire policy: %w", ErrMissingScript)
		}
		return LoadScriptPolicy(spec.Script, logger)
	default:
		return nil, fmt.Errorf("ai: fire policy %q: %w", spec.Kind, ErrUnknownPolicy)
	}
}

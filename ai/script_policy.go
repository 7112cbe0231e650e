package ai

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/skirmish/prefabs"
)

// ScriptPolicy evaluates a tengo script per engagement. The script reads
// distance, since_last_shot (seconds), first_shot and target_health, and
// assigns a bool to fire.
type ScriptPolicy struct {
	path     string
	compiled *tengo.Compiled
	logger   *log.Logger
}

// LoadScriptPolicy compiles a script from the prefab scripts directory.
func LoadScriptPolicy(path string, logger *log.Logger) (*ScriptPolicy, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("ai: load fire policy %s: %w", path, err)
	}
	p, err := NewScriptPolicy(src, logger)
	if err != nil {
		return nil, fmt.Errorf("ai: compile fire policy %s: %w", path, err)
	}
	p.path = path
	return p, nil
}

func NewScriptPolicy(src []byte, logger *log.Logger) (*ScriptPolicy, error) {
	if logger == nil {
		logger = log.Default()
	}
	script := tengo.NewScript(src)
	if err := declareInputs(script, scriptInputs); err != nil {
		return nil, err
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	if err := compiled.Run(); err != nil {
		return nil, err
	}
	return &ScriptPolicy{compiled: compiled, logger: logger.With("component", "fire_policy")}, nil
}

type scriptInput struct {
	name  string
	value any
}

var scriptInputs = []scriptInput{
	{"distance", 0.0},
	{"since_last_shot", 0.0},
	{"first_shot", true},
	{"target_health", 0.0},
	{"fire", false},
}

func declareInputs(script *tengo.Script, inputs []scriptInput) error {
	for _, in := range inputs {
		if err := script.Add(in.name, in.value); err != nil {
			return fmt.Errorf("ai: declare %s: %w", in.name, err)
		}
	}
	return nil
}

// Clone returns an independent copy sharing the compiled bytecode.
func (p *ScriptPolicy) Clone() *ScriptPolicy {
	if p == nil {
		return nil
	}
	return &ScriptPolicy{path: p.path, compiled: p.compiled.Clone(), logger: p.logger}
}

// ShouldFire runs the script. Script errors hold fire.
func (p *ScriptPolicy) ShouldFire(ctx FireContext) bool {
	if p == nil || p.compiled == nil {
		return false
	}
	vars := map[string]any{
		"distance":        ctx.Distance,
		"since_last_shot": ctx.SinceLastShot.Seconds(),
		"first_shot":      ctx.FirstShot,
		"target_health":   ctx.TargetHealth,
		"fire":            false,
	}
	for name, v := range vars {
		if err := p.compiled.Set(name, v); err != nil {
			p.logger.Error("fire policy set", "var", name, "err", err)
			return false
		}
	}
	if err := p.compiled.Run(); err != nil {
		p.logger.Error("fire policy run", "path", p.path, "err", err)
		return false
	}
	return p.compiled.Get("fire").Bool()
}

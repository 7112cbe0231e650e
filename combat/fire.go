package combat

import (
	"github.com/charmbracelet/log"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
	"github.com/milk9111/skirmish/ports"
)

// FireDeps are the collaborators of a FireRoutine. Any of them may be nil;
// a missing scanner turns every shot into a no-op.
type FireDeps struct {
	Scanner ports.HitScanner
	Muzzles ports.MuzzleLocator
	Traces  ports.TraceRenderer
}

// FireStats counts shots resolved by a FireRoutine.
type FireStats struct {
	Shots   int
	Hits    int
	Damaged int
	Defeats int
}

// FireRoutine performs one instantaneous hit-scan shot per call.
type FireRoutine struct {
	world  *ecs.World
	model  *Model
	deps   FireDeps
	stats  FireStats
	logger *log.Logger
}

func NewFireRoutine(w *ecs.World, model *Model, deps FireDeps, logger *log.Logger) *FireRoutine {
	if logger == nil {
		logger = log.Default()
	}
	return &FireRoutine{
		world:  w,
		model:  model,
		deps:   deps,
		logger: logger.With("component", "fire"),
	}
}

// FireFrom resolves the shooter's weapon socket and fires from it. A
// shooter without that socket does not fire.
func (f *FireRoutine) FireFrom(shooter ecs.Entity) ports.ShotResult {
	if f == nil || f.deps.Muzzles == nil {
		return ports.ShotResult{}
	}
	weapon := f.weapon(shooter)
	muzzle, ok := f.deps.Muzzles.Muzzle(shooter, weapon.Socket)
	if !ok {
		f.logger.Debug("no muzzle socket", "shooter", shooter, "socket", weapon.Socket)
		return ports.ShotResult{}
	}
	return f.Fire(shooter, &muzzle)
}

// Fire casts a segment from the muzzle along its forward vector for the
// weapon's range, ignoring the shooter, and damages the first entity hit
// when it has health.
func (f *FireRoutine) Fire(shooter ecs.Entity, muzzle *ports.Muzzle) ports.ShotResult {
	if f == nil || muzzle == nil || f.deps.Scanner == nil {
		return ports.ShotResult{}
	}
	if f.model != nil && !f.model.IsAlive(shooter) {
		return ports.ShotResult{}
	}
	if muzzle.Forward.Len() == 0 {
		f.logger.Debug("zero muzzle direction", "shooter", shooter)
		return ports.ShotResult{}
	}

	weapon := f.weapon(shooter)
	dir := muzzle.Forward.Normalize()
	req := ports.ShotRequest{
		Origin:    muzzle.Position,
		End:       muzzle.Position.Add(dir.Mul(weapon.Range)),
		Direction: dir,
		Range:     weapon.Range,
		Ignore:    []ecs.Entity{shooter},
	}

	res, err := f.deps.Scanner.Raycast(req)
	if err != nil {
		f.logger.Debug("raycast unavailable", "shooter", shooter, "err", err)
		return ports.ShotResult{}
	}
	f.stats.Shots++

	traceEnd := req.End
	if res.Hit {
		f.stats.Hits++
		traceEnd = res.Point
		f.resolveHit(shooter, res.Entity, weapon.Damage)
	}
	f.logger.Debug("shot", "shooter", shooter, "hit", res.Hit, "target", res.Entity)

	if f.deps.Traces != nil {
		f.deps.Traces.MuzzleFlash(req.Origin)
		f.deps.Traces.DrawTrace(req.Origin, traceEnd, res.Hit)
	}
	f.world.Events().Push(ecs.Event{Type: ecs.EventShot, Entity: shooter, Other: res.Entity, Data: res})
	return res
}

// Stats returns a copy of the running counters.
func (f *FireRoutine) Stats() FireStats {
	if f == nil {
		return FireStats{}
	}
	return f.stats
}

func (f *FireRoutine) resolveHit(shooter, struck ecs.Entity, damage float64) {
	if f.model == nil || struck == shooter || !f.world.IsAlive(struck) {
		return
	}
	// geometry without health absorbs the shot
	if !ecs.Has(f.world, struck, component.HealthComponent.Kind()) {
		return
	}
	f.stats.Damaged++
	if f.model.ApplyDamage(struck, damage) {
		f.stats.Defeats++
	}
}

func (f *FireRoutine) weapon(shooter ecs.Entity) component.Weapon {
	if w, ok := ecs.Get(f.world, shooter, component.WeaponComponent.Kind()); ok {
		return w.Normalized()
	}
	return component.DefaultWeapon()
}

package arena

import (
	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
	"github.com/milk9111/skirmish/ports"
)

const traceWidth = 2

// DrawTrace spawns a short-lived line entity for the viewer.
func (s *Space) DrawTrace(from, to ports.Point, hit bool) {
	e := s.world.CreateEntity()
	_ = ecs.Add(s.world, e, component.LineRenderComponent.Kind(), &component.LineRender{
		Start: from,
		End:   to,
		Width: traceWidth,
		Color: s.cfg.TraceColor,
		Hit:   hit,
	})
	_ = ecs.Add(s.world, e, component.TTLComponent.Kind(), &component.TTL{Remaining: s.cfg.TraceLifetime})
}

// MuzzleFlash spawns a short-lived flash marker.
func (s *Space) MuzzleFlash(at ports.Point) {
	e := s.world.CreateEntity()
	_ = ecs.Add(s.world, e, component.MuzzleFlashComponent.Kind(), &component.MuzzleFlash{Position: at})
	_ = ecs.Add(s.world, e, component.TTLComponent.Kind(), &component.TTL{Remaining: s.cfg.FlashLifetime})
}

// updateLifetimes destroys entities whose TTL ran out.
func (s *Space) updateLifetimes(w *ecs.World) {
	dt := w.Delta()
	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		ttl.Remaining -= dt
		if ttl.Remaining <= 0 {
			w.DestroyEntity(e)
		}
	})
}

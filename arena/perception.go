package arena

import (
	"math"
	"sort"
	"time"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
	"github.com/milk9111/skirmish/ports"
)

type subscription struct {
	id       uint64
	observer ecs.Entity
	fn       ports.SightedFunc
}

type sightKey struct {
	observer, target ecs.Entity
}

type perception struct {
	nextID uint64
	subs   []subscription
	// last report time per visible pair; absent means not visible
	visible map[sightKey]time.Duration
}

func newPerception() *perception {
	return &perception{visible: make(map[sightKey]time.Duration)}
}

func (p *perception) forget(e ecs.Entity) {
	kept := p.subs[:0]
	for _, sub := range p.subs {
		if sub.observer != e {
			kept = append(kept, sub)
		}
	}
	p.subs = kept
	for k := range p.visible {
		if k.observer == e || k.target == e {
			delete(p.visible, k)
		}
	}
}

// prune drops pairs whose target is no longer a candidate, so a target
// that comes back is reported as a fresh sighting.
func (p *perception) prune(candidates []ecs.Entity) {
	if len(p.visible) == 0 {
		return
	}
	present := make(map[ecs.Entity]struct{}, len(candidates))
	for _, e := range candidates {
		present[e] = struct{}{}
	}
	for k := range p.visible {
		if _, ok := present[k.target]; !ok {
			delete(p.visible, k)
		}
	}
}

// Subscribe registers fn for sightings by observer. The returned func
// removes the subscription and may be called more than once.
func (s *Space) Subscribe(observer ecs.Entity, fn ports.SightedFunc) func() {
	if s == nil || fn == nil {
		return func() {}
	}
	p := s.sensing
	p.nextID++
	id := p.nextID
	p.subs = append(p.subs, subscription{id: id, observer: observer, fn: fn})
	return func() {
		for i, sub := range p.subs {
			if sub.id == id {
				p.subs = append(p.subs[:i], p.subs[i+1:]...)
				return
			}
		}
	}
}

// updatePerception reports a sighting when a target becomes visible and
// again every resight interval while it stays visible.
func (s *Space) updatePerception(w *ecs.World) {
	p := s.sensing
	if len(p.subs) == 0 {
		return
	}
	candidates := w.Query(component.TransformComponent.Kind(), component.HealthComponent.Kind())
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })
	p.prune(candidates)

	subs := append([]subscription(nil), p.subs...)
	for _, sub := range subs {
		sensor := component.DefaultSensor()
		if sn, ok := ecs.Get(w, sub.observer, component.SensorComponent.Kind()); ok {
			sensor = *sn
		}
		if !s.canSense(sub.observer) {
			continue
		}
		for _, target := range candidates {
			if target == sub.observer {
				continue
			}
			key := sightKey{sub.observer, target}
			if !s.sees(sub.observer, target, sensor) {
				delete(p.visible, key)
				continue
			}
			last, wasVisible := p.visible[key]
			if wasVisible && s.elapsed-last < sensor.ResightInterval {
				continue
			}
			p.visible[key] = s.elapsed
			sub.fn(sub.observer, target)
		}
	}
}

func (s *Space) canSense(observer ecs.Entity) bool {
	if !s.world.IsAlive(observer) {
		return false
	}
	h, ok := ecs.Get(s.world, observer, component.HealthComponent.Kind())
	return !ok || h.IsAlive()
}

// sees tests range, view cone and line of sight in the XY plane.
func (s *Space) sees(observer, target ecs.Entity, sensor component.Sensor) bool {
	otf, ok := ecs.Get(s.world, observer, component.TransformComponent.Kind())
	if !ok {
		return false
	}
	to := flat(s.position(target).Sub(otf.Position))
	dist := to.Len()
	if dist > sensor.SightRadius {
		return false
	}
	if dist > 0 && sensor.HalfAngle < math.Pi {
		cos := otf.YawForward().Dot(to.Mul(1 / dist))
		if math.Acos(math.Max(-1, math.Min(1, cos))) > sensor.HalfAngle {
			return false
		}
	}
	return s.LineOfSight(observer, target)
}

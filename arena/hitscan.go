package arena

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ports"
)

// Raycast returns the nearest shape along the request segment that does
// not belong to an ignored entity.
func (s *Space) Raycast(req ports.ShotRequest) (ports.ShotResult, error) {
	if s == nil || s.space == nil {
		return ports.ShotResult{}, ports.ErrWorldNotReady
	}
	start, end := toVec(req.Origin), toVec(req.End)
	if start == end {
		return ports.ShotResult{}, nil
	}

	ignore := make(map[ecs.Entity]struct{}, len(req.Ignore))
	for _, e := range req.Ignore {
		ignore[e] = struct{}{}
	}

	filter := cp.SHAPE_FILTER_ALL
	if len(req.Ignore) > 0 {
		if a, ok := s.actors[req.Ignore[0]]; ok {
			filter.Group = a.group
		}
	}

	best := math.Inf(1)
	var hit cp.SegmentQueryInfo
	s.space.SegmentQuery(start, end, 0, filter, func(shape *cp.Shape, point, normal cp.Vector, alpha float64, data interface{}) {
		owner, ok := s.owners[shape]
		if !ok {
			return
		}
		if _, skip := ignore[owner]; skip {
			return
		}
		if alpha < best {
			best = alpha
			hit = cp.SegmentQueryInfo{Shape: shape, Point: point, Normal: normal, Alpha: alpha}
		}
	}, nil)

	if hit.Shape == nil {
		return ports.ShotResult{}, nil
	}
	z := req.Origin.Z() + hit.Alpha*(req.End.Z()-req.Origin.Z())
	return ports.ShotResult{
		Hit:    true,
		Entity: s.owners[hit.Shape],
		Point:  ports.Point{hit.Point.X, hit.Point.Y, z},
		Normal: mgl64.Vec3{hit.Normal.X, hit.Normal.Y, 0},
	}, nil
}

// LineOfSight reports whether the first thing between observer and target
// is the target itself.
func (s *Space) LineOfSight(observer, target ecs.Entity) bool {
	if s == nil || s.space == nil {
		return false
	}
	start, end := toVec(s.position(observer)), toVec(s.position(target))
	filter := cp.SHAPE_FILTER_ALL
	if a, ok := s.actors[observer]; ok {
		filter.Group = a.group
	}
	info := s.space.SegmentQueryFirst(start, end, 0, filter)
	if info.Shape == nil {
		return true
	}
	return s.owners[info.Shape] == target
}

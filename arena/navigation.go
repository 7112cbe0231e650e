package arena

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/skirmish/ecs/component"
	"github.com/milk9111/skirmish/ports"
)

// RandomReachablePoint picks a random open cell connected to origin whose
// center lies within radius. It fails when origin is outside the arena or
// inside an obstacle.
func (s *Space) RandomReachablePoint(origin ports.Point, radius float64) (ports.Point, bool) {
	if s == nil || s.grid == nil || radius <= 0 {
		return ports.Point{}, false
	}
	cells := s.grid.reachable(origin, radius)
	if len(cells) == 0 {
		return ports.Point{}, false
	}
	c := cells[s.rng.IntN(len(cells))]
	return s.grid.center(c, origin.Z()), true
}

// Blocked reports whether p lies inside or against a wall.
func (s *Space) Blocked(p ports.Point) bool {
	if s == nil || s.space == nil {
		return true
	}
	filter := cp.ShapeFilter{Group: cp.NO_GROUP, Categories: cp.ALL_CATEGORIES, Mask: uint(component.LayerWall)}
	info := s.space.PointQueryNearest(toVec(p), wallThickness, filter)
	return info != nil && info.Shape != nil
}

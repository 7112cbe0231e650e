package arena

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
	"github.com/milk9111/skirmish/ports"
)

// Muzzle resolves a socket offset (forward, right, up) against the
// shooter's transform. The muzzle faces along the full view direction.
func (s *Space) Muzzle(shooter ecs.Entity, socket string) (ports.Muzzle, bool) {
	tf, ok := ecs.Get(s.world, shooter, component.TransformComponent.Kind())
	if !ok {
		return ports.Muzzle{}, false
	}
	sockets, ok := ecs.Get(s.world, shooter, component.SocketsComponent.Kind())
	if !ok {
		return ports.Muzzle{}, false
	}
	offset, ok := (*sockets)[socket]
	if !ok {
		return ports.Muzzle{}, false
	}

	pos := tf.Position.
		Add(tf.YawForward().Mul(offset.X())).
		Add(tf.YawRight().Mul(offset.Y())).
		Add(mgl64.Vec3{0, 0, offset.Z()})
	return ports.Muzzle{Position: pos, Forward: tf.Forward()}, true
}

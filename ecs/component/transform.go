package component

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform places an entity in world space. Yaw rotates about +Z, pitch
// tilts the forward vector up from the XY plane; both are radians.
type Transform struct {
	Position mgl64.Vec3
	Yaw      float64
	Pitch    float64
}

// Forward returns the unit view direction.
func (t Transform) Forward() mgl64.Vec3 {
	cp := math.Cos(t.Pitch)
	return mgl64.Vec3{cp * math.Cos(t.Yaw), cp * math.Sin(t.Yaw), math.Sin(t.Pitch)}
}

// YawForward is the forward direction with pitch discarded.
func (t Transform) YawForward() mgl64.Vec3 {
	return mgl64.Vec3{math.Cos(t.Yaw), math.Sin(t.Yaw), 0}
}

// YawRight is the right-hand direction in the XY plane.
func (t Transform) YawRight() mgl64.Vec3 {
	return mgl64.Vec3{-math.Sin(t.Yaw), math.Cos(t.Yaw), 0}
}

var TransformComponent = NewComponent[Transform]()

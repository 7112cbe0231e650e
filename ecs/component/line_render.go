package component

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// LineRender defines a world-space line to render, such as a shot trace.
type LineRender struct {
	Start mgl64.Vec3
	End   mgl64.Vec3
	Width float32
	Color color.RGBA
	Hit   bool
}

var LineRenderComponent = NewComponent[LineRender]()

// MuzzleFlash marks a short-lived flash at a muzzle position.
type MuzzleFlash struct {
	Position mgl64.Vec3
}

var MuzzleFlashComponent = NewComponent[MuzzleFlash]()

package main

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

var (
	colorBackground = color.RGBA{R: 0x1b, G: 0x1d, B: 0x22, A: 0xff}
	colorWall       = color.RGBA{R: 0x55, G: 0x5a, B: 0x66, A: 0xff}
	colorPlayer     = color.RGBA{R: 0x3d, G: 0x9b, B: 0xff, A: 0xff}
	colorAgent      = color.RGBA{R: 0xff, G: 0x9a, B: 0x3d, A: 0xff}
	colorChasing    = color.RGBA{R: 0xff, G: 0x4d, B: 0x3d, A: 0xff}
	colorDefeated   = color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}
	colorFlash      = color.RGBA{R: 0xff, G: 0xf0, B: 0x80, A: 0xff}
	colorText       = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
)

type hud struct {
	face *text.GoTextFace
}

func newHUD() *hud {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return &hud{}
	}
	return &hud{face: &text.GoTextFace{Source: src, Size: 16}}
}

func (h *hud) line(screen *ebiten.Image, s string, x, y float64) {
	if h == nil || h.face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colorText)
	text.Draw(screen, s, h.face, op)
}

// view maps arena coordinates to the screen, keeping the aspect ratio.
type view struct {
	scale float64
}

func (v view) pt(x, y float64) (float32, float32) {
	return float32(x * v.scale), float32(y * v.scale)
}

func (v view) len(l float64) float32 {
	return float32(l * v.scale)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	spec := g.sim.Spec()
	v := view{scale: math.Min(screenWidth/spec.Width, screenHeight/spec.Height)}

	w, h := v.pt(spec.Width, spec.Height)
	vector.StrokeRect(screen, 0, 0, w, h, 2, colorWall, false)
	for _, r := range spec.Obstacles {
		x, y := v.pt(r.X, r.Y)
		vector.FillRect(screen, x, y, v.len(r.W), v.len(r.H), colorWall, false)
	}

	world := g.sim.World
	ecs.ForEach(world, component.LineRenderComponent.Kind(), func(_ ecs.Entity, line *component.LineRender) {
		x0, y0 := v.pt(line.Start.X(), line.Start.Y())
		x1, y1 := v.pt(line.End.X(), line.End.Y())
		vector.StrokeLine(screen, x0, y0, x1, y1, line.Width, line.Color, true)
	})
	ecs.ForEach(world, component.MuzzleFlashComponent.Kind(), func(_ ecs.Entity, flash *component.MuzzleFlash) {
		x, y := v.pt(flash.Position.X(), flash.Position.Y())
		vector.FillCircle(screen, x, y, 4, colorFlash, true)
	})

	ecs.ForEach2(world, component.TransformComponent.Kind(), component.HealthComponent.Kind(), func(e ecs.Entity, tf *component.Transform, hp *component.Health) {
		radius := 34.0
		if pb, ok := ecs.Get(world, e, component.PhysicsBodyComponent.Kind()); ok {
			radius = pb.Radius
		}
		x, y := v.pt(tf.Position.X(), tf.Position.Y())
		vector.FillCircle(screen, x, y, v.len(radius), g.pawnColor(e, hp), true)

		f := tf.YawForward()
		fx, fy := v.pt(tf.Position.X()+f.X()*radius*1.6, tf.Position.Y()+f.Y()*radius*1.6)
		vector.StrokeLine(screen, x, y, fx, fy, 2, colorText, true)

		bar := v.len(radius * 2)
		vector.FillRect(screen, x-bar/2, y-v.len(radius)-8, bar, 3, colorDefeated, false)
		vector.FillRect(screen, x-bar/2, y-v.len(radius)-8, bar*float32(hp.Fraction()), 3, colorPlayer, false)
	})

	g.drawHUD(screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) pawnColor(e ecs.Entity, hp *component.Health) color.RGBA {
	switch {
	case !hp.IsAlive():
		return colorDefeated
	case e == g.sim.Player:
		return colorPlayer
	}
	if st, ok := ecs.Get(g.sim.World, e, component.AIStateComponent.Kind()); ok && st.Mode == component.ModeChasing {
		return colorChasing
	}
	return colorAgent
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	r := g.sim.Report()
	y := 8.0
	g.hud.line(screen, fmt.Sprintf("%s  seed %d  %s", r.Arena, r.Seed, r.Elapsed.Truncate(1e8)), 8, y)
	y += 20
	g.hud.line(screen, fmt.Sprintf("shots %d  hits %d  defeats %d", r.Shots, r.Hits, r.Defeats), 8, y)
	for _, e := range r.Entities {
		y += 20
		role := e.Mode
		if e.Player {
			role = "player"
		}
		g.hud.line(screen, fmt.Sprintf("%s %-9s %5.1f", e.Name, role, e.Health), 8, y)
	}
	if yaw, pitch, ok := g.sim.Arena.Facing(g.sim.Player); ok {
		g.hud.line(screen, fmt.Sprintf("yaw %.0f  pitch %.0f", yaw, pitch), 8, screenHeight-28)
	}
}

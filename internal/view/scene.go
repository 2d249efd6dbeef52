package view

import (
	"math"

	"github.com/lallassu/tanks/internal/game"
)

const (
	// ShapeStride is the float count per triangle vertex: x, y, r, g, b, a.
	ShapeStride = 6
	// SpriteStride is the float count per point sprite: x, y, size, r, g, b, a, rotation.
	SpriteStride = 8

	circleSegments = 30
	barrelLength   = 1.5 // times tank radius
	barrelWidth    = 0.3 // times tank radius
	shellRadius    = 4
	trailSize      = 3
	barWidth       = 60
	barHeight      = 8
	barGap         = 18
	markerSize     = 8
)

// Scene holds the world-space vertex data for one frame.
type Scene struct {
	Shapes  []float32 // triangles, ShapeStride floats per vertex
	Sprites []float32 // alpha-blended points, SpriteStride floats per sprite
	Glow    []float32 // additive points, same layout as Sprites
}

// Reset empties the buffers but keeps their storage.
func (s *Scene) Reset() {
	s.Shapes = s.Shapes[:0]
	s.Sprites = s.Sprites[:0]
	s.Glow = s.Glow[:0]
}

// AddParticles appends live particles to the sprite buffers.
func (s *Scene) AddParticles(ps *ParticleSystem) {
	s.Sprites, s.Glow = ps.RenderData(s.Sprites, s.Glow)
}

// Build fills s from a snapshot. The floor spans the full world width.
func (s *Scene) Build(snap game.Snapshot, cfg game.Config) {
	s.Reset()

	s.rect(0, 0, cfg.Width, cfg.FloorHeight, Palette.Floor, 1)
	s.rect(0, cfg.FloorHeight-2, cfg.Width, cfg.FloorHeight, Palette.FloorEdge, 1)

	if len(snap.Trail) > 0 {
		tr, tg, tb := Palette.Trail.Floats()
		for _, p := range snap.Trail {
			s.Sprites = append(s.Sprites, float32(p.X), float32(p.Y), trailSize, tr, tg, tb, 0.6, 0)
		}
	}

	for _, t := range snap.Tanks {
		if !t.Alive {
			continue
		}
		s.barrel(t)
		s.circle(t.Pos, t.Radius, TankColor(t.Index), 1)
	}

	if snap.Phase != game.PhaseOver && snap.Current >= 0 && snap.Current < len(snap.Tanks) {
		t := snap.Tanks[snap.Current]
		top := t.Pos.Y + t.Radius*barrelLength + barGap
		if snap.Charging() {
			s.powerBar(t.Pos.X, top, PowerFraction(snap.Power, cfg))
			top += barHeight + 4
		}
		s.marker(t.Pos.X, top)
	}

	if snap.Flying {
		s.circle(snap.Projectile, shellRadius, Palette.Shell, 1)
	}
}

// PowerFraction maps power onto [0,1] of the configured range.
func PowerFraction(power float64, cfg game.Config) float64 {
	span := cfg.MaxPower - cfg.MinPower
	if span <= 0 {
		return 0
	}
	f := (power - cfg.MinPower) / span
	return math.Max(0, math.Min(1, f))
}

// BarrelQuad returns the four corners of a tank's cannon, starting at the
// tank centre and pointing along its angle.
func BarrelQuad(t game.Tank) [4]game.Vec2 {
	dir := game.FromAngle(t.Angle)
	side := game.Vec2{X: -dir.Y, Y: dir.X}.Scale(t.Radius * barrelWidth / 2)
	tip := t.Pos.Add(dir.Scale(t.Radius * barrelLength))
	return [4]game.Vec2{
		t.Pos.Add(side),
		tip.Add(side),
		tip.Sub(side),
		t.Pos.Sub(side),
	}
}

func (s *Scene) barrel(t game.Tank) {
	q := BarrelQuad(t)
	s.quad(q, Palette.Barrel, 1)
}

func (s *Scene) powerBar(cx, y, frac float64) {
	x0 := cx - barWidth/2
	s.rect(x0-1, y-1, x0+barWidth+1, y+barHeight+1, Palette.BarBack, 0.9)
	fill := Palette.BarFill
	if frac >= 1 {
		fill = Palette.BarFull
	}
	if frac > 0 {
		s.rect(x0, y, x0+barWidth*frac, y+barHeight, fill, 1)
	}
}

// marker is a downward triangle over the active tank.
func (s *Scene) marker(cx, y float64) {
	r, g, b := Palette.Marker.Floats()
	s.Shapes = append(s.Shapes,
		float32(cx-markerSize), float32(y+markerSize), r, g, b, 1,
		float32(cx+markerSize), float32(y+markerSize), r, g, b, 1,
		float32(cx), float32(y), r, g, b, 1,
	)
}

func (s *Scene) rect(x0, y0, x1, y1 float64, col RGB, a float32) {
	s.quad([4]game.Vec2{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}, col, a)
}

func (s *Scene) quad(q [4]game.Vec2, col RGB, a float32) {
	r, g, b := col.Floats()
	for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
		s.Shapes = append(s.Shapes, float32(q[i].X), float32(q[i].Y), r, g, b, a)
	}
}

// circle is a triangle fan unrolled into a triangle list.
func (s *Scene) circle(c game.Vec2, radius float64, col RGB, a float32) {
	r, g, b := col.Floats()
	step := 2 * math.Pi / circleSegments
	for i := 0; i < circleSegments; i++ {
		a0 := float64(i) * step
		a1 := a0 + step
		s.Shapes = append(s.Shapes,
			float32(c.X), float32(c.Y), r, g, b, a,
			float32(c.X+radius*math.Cos(a0)), float32(c.Y+radius*math.Sin(a0)), r, g, b, a,
			float32(c.X+radius*math.Cos(a1)), float32(c.Y+radius*math.Sin(a1)), r, g, b, a,
		)
	}
}

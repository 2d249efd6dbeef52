package view

import (
	"math"

	"github.com/lallassu/tanks/internal/game"
)

const (
	MaxParticles = 2048

	particleGravity = 260.0
	particleBounce  = 0.3
	particleFric    = 0.6
	particleAirDrag = 1.4
)

type ParticleKind uint8

const (
	ParticleDebris ParticleKind = iota
	ParticleFire
	ParticleSmoke
	ParticleDust
)

// Particle is a cosmetic effect in world space; it never touches match state.
type Particle struct {
	Pos, Vel game.Vec2
	Size     float64
	Life     float64 // negative = delayed start
	MaxLife  float64
	Col      RGB
	Kind     ParticleKind
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	seed   uint64
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	if seed == 0 {
		seed = 1
	}
	return &ParticleSystem{
		Max:  maxParticles,
		P:    make([]Particle, 0, maxParticles),
		seed: seed,
	}
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

func (ps *ParticleSystem) rng(p game.Vec2) *game.Rand {
	ps.seed++
	return game.NewRand(ps.seed ^ uint64(int64(p.X)*73856093) ^ uint64(int64(p.Y)*19349663))
}

func polar(r *game.Rand, lo, hi, minSpd, maxSpd float64) game.Vec2 {
	ang := r.RangeF(lo, hi)
	return game.Vec2{X: math.Cos(ang), Y: math.Sin(ang)}.Scale(r.RangeF(minSpd, maxSpd))
}

// SpawnExplosion bursts a destroyed tank into debris in its colour, fire
// and a smoke plume.
func (ps *ParticleSystem) SpawnExplosion(at game.Vec2, col RGB, radius float64) {
	r := ps.rng(at)
	scale := math.Max(0.5, radius/20)

	for range int(60 * scale) {
		ps.Add(Particle{
			Pos: at.Add(polar(r, 0, 2*math.Pi, 0, radius*0.6)),
			Vel: polar(r, 0.1, math.Pi-0.1, 60, 220),
			Size: r.RangeF(2, 4) * scale, MaxLife: r.RangeF(0.9, 1.8),
			Col: col, Kind: ParticleDebris,
		})
	}
	for range int(50 * scale) {
		ps.Add(Particle{
			Pos: at.Add(polar(r, 0, 2*math.Pi, 0, radius*0.4)),
			Vel: polar(r, 0, 2*math.Pi, 10, 70),
			Size: r.RangeF(5, 10) * scale, MaxLife: r.RangeF(0.2, 0.5),
			Col: RGB{R: 255, G: 190, B: 60}, Kind: ParticleFire,
		})
	}
	for range int(24 * scale) {
		ps.Add(Particle{
			Pos: at.Add(polar(r, 0, 2*math.Pi, 0, radius*0.5)),
			Vel: game.Vec2{X: r.RangeF(-12, 12), Y: r.RangeF(15, 40)},
			Size: r.RangeF(8, 14) * scale, Life: -r.RangeF(0, 0.2), MaxLife: r.RangeF(0.9, 1.6),
			Col: RGB{R: 90, G: 90, B: 95}, Kind: ParticleSmoke,
		})
	}
}

// SpawnDust kicks up a small puff where a shell hits the floor.
func (ps *ParticleSystem) SpawnDust(at game.Vec2) {
	r := ps.rng(at)
	for range 18 {
		ps.Add(Particle{
			Pos: at,
			Vel: polar(r, 0.2, math.Pi-0.2, 20, 90),
			Size: r.RangeF(2, 4), MaxLife: r.RangeF(0.4, 0.8),
			Col: RGB{R: 150, G: 130, B: 95}, Kind: ParticleDust,
		})
	}
}

// Update advances particles; debris and dust fall and bounce on floorY.
func (ps *ParticleSystem) Update(dt, floorY float64) {
	if dt <= 0 {
		return
	}
	drag := math.Exp(-particleAirDrag * dt)
	for i := 0; i < len(ps.P); {
		p := &ps.P[i]
		p.Life += dt
		if p.Life >= p.MaxLife {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}
		if p.Life < 0 {
			i++
			continue
		}

		switch p.Kind {
		case ParticleDebris, ParticleDust:
			p.Vel.Y -= particleGravity * dt
			p.Vel = p.Vel.Scale(drag)
		case ParticleFire:
			p.Vel = p.Vel.Scale(drag * drag)
			p.Vel.Y += 30 * dt
		case ParticleSmoke:
			p.Vel.X *= drag
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))

		if p.Pos.Y < floorY {
			p.Pos.Y = floorY
			if p.Vel.Y < 0 {
				p.Vel.Y = -p.Vel.Y * particleBounce
				p.Vel.X *= particleFric
			}
		}
		i++
	}
}

// RenderData splits live particles into alpha-blended and additive sprite
// buffers, SpriteStride floats each.
func (ps *ParticleSystem) RenderData(normBuf, glowBuf []float32) ([]float32, []float32) {
	for _, p := range ps.P {
		if p.Life < 0 {
			continue
		}
		t := math.Min(1, p.Life/p.MaxLife)
		a := 1 - t
		size := p.Size
		switch p.Kind {
		case ParticleDebris:
			a = math.Min(1, (1-t)*3)
		case ParticleSmoke:
			a = (1 - t) * math.Min(1, t/0.2) * 0.7
			size *= 1 + t*1.5
		case ParticleFire:
			a = (1 - t) * 1.2
		}
		if a <= 0 {
			continue
		}
		a = math.Min(a, 1)
		r, g, b := p.Col.Floats()
		ac := float32(a)
		if p.Kind == ParticleFire {
			glowBuf = append(glowBuf, float32(p.Pos.X), float32(p.Pos.Y), float32(size), r*ac, g*ac, b*ac, ac, 0)
			continue
		}
		normBuf = append(normBuf, float32(p.Pos.X), float32(p.Pos.Y), float32(size), r, g, b, ac, 0)
	}
	return normBuf, glowBuf
}

// Attach spawns effects for match events on bus.
func (ps *ParticleSystem) Attach(bus *game.EventBus, m *game.Match) {
	bus.Subscribe(game.EventTankDestroyed, func(e game.Event) {
		tanks := m.Controller().Roster().Tanks
		if e.Tank < 0 || e.Tank >= len(tanks) {
			return
		}
		t := tanks[e.Tank]
		ps.SpawnExplosion(t.Pos, TankColor(e.Tank), t.Radius)
	})
	bus.Subscribe(game.EventGroundImpact, func(e game.Event) {
		ps.SpawnDust(e.Pos)
	})
}

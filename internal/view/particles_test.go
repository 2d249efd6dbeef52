package view

import (
	"testing"

	"github.com/lallassu/tanks/internal/game"
)

func countKind(ps *ParticleSystem, k ParticleKind) int {
	n := 0
	for _, p := range ps.P {
		if p.Kind == k {
			n++
		}
	}
	return n
}

func TestParticleAddOverwritesWhenFull(t *testing.T) {
	ps := NewParticleSystem(4, 1)
	for i := 0; i < 6; i++ {
		ps.Add(Particle{Size: float64(i), MaxLife: 1})
	}
	if len(ps.P) != 4 {
		t.Fatalf("len = %d, want 4", len(ps.P))
	}
	if ps.P[0].Size != 4 || ps.P[1].Size != 5 || ps.P[2].Size != 2 {
		t.Fatalf("sizes = %v %v %v", ps.P[0].Size, ps.P[1].Size, ps.P[2].Size)
	}
}

func TestParticleDustExpires(t *testing.T) {
	ps := NewParticleSystem(0, 3)
	ps.SpawnDust(game.Vec2{X: 300, Y: 100})
	if got := countKind(ps, ParticleDust); got != 18 {
		t.Fatalf("dust = %d, want 18", got)
	}
	ps.Update(1, 100)
	if len(ps.P) != 0 {
		t.Fatalf("%d particles outlived their life", len(ps.P))
	}
}

func TestParticlesStayAboveFloor(t *testing.T) {
	ps := NewParticleSystem(0, 9)
	ps.SpawnExplosion(game.Vec2{X: 500, Y: 100}, TankColor(2), 20)
	if len(ps.P) != 60+50+24 {
		t.Fatalf("explosion spawned %d particles", len(ps.P))
	}
	for i := 0; i < 60; i++ {
		ps.Update(1.0/60, 100)
	}
	for _, p := range ps.P {
		if p.Pos.Y < 100 {
			t.Fatalf("particle kind %d below floor at %v", p.Kind, p.Pos)
		}
	}
}

func TestParticleRenderDataSplitsGlow(t *testing.T) {
	ps := NewParticleSystem(0, 5)
	ps.SpawnExplosion(game.Vec2{X: 500, Y: 300}, TankColor(0), 20)

	norm, glow := ps.RenderData(nil, nil)
	if got, want := len(glow)/SpriteStride, countKind(ps, ParticleFire); got != want {
		t.Fatalf("glow sprites = %d, want %d fire", got, want)
	}
	if got, want := len(norm)/SpriteStride, countKind(ps, ParticleDebris); got != want {
		t.Fatalf("normal sprites = %d, want %d debris", got, want)
	}

	var s Scene
	s.Sprites = append(s.Sprites, make([]float32, SpriteStride)...)
	s.AddParticles(ps)
	if len(s.Sprites) != len(norm)+SpriteStride || len(s.Glow) != len(glow) {
		t.Fatalf("scene buffers = %d/%d", len(s.Sprites), len(s.Glow))
	}
	s.Reset()
	if len(s.Glow) != 0 {
		t.Fatal("Reset kept glow sprites")
	}
}

func TestParticlesAttach(t *testing.T) {
	bus := game.NewEventBus()
	tanks := snapshotFixture(game.PhaseAiming).Tanks
	tanks[1].Alive = true
	m, err := game.NewMatch(game.DefaultConfig(), tanks, bus, nil)
	if err != nil {
		t.Fatal(err)
	}
	ps := NewParticleSystem(0, 1)
	ps.Attach(bus, m)

	bus.Emit(game.Event{Type: game.EventGroundImpact, Pos: game.Vec2{X: 400, Y: 100}})
	if got := countKind(ps, ParticleDust); got != 18 {
		t.Fatalf("dust = %d, want 18", got)
	}

	bus.Emit(game.Event{Type: game.EventTankDestroyed, Tank: 1})
	debris := 0
	for _, p := range ps.P {
		if p.Kind == ParticleDebris {
			debris++
			if p.Col != TankColor(1) {
				t.Fatalf("debris colour = %v, want tank colour", p.Col)
			}
		}
	}
	if debris == 0 {
		t.Fatal("no debris for destroyed tank")
	}

	n := len(ps.P)
	bus.Emit(game.Event{Type: game.EventFired})
	if len(ps.P) != n {
		t.Fatal("fired event spawned particles")
	}
}

package game

import (
	"errors"
	"testing"
)

func TestNewRandomMatchRejectsTankCount(t *testing.T) {
	for _, n := range []int{0, 1, 11, 100} {
		cfg := DefaultConfig()
		cfg.NumTanks = n
		if _, err := NewRandomMatch(cfg, nil, nil); !errors.Is(err, ErrInvalidTankCount) {
			t.Fatalf("NumTanks=%d: err = %v, want ErrInvalidTankCount", n, err)
		}
	}
}

func TestNewRandomMatchStartsAiming(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumTanks = 4
	cfg.Seed = 7
	m, err := NewRandomMatch(cfg, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	s := m.Snapshot()
	if len(s.Tanks) != 4 || s.Phase != PhaseAiming || s.Current != 0 || s.Flying {
		t.Fatalf("unexpected start snapshot: %+v", s)
	}
	if m.Over() || m.Winner() != -1 {
		t.Fatal("fresh match reported as over")
	}
}

func TestFrameRunsStepsPerFrame(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StepsPerFrame = 5
	m, err := NewMatch(cfg, duel(100, 900, 60), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	m.Handle(InputFireDown)
	for i := 0; i < 15; i++ { // power 40
		m.Handle(InputFireHeld)
	}
	m.Handle(InputFireUp)
	m.Frame()
	if n := len(m.Snapshot().Trail); n != 5 {
		t.Fatalf("trail after one frame = %d points, want 5", n)
	}
}

func TestFrameStopsAtTerminalOutcome(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StepsPerFrame = 100000
	m, err := NewMatch(cfg, duel(100, 900, 45), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	m.Handle(InputFireDown)
	for i := 0; i < 39; i++ { // power 88
		m.Handle(InputFireHeld)
	}
	m.Handle(InputFireUp)

	out := m.Frame()
	if out.Kind != OutcomeHitTank || out.Tank != 1 {
		t.Fatalf("outcome = %v(%d), want HitTank(1)", out.Kind, out.Tank)
	}
	if !m.Over() || m.Winner() != 0 {
		t.Fatalf("over=%v winner=%d", m.Over(), m.Winner())
	}
	s := m.Snapshot()
	if s.Deaths != 1 || s.Winner != 0 || s.Phase != PhaseOver {
		t.Fatalf("snapshot = %+v", s)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	m, err := NewMatch(DefaultConfig(), duel(100, 900, 60), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	m.Handle(InputFireDown)
	m.Handle(InputFireHeld)
	if s := m.Snapshot(); !s.Charging() || s.Power != MinPower+ChargeStep {
		t.Fatalf("charging=%v power=%v", s.Charging(), s.Power)
	}
	m.Handle(InputFireUp)
	m.Frame()

	s := m.Snapshot()
	s.Tanks[1].Alive = false
	if len(s.Trail) > 0 {
		s.Trail[0] = Vec2{}
	}
	again := m.Snapshot()
	if !again.Tanks[1].Alive {
		t.Fatal("snapshot aliases roster tanks")
	}
	if len(again.Trail) > 0 && again.Trail[0] == (Vec2{}) {
		t.Fatal("snapshot aliases trail")
	}
	if !again.Flying {
		t.Fatal("expected a shell in flight")
	}
}

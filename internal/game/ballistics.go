package game

import "github.com/charmbracelet/log"

// Projectile is the single shell in flight. It is not tied to its owner
// once launched; Owner is kept for logging and events only.
type Projectile struct {
	Pos   Vec2
	Vel   Vec2
	Owner int
}

// OutcomeKind classifies the result of one simulation step.
type OutcomeKind int

const (
	OutcomeFlying OutcomeKind = iota
	OutcomeHitTank
	OutcomeHitGround
	OutcomeOutOfBounds
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeFlying:
		return "flying"
	case OutcomeHitTank:
		return "hit-tank"
	case OutcomeHitGround:
		return "hit-ground"
	case OutcomeOutOfBounds:
		return "out-of-bounds"
	}
	return "unknown"
}

// StepOutcome is returned by Simulator.Step. Tank is the index of the tank
// that was hit and -1 for every other kind.
type StepOutcome struct {
	Kind OutcomeKind
	Tank int
}

// Terminal reports whether the outcome ends the flight.
func (o StepOutcome) Terminal() bool { return o.Kind != OutcomeFlying }

// Simulator integrates a projectile under constant gravity inside a
// [0, Width] world with a floor at FloorHeight.
type Simulator struct {
	Gravity     float64
	Width       float64
	FloorHeight float64

	log *log.Logger
}

func NewSimulator(cfg Config, logger *log.Logger) *Simulator {
	return &Simulator{
		Gravity:     cfg.Gravity,
		Width:       cfg.Width,
		FloorHeight: cfg.FloorHeight,
		log:         orDiscard(logger),
	}
}

// Step advances p by dt and tests it against the living tanks in index
// order. The first tank whose circle contains the new position (boundary
// included) is hit: its Alive flag is cleared here and HitTank is returned.
// A tank hit wins over a simultaneous floor or bounds exit.
func (s *Simulator) Step(p *Projectile, dt float64, tanks []Tank) StepOutcome {
	g := s.Gravity
	// Position uses the pre-step velocity; velocity is decremented after.
	p.Pos.X += p.Vel.X * dt
	p.Pos.Y += p.Vel.Y*dt - 0.5*g*dt*dt
	p.Vel.Y -= g * dt

	s.log.Debug("projectile step", "x", p.Pos.X, "y", p.Pos.Y, "vy", p.Vel.Y)

	for i := range tanks {
		t := &tanks[i]
		if !t.Alive {
			continue
		}
		if DistSq(p.Pos, t.Pos) <= t.Radius*t.Radius {
			t.Alive = false
			return StepOutcome{Kind: OutcomeHitTank, Tank: i}
		}
	}

	if p.Pos.Y < s.FloorHeight {
		return StepOutcome{Kind: OutcomeHitGround, Tank: -1}
	}
	if p.Pos.X < 0 || p.Pos.X > s.Width {
		return StepOutcome{Kind: OutcomeOutOfBounds, Tank: -1}
	}
	return StepOutcome{Kind: OutcomeFlying, Tank: -1}
}

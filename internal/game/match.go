package game

import "github.com/charmbracelet/log"

// Match is the per-frame driver a frontend loop talks to. It owns the
// Controller and produces render snapshots.
type Match struct {
	ctrl *Controller
	cfg  Config
}

// NewMatch builds a match over explicit tanks.
func NewMatch(cfg Config, tanks []Tank, sink EventSink, logger *log.Logger) (*Match, error) {
	ctrl, err := NewController(cfg, NewRoster(tanks), sink, logger)
	if err != nil {
		return nil, err
	}
	return &Match{ctrl: ctrl, cfg: ctrl.Config()}, nil
}

// NewRandomMatch validates cfg and spawns cfg.NumTanks tanks from cfg.Seed.
func NewRandomMatch(cfg Config, sink EventSink, logger *log.Logger) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tanks := SpawnTanks(cfg, NewRand(cfg.Seed), logger)
	return NewMatch(cfg, tanks, sink, logger)
}

func (m *Match) Controller() *Controller { return m.ctrl }

func (m *Match) Handle(in InputEvent) { m.ctrl.Handle(in) }

// Frame runs up to StepsPerFrame simulation steps and returns the outcome
// of the last one. It stops early when the flight ends so a new turn never
// starts mid-frame.
func (m *Match) Frame() StepOutcome {
	last := StepOutcome{Kind: OutcomeFlying, Tank: -1}
	for i := 0; i < m.cfg.StepsPerFrame; i++ {
		out, ok := m.ctrl.Tick()
		if !ok {
			break
		}
		last = out
		if out.Terminal() {
			break
		}
	}
	return last
}

// Over reports whether the match is decided.
func (m *Match) Over() bool { return m.ctrl.Phase() == PhaseOver }

func (m *Match) Winner() int { return m.ctrl.Winner() }

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Tanks      []Tank
	Projectile Vec2
	Flying     bool
	Trail      []Vec2
	Phase      Phase
	Current    int
	Power      float64
	Deaths     int
	Winner     int
}

// Snapshot copies the current state; mutating it does not affect the match.
func (m *Match) Snapshot() Snapshot {
	c := m.ctrl
	r := c.Roster()
	s := Snapshot{
		Tanks:   make([]Tank, len(r.Tanks)),
		Trail:   make([]Vec2, len(c.Trail())),
		Phase:   c.Phase(),
		Current: c.Current(),
		Deaths:  r.Deaths(),
		Winner:  c.Winner(),
	}
	copy(s.Tanks, r.Tanks)
	copy(s.Trail, c.Trail())
	if p := c.Projectile(); p != nil {
		s.Projectile = p.Pos
		s.Flying = true
	}
	if s.Current >= 0 && s.Current < len(s.Tanks) {
		s.Power = s.Tanks[s.Current].Power
	}
	return s
}

// Charging reports whether a power bar should be shown.
func (s Snapshot) Charging() bool { return s.Phase == PhaseCharging }

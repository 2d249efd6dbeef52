package game

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Controller drives the aim → charge → fly → advance cycle for one match.
// It is not safe for concurrent use; frontends call it from their loop.
type Controller struct {
	cfg   Config
	state GameState
	sim   *Simulator
	sink  EventSink
	log   *log.Logger
}

// NewController validates cfg and takes ownership of roster. The first
// living tank starts. sink and logger may be nil.
func NewController(cfg Config, roster *Roster, sink EventSink, logger *log.Logger) (*Controller, error) {
	if roster == nil {
		return nil, fmt.Errorf("%w: nil roster", ErrInvalidConfig)
	}
	cfg.NumTanks = roster.Len()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if n := roster.AliveCount(); n < MinTanks {
		return nil, fmt.Errorf("%w: %d living tanks, need %d", ErrInvalidConfig, n, MinTanks)
	}
	for i := range roster.Tanks {
		t := &roster.Tanks[i]
		if t.Radius <= 0 {
			return nil, fmt.Errorf("%w: tank %d radius %v", ErrInvalidConfig, i, t.Radius)
		}
		t.Angle = clampF(t.Angle, cfg.MinAngle, cfg.MaxAngle)
		t.Power = clampF(t.Power, cfg.MinPower, cfg.MaxPower)
	}
	if sink == nil {
		sink = nopSink{}
	}
	logger = orDiscard(logger)

	c := &Controller{
		cfg:  cfg,
		sim:  NewSimulator(cfg, logger),
		sink: sink,
		log:  logger,
	}
	c.state.Roster = roster
	c.state.Current = roster.Winner()
	return c, nil
}

func (c *Controller) Config() Config { return c.cfg }

func (c *Controller) Phase() Phase { return c.state.Phase }

func (c *Controller) Current() int { return c.state.Current }

func (c *Controller) Roster() *Roster { return c.state.Roster }

// Projectile returns the shell in flight, or nil.
func (c *Controller) Projectile() *Projectile { return c.state.Projectile }

// Trail returns the recorded flight positions. The slice is reused between
// flights; copy it to keep it.
func (c *Controller) Trail() []Vec2 { return c.state.Trail }

// Winner returns the surviving tank once the match is over, -1 otherwise
// or when no tank survived.
func (c *Controller) Winner() int {
	if c.state.Phase != PhaseOver {
		return -1
	}
	return c.state.Roster.Winner()
}

func (c *Controller) active() *Tank { return &c.state.Roster.Tanks[c.state.Current] }

// Handle applies one input event. Events that do not apply to the current
// phase are ignored; in particular nothing is accepted while a shell flies.
func (c *Controller) Handle(in InputEvent) {
	switch c.state.Phase {
	case PhaseAiming:
		switch in {
		case InputAngleLeft:
			c.adjustAngle(c.cfg.AngleStep)
		case InputAngleRight:
			c.adjustAngle(-c.cfg.AngleStep)
		case InputFireDown:
			if !c.cfg.PowerCharging {
				c.launch()
				return
			}
			c.active().Power = c.cfg.MinPower
			c.state.Phase = PhaseCharging
		}
	case PhaseCharging:
		switch in {
		case InputFireHeld:
			t := c.active()
			t.Power = clampF(t.Power+c.cfg.ChargeStep, c.cfg.MinPower, c.cfg.MaxPower)
		case InputFireUp:
			c.launch()
		}
	}
}

func (c *Controller) adjustAngle(delta float64) {
	t := c.active()
	t.Angle = clampF(t.Angle+delta, c.cfg.MinAngle, c.cfg.MaxAngle)
}

// launch spawns the shell on the active tank's rim so it does not start
// inside its own body.
func (c *Controller) launch() {
	t := c.active()
	p := &Projectile{
		Pos:   t.Muzzle(),
		Vel:   FromAngle(t.Angle).Scale(t.Power),
		Owner: t.Index,
	}
	c.state.Projectile = p
	c.state.Trail = c.state.Trail[:0]
	c.state.Phase = PhaseFlying

	c.log.Info("fire", "tank", t.Index+1, "angle", t.Angle, "power", t.Power)
	c.sink.Emit(Event{Type: EventFired, Tank: t.Index, Pos: p.Pos})
}

// Tick advances the flight by one time step. ok is false when no shell is
// in flight and nothing happened.
func (c *Controller) Tick() (out StepOutcome, ok bool) {
	if c.state.Phase != PhaseFlying {
		return StepOutcome{Kind: OutcomeFlying, Tank: -1}, false
	}
	p := c.state.Projectile
	out = c.sim.Step(p, c.cfg.TimeStep, c.state.Roster.Tanks)
	if !out.Terminal() {
		if c.cfg.Trail {
			c.state.Trail = append(c.state.Trail, p.Pos)
		}
		return out, true
	}
	c.finishFlight(out)
	return out, true
}

func (c *Controller) finishFlight(out StepOutcome) {
	p := c.state.Projectile
	roster := c.state.Roster

	c.state.Projectile = nil
	c.state.Trail = c.state.Trail[:0]

	var ev Event
	switch out.Kind {
	case OutcomeHitTank:
		roster.MarkDeath(out.Tank)
		ev = Event{Type: EventTankDestroyed, Tank: out.Tank, Pos: p.Pos}
		c.log.Info("tank destroyed", "tank", out.Tank+1, "by", p.Owner+1, "deaths", roster.Deaths())
	case OutcomeHitGround:
		ev = Event{Type: EventGroundImpact, Tank: p.Owner, Pos: p.Pos}
		c.log.Info("ground impact", "x", p.Pos.X)
	case OutcomeOutOfBounds:
		ev = Event{Type: EventOutOfBounds, Tank: p.Owner, Pos: p.Pos}
		c.log.Info("out of bounds", "x", p.Pos.X, "y", p.Pos.Y)
	}

	if roster.MatchOver() {
		c.state.Phase = PhaseOver
		winner := roster.Winner()
		c.sink.Emit(ev)
		c.log.Info("game over", "winner", winner+1)
		c.sink.Emit(Event{Type: EventMatchOver, Tank: winner})
		return
	}

	c.state.Current = roster.NextPlayer(c.state.Current)
	c.state.Phase = PhaseAiming
	c.sink.Emit(ev)
	c.log.Info("next player", "tank", c.state.Current+1)
	c.sink.Emit(Event{Type: EventTurnChanged, Tank: c.state.Current})
}

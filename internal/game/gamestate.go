package game

// Phase is the turn state machine position.
type Phase int

const (
	PhaseAiming   Phase = iota // angle may be adjusted
	PhaseCharging              // fire held, power accumulating
	PhaseFlying                // one projectile in flight
	PhaseOver                  // match decided, no more turns
)

func (p Phase) String() string {
	switch p {
	case PhaseAiming:
		return "aiming"
	case PhaseCharging:
		return "charging"
	case PhaseFlying:
		return "flying"
	case PhaseOver:
		return "over"
	}
	return "unknown"
}

// InputEvent is a frontend-neutral control action. Frontends translate
// their key codes into these; the core never sees raw keys.
type InputEvent int

const (
	InputAngleLeft InputEvent = iota
	InputAngleRight
	InputFireDown
	InputFireHeld
	InputFireUp
)

func (in InputEvent) String() string {
	switch in {
	case InputAngleLeft:
		return "angle-left"
	case InputAngleRight:
		return "angle-right"
	case InputFireDown:
		return "fire-down"
	case InputFireHeld:
		return "fire-held"
	case InputFireUp:
		return "fire-up"
	}
	return "unknown"
}

// GameState is the aggregate owned by a Controller. Projectile is non-nil
// exactly while Phase is PhaseFlying.
type GameState struct {
	Roster     *Roster
	Current    int
	Phase      Phase
	Projectile *Projectile
	Trail      []Vec2
}

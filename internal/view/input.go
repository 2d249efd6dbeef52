package view

import "github.com/lallassu/tanks/internal/game"

const (
	repeatDelay    = 0.35 // seconds before a held arrow starts repeating
	repeatInterval = 0.03
	maxRepeats     = 4 // per frame, after a stall
)

// Keys is the raw key state a frontend samples once per frame.
type Keys struct {
	Left, Right, Fire bool
}

// repeater turns a held key into a press followed by timed repeats,
// like keyboard auto-repeat.
type repeater struct {
	down bool
	t    float64
	next float64
}

func (r *repeater) update(down bool, dt float64) int {
	if !down {
		r.down = false
		return 0
	}
	if !r.down {
		r.down = true
		r.t = 0
		r.next = repeatDelay
		return 1
	}
	r.t += dt
	n := 0
	for r.t >= r.next && n < maxRepeats {
		n++
		r.next += repeatInterval
	}
	if r.t >= r.next {
		r.next = r.t + repeatInterval
	}
	return n
}

// Input converts sampled key state into match input events.
type Input struct {
	left, right repeater
	fire        bool
}

// Update appends the events for this frame to out. Fire produces FireDown
// on press, FireHeld every frame it stays down, and FireUp on release.
func (in *Input) Update(k Keys, dt float64, out []game.InputEvent) []game.InputEvent {
	for n := in.left.update(k.Left, dt); n > 0; n-- {
		out = append(out, game.InputAngleLeft)
	}
	for n := in.right.update(k.Right, dt); n > 0; n-- {
		out = append(out, game.InputAngleRight)
	}
	switch {
	case k.Fire && !in.fire:
		out = append(out, game.InputFireDown)
	case k.Fire && in.fire:
		out = append(out, game.InputFireHeld)
	case !k.Fire && in.fire:
		out = append(out, game.InputFireUp)
	}
	in.fire = k.Fire
	return out
}

// FireToggle drives charging from a terminal, which reports key presses but
// never releases: the first Space starts charging, the second fires.
type FireToggle struct {
	charging bool
}

// Press handles one Space press given the current phase.
func (f *FireToggle) Press(phase game.Phase) game.InputEvent {
	if f.charging && phase == game.PhaseCharging {
		f.charging = false
		return game.InputFireUp
	}
	f.charging = true
	return game.InputFireDown
}

// Tick returns the held event to synthesize this frame, if any.
func (f *FireToggle) Tick(phase game.Phase) (game.InputEvent, bool) {
	if phase != game.PhaseCharging {
		f.charging = false
		return 0, false
	}
	if !f.charging {
		return 0, false
	}
	return game.InputFireHeld, true
}

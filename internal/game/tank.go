package game

import "fmt"

// Tank is a circular player body resting on the floor.
type Tank struct {
	Index  int
	Pos    Vec2
	Radius float64
	Alive  bool
	Angle  float64 // degrees, counter-clockwise from +X
	Power  float64
}

// Muzzle returns the launch point on the tank's rim along its aim.
func (t *Tank) Muzzle() Vec2 {
	return t.Pos.Add(FromAngle(t.Angle).Scale(t.Radius))
}

// Roster owns the fixed set of tanks for a match. Tanks are never removed,
// only marked dead. Tanks that arrive dead count as deaths from the start. The Simulator clears Alive directly on a hit; the
// Roster learns about it through MarkDeath from the Controller.
type Roster struct {
	Tanks  []Tank
	deaths int
}

func NewRoster(tanks []Tank) *Roster {
	ts := make([]Tank, len(tanks))
	copy(ts, tanks)
	r := &Roster{Tanks: ts}
	for i := range ts {
		ts[i].Index = i
		if !ts[i].Alive {
			r.deaths++
		}
	}
	return r
}

func (r *Roster) Len() int { return len(r.Tanks) }

// Deaths counts dead tanks: those passed in dead plus each recorded hit.
func (r *Roster) Deaths() int { return r.deaths }

// MarkDeath records the transition of tank i to dead. It is a no-op for a
// tank that is still alive, so each death is counted exactly once per hit.
func (r *Roster) MarkDeath(i int) {
	if i < 0 || i >= len(r.Tanks) || r.Tanks[i].Alive {
		return
	}
	r.deaths++
}

func (r *Roster) AliveCount() int {
	n := 0
	for i := range r.Tanks {
		if r.Tanks[i].Alive {
			n++
		}
	}
	return n
}

// NextPlayer scans cyclically after current and returns the first living
// index. It returns current itself when that is the only living tank.
// Calling it with no living tanks is a caller bug and panics.
func (r *Roster) NextPlayer(current int) int {
	n := len(r.Tanks)
	for step := 1; step <= n; step++ {
		next := ((current+step)%n + n) % n
		if r.Tanks[next].Alive {
			return next
		}
	}
	panic(fmt.Sprintf("game: NextPlayer(%d) with no living tanks", current))
}

// MatchOver reports whether at most one tank can still play.
func (r *Roster) MatchOver() bool {
	return r.deaths >= len(r.Tanks)-1
}

// Winner returns the lowest-index living tank, or -1 when none survive.
func (r *Roster) Winner() int {
	for i := range r.Tanks {
		if r.Tanks[i].Alive {
			return i
		}
	}
	return -1
}

package game

import "testing"

func rosterWith(alive ...bool) *Roster {
	tanks := make([]Tank, len(alive))
	for i, a := range alive {
		tanks[i] = Tank{Pos: Vec2{X: float64(100 * (i + 1)), Y: FloorHeight}, Radius: 10, Alive: a}
	}
	return NewRoster(tanks)
}

func TestNextPlayer(t *testing.T) {
	tests := []struct {
		name    string
		alive   []bool
		current int
		want    int
	}{
		{"simple advance", []bool{true, true, true}, 0, 1},
		{"wraps to zero", []bool{true, true, true}, 2, 0},
		{"skips dead after current", []bool{true, false, false, true}, 0, 3},
		{"dead shooter advances past dead neighbour", []bool{false, false, true, true}, 0, 2},
		{"skips dead across wrap", []bool{false, true, true, false}, 2, 1},
		{"sole survivor returns itself", []bool{false, true, false}, 1, 1},
		{"sole survivor from dead current", []bool{true, false, false}, 2, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := rosterWith(tc.alive...)
			got := r.NextPlayer(tc.current)
			if got != tc.want {
				t.Fatalf("NextPlayer(%d) = %d, want %d", tc.current, got, tc.want)
			}
			if !r.Tanks[got].Alive {
				t.Fatalf("NextPlayer returned dead tank %d", got)
			}
		})
	}
}

func TestNextPlayerPanicsWithNoLivingTanks(t *testing.T) {
	r := rosterWith(false, false)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic with zero living tanks")
		}
	}()
	r.NextPlayer(0)
}

func TestMarkDeathCountsOnlyDeadTanks(t *testing.T) {
	r := rosterWith(true, true, true)
	r.MarkDeath(1) // still alive: ignored
	if r.Deaths() != 0 {
		t.Fatalf("deaths = %d, want 0", r.Deaths())
	}
	r.Tanks[1].Alive = false
	r.MarkDeath(1)
	if r.Deaths() != 1 {
		t.Fatalf("deaths = %d, want 1", r.Deaths())
	}
	if r.MatchOver() {
		t.Fatal("3 tanks with 1 death is not over")
	}
	r.Tanks[2].Alive = false
	r.MarkDeath(2)
	if !r.MatchOver() {
		t.Fatal("3 tanks with 2 deaths is over")
	}
	if w := r.Winner(); w != 0 {
		t.Fatalf("winner = %d, want 0", w)
	}
}

func TestNewRosterCountsDeadTanks(t *testing.T) {
	r := rosterWith(true, false, true)
	if r.Deaths() != 1 || r.MatchOver() {
		t.Fatalf("deaths=%d over=%v, want 1 and not over", r.Deaths(), r.MatchOver())
	}
	r = rosterWith(false, true)
	if !r.MatchOver() {
		t.Fatal("a lone survivor must end the match")
	}
	r = rosterWith(false, false)
	if r.Deaths() != 2 || !r.MatchOver() {
		t.Fatalf("all dead: deaths=%d over=%v", r.Deaths(), r.MatchOver())
	}
}

func TestWinnerNoneSurvive(t *testing.T) {
	r := rosterWith(false, false)
	if w := r.Winner(); w != -1 {
		t.Fatalf("winner = %d, want -1", w)
	}
}

func TestNewRosterCopiesAndIndexes(t *testing.T) {
	src := []Tank{{Index: 7, Radius: 5, Alive: true}, {Index: 7, Radius: 5, Alive: true}}
	r := NewRoster(src)
	src[0].Alive = false
	if !r.Tanks[0].Alive {
		t.Fatal("roster must not alias the caller's slice")
	}
	for i := range r.Tanks {
		if r.Tanks[i].Index != i {
			t.Fatalf("tank %d has index %d", i, r.Tanks[i].Index)
		}
	}
}

func TestMuzzleOnRim(t *testing.T) {
	tk := Tank{Pos: Vec2{X: 100, Y: 100}, Radius: 20, Angle: 90}
	m := tk.Muzzle()
	if d := m.Sub(tk.Pos).Len(); d < 19.999 || d > 20.001 {
		t.Fatalf("muzzle distance = %v, want 20", d)
	}
	if m.Y <= tk.Pos.Y {
		t.Fatalf("90 degrees should point up, got %v", m)
	}
}

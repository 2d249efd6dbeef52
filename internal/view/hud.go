package view

import (
	"fmt"

	"github.com/lallassu/tanks/internal/game"
)

// Align anchors a HUD line horizontally.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Row anchors a HUD line vertically.
type Row int

const (
	RowTop Row = iota
	RowMiddle
	RowBottom
)

// Line is one piece of HUD text; frontends decide pixel or cell placement.
type Line struct {
	Text  string
	Col   RGB
	Align Align
	Row   Row
	Scale float32
}

// WinnerText is the announcement shown once the match is decided.
func WinnerText(winner int) string {
	if winner < 0 {
		return "Game Over! No tank survived."
	}
	return fmt.Sprintf("Game Over! Tank %d is the winner!", winner+1)
}

// Control hints for the two frontends.
const (
	DesktopHelp  = "LEFT/RIGHT aim   hold SPACE to charge, release to fire   ESC quit"
	TerminalHelp = "LEFT/RIGHT aim   SPACE charge, SPACE again to fire   ESC quit"
)

// HUD returns the overlay text for a snapshot. Tank numbers are 1-based.
func HUD(snap game.Snapshot, help string) []Line {
	alive := 0
	for _, t := range snap.Tanks {
		if t.Alive {
			alive++
		}
	}
	lines := []Line{
		{Text: fmt.Sprintf("Tanks alive: %d/%d", alive, len(snap.Tanks)), Col: Palette.Text, Align: AlignRight, Row: RowTop, Scale: 1.5},
	}

	if snap.Phase == game.PhaseOver {
		return append(lines,
			Line{Text: WinnerText(snap.Winner), Col: Palette.TextWinner, Align: AlignCenter, Row: RowMiddle, Scale: 3},
			Line{Text: "Press ESC to quit", Col: Palette.TextDim, Align: AlignCenter, Row: RowBottom, Scale: 1.5},
		)
	}

	if snap.Current >= 0 && snap.Current < len(snap.Tanks) {
		t := snap.Tanks[snap.Current]
		status := "aiming"
		switch snap.Phase {
		case game.PhaseCharging:
			status = "charging"
		case game.PhaseFlying:
			status = "firing"
		}
		lines = append(lines, Line{
			Text:  fmt.Sprintf("Tank %d %s  angle %3.0f  power %3.0f", t.Index+1, status, t.Angle, t.Power),
			Col:   TankColor(t.Index),
			Align: AlignLeft,
			Row:   RowTop,
			Scale: 1.5,
		})
	}
	return append(lines, Line{
		Text:  help,
		Col:   Palette.TextDim,
		Align: AlignCenter,
		Row:   RowBottom,
		Scale: 1,
	})
}

// OverLinger is how long the winner stays on screen before a frontend
// closes on its own.
const OverLinger = 4.0 // seconds

// EndTimer counts time spent in a finished match.
type EndTimer struct {
	elapsed float64
}

// Done adds dt while over is true and reports whether the winner has been
// shown for OverLinger seconds.
func (e *EndTimer) Done(over bool, dt float64) bool {
	if !over {
		e.elapsed = 0
		return false
	}
	e.elapsed += dt
	return e.elapsed >= OverLinger
}

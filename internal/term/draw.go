// Package term is the tcell terminal frontend.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lallassu/tanks/internal/game"
	"github.com/lallassu/tanks/internal/view"
)

// Canvas is the part of tcell.Screen drawing needs.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

const (
	runeFloor = '▒'
	runeTank  = 'O'
	runeShell = '*'
	runeTrail = '.'
)

// grid projects world coordinates onto terminal cells. Row 0 and the last
// row are reserved for the HUD.
type grid struct {
	cols, rows int
	w, h       float64
}

func newGrid(c Canvas, cfg game.Config) grid {
	cols, rows := c.Size()
	return grid{cols: cols, rows: rows, w: cfg.Width, h: cfg.Height}
}

func (g grid) playRows() int { return g.rows - 2 }

// cell returns the terminal cell for world point p; ok is false when p
// falls outside the drawable area.
func (g grid) cell(p game.Vec2) (x, y int, ok bool) {
	if g.cols <= 0 || g.playRows() <= 0 {
		return 0, 0, false
	}
	fx := p.X / g.w * float64(g.cols)
	fy := (g.h - p.Y) / g.h * float64(g.playRows())
	if fx < 0 || fy < 0 || fx >= float64(g.cols) || fy >= float64(g.playRows()) {
		return 0, 0, false
	}
	return int(fx), 1 + int(fy), true
}

func style(c view.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// barrelRune picks a line-drawing rune for a cannon angle in degrees.
func barrelRune(angle float64) rune {
	a := math.Mod(angle, 180)
	if a < 0 {
		a += 180
	}
	switch {
	case a < 22.5 || a >= 157.5:
		return '-'
	case a < 67.5:
		return '/'
	case a < 112.5:
		return '|'
	default:
		return '\\'
	}
}

// Draw renders a snapshot onto c. The caller clears and shows the screen.
func Draw(c Canvas, snap game.Snapshot, cfg game.Config) {
	g := newGrid(c, cfg)

	floorStyle := style(view.Palette.Floor)
	for y := 1; y <= g.playRows(); y++ {
		worldY := cfg.Height - (float64(y-1)+0.5)/float64(g.playRows())*cfg.Height
		if worldY >= cfg.FloorHeight {
			continue
		}
		for x := 0; x < g.cols; x++ {
			c.SetContent(x, y, runeFloor, nil, floorStyle)
		}
	}

	trailStyle := style(view.Palette.Trail)
	for _, p := range snap.Trail {
		if x, y, ok := g.cell(p); ok {
			c.SetContent(x, y, runeTrail, nil, trailStyle)
		}
	}

	for _, t := range snap.Tanks {
		if !t.Alive {
			continue
		}
		st := style(view.TankColor(t.Index))
		tip := t.Pos.Add(game.FromAngle(t.Angle).Scale(t.Radius * 1.5))
		if x, y, ok := g.cell(tip); ok {
			c.SetContent(x, y, barrelRune(t.Angle), nil, st)
		}
		if x, y, ok := g.cell(t.Pos); ok {
			c.SetContent(x, y, runeTank, nil, st.Bold(true))
		}
	}

	if snap.Flying {
		if x, y, ok := g.cell(snap.Projectile); ok {
			c.SetContent(x, y, runeShell, nil, style(view.Palette.Shell).Bold(true))
		}
	}

	drawHUD(c, g, view.HUD(snap, view.TerminalHelp), snap, cfg)
}

var particleRunes = [...]rune{
	view.ParticleDebris: ',',
	view.ParticleFire:   '#',
	view.ParticleSmoke:  '░',
	view.ParticleDust:   '.',
}

// DrawParticles overlays live particles onto the play area.
func DrawParticles(c Canvas, ps *view.ParticleSystem, cfg game.Config) {
	g := newGrid(c, cfg)
	for _, p := range ps.P {
		if p.Life < 0 || int(p.Kind) >= len(particleRunes) {
			continue
		}
		if x, y, ok := g.cell(p.Pos); ok {
			c.SetContent(x, y, particleRunes[p.Kind], nil, style(p.Col))
		}
	}
}

func drawHUD(c Canvas, g grid, lines []view.Line, snap game.Snapshot, cfg game.Config) {
	for _, l := range lines {
		n := len([]rune(l.Text))
		x := 0
		switch l.Align {
		case view.AlignCenter:
			x = (g.cols - n) / 2
		case view.AlignRight:
			x = g.cols - n
		}
		y := 0
		switch l.Row {
		case view.RowMiddle:
			y = g.rows / 2
		case view.RowBottom:
			y = g.rows - 1
		}
		putString(c, x, y, l.Text, style(l.Col))
	}

	if snap.Charging() {
		const width = 20
		filled := int(view.PowerFraction(snap.Power, cfg) * width)
		bar := make([]rune, 0, width+2)
		bar = append(bar, '[')
		for i := 0; i < width; i++ {
			if i < filled {
				bar = append(bar, '#')
			} else {
				bar = append(bar, ' ')
			}
		}
		bar = append(bar, ']')
		putString(c, (g.cols-len(bar))/2, 1, string(bar), style(view.Palette.BarFill))
	}
}

func putString(c Canvas, x, y int, s string, st tcell.Style) {
	cols, rows := c.Size()
	if y < 0 || y >= rows {
		return
	}
	for _, r := range s {
		if x >= 0 && x < cols {
			c.SetContent(x, y, r, nil, st)
		}
		x++
	}
}

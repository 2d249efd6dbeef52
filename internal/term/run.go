package term

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lallassu/tanks/internal/game"
	"github.com/lallassu/tanks/internal/view"
)

const frameInterval = 16 * time.Millisecond

// session applies terminal keys to a match. Terminals report presses but
// not releases, so Space toggles charging.
type session struct {
	m         *game.Match
	fire      view.FireToggle
	particles *view.ParticleSystem
	end       view.EndTimer
}

// key handles one key event and reports whether the game should keep running.
func (s *session) key(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		s.m.Handle(game.InputAngleLeft)
	case tcell.KeyRight:
		s.m.Handle(game.InputAngleRight)
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			s.m.Handle(s.fire.Press(s.m.Controller().Phase()))
		case 'q':
			return false
		}
	}
	return true
}

// tick advances one frame and reports whether the game should keep running.
func (s *session) tick() bool {
	if ev, ok := s.fire.Tick(s.m.Controller().Phase()); ok {
		s.m.Handle(ev)
	}
	s.m.Frame()
	if s.particles != nil {
		s.particles.Update(frameInterval.Seconds(), s.m.Controller().Config().FloorHeight)
	}
	return !s.end.Done(s.m.Over(), frameInterval.Seconds())
}

// Run plays m in the terminal until Escape, Ctrl-C or q, or until the
// winner has been shown for view.OverLinger seconds. bus, if non-nil,
// must be the sink m emits into; it drives particle effects.
func Run(m *game.Match, bus *game.EventBus, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	cfg := m.Controller().Config()
	s := &session{m: m, particles: view.NewParticleSystem(view.MaxParticles/4, cfg.Seed)}
	if bus != nil {
		s.particles.Attach(bus, m)
	}

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !s.key(ev) {
					logger.Debug("terminal quit")
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			if !s.tick() {
				logger.Debug("match decided, leaving terminal")
				return nil
			}
			screen.Clear()
			Draw(screen, m.Snapshot(), cfg)
			DrawParticles(screen, s.particles, cfg)
			screen.Show()
		}
	}
}

// Package desktop is the GLFW/OpenGL frontend.
package desktop

import (
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/lallassu/tanks/internal/game"
	"github.com/lallassu/tanks/internal/view"
)

// Run opens a window and plays m until the window is closed, Escape is
// pressed, or the winner has been shown for view.OverLinger seconds. bus, if non-nil, must be the sink m emits into; it drives
// screen shake and particle effects. Run must be called from the main goroutine.
func Run(m *game.Match, bus *game.EventBus, logger *log.Logger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	if logger == nil {
		logger = log.New(io.Discard)
	}

	window, err := initWindow(WindowWidth, WindowHeight, WindowTitle)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	logger.Debug("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	cfg := m.Controller().Config()
	var cam view.Camera
	particles := view.NewParticleSystem(view.MaxParticles, cfg.Seed)
	if bus != nil {
		bus.Subscribe(game.EventTankDestroyed, func(game.Event) { cam.AddShake(6, 0.35) })
		particles.Attach(bus, m)
	}

	var (
		input  view.Input
		end    view.EndTimer
		scene  view.Scene
		events []game.InputEvent
		frame  uint64
	)
	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}
		frame++

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		events = input.Update(sampleKeys(window), dt, events[:0])
		for _, ev := range events {
			m.Handle(ev)
		}
		m.Frame()
		particles.Update(dt, cfg.FloorHeight)
		if end.Done(m.Over(), dt) {
			window.SetShouldClose(true)
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		cam.Fit(cfg.Width, cfg.Height, fbW, fbH)
		cam.UpdateShake(dt, frame)

		snap := m.Snapshot()
		scene.Build(snap, cfg)
		scene.AddParticles(particles)

		rend.BeginFrame(fbW, fbH)
		rend.DrawScene(&scene, cam.Shaken(), fbW, fbH)
		rend.DrawHUD(view.HUD(snap, view.DesktopHelp), fbW, fbH)
		rend.FlushText(fbW, fbH)
		window.SwapBuffers()
	}
	return nil
}

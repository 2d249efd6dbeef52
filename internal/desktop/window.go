package desktop

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/lallassu/tanks/internal/view"
)

const (
	WindowWidth  = 1000
	WindowHeight = 800
	WindowTitle  = "Tank Game"
)

func initWindow(w, h int, title string) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Decorated, glfw.True)

	window, err := glfw.CreateWindow(w, h, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, nil
}

// sampleKeys reads the keys the match cares about.
func sampleKeys(window *glfw.Window) view.Keys {
	return view.Keys{
		Left:  window.GetKey(glfw.KeyLeft) == glfw.Press,
		Right: window.GetKey(glfw.KeyRight) == glfw.Press,
		Fire:  window.GetKey(glfw.KeySpace) == glfw.Press,
	}
}

package types

import (
	"time"

	"GLTutorial/harness"
	Log "GLTutorial/logging"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Platform is the GLFW windowing subsystem.
type Platform struct{}

func (Platform) Init() error {

	Log.NewLog("Windowing Initializing..")

	return glfw.Init()

}

func (Platform) Terminate() {
	glfw.Terminate()
}

// Elapsed is the GLFW timer, which starts at zero on Init.
func (Platform) Elapsed() time.Duration {
	return time.Duration(glfw.GetTime() * float64(time.Second))
}

func (Platform) CreateWindow(cfg harness.WindowConfig) (harness.Window, error) {

	Log.NewLog("Window Creating..")

	profiler := ProfilerStart("glfw_window")

	// Setup Window Settings

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.ContextMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.ContextMinor)
	glfw.WindowHint(glfw.OpenGLProfile, profileHint(cfg))
	glfw.WindowHint(glfw.OpenGLForwardCompatible, boolHint(cfg.ForwardCompatible))
	glfw.WindowHint(glfw.StencilBits, cfg.StencilBits)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)

	if err != nil {
		Log.NewLog("Could not create window")
		return nil, err
	}

	window.SetPos(cfg.X, cfg.Y)

	TimeTook := profiler.End()

	Log.NewLog("Window Created - Time:", TimeTook)

	return &Window{window: window}, nil

}

// Profiles only exist from 3.2 on; older versions must ask for any profile.
func profileHint(cfg harness.WindowConfig) int {

	if cfg.ContextMajor*10+cfg.ContextMinor < 32 {
		return glfw.OpenGLAnyProfile
	}

	if cfg.CoreProfile {
		return glfw.OpenGLCoreProfile
	}

	return glfw.OpenGLCompatProfile

}

func boolHint(b bool) int {

	if b {
		return glfw.True
	}

	return glfw.False

}

type Window struct {
	window *glfw.Window
}

func (w *Window) LoadDriver() (harness.Driver, error) {

	w.window.MakeContextCurrent()

	return NewGLDriver()

}

// PollEvent processes pending window events and reports a close request as quit.
func (w *Window) PollEvent() harness.Event {

	glfw.PollEvents()

	if w.window.ShouldClose() {
		return harness.Event{Kind: harness.EventQuit}
	}

	return harness.Event{Kind: harness.EventNone}

}

func (w *Window) Present() {
	w.window.SwapBuffers()
}

func (w *Window) Destroy() {
	w.window.Destroy()
}

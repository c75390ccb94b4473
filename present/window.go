// Package present is the host presentation backend: it opens an OS
// window via GLFW, polls input, and blits the CPU-produced color buffer
// to the screen each tick via a single textured full-screen quad. No
// transform, lighting, or rasterization happens here — the GPU only
// displays a buffer that is already finished.
package present

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW and the GL context it creates are bound to the OS thread that
	// created them; this is a hard requirement of both libraries.
	runtime.LockOSThread()
}

// InitFailure wraps any error raised while standing up the window, GL
// context, or blit quad. It is always fatal: callers should surface it
// and exit rather than retry, since partial GLFW/GL init state cannot be
// safely resumed from.
type InitFailure struct {
	Err error
}

func (e *InitFailure) Error() string { return fmt.Sprintf("present init failure: %v", e.Err) }
func (e *InitFailure) Unwrap() error { return e.Err }

// Config controls window creation.
type Config struct {
	Width, Height int
	Title         string
	Fullscreen    bool
	VSync         bool
}

// DefaultConfig returns an 800x600 windowed, vsync'd configuration.
func DefaultConfig() Config {
	return Config{Width: 800, Height: 600, Title: "softraster", VSync: true}
}

// Window owns the GLFW window handle and the GL blit quad used to
// present a finished color buffer each tick.
type Window struct {
	Handle *glfw.Window
	Width  int
	Height int

	blit *blitQuad
}

// NewWindow creates the OS window and its GL context, and compiles the
// blit-quad program. Any failure here is an InitFailure: fatal to the
// caller.
func NewWindow(cfg Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, &InitFailure{Err: fmt.Errorf("glfw init: %w", err)}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	handle, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &InitFailure{Err: fmt.Errorf("create window: %w", err)}
	}
	handle.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	blit, err := newBlitQuad(cfg.Width, cfg.Height)
	if err != nil {
		handle.Destroy()
		glfw.Terminate()
		return nil, &InitFailure{Err: fmt.Errorf("blit quad: %w", err)}
	}

	return &Window{Handle: handle, Width: cfg.Width, Height: cfg.Height, blit: blit}, nil
}

// Present uploads a packed R,G,B,A buffer (as produced by
// buffer.ColorBuffer.Bytes) to the blit quad's texture, draws it, and
// swaps. It must be called once per tick, after the software rasterizer
// has entirely finished the frame.
func (w *Window) Present(pixels []byte) {
	w.blit.draw(pixels)
	w.Handle.SwapBuffers()
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// IsKeyPressed reports whether key (one of the Key constants below) is
// currently held down.
func (w *Window) IsKeyPressed(key int) bool {
	return w.Handle.GetKey(glfw.Key(key)) == glfw.Press
}

// Destroy releases the window and terminates GLFW.
func (w *Window) Destroy() {
	w.blit.destroy()
	w.Handle.Destroy()
	glfw.Terminate()
}

const (
	KeyEscape = int(glfw.KeyEscape)
	Key1      = int(glfw.Key1)
	Key2      = int(glfw.Key2)
	Key3      = int(glfw.Key3)
	Key4      = int(glfw.Key4)
	Key5      = int(glfw.Key5)
	Key6      = int(glfw.Key6)
	KeyC      = int(glfw.KeyC)
	KeyZ      = int(glfw.KeyZ)
	KeyW      = int(glfw.KeyW)
	KeyS      = int(glfw.KeyS)
	KeyA      = int(glfw.KeyA)
	KeyD      = int(glfw.KeyD)
	KeyI      = int(glfw.KeyI)
	KeyK      = int(glfw.KeyK)
	KeyUp     = int(glfw.KeyUp)
	KeyDown   = int(glfw.KeyDown)
)

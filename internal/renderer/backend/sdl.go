//go:build sdl2

package backend

import (
	"runtime"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/dshills/uncursed/internal/input/key"
	"github.com/dshills/uncursed/internal/renderer/core"
)

// SDLAvailable reports whether the SDL backend was compiled in.
const SDLAvailable = true

func init() {
	// SDL must be driven from the thread that initialized it.
	runtime.LockOSThread()
}

// SDL implements Backend with an SDL2 window and accelerated renderer.
type SDL struct {
	initialized bool
	window      *sdl.Window
	renderer    *sdl.Renderer
}

// NewSDL creates an SDL backend. Nothing is allocated until Init.
func NewSDL() (*SDL, error) {
	return &SDL{}, nil
}

func (s *SDL) Init() error {
	if err := sdl.Init(sdl.INIT_TIMER | sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return err
	}
	s.initialized = true
	return nil
}

func (s *SDL) CreateWindow(title string, width, height int) error {
	w, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), sdl.WINDOW_RESIZABLE)
	if err != nil {
		return err
	}
	s.window = w
	return nil
}

func (s *SDL) CreateRenderer() error {
	if s.window == nil {
		return ErrNoWindow
	}
	r, err := sdl.CreateRenderer(s.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return err
	}
	s.renderer = r
	return nil
}

func (s *SDL) Shutdown() {
	if s.renderer != nil {
		_ = s.renderer.Destroy()
		s.renderer = nil
	}
	if s.window != nil {
		_ = s.window.Destroy()
		s.window = nil
	}
	if s.initialized {
		sdl.Quit()
		s.initialized = false
	}
}

func (s *SDL) WindowSize() (int, int) {
	w, h := s.window.GetSize()
	return int(w), int(h)
}

func (s *SDL) SetWindowSize(width, height int) {
	s.window.SetSize(int32(width), int32(height))
}

func (s *SDL) SetLogicalSize(width, height int) {
	if s.renderer != nil {
		_ = s.renderer.SetLogicalSize(int32(width), int32(height))
	}
}

func (s *SDL) SetMinimumSize(width, height int) {
	s.window.SetMinimumSize(int32(width), int32(height))
}

func (s *SDL) Ticks() time.Duration {
	return time.Duration(sdl.GetTicks()) * time.Millisecond
}

func (s *SDL) WaitEvent(timeout time.Duration) (Event, bool) {
	var ev sdl.Event
	switch {
	case timeout < 0:
		ev = sdl.WaitEvent()
	case timeout == 0:
		ev = sdl.PollEvent()
	default:
		ev = sdl.WaitEventTimeout(int(timeout / time.Millisecond))
	}
	if ev == nil {
		return Event{}, false
	}
	return convertSDLEvent(ev), true
}

func (s *SDL) SetDrawColor(c core.Color) {
	_ = s.renderer.SetDrawColor(c.R, c.G, c.B, sdl.ALPHA_OPAQUE)
}

func (s *SDL) FillRect(r core.Rect) {
	_ = s.renderer.FillRect(&sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)})
}

func (s *SDL) Present() {
	s.renderer.Present()
}

// convertSDLEvent converts SDL events to our Event type. SDL keycodes and
// modifier bits are the native key space, so they pass through unchanged.
func convertSDLEvent(ev sdl.Event) Event {
	switch e := ev.(type) {
	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_RESIZED:
			return Window(WindowResized)
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			return Window(WindowSizeChanged)
		case sdl.WINDOWEVENT_EXPOSED:
			return Window(WindowExposed)
		case sdl.WINDOWEVENT_CLOSE:
			return Window(WindowClose)
		}
		return Window(WindowNone)

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN {
			return Event{Type: EventNone}
		}
		return KeyDown(key.Sym(e.Keysym.Sym), key.Mod(e.Keysym.Mod))

	case *sdl.QuitEvent:
		return Quit()

	default:
		return Event{Type: EventNone}
	}
}

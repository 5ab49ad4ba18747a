//go:build !sdl2

package backend

import (
	"errors"
	"time"

	"github.com/dshills/uncursed/internal/renderer/core"
)

// SDLAvailable reports whether the SDL backend was compiled in.
const SDLAvailable = false

// ErrSDLUnavailable is returned by NewSDL in builds without SDL.
var ErrSDLUnavailable = errors.New("SDL2 backend not available - build with -tags sdl2 and install SDL2 development libraries")

// SDL stub for when SDL2 is not available.
type SDL struct{}

// NewSDL returns ErrSDLUnavailable.
func NewSDL() (*SDL, error) {
	return nil, ErrSDLUnavailable
}

func (s *SDL) Init() error                           { return ErrSDLUnavailable }
func (s *SDL) CreateWindow(string, int, int) error   { return ErrSDLUnavailable }
func (s *SDL) CreateRenderer() error                 { return ErrSDLUnavailable }
func (s *SDL) Shutdown()                             {}
func (s *SDL) WindowSize() (int, int)                { return 0, 0 }
func (s *SDL) SetWindowSize(int, int)                {}
func (s *SDL) SetLogicalSize(int, int)               {}
func (s *SDL) SetMinimumSize(int, int)               {}
func (s *SDL) Ticks() time.Duration                  { return 0 }
func (s *SDL) WaitEvent(time.Duration) (Event, bool) { return Event{}, false }
func (s *SDL) SetDrawColor(core.Color)               {}
func (s *SDL) FillRect(core.Rect)                    {}
func (s *SDL) Present()                              {}

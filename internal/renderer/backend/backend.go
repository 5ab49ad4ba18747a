// Package backend provides the native window abstraction the plugin draws
// on and reads input from.
package backend

import (
	"time"

	"github.com/dshills/uncursed/internal/input/key"
	"github.com/dshills/uncursed/internal/renderer/core"
)

// Forever makes WaitEvent block until an event arrives.
const Forever time.Duration = -1

// EventType identifies the type of native event.
type EventType int

const (
	EventNone EventType = iota
	EventKeyDown
	EventWindow
	EventQuit
)

// WindowEvent identifies what happened to the window.
type WindowEvent int

const (
	WindowNone WindowEvent = iota
	WindowResized
	WindowSizeChanged
	WindowExposed
	WindowClose
)

// Event represents a native event.
type Event struct {
	Type EventType

	// Window event fields
	Window WindowEvent

	// Key event fields
	Sym key.Sym
	Mod key.Mod
}

// KeyDown builds a key press event.
func KeyDown(sym key.Sym, mod key.Mod) Event {
	return Event{Type: EventKeyDown, Sym: sym, Mod: mod}
}

// Window builds a window event.
func Window(w WindowEvent) Event {
	return Event{Type: EventWindow, Window: w}
}

// Quit builds a quit request.
func Quit() Event {
	return Event{Type: EventQuit}
}

// Backend defines the interface for native window/renderer backends.
// Sizes and rectangles are in pixels. Only Init, CreateWindow and
// CreateRenderer can fail.
type Backend interface {
	// Init initializes the windowing subsystem.
	Init() error

	// CreateWindow opens a resizable window with the given pixel size.
	CreateWindow(title string, width, height int) error

	// CreateRenderer creates the drawing surface for the window.
	CreateRenderer() error

	// Shutdown destroys the window and releases the subsystem.
	// Safe to call when nothing is allocated.
	Shutdown()

	// WindowSize returns the current window size.
	WindowSize() (width, height int)

	// SetWindowSize resizes the window.
	SetWindowSize(width, height int)

	// SetLogicalSize sets the drawing surface's logical resolution.
	SetLogicalSize(width, height int)

	// SetMinimumSize constrains user resizing.
	SetMinimumSize(width, height int)

	// Ticks returns the time elapsed since Init.
	Ticks() time.Duration

	// WaitEvent waits up to timeout for the next event. A timeout of
	// Forever blocks; zero polls. Returns false if no event arrived.
	WaitEvent(timeout time.Duration) (Event, bool)

	// SetDrawColor selects the color for subsequent fills.
	SetDrawColor(c core.Color)

	// FillRect fills a rectangle with the draw color.
	FillRect(r core.Rect)

	// Present shows everything drawn since the last Present.
	Present()
}

// GlyphSetter is implemented by backends that can show the actual
// character of a cell. The plugin calls SetGlyph with the cell rectangle
// and its code page 437 character before filling the foreground.
type GlyphSetter interface {
	SetGlyph(cell core.Rect, ch int)
}

package backend

import (
	"time"

	"github.com/dshills/uncursed/internal/renderer/core"
)

// Fill records one FillRect call on a NullBackend.
type Fill struct {
	Rect  core.Rect
	Color core.Color
}

// NullBackend is an in-memory backend for testing. Its clock only moves
// when WaitEvent times out or Advance is called, so timed waits complete
// instantly and deterministically.
type NullBackend struct {
	// Errors returned by the next Init, CreateWindow and CreateRenderer.
	InitErr     error
	WindowErr   error
	RendererErr error

	initialized bool
	window      bool
	renderer    bool
	title       string

	width, height   int
	minW, minH      int
	logicalW        int
	logicalH        int
	resizeRequests  int
	clock           time.Duration
	queue           []Event
	waits           int
	color           core.Color
	fills           []Fill
	glyphs          map[core.Rect]int
	presents        int
	inits, shutdown int
}

// NewNullBackend creates a null backend.
func NewNullBackend() *NullBackend {
	return &NullBackend{glyphs: make(map[core.Rect]int)}
}

func (b *NullBackend) Init() error {
	b.inits++
	if b.InitErr != nil {
		return b.InitErr
	}
	b.initialized = true
	return nil
}

func (b *NullBackend) CreateWindow(title string, width, height int) error {
	if b.WindowErr != nil {
		return b.WindowErr
	}
	b.window = true
	b.title = title
	b.width, b.height = width, height
	return nil
}

func (b *NullBackend) CreateRenderer() error {
	if b.RendererErr != nil {
		return b.RendererErr
	}
	b.renderer = true
	return nil
}

func (b *NullBackend) Shutdown() {
	if !b.initialized && !b.window {
		return
	}
	b.shutdown++
	b.initialized = false
	b.window = false
	b.renderer = false
}

func (b *NullBackend) WindowSize() (int, int) {
	return b.width, b.height
}

// SetWindowSize resizes the window and, like a real window system, queues a
// size-changed event if the size actually changed.
func (b *NullBackend) SetWindowSize(width, height int) {
	b.resizeRequests++
	if width == b.width && height == b.height {
		return
	}
	b.width, b.height = width, height
	b.queue = append(b.queue, Window(WindowSizeChanged))
}

func (b *NullBackend) SetLogicalSize(width, height int) {
	b.logicalW, b.logicalH = width, height
}

func (b *NullBackend) SetMinimumSize(width, height int) {
	b.minW, b.minH = width, height
}

func (b *NullBackend) Ticks() time.Duration {
	return b.clock
}

// WaitEvent pops the next queued event. With an empty queue it advances the
// clock by timeout and reports no event; a Forever wait on an empty queue
// also returns immediately, since nothing could ever arrive.
func (b *NullBackend) WaitEvent(timeout time.Duration) (Event, bool) {
	b.waits++
	if len(b.queue) > 0 {
		ev := b.queue[0]
		b.queue = b.queue[1:]
		return ev, true
	}
	if timeout > 0 {
		b.clock += timeout
	}
	return Event{}, false
}

func (b *NullBackend) SetDrawColor(c core.Color) {
	b.color = c
}

func (b *NullBackend) FillRect(r core.Rect) {
	b.fills = append(b.fills, Fill{Rect: r, Color: b.color})
}

func (b *NullBackend) SetGlyph(cell core.Rect, ch int) {
	b.glyphs[cell] = ch
}

func (b *NullBackend) Present() {
	b.presents++
}

// Push queues events for WaitEvent.
func (b *NullBackend) Push(events ...Event) {
	b.queue = append(b.queue, events...)
}

// Pending returns the number of queued events.
func (b *NullBackend) Pending() int {
	return len(b.queue)
}

// UserResize simulates the user dragging the window to a new size: the size
// changes and resized plus size-changed events are queued.
func (b *NullBackend) UserResize(width, height int) {
	b.width, b.height = width, height
	b.queue = append(b.queue, Window(WindowResized), Window(WindowSizeChanged))
}

// Advance moves the clock forward.
func (b *NullBackend) Advance(d time.Duration) {
	b.clock += d
}

// Waits returns the number of WaitEvent calls.
func (b *NullBackend) Waits() int {
	return b.waits
}

// Fills returns the recorded FillRect calls.
func (b *NullBackend) Fills() []Fill {
	return b.fills
}

// ResetFills discards the recorded FillRect calls.
func (b *NullBackend) ResetFills() {
	b.fills = nil
}

// Glyph returns the character last set for a cell rectangle.
func (b *NullBackend) Glyph(cell core.Rect) (int, bool) {
	ch, ok := b.glyphs[cell]
	return ch, ok
}

// Presents returns the number of Present calls.
func (b *NullBackend) Presents() int {
	return b.presents
}

// Title returns the window title.
func (b *NullBackend) Title() string {
	return b.title
}

// MinimumSize returns the last minimum size set.
func (b *NullBackend) MinimumSize() (int, int) {
	return b.minW, b.minH
}

// LogicalSize returns the last logical size set.
func (b *NullBackend) LogicalSize() (int, int) {
	return b.logicalW, b.logicalH
}

// ResizeRequests returns the number of SetWindowSize calls.
func (b *NullBackend) ResizeRequests() int {
	return b.resizeRequests
}

// Lifecycle returns how many times Init was called, how many Shutdowns
// released something, and whether a window and renderer currently exist.
func (b *NullBackend) Lifecycle() (inits, shutdowns int, window, renderer bool) {
	return b.inits, b.shutdown, b.window, b.renderer
}

package sdl

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dshills/uncursed/internal/logging"
	"github.com/dshills/uncursed/internal/renderer/backend"
	"github.com/dshills/uncursed/internal/renderer/core"
	"github.com/dshills/uncursed/internal/renderer/palette"
	"github.com/dshills/uncursed/internal/uncursed"
)

// Title is the window title.
const Title = "Uncursed"

var (
	// Font is the pixel size of one character cell.
	Font = core.FontMetrics{Width: 8, Height: 14}

	// InitialGrid is the window size, in cells, at creation.
	InitialGrid = core.Size{W: 120, H: 30}

	// MinGrid is the smallest grid the window may shrink to. Many programs
	// do not work with less than 80x24.
	MinGrid = core.Size{W: 80, H: 24}
)

// glyphInset is the margin between a cell's edge and its foreground block.
const glyphInset = 2

// Options configures a Plugin.
type Options struct {
	// Backend is the native window. Required.
	Backend backend.Backend
	// Host is the rendering core the plugin reports to. Required.
	Host uncursed.Host
	// Palette defaults to palette.Default.
	Palette *palette.Palette
	// Logger defaults to logging.NullLogger.
	Logger *logging.Logger
}

// Plugin is the display context: the native window plus the resize and
// hangup state that goes with it.
type Plugin struct {
	backend backend.Backend
	host    uncursed.Host
	palette *palette.Palette
	log     *logging.Logger

	open     bool
	grid     core.Size
	// notified is the grid size the host last learned; redraws stay
	// inside it.
	notified core.Size
	resize   resizeState
	hangup   bool
}

var _ uncursed.Hooks = (*Plugin)(nil)

// New creates a plugin. No native resources are allocated until Init.
func New(opts Options) *Plugin {
	p := &Plugin{
		backend: opts.Backend,
		host:    opts.Host,
		palette: opts.Palette,
		log:     opts.Logger,
		grid:    InitialGrid,
	}
	if p.palette == nil {
		p.palette = &palette.Default
	}
	if p.log == nil {
		p.log = logging.NullLogger
	}
	p.log = p.log.WithComponent("sdl")
	return p
}

// Init creates the window and renderer if they do not exist yet and returns
// the grid size. Calling it again while the window is open just reports the
// size the host was last given. The caller owns teardown and must call Close before the
// process exits.
func (p *Plugin) Init() (height, width int, err error) {
	if p.open {
		return p.notified.H, p.notified.W, nil
	}
	if p.host == nil {
		return 0, 0, ErrNoHost
	}
	if p.backend == nil {
		return 0, 0, ErrNoBackend
	}

	if err := p.backend.Init(); err != nil {
		return 0, 0, &InitError{Stage: StageSubsystem, Err: err}
	}
	px := Font.Pixels(InitialGrid)
	if err := p.backend.CreateWindow(Title, px.W, px.H); err != nil {
		p.backend.Shutdown()
		return 0, 0, &InitError{Stage: StageWindow, Err: err}
	}
	if err := p.backend.CreateRenderer(); err != nil {
		p.backend.Shutdown()
		return 0, 0, &InitError{Stage: StageRenderer, Err: err}
	}
	p.open = true

	p.grid = InitialGrid
	p.recomputeSizes()
	p.resize.pending = false
	p.notified = p.grid

	p.log.Info("window open at %dx%d cells", p.grid.W, p.grid.H)
	return p.grid.H, p.grid.W, nil
}

// fatal is swapped out by tests.
var (
	fatalOutput io.Writer = os.Stderr
	fatalExit             = os.Exit
)

// MustInit is Init for hosts that cannot handle a failure: it prints the
// native error and exits the process with status 1.
func (p *Plugin) MustInit() (height, width int) {
	h, w, err := p.Init()
	if err != nil {
		var ie *InitError
		if errors.As(err, &ie) {
			fmt.Fprintf(fatalOutput, "Error %v\n", err)
		} else {
			fmt.Fprintf(fatalOutput, "Error: %v\n", err)
		}
		fatalExit(1)
	}
	return h, w
}

// Close destroys the window and releases the native subsystem. It is a
// no-op when nothing is open. Hangup state survives Close.
func (p *Plugin) Close() {
	if !p.open {
		return
	}
	p.backend.Shutdown()
	p.open = false
	p.log.Info("window closed")
}

// Exit is a no-op: the host calls it to write to the console for a while,
// which can happen behind the window. The next Init reuses the window; Close
// tears it down for real.
func (p *Plugin) Exit() {}

// Beep is not implemented.
func (p *Plugin) Beep() {
	p.log.Debug("beep")
}

// SetCursorSize is not implemented.
func (p *Plugin) SetCursorSize(size int) {}

// PositionCursor is not implemented.
func (p *Plugin) PositionCursor(row, col int) {}

// RawSignals has no meaning for a graphical window.
func (p *Plugin) RawSignals(enabled bool) {}

// SetPalette replaces the palette. Cells already on screen keep their old
// colors until they are redrawn. A nil palette selects palette.Default.
func (p *Plugin) SetPalette(pal *palette.Palette) {
	if pal == nil {
		pal = &palette.Default
	}
	p.palette = pal
}

// Grid returns the current grid size in cells.
func (p *Plugin) Grid() core.Size {
	return p.grid
}

// HungUp reports whether the window has been closed or a quit requested.
func (p *Plugin) HungUp() bool {
	return p.hangup
}

// Open reports whether the window exists.
func (p *Plugin) Open() bool {
	return p.open
}

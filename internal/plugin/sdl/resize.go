package sdl

import (
	"github.com/dshills/uncursed/internal/renderer/core"
)

// resizeMode controls whether a pending resize may be reported.
type resizeMode int

const (
	// resizeNormal reports a pending resize on the next key request.
	resizeNormal resizeMode = iota
	// resizeSuppressed holds pending resizes back, during Delay.
	resizeSuppressed
)

func (m resizeMode) String() string {
	if m == resizeSuppressed {
		return "suppressed"
	}
	return "normal"
}

// resizeState is the resize bookkeeping. Several window changes between key
// requests collapse into one pending flag.
type resizeState struct {
	mode    resizeMode
	pending bool
}

// reportable reports whether a resize should be surfaced now.
func (s *resizeState) reportable() bool {
	return s.pending && s.mode == resizeNormal
}

// suppress holds resizes back and returns a func restoring the prior mode.
func (s *resizeState) suppress() (restore func()) {
	prev := s.mode
	s.mode = resizeSuppressed
	return func() { s.mode = prev }
}

// recomputeSizes derives the grid from the window's pixel size. A window
// that is not an exact multiple of the cell size, or is below the minimum,
// is snapped back to fit. The minimum size is re-asserted each time since
// some window managers drop it. A grid change raises a pending resize.
func (p *Plugin) recomputeSizes() {
	w, h := p.backend.WindowSize()
	grid := core.GridFor(core.Size{W: w, H: h}, Font, MinGrid)

	px := Font.Pixels(grid)
	if px.W != w || px.H != h {
		p.backend.SetWindowSize(px.W, px.H)
	}
	p.backend.SetLogicalSize(px.W, px.H)

	minPx := Font.Pixels(MinGrid)
	p.backend.SetMinimumSize(minPx.W, minPx.H)

	if grid != p.grid {
		p.log.Debug("grid %dx%d -> %dx%d", p.grid.W, p.grid.H, grid.W, grid.H)
		p.grid = grid
		p.resize.pending = true
	}
}

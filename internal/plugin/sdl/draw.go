package sdl

import (
	"github.com/dshills/uncursed/internal/renderer/backend"
)

// UpdateCell draws one cell from the host's buffer: the background fills the
// whole cell and the foreground an inset block in place of the glyph. Drawn
// cells become visible on Flush.
func (p *Plugin) UpdateCell(row, col int) {
	if !p.open {
		return
	}
	ch := p.host.CellCharAt(row, col)
	fg, bg := p.palette.Resolve(p.host.CellAttributeAt(row, col))

	cell := Font.CellRect(row, col)
	p.backend.SetDrawColor(bg)
	p.backend.FillRect(cell)

	if gs, ok := p.backend.(backend.GlyphSetter); ok {
		gs.SetGlyph(cell, ch)
	}
	p.backend.SetDrawColor(fg)
	p.backend.FillRect(cell.Inset(glyphInset))

	p.host.NotifyCellDrawn(row, col)
}

// FullRedraw draws every cell of the grid in row-major order. While a
// resize is still unreported it draws the size the host knows about.
func (p *Plugin) FullRedraw() {
	for row := 0; row < p.notified.H; row++ {
		for col := 0; col < p.notified.W; col++ {
			p.UpdateCell(row, col)
		}
	}
}

// Flush presents everything drawn since the last flush.
func (p *Plugin) Flush() {
	if !p.open {
		return
	}
	p.backend.Present()
}

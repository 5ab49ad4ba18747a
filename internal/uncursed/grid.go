package uncursed

import (
	"github.com/rivo/uniseg"
	"golang.org/x/text/encoding/charmap"
)

type gridCell struct {
	ch   int
	attr Attr
}

// Grid is a host-side cell buffer with per-cell dirty tracking.
// It implements Host, so a plugin can read cells from it and acknowledge
// drawn cells.
type Grid struct {
	width, height int
	cells         []gridCell
	dirty         []bool

	resizes  int
	drawn    int
	onResize func(height, width int)
}

// NewGrid creates a grid of the given size filled with blanks.
func NewGrid(height, width int) *Grid {
	g := &Grid{}
	g.allocate(height, width)
	return g
}

func (g *Grid) allocate(height, width int) {
	g.width = max(width, 0)
	g.height = max(height, 0)
	g.cells = make([]gridCell, g.width*g.height)
	g.dirty = make([]bool, g.width*g.height)
	for i := range g.cells {
		g.cells[i] = gridCell{ch: ' ', attr: DefaultCellAttr}
		g.dirty[i] = true
	}
}

func (g *Grid) index(row, col int) (int, bool) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return 0, false
	}
	return row*g.width + col, true
}

// Size returns the grid dimensions.
func (g *Grid) Size() (height, width int) {
	return g.height, g.width
}

// OnResize registers a callback run after NotifyResized has resized the grid.
func (g *Grid) OnResize(fn func(height, width int)) {
	g.onResize = fn
}

// Resize changes the grid size, keeping the overlapping content. Every cell
// is marked dirty.
func (g *Grid) Resize(height, width int) {
	if height == g.height && width == g.width {
		return
	}
	old := g.cells
	oldWidth, oldHeight := g.width, g.height
	g.allocate(height, width)

	for row := 0; row < min(oldHeight, g.height); row++ {
		for col := 0; col < min(oldWidth, g.width); col++ {
			g.cells[row*g.width+col] = old[row*oldWidth+col]
		}
	}
}

// SetCell stores a CP437 character and attribute. Out of range positions are
// ignored.
func (g *Grid) SetCell(row, col, ch int, attr Attr) {
	i, ok := g.index(row, col)
	if !ok {
		return
	}
	c := gridCell{ch: ch & 0xff, attr: attr}
	if g.cells[i] != c {
		g.cells[i] = c
		g.dirty[i] = true
	}
}

// SetString writes s starting at (row, col), one grapheme cluster per cell,
// encoding each cluster's base rune into code page 437. Runes with no CP437
// form are written as '?'. Returns the number of cells written.
func (g *Grid) SetString(row, col int, s string, attr Attr) int {
	n := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		if col+n >= g.width {
			break
		}
		runes := gr.Runes()
		b, ok := charmap.CodePage437.EncodeRune(runes[0])
		if !ok {
			b = '?'
		}
		g.SetCell(row, col+n, int(b), attr)
		n++
	}
	return n
}

// Fill sets every cell to ch with attr.
func (g *Grid) Fill(ch int, attr Attr) {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			g.SetCell(row, col, ch, attr)
		}
	}
}

// MarkFullRedraw marks every cell dirty.
func (g *Grid) MarkFullRedraw() {
	for i := range g.dirty {
		g.dirty[i] = true
	}
}

// DirtyCount returns the number of cells waiting to be drawn.
func (g *Grid) DirtyCount() int {
	n := 0
	for _, d := range g.dirty {
		if d {
			n++
		}
	}
	return n
}

// Draw asks the plugin to draw every dirty cell in row-major order and then
// flushes. The plugin acknowledges each cell through NotifyCellDrawn.
func (g *Grid) Draw(h Hooks) {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if g.dirty[row*g.width+col] {
				h.UpdateCell(row, col)
			}
		}
	}
	h.Flush()
}

// Stats returns how many resize notifications and drawn-cell
// acknowledgements the grid has received.
func (g *Grid) Stats() (resizes, drawn int) {
	return g.resizes, g.drawn
}

// NotifyResized implements Host.
func (g *Grid) NotifyResized(height, width int) {
	g.resizes++
	g.Resize(height, width)
	if g.onResize != nil {
		g.onResize(height, width)
	}
}

// CellCharAt implements Host.
func (g *Grid) CellCharAt(row, col int) int {
	i, ok := g.index(row, col)
	if !ok {
		return ' '
	}
	return g.cells[i].ch
}

// CellAttributeAt implements Host.
func (g *Grid) CellAttributeAt(row, col int) Attr {
	i, ok := g.index(row, col)
	if !ok {
		return DefaultCellAttr
	}
	return g.cells[i].attr
}

// NotifyCellDrawn implements Host.
func (g *Grid) NotifyCellDrawn(row, col int) {
	g.drawn++
	if i, ok := g.index(row, col); ok {
		g.dirty[i] = false
	}
}

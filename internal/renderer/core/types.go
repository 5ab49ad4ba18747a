// Package core provides the pixel geometry shared by the plugin and its
// backends. This package breaks import cycles between plugin and backend.
package core

import "fmt"

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// ColorFromRGB creates a color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// String returns the color as #RRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Rect is a pixel rectangle.
type Rect struct {
	X, Y, W, H int
}

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Inset shrinks the rectangle by n pixels on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Size is a width/height pair. Depending on context the unit is pixels or
// character cells.
type Size struct {
	W, H int
}

// FontMetrics is the pixel size of one character cell.
type FontMetrics struct {
	Width, Height int
}

// CellRect returns the pixel rectangle covered by the cell at (row, col).
func (f FontMetrics) CellRect(row, col int) Rect {
	return Rect{X: col * f.Width, Y: row * f.Height, W: f.Width, H: f.Height}
}

// Pixels converts a size in cells to pixels.
func (f FontMetrics) Pixels(cells Size) Size {
	return Size{W: cells.W * f.Width, H: cells.H * f.Height}
}

// GridFor returns the character grid that fits in a pixel area, never
// smaller than minimum.
func GridFor(pixels Size, font FontMetrics, minimum Size) Size {
	grid := Size{W: pixels.W / font.Width, H: pixels.H / font.Height}
	if grid.W < minimum.W {
		grid.W = minimum.W
	}
	if grid.H < minimum.H {
		grid.H = minimum.H
	}
	return grid
}

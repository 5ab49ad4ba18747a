// Package palette maps uncursed's 4-bit color indices to RGB.
package palette

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/uncursed/internal/renderer/core"
	"github.com/dshills/uncursed/internal/uncursed"
)

// Size is the number of palette entries.
const Size = 16

// Entries used for the default-color attribute flags.
const (
	DefaultFgIndex = 7
	DefaultBgIndex = 0
)

// Palette is a fixed table of 16 colors shared by foreground and background
// lookups.
type Palette [Size]core.Color

// standard matches the colors the tty backend uses, so both backends look
// alike.
var standard = [Size]string{
	"#000000", "#af0000", "#008700", "#af5f00",
	"#0000af", "#870087", "#00af87", "#afafaf",
	"#5f5f5f", "#ff5f00", "#00ff00", "#ffff00",
	"#875fff", "#ff5faf", "#00d7ff", "#ffffff",
}

// Default is the standard palette.
var Default = mustParse(standard)

// Parse builds a palette from 16 hex color strings.
func Parse(hex [Size]string) (Palette, error) {
	var p Palette
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return Palette{}, fmt.Errorf("palette entry %d: %w", i, err)
		}
		r, g, b := c.RGB255()
		p[i] = core.ColorFromRGB(r, g, b)
	}
	return p, nil
}

func mustParse(hex [Size]string) Palette {
	p, err := Parse(hex)
	if err != nil {
		panic(err)
	}
	return p
}

// Color returns the entry for a 4-bit index. Higher bits are ignored.
func (p *Palette) Color(index int) core.Color {
	return p[index&(Size-1)]
}

// Resolve returns the foreground and background colors for a cell attribute,
// applying the default-color flags.
func (p *Palette) Resolve(a uncursed.Attr) (fg, bg core.Color) {
	fg = p.Color(a.Fg())
	bg = p.Color(a.Bg())
	if a.Has(uncursed.AttrDefaultFg) {
		fg = p[DefaultFgIndex]
	}
	if a.Has(uncursed.AttrDefaultBg) {
		bg = p[DefaultBgIndex]
	}
	return fg, bg
}

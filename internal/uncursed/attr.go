package uncursed

// Attr is a packed cell attribute as stored in the host's cell buffer.
//
//	bits 0-3  foreground palette index
//	bit  4    default foreground (drawn with the light grey entry)
//	bits 5-8  background palette index
//	bit  9    default background (drawn black)
//	bit  10   underline
type Attr uint32

const (
	attrFgMask      Attr = 0x0f
	AttrDefaultFg   Attr = 1 << 4
	attrBgShift          = 5
	attrBgMask      Attr = 0x0f << attrBgShift
	AttrDefaultBg   Attr = 1 << 9
	AttrUnderline   Attr = 1 << 10
	DefaultCellAttr      = AttrDefaultFg | AttrDefaultBg
)

// MakeAttr packs explicit foreground and background palette indices.
func MakeAttr(fg, bg int) Attr {
	return Attr(fg)&attrFgMask | (Attr(bg)<<attrBgShift)&attrBgMask
}

// Fg returns the foreground palette index.
func (a Attr) Fg() int { return int(a & attrFgMask) }

// Bg returns the background palette index.
func (a Attr) Bg() int { return int((a & attrBgMask) >> attrBgShift) }

// Has reports whether every bit of flag is set.
func (a Attr) Has(flag Attr) bool { return a&flag == flag }

// With returns a with flag added.
func (a Attr) With(flag Attr) Attr { return a | flag }

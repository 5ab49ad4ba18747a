package key

import (
	"fmt"

	"github.com/dshills/uncursed/internal/uncursed"
)

// Kind tells which half of the key space a Key belongs to.
type Kind uint8

const (
	// KindNone is the zero Key: nothing to report.
	KindNone Kind = iota
	// KindPrintable is a character value below uncursed.KeyBias.
	KindPrintable
	// KindSpecial is a named or synthesized uncursed special.
	KindSpecial
)

// Key is a decoded key press.
//
// A printable key carries the character as typed plus the Alt and Ctrl
// state; Ctrl is applied as the control-character transform when the key is
// encoded. A special key carries its name plus Alt, Ctrl and Shift flags.
type Key struct {
	Kind    Kind
	Rune    rune
	Special uncursed.Special

	Alt   bool
	Ctrl  bool
	Shift bool
}

// Printable returns an unmodified printable key.
func Printable(r rune) Key {
	return Key{Kind: KindPrintable, Rune: r}
}

// Named returns an unmodified special key.
func Named(s uncursed.Special) Key {
	return Key{Kind: KindSpecial, Special: s}
}

// WithMod applies native modifier state. Alt applies to both kinds; Ctrl and
// Shift are recorded on specials, and only Ctrl is recorded on printables.
func (k Key) WithMod(m Mod) Key {
	if k.Kind == KindNone {
		return k
	}
	if m.HasAlt() {
		k.Alt = true
	}
	if m.HasCtrl() {
		k.Ctrl = true
	}
	if k.Kind == KindSpecial && m.HasShift() {
		k.Shift = true
	}
	return k
}

// Code packs the key into uncursed's integer encoding.
func (k Key) Code() int {
	switch k.Kind {
	case KindPrintable:
		code := int(k.Rune)
		if k.Alt {
			code |= uncursed.FlagAlt
		}
		if k.Ctrl {
			code &^= 0x40
		}
		return code
	case KindSpecial:
		code := k.Special.Code()
		if k.Alt {
			code |= uncursed.FlagAlt
		}
		if k.Ctrl {
			code |= uncursed.FlagCtrl
		}
		if k.Shift {
			code |= uncursed.FlagShift
		}
		return code
	default:
		return 0
	}
}

// IsNone reports whether the key encodes to zero and so must not be
// reported.
func (k Key) IsNone() bool {
	return k.Code() == 0
}

// String returns a readable form such as "Ctrl+'a'" or "Alt+HOME".
func (k Key) String() string {
	var prefix string
	if k.Ctrl {
		prefix += "Ctrl+"
	}
	if k.Alt {
		prefix += "Alt+"
	}
	if k.Shift {
		prefix += "Shift+"
	}
	switch k.Kind {
	case KindPrintable:
		return fmt.Sprintf("%s%q", prefix, k.Rune)
	case KindSpecial:
		return prefix + k.Special.String()
	default:
		return "None"
	}
}

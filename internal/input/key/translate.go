package key

import "github.com/dshills/uncursed/internal/uncursed"

// named maps native symbols to uncursed specials one-to-one.
var named = map[Sym]uncursed.Special{
	SymEscape:      uncursed.KeyEscape,
	SymBackspace:   uncursed.KeyBackspace,
	SymPrintScreen: uncursed.KeyPrint,
	SymPause:       uncursed.KeyBreak,
	SymHome:        uncursed.KeyHome,
	SymEnd:         uncursed.KeyEnd,
	SymInsert:      uncursed.KeyIC,
	SymDelete:      uncursed.KeyDC,
	SymPageUp:      uncursed.KeyPPage,
	SymPageDown:    uncursed.KeyNPage,
	SymRight:       uncursed.KeyRight,
	SymLeft:        uncursed.KeyLeft,
	SymUp:          uncursed.KeyUp,
	SymDown:        uncursed.KeyDown,

	SymKPDivide:   uncursed.KeyNumDivide,
	SymKPMultiply: uncursed.KeyNumTimes,
	SymKPMinus:    uncursed.KeyNumMinus,
	SymKPPlus:     uncursed.KeyNumPlus,
	SymKPEnter:    uncursed.KeyEnter,
	SymKP1:        uncursed.KeyC1,
	SymKP1 + 1:    uncursed.KeyC2,
	SymKP1 + 2:    uncursed.KeyC3,
	SymKP1 + 3:    uncursed.KeyB1,
	SymKP1 + 4:    uncursed.KeyB2,
	SymKP1 + 5:    uncursed.KeyB3,
	SymKP1 + 6:    uncursed.KeyA1,
	SymKP1 + 7:    uncursed.KeyA2,
	SymKP9:        uncursed.KeyA3,
	SymKP0:        uncursed.KeyD1,
	SymKPPeriod:   uncursed.KeyD3,
}

// FunctionKeys is the number of function keys with a named mapping.
const FunctionKeys = 20

func init() {
	for n := 1; n <= FunctionKeys; n++ {
		named[SymF(n)] = uncursed.KeyF(n)
	}
}

// modifierKeys produce no key code of their own.
var modifierKeys = map[Sym]bool{
	SymCapsLock:   true,
	SymScrollLock: true,
	SymNumLock:    true,
	SymLCtrl:      true,
	SymLShift:     true,
	SymLAlt:       true,
	SymRCtrl:      true,
	SymRShift:     true,
	SymRAlt:       true,
	SymMode:       true,
	SymLGUI:       true,
	SymRGUI:       true,
}

// IsModifier reports whether sym is a pure modifier or lock key.
func IsModifier(sym Sym) bool {
	return modifierKeys[sym]
}

// Base maps a symbol to its unmodified key. It returns false for modifier
// keys and for unknown symbols whose synthesized code would not fit below
// uncursed.SpecialLimit.
func Base(sym Sym) (Key, bool) {
	switch sym {
	case SymReturn:
		return Printable('\r'), true
	case SymTab:
		return Printable('\t'), true
	}
	if s, ok := named[sym]; ok {
		return Named(s), true
	}
	if modifierKeys[sym] {
		return Key{}, false
	}
	if sym >= ' ' && sym <= '~' {
		return Printable(rune(sym)), true
	}

	synth := int(sym&^ScancodeMask) + int(uncursed.KeyLastFunction)
	if synth < 0 || synth >= uncursed.SpecialLimit {
		return Key{}, false
	}
	return Named(uncursed.Special(synth)), true
}

// Translate maps a key press to a Key with modifiers applied. It returns
// false when the press produces no key: modifier keys, unmappable symbols,
// and combinations that encode to zero (Ctrl+'@').
func Translate(sym Sym, mod Mod) (Key, bool) {
	k, ok := Base(sym)
	if !ok {
		return Key{}, false
	}
	k = k.WithMod(mod)
	if k.IsNone() {
		return Key{}, false
	}
	return k, true
}

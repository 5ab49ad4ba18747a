package key

// Sym is a native key symbol in SDL keycode numbering.
type Sym int32

// ScancodeMask marks symbols derived from a scancode rather than a character.
const ScancodeMask Sym = 1 << 30

// Character keys.
const (
	SymUnknown   Sym = 0
	SymBackspace Sym = '\b'
	SymTab       Sym = '\t'
	SymReturn    Sym = '\r'
	SymEscape    Sym = '\x1b'
	SymSpace     Sym = ' '
	SymDelete    Sym = '\x7f'
)

// Scancode keys.
const (
	SymCapsLock    = ScancodeMask | 57
	SymF1          = ScancodeMask | 58
	SymF12         = ScancodeMask | 69
	SymPrintScreen = ScancodeMask | 70
	SymScrollLock  = ScancodeMask | 71
	SymPause       = ScancodeMask | 72
	SymInsert      = ScancodeMask | 73
	SymHome        = ScancodeMask | 74
	SymPageUp      = ScancodeMask | 75
	SymEnd         = ScancodeMask | 77
	SymPageDown    = ScancodeMask | 78
	SymRight       = ScancodeMask | 79
	SymLeft        = ScancodeMask | 80
	SymDown        = ScancodeMask | 81
	SymUp          = ScancodeMask | 82
	SymNumLock     = ScancodeMask | 83
	SymKPDivide    = ScancodeMask | 84
	SymKPMultiply  = ScancodeMask | 85
	SymKPMinus     = ScancodeMask | 86
	SymKPPlus      = ScancodeMask | 87
	SymKPEnter     = ScancodeMask | 88
	SymKP1         = ScancodeMask | 89
	SymKP9         = ScancodeMask | 97
	SymKP0         = ScancodeMask | 98
	SymKPPeriod    = ScancodeMask | 99
	SymApplication = ScancodeMask | 101
	SymF13         = ScancodeMask | 104
	SymF24         = ScancodeMask | 115
	SymLCtrl       = ScancodeMask | 224
	SymLShift      = ScancodeMask | 225
	SymLAlt        = ScancodeMask | 226
	SymLGUI        = ScancodeMask | 227
	SymRCtrl       = ScancodeMask | 228
	SymRShift      = ScancodeMask | 229
	SymRAlt        = ScancodeMask | 230
	SymRGUI        = ScancodeMask | 231
	SymMode        = ScancodeMask | 257
)

// SymF returns the symbol for function key n, 1 through 24.
func SymF(n int) Sym {
	if n <= 12 {
		return SymF1 + Sym(n-1)
	}
	return SymF13 + Sym(n-13)
}

// SymKP returns the symbol for keypad digit d.
func SymKP(d int) Sym {
	if d == 0 {
		return SymKP0
	}
	return SymKP1 + Sym(d-1)
}

// IsScancode reports whether s was derived from a scancode.
func (s Sym) IsScancode() bool {
	return s&ScancodeMask != 0
}

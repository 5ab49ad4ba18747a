package uncursed

import "fmt"

// KeyBias marks the start of the special key range. Codes below it are
// printable code points.
const KeyBias = 0x110000

// Modifier flags OR-ed into special key codes. FlagAlt is also applied to
// printable codes.
const (
	FlagShift = 0x200
	FlagAlt   = 0x400
	FlagCtrl  = 0x800
)

// SpecialLimit is the size of the unbiased special key space. Named and
// synthesized keys must stay below it so that the flag bits never overlap a
// key number.
const SpecialLimit = 512

// Special identifies a named, non-printable key. Its packed code is
// KeyBias + the Special value.
type Special uint16

// Pseudo keys reported by plugins rather than typed by the user.
const (
	KeyHangup  Special = 0x01 // display went away; permanent
	KeyResize  Special = 0x02 // grid dimensions changed
	KeySilence Special = 0x03 // timed wait elapsed with no input
)

// Editing and navigation keys.
const (
	KeyEscape Special = 0x10 + iota
	KeyBackspace
	KeyPrint
	KeyBreak
	KeyHome
	KeyEnd
	KeyIC // insert
	KeyDC // delete
	KeyPPage
	KeyNPage
	KeyRight
	KeyLeft
	KeyUp
	KeyDown
)

// Numeric keypad keys. The digit keys are named after their position on a
// 3x4 grid: row A is 7-8-9, row D is 0 and the decimal point.
const (
	KeyNumDivide Special = 0x20 + iota
	KeyNumTimes
	KeyNumMinus
	KeyNumPlus
	KeyEnter
	KeyA1
	KeyA2
	KeyA3
	KeyB1
	KeyB2
	KeyB3
	KeyC1
	KeyC2
	KeyC3
	KeyD1
	KeyD3
)

// Function keys occupy KeyF1 up to KeyLastFunction.
const (
	KeyF1           Special = 0x40
	KeyLastFunction Special = 0x7f
)

// maxNamedFunction is the highest function key String names; codes above it
// in the function range come from unmapped keys.
const maxNamedFunction = 24

// KeyF returns the special for function key n (1-based).
func KeyF(n int) Special {
	return KeyF1 + Special(n-1)
}

// Code returns the packed key code for s.
func (s Special) Code() int {
	return KeyBias + int(s)
}

var specialNames = map[Special]string{
	KeyHangup:    "HANGUP",
	KeyResize:    "RESIZE",
	KeySilence:   "SILENCE",
	KeyEscape:    "ESCAPE",
	KeyBackspace: "BACKSPACE",
	KeyPrint:     "PRINT",
	KeyBreak:     "BREAK",
	KeyHome:      "HOME",
	KeyEnd:       "END",
	KeyIC:        "IC",
	KeyDC:        "DC",
	KeyPPage:     "PPAGE",
	KeyNPage:     "NPAGE",
	KeyRight:     "RIGHT",
	KeyLeft:      "LEFT",
	KeyUp:        "UP",
	KeyDown:      "DOWN",
	KeyNumDivide: "NUMDIVIDE",
	KeyNumTimes:  "NUMTIMES",
	KeyNumMinus:  "NUMMINUS",
	KeyNumPlus:   "NUMPLUS",
	KeyEnter:     "ENTER",
	KeyA1:        "A1",
	KeyA2:        "A2",
	KeyA3:        "A3",
	KeyB1:        "B1",
	KeyB2:        "B2",
	KeyB3:        "B3",
	KeyC1:        "C1",
	KeyC2:        "C2",
	KeyC3:        "C3",
	KeyD1:        "D1",
	KeyD3:        "D3",
}

// String returns the key's name, e.g. "HOME", "F5" or "KEY_0x9a" for a
// synthesized key.
func (s Special) String() string {
	if name, ok := specialNames[s]; ok {
		return name
	}
	if s >= KeyF1 && s <= KeyF(maxNamedFunction) {
		return fmt.Sprintf("F%d", int(s-KeyF1)+1)
	}
	return fmt.Sprintf("KEY_%#x", uint16(s))
}

// IsSpecial reports whether a packed code lies in the special range.
func IsSpecial(code int) bool {
	return code >= KeyBias
}

// DescribeCode renders a packed key code for logs, e.g. "C-A-HOME" or "'x'".
func DescribeCode(code int) string {
	if !IsSpecial(code) {
		prefix := ""
		if code&FlagAlt != 0 {
			prefix = "A-"
			code &^= FlagAlt
		}
		if code < 0x20 {
			return fmt.Sprintf("%s^%c", prefix, rune(code+0x40))
		}
		return fmt.Sprintf("%s%q", prefix, rune(code))
	}

	flags := code & (FlagShift | FlagAlt | FlagCtrl)
	s := Special((code &^ flags) - KeyBias)
	var prefix string
	if flags&FlagCtrl != 0 {
		prefix += "C-"
	}
	if flags&FlagAlt != 0 {
		prefix += "A-"
	}
	if flags&FlagShift != 0 {
		prefix += "S-"
	}
	return prefix + s.String()
}

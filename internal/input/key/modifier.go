package key

import "strings"

// Mod is the native modifier state, in SDL's KMOD bit layout.
type Mod uint16

const (
	// ModNone indicates no modifiers.
	ModNone   Mod = 0
	ModLShift Mod = 0x0001
	ModRShift Mod = 0x0002
	ModLCtrl  Mod = 0x0040
	ModRCtrl  Mod = 0x0080
	ModLAlt   Mod = 0x0100
	ModRAlt   Mod = 0x0200
	ModLGUI   Mod = 0x0400
	ModRGUI   Mod = 0x0800
	ModNum    Mod = 0x1000
	ModCaps   Mod = 0x2000
	ModMode   Mod = 0x4000

	// ModShift matches either Shift key.
	ModShift = ModLShift | ModRShift
	// ModCtrl matches either Control key.
	ModCtrl = ModLCtrl | ModRCtrl
	// ModAlt matches either Alt key (Option on macOS).
	ModAlt = ModLAlt | ModRAlt
	// ModGUI matches either OS key (Cmd on macOS, Win on Windows).
	ModGUI = ModLGUI | ModRGUI
)

// Has returns true if m contains any bit of mod.
func (m Mod) Has(mod Mod) bool {
	return m&mod != 0
}

// HasShift returns true if Shift is pressed.
func (m Mod) HasShift() bool {
	return m.Has(ModShift)
}

// HasCtrl returns true if Control is pressed.
func (m Mod) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasAlt returns true if Alt is pressed.
func (m Mod) HasAlt() bool {
	return m.Has(ModAlt)
}

// With returns a new Mod with the specified modifier added.
func (m Mod) With(mod Mod) Mod {
	return m | mod
}

// Without returns a new Mod with the specified modifier removed.
func (m Mod) Without(mod Mod) Mod {
	return m &^ mod
}

// String returns a human-readable representation like "Ctrl+Alt".
// Lock keys are not included.
func (m Mod) String() string {
	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	if m.Has(ModGUI) {
		parts = append(parts, "GUI")
	}
	return strings.Join(parts, "+")
}

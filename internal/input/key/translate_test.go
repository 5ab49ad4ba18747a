package key

import (
	"testing"

	"github.com/dshills/uncursed/internal/uncursed"
)

func TestTranslateControlCharacters(t *testing.T) {
	tests := []struct {
		sym  Sym
		want int
	}{
		{SymReturn, 0x0d},
		{SymTab, 0x09},
	}
	for _, tt := range tests {
		k, ok := Translate(tt.sym, ModNone)
		if !ok {
			t.Fatalf("Translate(%#x) produced no key", tt.sym)
		}
		if k.Kind != KindPrintable || k.Code() != tt.want {
			t.Errorf("Translate(%#x) = %v (%#x), want printable %#x", tt.sym, k, k.Code(), tt.want)
		}
	}
}

func TestTranslateNamedKeys(t *testing.T) {
	tests := []struct {
		sym  Sym
		want uncursed.Special
	}{
		{SymEscape, uncursed.KeyEscape},
		{SymBackspace, uncursed.KeyBackspace},
		{SymPrintScreen, uncursed.KeyPrint},
		{SymPause, uncursed.KeyBreak},
		{SymHome, uncursed.KeyHome},
		{SymEnd, uncursed.KeyEnd},
		{SymInsert, uncursed.KeyIC},
		{SymDelete, uncursed.KeyDC},
		{SymPageUp, uncursed.KeyPPage},
		{SymPageDown, uncursed.KeyNPage},
		{SymUp, uncursed.KeyUp},
		{SymDown, uncursed.KeyDown},
		{SymLeft, uncursed.KeyLeft},
		{SymRight, uncursed.KeyRight},
		{SymKPDivide, uncursed.KeyNumDivide},
		{SymKPMultiply, uncursed.KeyNumTimes},
		{SymKPMinus, uncursed.KeyNumMinus},
		{SymKPPlus, uncursed.KeyNumPlus},
		{SymKPEnter, uncursed.KeyEnter},
		{SymKP(7), uncursed.KeyA1},
		{SymKP(8), uncursed.KeyA2},
		{SymKP(9), uncursed.KeyA3},
		{SymKP(4), uncursed.KeyB1},
		{SymKP(5), uncursed.KeyB2},
		{SymKP(6), uncursed.KeyB3},
		{SymKP(1), uncursed.KeyC1},
		{SymKP(2), uncursed.KeyC2},
		{SymKP(3), uncursed.KeyC3},
		{SymKP(0), uncursed.KeyD1},
		{SymKPPeriod, uncursed.KeyD3},
		{SymF(1), uncursed.KeyF1},
		{SymF(12), uncursed.KeyF(12)},
		{SymF(13), uncursed.KeyF(13)},
		{SymF(20), uncursed.KeyF(20)},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			k, ok := Translate(tt.sym, ModNone)
			if !ok {
				t.Fatal("no key produced")
			}
			if k.Kind != KindSpecial || k.Special != tt.want {
				t.Errorf("got %v, want %v", k, tt.want)
			}
			if k.Code() != tt.want.Code() {
				t.Errorf("Code() = %#x, want %#x", k.Code(), tt.want.Code())
			}
		})
	}
}

func TestTranslateDeterministic(t *testing.T) {
	mods := []Mod{ModNone, ModLAlt, ModRCtrl, ModLShift, ModLCtrl | ModRAlt | ModRShift}
	for sym := range named {
		for _, m := range mods {
			a, okA := Translate(sym, m)
			b, okB := Translate(sym, m)
			if okA != okB || a != b || a.Code() != b.Code() {
				t.Fatalf("Translate(%#x, %v) not deterministic: %v vs %v", sym, m, a, b)
			}
		}
	}
}

func TestTranslateModifierKeysDropped(t *testing.T) {
	syms := []Sym{
		SymCapsLock, SymScrollLock, SymNumLock,
		SymLCtrl, SymLShift, SymLAlt,
		SymRCtrl, SymRShift, SymRAlt,
		SymMode, SymLGUI, SymRGUI,
	}
	for _, sym := range syms {
		if !IsModifier(sym) {
			t.Errorf("IsModifier(%#x) = false", sym)
		}
		for _, m := range []Mod{ModNone, ModLCtrl, ModLAlt | ModLShift} {
			if k, ok := Translate(sym, m); ok {
				t.Errorf("Translate(%#x, %v) = %v, want no key", sym, m, k)
			}
		}
	}
}

func TestTranslatePrintableRange(t *testing.T) {
	for r := ' '; r <= '~'; r++ {
		k, ok := Translate(Sym(r), ModNone)
		if !ok || k.Kind != KindPrintable || k.Code() != int(r) {
			t.Fatalf("Translate(%q) = %v, %v", r, k, ok)
		}
	}
}

func TestTranslateAltOnBothRanges(t *testing.T) {
	p, ok := Translate('x', ModLAlt)
	if !ok || p.Code()&uncursed.FlagAlt == 0 {
		t.Errorf("Alt+x = %#x, want Alt flag", p.Code())
	}
	if uncursed.IsSpecial(p.Code()) {
		t.Error("Alt+x must stay in the printable range")
	}

	s, ok := Translate(SymHome, ModRAlt)
	if !ok || s.Code() != uncursed.KeyHome.Code()|uncursed.FlagAlt {
		t.Errorf("Alt+Home = %#x", s.Code())
	}
}

func TestTranslateCtrlPrintable(t *testing.T) {
	tests := []struct {
		sym  Sym
		want int
	}{
		{'A', 0x01},
		{'a', 0x21},
		{'[', 0x1b},
		{SymReturn, 0x0d},
	}
	for _, tt := range tests {
		k, ok := Translate(tt.sym, ModLCtrl)
		if !ok {
			t.Fatalf("Ctrl+%#x produced no key", tt.sym)
		}
		if k.Code() != tt.want {
			t.Errorf("Ctrl+%#x = %#x, want %#x", tt.sym, k.Code(), tt.want)
		}
		if k.Code() != int(tt.sym)&^0x40 {
			t.Errorf("Ctrl+%#x should only clear bit 6", tt.sym)
		}
	}
}

func TestTranslateCtrlAtIsDropped(t *testing.T) {
	if k, ok := Translate('@', ModLCtrl); ok {
		t.Errorf("Ctrl+@ = %v, want no key", k)
	}
	k, ok := Translate('@', ModLCtrl|ModLAlt)
	if !ok || k.Code() != uncursed.FlagAlt {
		t.Errorf("Ctrl+Alt+@ = %#x, want %#x", k.Code(), uncursed.FlagAlt)
	}
}

func TestTranslateShift(t *testing.T) {
	s, _ := Translate(SymUp, ModLShift)
	if s.Code() != uncursed.KeyUp.Code()|uncursed.FlagShift {
		t.Errorf("Shift+Up = %#x", s.Code())
	}
	p, _ := Translate('A', ModLShift)
	if p.Code() != 'A' {
		t.Errorf("Shift+A = %#x, want 'A'", p.Code())
	}
}

func TestTranslateCtrlSpecial(t *testing.T) {
	k, _ := Translate(SymF(5), ModRCtrl)
	if k.Code() != uncursed.KeyF(5).Code()|uncursed.FlagCtrl {
		t.Errorf("Ctrl+F5 = %#x", k.Code())
	}
}

func TestTranslateSynthesized(t *testing.T) {
	k, ok := Translate(SymApplication, ModNone)
	if !ok {
		t.Fatal("application key should get a synthesized code")
	}
	want := uncursed.Special(101 + int(uncursed.KeyLastFunction))
	if k.Kind != KindSpecial || k.Special != want {
		t.Errorf("got %v, want special %#x", k, uint16(want))
	}

	latin, ok := Translate(Sym(0xe9), ModNone)
	if !ok || latin.Special != uncursed.Special(0xe9+int(uncursed.KeyLastFunction)) {
		t.Errorf("Translate(0xe9) = %v, %v", latin, ok)
	}
}

func TestTranslateSynthesizedOverflowDropped(t *testing.T) {
	limit := uncursed.SpecialLimit - int(uncursed.KeyLastFunction)

	if _, ok := Translate(ScancodeMask|Sym(limit-1), ModNone); !ok {
		t.Error("largest fitting scancode should translate")
	}
	if k, ok := Translate(ScancodeMask|Sym(limit), ModNone); ok {
		t.Errorf("scancode at the limit = %v, want dropped", k)
	}
	if k, ok := Translate(Sym(0x10000), ModNone); ok {
		t.Errorf("large keycode = %v, want dropped", k)
	}
}

func TestSymHelpers(t *testing.T) {
	if SymF(12) != SymF12 || SymF(24) != SymF24 {
		t.Error("SymF out of step with constants")
	}
	if SymKP(0) != SymKP0 || SymKP(9) != SymKP9 {
		t.Error("SymKP out of step with constants")
	}
	if !SymHome.IsScancode() || Sym('a').IsScancode() {
		t.Error("IsScancode mismatch")
	}
}

package script

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/uncursed/internal/uncursed"
)

func loadTestCard(t *testing.T, source string) *Card {
	t.Helper()
	c, err := LoadString(source)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestPaintWritesCells(t *testing.T) {
	c := loadTestCard(t, `
function paint(rows, cols)
    uncursed.put(0, 0, "hi", 15, 4)
    uncursed.put(1, 0, "plain")
    uncursed.cell(rows - 1, cols - 1, 0xdb, 2)
end
`)
	g := uncursed.NewGrid(24, 80)
	if err := c.Paint(g); err != nil {
		t.Fatalf("Paint: %v", err)
	}

	tests := []struct {
		row, col int
		ch       int
		attr     uncursed.Attr
	}{
		{0, 0, 'h', uncursed.MakeAttr(15, 4)},
		{0, 1, 'i', uncursed.MakeAttr(15, 4)},
		{1, 4, 't', uncursed.DefaultCellAttr},
		{23, 79, 0xdb, uncursed.MakeAttr(2, 0).With(uncursed.AttrDefaultBg)},
	}
	for _, tt := range tests {
		if got := g.CellCharAt(tt.row, tt.col); got != tt.ch {
			t.Errorf("(%d,%d) char = %q, want %q", tt.row, tt.col, got, tt.ch)
		}
		if got := g.CellAttributeAt(tt.row, tt.col); got != tt.attr {
			t.Errorf("(%d,%d) attr = %#x, want %#x", tt.row, tt.col, got, tt.attr)
		}
	}
}

func TestPaintSeesGridSize(t *testing.T) {
	c := loadTestCard(t, `
function paint(rows, cols)
    uncursed.put(0, 0, tostring(uncursed.rows) .. "x" .. tostring(uncursed.cols))
end
`)
	g := uncursed.NewGrid(30, 120)
	if err := c.Paint(g); err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	for col := 0; col < 6; col++ {
		sb.WriteByte(byte(g.CellCharAt(0, col)))
	}
	if sb.String() != "30x120" {
		t.Errorf("row 0 = %q", sb.String())
	}
}

func TestKeyHandler(t *testing.T) {
	c := loadTestCard(t, `
last = ""
function paint(rows, cols)
    uncursed.put(0, 0, last)
end
function on_key(code, name)
    last = name
    return code == 114 -- 'r'
end
`)
	repaint, err := c.Key('x')
	if err != nil {
		t.Fatal(err)
	}
	if repaint {
		t.Error("'x' should not repaint")
	}
	repaint, err = c.Key('r')
	if err != nil || !repaint {
		t.Errorf("Key('r') = %v, %v; want repaint", repaint, err)
	}

	g := uncursed.NewGrid(24, 80)
	if err := c.Paint(g); err != nil {
		t.Fatal(err)
	}
	if got := g.CellCharAt(0, 1); got != 'r' {
		t.Errorf("last key name not painted, got %q", got)
	}
}

func TestKeyWithoutHandler(t *testing.T) {
	c := loadTestCard(t, "function paint() end")
	repaint, err := c.Key(uncursed.KeyUp.Code())
	if err != nil || repaint {
		t.Errorf("Key = %v, %v; want false, nil", repaint, err)
	}
}

func TestDescribe(t *testing.T) {
	c := loadTestCard(t, "function paint() end")
	if err := c.L.DoString(`name = uncursed.describe(1)`); err != nil {
		t.Fatal(err)
	}
	if got := c.L.GetGlobal("name").String(); got != "^A" {
		t.Errorf("describe(1) = %q", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := LoadString("x = 1"); !errors.Is(err, ErrNoPaint) {
		t.Errorf("no paint: %v", err)
	}
	if _, err := LoadString("function paint("); err == nil {
		t.Error("syntax error should fail")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.lua")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.lua")
	if err := os.WriteFile(path, []byte("function paint() uncursed.put(0, 0, 'ok') end"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer c.Close()

	g := uncursed.NewGrid(24, 80)
	if err := c.Paint(g); err != nil {
		t.Fatal(err)
	}
	if g.CellCharAt(0, 0) != 'o' {
		t.Error("card did not paint")
	}
}

func TestSandbox(t *testing.T) {
	c := loadTestCard(t, "function paint() end")
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "io", "os"} {
		if v := c.L.GetGlobal(name); v.String() != "nil" {
			t.Errorf("%s should be unavailable, got %s", name, v.Type())
		}
	}
}

func TestPaintTimeout(t *testing.T) {
	c, err := LoadString("function paint() while true do end end", WithTimeout(50*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if err := c.Paint(uncursed.NewGrid(24, 80)); err == nil {
		t.Error("runaway paint should time out")
	}
}

func TestPutOutsidePaint(t *testing.T) {
	c := loadTestCard(t, "function paint() end")
	if err := c.L.DoString(`uncursed.put(0, 0, "x")`); err == nil {
		t.Error("put outside paint should fail")
	}
}

func TestClosed(t *testing.T) {
	c, err := LoadString("function paint() end")
	if err != nil {
		t.Fatal(err)
	}
	c.Close()
	c.Close()
	if err := c.Paint(uncursed.NewGrid(24, 80)); !errors.Is(err, ErrClosed) {
		t.Errorf("Paint after Close = %v", err)
	}
	if _, err := c.Key('a'); !errors.Is(err, ErrClosed) {
		t.Errorf("Key after Close = %v", err)
	}
}

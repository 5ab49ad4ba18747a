package script

import (
	"context"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/uncursed/internal/uncursed"
)

// DefaultTimeout bounds a single paint or on_key call.
const DefaultTimeout = 2 * time.Second

// Surface is the cell buffer a card draws on. *uncursed.Grid satisfies it.
type Surface interface {
	Size() (height, width int)
	SetCell(row, col, ch int, attr uncursed.Attr)
	SetString(row, col int, s string, attr uncursed.Attr) int
}

// Card is a loaded card script. gopher-lua states are not goroutine-safe;
// a Card must be used from one goroutine.
type Card struct {
	L       *lua.LState
	api     *lua.LTable
	timeout time.Duration
	surface Surface
	closed  bool
}

// Option configures a Card.
type Option func(*Card)

// WithTimeout sets the per-call execution timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Card) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// Load runs the script at path and returns the card it defines.
func Load(path string, opts ...Option) (*Card, error) {
	c := newCard(opts...)
	if err := c.run(func() error { return c.L.DoFile(path) }); err != nil {
		c.Close()
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	if err := c.check(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// LoadString is Load for a script held in memory.
func LoadString(source string, opts ...Option) (*Card, error) {
	c := newCard(opts...)
	if err := c.run(func() error { return c.L.DoString(source) }); err != nil {
		c.Close()
		return nil, err
	}
	if err := c.check(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func newCard(opts ...Option) *Card {
	c := &Card{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(c)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
	c.L = L

	c.api = L.NewTable()
	L.SetFuncs(c.api, map[string]lua.LGFunction{
		"put":      c.luaPut,
		"cell":     c.luaCell,
		"describe": luaDescribe,
	})
	L.SetGlobal("uncursed", c.api)
	return c
}

func (c *Card) check() error {
	if c.L.GetGlobal("paint").Type() != lua.LTFunction {
		return ErrNoPaint
	}
	return nil
}

// run executes fn under the call timeout, turning panics into errors.
func (c *Card) run(fn func() error) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	c.L.SetContext(ctx)
	defer c.L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// Paint calls the script's paint function against s.
func (c *Card) Paint(s Surface) error {
	if c.closed {
		return ErrClosed
	}
	h, w := s.Size()
	c.api.RawSetString("rows", lua.LNumber(h))
	c.api.RawSetString("cols", lua.LNumber(w))

	c.surface = s
	defer func() { c.surface = nil }()

	return c.run(func() error {
		return c.L.CallByParam(lua.P{
			Fn:      c.L.GetGlobal("paint"),
			NRet:    0,
			Protect: true,
		}, lua.LNumber(h), lua.LNumber(w))
	})
}

// Key passes a key code to on_key and reports whether the script asked for
// a repaint. Scripts without on_key never repaint.
func (c *Card) Key(code int) (bool, error) {
	if c.closed {
		return false, ErrClosed
	}
	fn := c.L.GetGlobal("on_key")
	if fn.Type() != lua.LTFunction {
		return false, nil
	}

	var repaint bool
	err := c.run(func() error {
		if err := c.L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true},
			lua.LNumber(code), lua.LString(uncursed.DescribeCode(code))); err != nil {
			return err
		}
		repaint = lua.LVAsBool(c.L.Get(-1))
		c.L.Pop(1)
		return nil
	})
	return repaint, err
}

// Close releases the Lua state.
func (c *Card) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.L.Close()
}

// attrArgs reads the optional fg and bg arguments starting at index n.
func attrArgs(L *lua.LState, n int) uncursed.Attr {
	fg, hasFg := L.Get(n).(lua.LNumber)
	bg, hasBg := L.Get(n + 1).(lua.LNumber)

	attr := uncursed.MakeAttr(int(fg), int(bg))
	if !hasFg {
		attr = attr.With(uncursed.AttrDefaultFg)
	}
	if !hasBg {
		attr = attr.With(uncursed.AttrDefaultBg)
	}
	return attr
}

func (c *Card) luaPut(L *lua.LState) int {
	row := L.CheckInt(1)
	col := L.CheckInt(2)
	text := L.CheckString(3)
	if c.surface == nil {
		L.RaiseError("put called outside paint")
		return 0
	}
	n := c.surface.SetString(row, col, text, attrArgs(L, 4))
	L.Push(lua.LNumber(n))
	return 1
}

func (c *Card) luaCell(L *lua.LState) int {
	row := L.CheckInt(1)
	col := L.CheckInt(2)
	ch := L.CheckInt(3)
	if c.surface == nil {
		L.RaiseError("cell called outside paint")
		return 0
	}
	c.surface.SetCell(row, col, ch, attrArgs(L, 4))
	return 0
}

func luaDescribe(L *lua.LState) int {
	L.Push(lua.LString(uncursed.DescribeCode(L.CheckInt(1))))
	return 1
}

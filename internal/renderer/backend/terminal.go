package backend

import (
	"errors"
	"sync"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/dshills/uncursed/internal/input/key"
	"github.com/dshills/uncursed/internal/renderer/core"
)

// ErrNoWindow is returned when a renderer is requested before a window.
var ErrNoWindow = errors.New("no window")

// placeholderGlyph is drawn for cells whose character is unknown.
const placeholderGlyph = '■'

type quitRequest struct{}

// Terminal implements Backend on a text terminal using tcell. Each terminal
// cell stands in for one font cell of the emulated pixel surface, so the
// window's pixel size is the terminal size times the font size.
type Terminal struct {
	screen tcell.Screen
	font   core.FontMetrics

	mu          sync.Mutex
	initialized bool
	window      bool
	start       time.Time
	color       core.Color
	glyphs      map[[2]int]rune
	events      chan tcell.Event
	done        chan struct{}
}

// NewTerminal creates a terminal backend on the controlling terminal.
func NewTerminal(font core.FontMetrics) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen, font), nil
}

// NewTerminalWithScreen creates a terminal backend on an existing screen,
// such as a tcell simulation screen.
func NewTerminalWithScreen(screen tcell.Screen, font core.FontMetrics) *Terminal {
	return &Terminal{
		screen: screen,
		font:   font,
		glyphs: make(map[[2]int]rune),
	}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.initialized = true
	t.start = time.Now()
	return nil
}

// CreateWindow takes over the terminal. The requested size is advisory; the
// terminal keeps its own size.
func (t *Terminal) CreateWindow(title string, width, height int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return errors.New("terminal not initialized")
	}
	t.screen.SetTitle(title)
	t.screen.Clear()
	t.window = true

	t.events = make(chan tcell.Event, 64)
	t.done = make(chan struct{})
	go t.pump(t.screen, t.events, t.done)
	return nil
}

// pump moves tcell events onto a channel so WaitEvent can time out.
func (t *Terminal) pump(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		select {
		case events <- ev:
		case <-done:
			return
		}
		if ev == nil {
			return
		}
	}
}

func (t *Terminal) CreateRenderer() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.window {
		return ErrNoWindow
	}
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return
	}
	if t.done != nil {
		close(t.done)
		t.done = nil
	}
	t.screen.Fini()
	t.initialized = false
	t.window = false
}

func (t *Terminal) WindowSize() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cols, rows := t.screen.Size()
	px := t.font.Pixels(core.Size{W: cols, H: rows})
	return px.W, px.H
}

// SetWindowSize is a no-op: a terminal cannot be resized from inside.
func (t *Terminal) SetWindowSize(width, height int) {}

// SetLogicalSize is a no-op; the terminal grid is the logical surface.
func (t *Terminal) SetLogicalSize(width, height int) {}

// SetMinimumSize is a no-op. Drawing past a small terminal's edge is
// clipped by tcell.
func (t *Terminal) SetMinimumSize(width, height int) {}

func (t *Terminal) Ticks() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	return time.Since(t.start)
}

func (t *Terminal) WaitEvent(timeout time.Duration) (Event, bool) {
	t.mu.Lock()
	events := t.events
	t.mu.Unlock()
	if events == nil {
		return Event{}, false
	}

	var ev tcell.Event
	switch {
	case timeout < 0:
		ev = <-events
	case timeout == 0:
		select {
		case ev = <-events:
		default:
			return Event{}, false
		}
	default:
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		select {
		case ev = <-events:
		case <-timer.C:
			return Event{}, false
		}
	}
	return t.convertEvent(ev), true
}

// RequestQuit posts a quit request, as closing a graphical window would.
func (t *Terminal) RequestQuit() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(quitRequest{})) // best-effort; queue may be full
}

func (t *Terminal) SetDrawColor(c core.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.color = c
}

// FillRect paints every terminal cell the rectangle fully covers with the
// draw color as background. A rectangle smaller than one cell paints that
// cell's foreground instead, using the glyph set for it or a placeholder.
func (t *Terminal) FillRect(r core.Rect) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if r.Empty() {
		return
	}
	color := tcell.NewRGBColor(int32(t.color.R), int32(t.color.G), int32(t.color.B))

	if r.W < t.font.Width || r.H < t.font.Height {
		col, row := r.X/t.font.Width, r.Y/t.font.Height
		//nolint:staticcheck // GetContent is the correct API
		_, _, style, _ := t.screen.GetContent(col, row)
		glyph, ok := t.glyphs[[2]int{row, col}]
		if !ok {
			glyph = placeholderGlyph
		}
		t.screen.SetContent(col, row, glyph, nil, style.Foreground(color))
		return
	}

	style := tcell.StyleDefault.Background(color)
	for row := r.Y / t.font.Height; row < (r.Y+r.H)/t.font.Height; row++ {
		for col := r.X / t.font.Width; col < (r.X+r.W)/t.font.Width; col++ {
			t.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// SetGlyph implements GlyphSetter.
func (t *Terminal) SetGlyph(cell core.Rect, ch int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.glyphs[[2]int{cell.Y / t.font.Height, cell.X / t.font.Width}] = DecodeCP437(ch)
}

func (t *Terminal) Present() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

// cp437Controls are the graphic forms of code page 437's control range.
var cp437Controls = []rune(" ☺☻♥♦♣♠•◘○◙♂♀♪♫☼►◄↕‼¶§▬↨↑↓→←∟↔▲▼")

// DecodeCP437 converts a code page 437 character to a printable rune,
// using the graphic glyphs for the control range.
func DecodeCP437(ch int) rune {
	b := byte(ch)
	switch {
	case int(b) < len(cp437Controls):
		return cp437Controls[b]
	case b == 0x7f:
		return '⌂'
	}
	r := charmap.CodePage437.DecodeByte(b)
	if unicode.IsControl(r) {
		return placeholderGlyph
	}
	return r
}

// convertEvent converts tcell events to our Event type.
func (t *Terminal) convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case nil:
		return Quit()

	case *tcell.EventKey:
		sym, mod, ok := convertKey(e)
		if !ok {
			return Event{Type: EventNone}
		}
		return KeyDown(sym, mod)

	case *tcell.EventResize:
		t.mu.Lock()
		t.screen.Sync()
		t.mu.Unlock()
		return Window(WindowSizeChanged)

	case *tcell.EventInterrupt:
		if _, ok := e.Data().(quitRequest); ok {
			return Quit()
		}
		return Event{Type: EventNone}

	case *tcell.EventFocus:
		if e.Focused {
			return Window(WindowExposed)
		}
		return Event{Type: EventNone}

	default:
		return Event{Type: EventNone}
	}
}

var tcellKeys = map[tcell.Key]key.Sym{
	tcell.KeyEnter:      key.SymReturn,
	tcell.KeyTab:        key.SymTab,
	tcell.KeyBacktab:    key.SymTab,
	tcell.KeyBackspace:  key.SymBackspace,
	tcell.KeyBackspace2: key.SymBackspace,
	tcell.KeyEscape:     key.SymEscape,
	tcell.KeyDelete:     key.SymDelete,
	tcell.KeyInsert:     key.SymInsert,
	tcell.KeyHome:       key.SymHome,
	tcell.KeyEnd:        key.SymEnd,
	tcell.KeyPgUp:       key.SymPageUp,
	tcell.KeyPgDn:       key.SymPageDown,
	tcell.KeyUp:         key.SymUp,
	tcell.KeyDown:       key.SymDown,
	tcell.KeyLeft:       key.SymLeft,
	tcell.KeyRight:      key.SymRight,
	tcell.KeyPrint:      key.SymPrintScreen,
	tcell.KeyPause:      key.SymPause,
}

// convertKey maps a tcell key to a native symbol and modifier state.
// Control letters arrive as uppercase symbols with Ctrl held, so they
// translate to the conventional control characters.
func convertKey(e *tcell.EventKey) (key.Sym, key.Mod, bool) {
	mod := convertMod(e.Modifiers())
	k := e.Key()

	if sym, ok := tcellKeys[k]; ok {
		if k == tcell.KeyBacktab {
			mod |= key.ModLShift
		}
		return sym, mod, true
	}

	switch {
	case k == tcell.KeyRune:
		r := e.Rune()
		if mod.HasCtrl() {
			r = unicode.ToUpper(r)
		}
		return key.Sym(r), mod, true
	case k >= tcell.KeyF1 && k <= tcell.KeyF24:
		return key.SymF(int(k-tcell.KeyF1) + 1), mod, true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return key.Sym('A' + rune(k-tcell.KeyCtrlA)), mod | key.ModLCtrl, true
	case k == tcell.KeyCtrlSpace:
		return key.Sym('@'), mod | key.ModLCtrl, true
	default:
		return key.SymUnknown, mod, false
	}
}

// convertMod converts tcell modifier mask to native modifier state.
func convertMod(m tcell.ModMask) key.Mod {
	var result key.Mod
	if m&tcell.ModShift != 0 {
		result |= key.ModLShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModLCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= key.ModLAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= key.ModLGUI
	}
	return result
}

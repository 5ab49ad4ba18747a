package main

import (
	"fmt"

	"github.com/dshills/uncursed/internal/config"
	"github.com/dshills/uncursed/internal/logging"
	"github.com/dshills/uncursed/internal/renderer/palette"
	"github.com/dshills/uncursed/internal/script"
	"github.com/dshills/uncursed/internal/uncursed"
)

// idleTimeout is how long one key wait lasts, in milliseconds, before the
// status line is refreshed.
const idleTimeout = 1000

// Attributes used by the test card.
var (
	titleAttr  = uncursed.MakeAttr(15, 4)
	textAttr   = uncursed.DefaultCellAttr
	statusAttr = uncursed.MakeAttr(0, 7)
	errorAttr  = uncursed.MakeAttr(15, 1)
)

// displayHooks is the part of the plugin the demo drives.
type displayHooks interface {
	uncursed.Hooks
	HungUp() bool
	SetPalette(*palette.Palette)
}

// demo draws the test card and reports keys until asked to stop.
type demo struct {
	hooks       displayHooks
	grid        *uncursed.Grid
	pattern     string
	interactive bool
	log         *logging.Logger
	card        *script.Card

	reloads    <-chan *config.Config
	reloadErrs <-chan error

	lastKey string
	keys    int
	idle    int
}

func (d *demo) run() error {
	d.paint()
	d.grid.Draw(d.hooks)

	for {
		code := d.hooks.GetKeyOrCodepoint(idleTimeout)
		if d.applyReloads() {
			d.grid.Draw(d.hooks)
		}

		switch code {
		case uncursed.KeyHangup.Code():
			d.log.Info("display hung up after %d keys", d.keys)
			return nil
		case uncursed.KeyResize.Code():
			h, w := d.grid.Size()
			d.log.Debug("resized to %dx%d", w, h)
			d.paint()
		case uncursed.KeySilence.Code():
			if !d.interactive {
				return nil
			}
			d.idle++
		case 'q', 'Q', uncursed.KeyEscape.Code():
			return nil
		case 'd':
			d.lastKey = "delay..."
			d.paintStatus()
			d.grid.Draw(d.hooks)
			d.hooks.Delay(2000)
			if d.hooks.HungUp() {
				return nil
			}
			d.lastKey = uncursed.DescribeCode(code)
		case 'b':
			d.hooks.Beep()
			d.lastKey = uncursed.DescribeCode(code)
		default:
			d.keys++
			d.lastKey = uncursed.DescribeCode(code)
			d.scriptKey(code)
		}
		d.paintStatus()
		d.grid.Draw(d.hooks)
	}
}

// applyReloads takes a pending config reload, if any, and repaints with it.
func (d *demo) applyReloads() bool {
	select {
	case cfg := <-d.reloads:
		if pal, err := cfg.Palette(); err == nil {
			d.hooks.SetPalette(pal)
		}
		if cfg.Demo.Pattern != config.PatternScript || d.card != nil {
			d.pattern = cfg.Demo.Pattern
		}
		d.log.Info("config reloaded")
		d.paint()
		d.grid.MarkFullRedraw()
		return true
	case err := <-d.reloadErrs:
		d.log.Warn("config reload failed: %v", err)
	default:
	}
	return false
}

// scriptKey hands a key to the card script.
func (d *demo) scriptKey(code int) {
	if d.card == nil || d.pattern != config.PatternScript {
		return
	}
	repaint, err := d.card.Key(code)
	if err != nil {
		d.log.Warn("on_key: %v", err)
		return
	}
	if repaint {
		d.paint()
	}
}

// paint clears the grid and draws the whole card.
func (d *demo) paint() {
	d.grid.Fill(' ', textAttr)
	_, w := d.grid.Size()
	title := fmt.Sprintf(" uncursed demo: %s ", d.pattern)
	d.grid.SetString(0, max((w-len(title))/2, 0), title, titleAttr)

	switch d.pattern {
	case config.PatternCP437:
		d.paintCP437()
	case config.PatternScript:
		d.paintScript()
	default:
		d.paintPalette()
	}
	d.paintStatus()
}

// paintPalette shows every foreground on every background.
func (d *demo) paintPalette() {
	for bg := 0; bg < 16; bg++ {
		d.grid.SetString(2+bg, 2, fmt.Sprintf("%2d", bg), textAttr)
		for fg := 0; fg < 16; fg++ {
			d.grid.SetString(2+bg, 5+fg*3, " A ", uncursed.MakeAttr(fg, bg))
		}
	}
}

// paintCP437 shows all 256 characters in a 16x16 table.
func (d *demo) paintCP437() {
	const hex = "0123456789ABCDEF"
	for i := 0; i < 16; i++ {
		d.grid.SetCell(1, 5+i*2, int(hex[i]), textAttr)
		d.grid.SetCell(2+i, 2, int(hex[i]), textAttr)
	}
	for hi := 0; hi < 16; hi++ {
		for lo := 0; lo < 16; lo++ {
			d.grid.SetCell(2+hi, 5+lo*2, hi*16+lo, textAttr)
		}
	}
}

func (d *demo) paintScript() {
	if d.card == nil {
		d.grid.SetString(2, 2, "no card script loaded", errorAttr)
		return
	}
	if err := d.card.Paint(d.grid); err != nil {
		d.log.Warn("paint: %v", err)
		d.grid.SetString(2, 2, "script error: "+err.Error(), errorAttr)
	}
}

// paintStatus rewrites the bottom line.
func (d *demo) paintStatus() {
	h, w := d.grid.Size()
	status := fmt.Sprintf(" %dx%d  keys:%d  idle:%ds  last:%s  (q quits, d delays, b beeps)",
		w, h, d.keys, d.idle, d.lastKey)
	for col := 0; col < w; col++ {
		d.grid.SetCell(h-1, col, ' ', statusAttr)
	}
	d.grid.SetString(h-1, 0, status, statusAttr)
}

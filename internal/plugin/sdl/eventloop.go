package sdl

import (
	"time"

	"github.com/dshills/uncursed/internal/input/key"
	"github.com/dshills/uncursed/internal/renderer/backend"
	"github.com/dshills/uncursed/internal/uncursed"
)

// GetKeyOrCodepoint waits up to timeoutMs milliseconds for input and returns
// a codepoint, an uncursed key code, or one of the pseudo keys. A timeout of
// zero or less waits forever.
//
// After hangup it returns KeyHangup without touching the window. Otherwise a
// pending resize is reported first as KeyResize, after the host has been
// told the new size, unless a Delay is running.
func (p *Plugin) GetKeyOrCodepoint(timeoutMs int) int {
	if p.hangup {
		return uncursed.KeyHangup.Code()
	}

	forever := timeoutMs <= 0
	deadline := p.backend.Ticks() + time.Duration(timeoutMs)*time.Millisecond

	for {
		if p.resize.reportable() {
			p.recomputeSizes()
			p.resize.pending = false
			p.notified = p.grid
			p.host.NotifyResized(p.grid.H, p.grid.W)
			return uncursed.KeyResize.Code()
		}

		wait := backend.Forever
		if !forever {
			wait = max(deadline-p.backend.Ticks(), 0)
		}
		ev, ok := p.backend.WaitEvent(wait)
		if !ok {
			return uncursed.KeySilence.Code()
		}
		if code, done := p.handleEvent(ev); done {
			return code
		}

		if !forever && p.backend.Ticks() >= deadline {
			return uncursed.KeySilence.Code()
		}
	}
}

// handleEvent applies one native event. It returns the key code to hand
// back to the host, if the event produced one.
func (p *Plugin) handleEvent(ev backend.Event) (int, bool) {
	switch ev.Type {
	case backend.EventWindow:
		switch ev.Window {
		case backend.WindowResized, backend.WindowSizeChanged:
			p.recomputeSizes()
		case backend.WindowExposed:
			p.FullRedraw()
		case backend.WindowClose:
			return p.hangUp("window closed"), true
		}
	case backend.EventQuit:
		return p.hangUp("quit requested"), true
	case backend.EventKeyDown:
		k, ok := key.Translate(ev.Sym, ev.Mod)
		if !ok {
			return 0, false
		}
		return k.Code(), true
	}
	return 0, false
}

func (p *Plugin) hangUp(reason string) int {
	if !p.hangup {
		p.log.Info("hangup: %s", reason)
	}
	p.hangup = true
	return uncursed.KeyHangup.Code()
}

// Delay sleeps for ms milliseconds while still servicing the window, so it
// can be redrawn and resized. Keys pressed meanwhile are discarded and
// resizes are held until the next key request. A hangup ends the delay
// early.
func (p *Plugin) Delay(ms int) {
	deadline := p.backend.Ticks() + time.Duration(ms)*time.Millisecond

	restore := p.resize.suppress()
	defer restore()

	for now := p.backend.Ticks(); now < deadline; now = p.backend.Ticks() {
		// Round up: a zero timeout would wait forever.
		remaining := int((deadline - now + time.Millisecond - 1) / time.Millisecond)
		if p.GetKeyOrCodepoint(remaining) == uncursed.KeyHangup.Code() {
			return
		}
	}
}

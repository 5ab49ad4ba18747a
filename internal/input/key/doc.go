// Package key translates native keyboard input into uncursed key codes.
//
// This package defines:
//
//   - Sym: a native key symbol, using SDL's keycode numbering. Printable
//     keys are their character value; other keys are a scancode with
//     ScancodeMask set.
//   - Mod: the native modifier state that accompanies a key press.
//   - Key: a decoded key, either Printable or Special, with the modifiers
//     that apply to it.
//
// # Translation
//
// Translate maps one key press to a Key. Enter and Tab become their control
// characters; named keys (function keys, navigation, keypad, editing) become
// uncursed specials; pure modifier keys produce nothing; printable ASCII maps
// to itself; anything else is given a synthesized special above
// uncursed.KeyLastFunction, or dropped when that would leave the special key
// space.
//
// Alt applies to every key. Ctrl and Shift become flags on specials. On
// printables Ctrl clears bit 6 (so Ctrl+A is 0x01) and Shift is ignored, as
// the symbol already carries the case.
package key

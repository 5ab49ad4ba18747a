// Package sdl is the graphical display plugin for uncursed.
//
// A Plugin owns one native window (through a backend.Backend) and implements
// uncursed.Hooks on top of it:
//
//   - Window and resize management: the window is kept at an exact multiple
//     of the 8x14 font cell and never below 80x24 cells. A change of grid
//     size is recorded as a pending resize.
//   - Key waits: native events are turned into uncursed key codes. A pending
//     resize is reported before any new event is read, unless a Delay is in
//     progress, so the host always learns the grid size before it draws.
//   - Cell drawing: each cell is a background rectangle with an inset
//     foreground rectangle standing in for the glyph.
//
// Closing the window or a quit request puts the plugin into hangup; every
// later key request returns KeyHangup at once.
//
// A Plugin is not safe for concurrent use. The host drives it from a single
// goroutine.
package sdl

// Package uncursed defines the contract between the uncursed rendering core
// and its display plugins.
//
// The rendering core owns a grid of character cells. A plugin owns the actual
// display surface and the input queue. The two talk through a fixed set of
// calls:
//
//   - Hooks: calls the core makes into a plugin (init, key reads, delays,
//     cell updates, redraws, flushes).
//   - Host: calls a plugin makes back into the core (resize notification,
//     cell contents lookup, drawn-cell acknowledgement).
//
// Keys cross the boundary as packed integers. Values below KeyBias are
// printable code points; values at or above it are named keys (Special)
// optionally combined with the Flag* modifier bits.
//
// Grid is a small host-side cell buffer implementing Host. It is enough to
// drive a plugin in tests and demos; it does no line diffing of its own beyond
// per-cell dirty tracking.
package uncursed

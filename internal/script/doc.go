// Package script runs Lua test cards for the demo host.
//
// A card script defines a global paint function and may define on_key:
//
//	function paint(rows, cols)
//	    uncursed.put(0, 0, "hello", 15, 4)
//	    for ch = 0, 255 do
//	        uncursed.cell(2 + math.floor(ch / 32), ch % 32, ch)
//	    end
//	end
//
//	function on_key(code, name)
//	    last = name
//	    return true -- repaint
//	end
//
// The uncursed table provides:
//   - put(row, col, text [, fg [, bg]]): write a string, returns cells written
//   - cell(row, col, ch [, fg [, bg]]): write one CP437 character
//   - describe(code): the printable name of a key code
//   - rows, cols: the grid size, updated before every paint
//
// Omitted colors use the default foreground and background.
//
// Scripts run with the base, table, string and math libraries only. File
// loading functions are removed and each call is bounded by a timeout.
package script

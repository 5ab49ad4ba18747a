package uncursed

// Host is the part of the rendering core a plugin may call back into.
type Host interface {
	// NotifyResized tells the core the grid is now height rows by width
	// columns. Called before the plugin reports a resize key.
	NotifyResized(height, width int)

	// CellCharAt returns the code page 437 character stored at (row, col).
	CellCharAt(row, col int) int

	// CellAttributeAt returns the packed attribute stored at (row, col).
	CellAttributeAt(row, col int) Attr

	// NotifyCellDrawn acknowledges that (row, col) is now on screen.
	NotifyCellDrawn(row, col int)
}

// Hooks is the interface a display plugin exposes to the rendering core.
type Hooks interface {
	// Init creates the display if needed and returns the grid size.
	Init() (height, width int, err error)
	// Exit is called when the core temporarily gives up the display.
	Exit()

	Beep()
	SetCursorSize(size int)
	PositionCursor(row, col int)
	RawSignals(enabled bool)

	// Delay waits for ms milliseconds, discarding input.
	Delay(ms int)
	// GetKeyOrCodepoint waits up to timeoutMs (0 = forever) for a key and
	// returns its packed code.
	GetKeyOrCodepoint(timeoutMs int) int

	UpdateCell(row, col int)
	FullRedraw()
	Flush()
}

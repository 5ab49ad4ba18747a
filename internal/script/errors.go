package script

import "errors"

var (
	// ErrClosed is returned when using a closed card.
	ErrClosed = errors.New("lua state is closed")

	// ErrNoPaint is returned when a script does not define paint.
	ErrNoPaint = errors.New("script does not define a paint function")
)

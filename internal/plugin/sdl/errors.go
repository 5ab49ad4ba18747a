package sdl

import (
	"errors"
	"fmt"
)

// Errors returned by Init for an incomplete Options.
var (
	ErrNoHost    = errors.New("no host attached")
	ErrNoBackend = errors.New("no backend attached")
)

// InitStage names the native initialization step that failed.
type InitStage int

const (
	StageSubsystem InitStage = iota
	StageWindow
	StageRenderer
)

// String returns what the stage was doing.
func (s InitStage) String() string {
	switch s {
	case StageSubsystem:
		return "initializing the display subsystem"
	case StageWindow:
		return "creating a window"
	case StageRenderer:
		return "creating a renderer"
	default:
		return "initializing"
	}
}

// InitError reports a failed native initialization step. These failures are
// fatal to the display; there is no retry.
type InitError struct {
	Stage InitStage
	Err   error
}

func (e *InitError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

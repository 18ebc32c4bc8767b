package terminal

import (
	"errors"
	"fmt"
)

// Stream identifies one of the standard streams
type Stream uint8

const (
	Stdin Stream = iota
	Stdout
	Stderr
)

func (s Stream) String() string {
	switch s {
	case Stdin:
		return "stdin"
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	default:
		return "unknown"
	}
}

// ErrClosed is returned by operations on a Terminal after Close
var ErrClosed = errors.New("terminal: closed")

// SetupError reports that a Terminal could not be constructed.
// Err is either the OS error acquiring the stream or a *ModeSetError from applying the initial mode.
type SetupError struct {
	Stream Stream
	Err    error
}

func (e *SetupError) Error() string {
	var mErr *ModeSetError
	if errors.As(e.Err, &mErr) {
		return fmt.Sprintf("terminal: unable to set up initial terminal state: %v", e.Err)
	}
	return fmt.Sprintf("terminal: unable to get %s: %v", e.Stream, e.Err)
}

func (e *SetupError) Unwrap() error { return e.Err }

// ModeSetError reports that the OS rejected a mode change on a stream
type ModeSetError struct {
	Stream Stream
	Err    error
}

func (e *ModeSetError) Error() string {
	return fmt.Sprintf("terminal: unable to set flags on %s: %v", e.Stream, e.Err)
}

func (e *ModeSetError) Unwrap() error { return e.Err }

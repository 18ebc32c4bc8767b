//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos || windows)

package terminal

import (
	"errors"
	"os"
)

var errNoTerminal = errors.New("terminal control not supported on this platform")

// stubBackend treats every stream as redirected: mode requests succeed and change nothing
type stubBackend struct {
	out *os.File
}

func newBackend(cfg config) (backend, error) {
	if cfg.in == nil {
		return nil, &SetupError{Stream: Stdin, Err: os.ErrInvalid}
	}
	if cfg.out == nil {
		return nil, &SetupError{Stream: Stdout, Err: os.ErrInvalid}
	}
	return &stubBackend{out: cfg.out}, nil
}

func (b *stubBackend) SetMode(Mode) error          { return nil }
func (b *stubBackend) Restore()                    {}
func (b *stubBackend) IsTerminal(Stream) bool      { return false }
func (b *stubBackend) Write(p []byte) (int, error) { return b.out.Write(p) }
func (b *stubBackend) Size() (int, int, error)     { return 0, 0, errNoTerminal }

func resetTerminalMode() {}

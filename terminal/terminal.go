// @lixen: #focus{sys[term,lifecycle]}
package terminal

import (
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// noCopy trips go vet's copylocks check; a Terminal owns OS state and must not be duplicated
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Terminal owns the standard streams' line discipline for its lifetime.
// Construct with New, release with Close (or use Run). The state captured at
// construction is written back exactly once, on Close.
//
// A Terminal is not safe for concurrent use; one Terminal per process is expected.
type Terminal struct {
	_ noCopy

	backend backend
	log     zerolog.Logger
	mode    Mode
	closed  bool
	resize  *resizeWatcher
}

// New acquires the standard streams, captures their state and applies the initial
// mode (Cooked unless WithMode is given). Errors are *SetupError.
func New(opts ...Option) (*Terminal, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	b, err := newBackend(cfg)
	if err != nil {
		return nil, err
	}
	return newTerminal(b, cfg)
}

// newTerminal applies the initial mode on an acquired backend
func newTerminal(b backend, cfg config) (*Terminal, error) {
	t := &Terminal{backend: b, log: cfg.log}
	if err := b.SetMode(cfg.mode); err != nil {
		b.Restore()
		return nil, &SetupError{Stream: streamOf(err), Err: err}
	}
	t.mode = cfg.mode
	t.log.Debug().Stringer("mode", cfg.mode).Msg("terminal initialized")
	return t, nil
}

// Run constructs a Terminal, passes it to fn and always closes it afterwards,
// including when fn panics (the panic continues after restoration).
func Run(fn func(t *Terminal) error, opts ...Option) error {
	t, err := New(opts...)
	if err != nil {
		return err
	}
	return runWith(t, fn)
}

func runWith(t *Terminal, fn func(t *Terminal) error) error {
	defer t.Close()
	return fn(t)
}

// SetMode switches line discipline. Repeating the current mode reapplies it.
// Errors are *ModeSetError; streams already switched are not rolled back.
func (t *Terminal) SetMode(m Mode) error {
	if t.closed {
		return ErrClosed
	}
	if err := t.backend.SetMode(m); err != nil {
		return err
	}
	if m != t.mode {
		t.log.Debug().Stringer("from", t.mode).Stringer("to", m).Msg("mode changed")
	}
	t.mode = m
	return nil
}

// Mode returns the last successfully applied mode
func (t *Terminal) Mode() Mode {
	return t.mode
}

// Print writes each value with its own Write call, stopping at the first error.
// Sink errors are returned unmodified.
func (t *Terminal) Print(values ...Output) error {
	if t.closed {
		return ErrClosed
	}
	var buf [64]byte
	for _, v := range values {
		if _, err := t.backend.Write(v.Append(buf[:0])); err != nil {
			return err
		}
	}
	return nil
}

// Write implements io.Writer over the output sink
func (t *Terminal) Write(p []byte) (int, error) {
	if t.closed {
		return 0, ErrClosed
	}
	return t.backend.Write(p)
}

// Flush exists for io-style callers. Output goes straight to the unbuffered
// sink on every Print and Write, so there is never anything pending.
func (t *Terminal) Flush() error {
	if t.closed {
		return ErrClosed
	}
	return nil
}

// IsTerminal reports whether a stream is terminal-backed; redirected streams report false
func (t *Terminal) IsTerminal(s Stream) bool {
	return t.backend.IsTerminal(s)
}

// Size returns the output terminal dimensions
func (t *Terminal) Size() (width, height int, err error) {
	return t.backend.Size()
}

// Resizes returns a channel of output size changes, watched from the first call on.
// Only the latest unconsumed size is kept. Close closes the channel.
func (t *Terminal) Resizes() <-chan ResizeEvent {
	if t.closed {
		ch := make(chan ResizeEvent)
		close(ch)
		return ch
	}
	if t.resize == nil {
		t.resize = newResizeWatcher(t.backend.Size, t.log)
		t.resize.start()
	}
	return t.resize.events()
}

// Close resets text rendition and restores every stream to the state captured by New.
// Restore failures are logged, not returned. Calls after the first do nothing.
func (t *Terminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	if t.resize != nil {
		t.resize.stop()
	}

	if _, err := t.backend.Write(Encode(Reset)); err != nil {
		t.log.Warn().Err(err).Msg("could not reset rendition")
	}
	t.backend.Restore()
	t.log.Debug().Msg("terminal restored")
	return nil
}

// streamOf extracts the failing stream from a backend error
func streamOf(err error) Stream {
	var mErr *ModeSetError
	if errors.As(err, &mErr) {
		return mErr.Stream
	}
	return Stdin
}

// EmergencyReset attempts to restore the terminal to a sane state
// Call this from panic recovery when the Terminal cannot be closed normally
func EmergencyReset(w io.Writer) {
	w.Write([]byte(csiCursorShow))
	w.Write([]byte(csiAltScreenExit))
	w.Write([]byte(csiSGR0))

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	// This is best-effort; ignore errors in crash context
	resetTTY()
}

// resetTTY is swapped out in tests so they never touch the controlling terminal
var resetTTY = resetTerminalMode

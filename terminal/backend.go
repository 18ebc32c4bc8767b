package terminal

import (
	"os"

	"github.com/rs/zerolog"
)

// backend abstracts platform-specific stream handling.
// Exactly one implementation is compiled per target: termios on Unix,
// console modes on Windows, and a non-terminal stub elsewhere.
type backend interface {
	// Mode control
	// SetMode applies m to every terminal-backed stream, in acquisition order.
	// Non-terminal streams accept and ignore it.
	SetMode(m Mode) error

	// Restore writes back the state captured at construction, in reverse acquisition order.
	// Failures are logged, never returned.
	Restore()

	// IsTerminal reports whether the stream is backed by a terminal
	IsTerminal(s Stream) bool

	// I/O
	// Write writes raw bytes to the output sink
	Write(p []byte) (int, error)

	// Size returns the output terminal dimensions
	Size() (width, height int, err error)
}

type streamFile struct {
	s Stream
	f *os.File
}

// config carries construction options into the backend
type config struct {
	mode   Mode
	in     *os.File
	out    *os.File
	stderr bool
	log    zerolog.Logger
}

func defaultConfig() config {
	return config{
		mode: Cooked(),
		in:   os.Stdin,
		out:  os.Stdout,
		log:  zerolog.Nop(),
	}
}

// Option configures a Terminal at construction
type Option func(*config)

// WithMode sets the mode applied at construction (default Cooked)
func WithMode(m Mode) Option {
	return func(c *config) { c.mode = m }
}

// WithStreams replaces stdin and stdout, e.g. with /dev/tty or a pty
func WithStreams(in, out *os.File) Option {
	return func(c *config) {
		c.in = in
		c.out = out
	}
}

// WithStderr additionally captures stderr; it receives the output-side mode and is restored on Close
func WithStderr() Option {
	return func(c *config) { c.stderr = true }
}

// WithLogger sets the logger for restore warnings and mode transitions (default disabled)
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.log = l }
}

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package terminal

import (
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ttyState is one standard stream. A stream whose termios cannot be read
// is not a terminal and ignores mode requests.
type ttyState struct {
	stream Stream
	fd     int
	tty    bool

	raw     unix.Termios // cfmakeraw of the startup snapshot
	cooked  unix.Termios // startup snapshot
	restore unix.Termios // written back on Restore
}

func newTTYState(s Stream, f *os.File) (*ttyState, error) {
	if f == nil {
		return nil, &SetupError{Stream: s, Err: os.ErrInvalid}
	}

	st := &ttyState{stream: s, fd: int(f.Fd())}
	if !term.IsTerminal(st.fd) {
		return st, nil
	}

	termios, err := unix.IoctlGetTermios(st.fd, ioctlReadTermios)
	if err != nil {
		return st, nil
	}

	st.tty = true
	st.cooked = *termios
	st.restore = *termios
	st.raw = makeRaw(*termios)
	return st, nil
}

// setMode applies the precomputed termios for m immediately (TCSANOW)
func (st *ttyState) setMode(m Mode) error {
	if !st.tty {
		return nil
	}

	t := st.cooked
	if m.IsRaw() {
		t = st.raw
	}
	if err := unix.IoctlSetTermios(st.fd, ioctlWriteTermios, &t); err != nil {
		return &ModeSetError{Stream: st.stream, Err: err}
	}
	return nil
}

func (st *ttyState) restoreState() error {
	if !st.tty {
		return nil
	}
	return unix.IoctlSetTermios(st.fd, ioctlWriteTermios, &st.restore)
}

// makeRaw applies the cfmakeraw(3) transform to a copy of t
func makeRaw(t unix.Termios) unix.Termios {
	t.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP | unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Cflag &^= unix.CSIZE | unix.PARENB
	t.Cflag |= unix.CS8
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0
	return t
}

type unixBackend struct {
	out     *os.File
	streams []*ttyState // acquisition order
	log     zerolog.Logger
}

func newBackend(cfg config) (backend, error) {
	files := []streamFile{{Stdin, cfg.in}, {Stdout, cfg.out}}
	if cfg.stderr {
		files = append(files, streamFile{Stderr, os.Stderr})
	}

	b := &unixBackend{out: cfg.out, log: cfg.log}
	for _, sf := range files {
		st, err := newTTYState(sf.s, sf.f)
		if err != nil {
			return nil, err
		}
		b.streams = append(b.streams, st)
		b.log.Debug().Str("stream", sf.s.String()).Bool("tty", st.tty).Msg("stream acquired")
	}
	return b, nil
}

// SetMode applies m stream by stream; a failure stops at that stream without rolling back earlier ones
func (b *unixBackend) SetMode(m Mode) error {
	for _, st := range b.streams {
		if err := st.setMode(m); err != nil {
			return err
		}
	}
	return nil
}

func (b *unixBackend) Restore() {
	for i := len(b.streams) - 1; i >= 0; i-- {
		st := b.streams[i]
		if err := st.restoreState(); err != nil {
			b.log.Warn().Err(err).Str("stream", st.stream.String()).Msg("could not restore terminal state")
		}
	}
}

func (b *unixBackend) IsTerminal(s Stream) bool {
	for _, st := range b.streams {
		if st.stream == s {
			return st.tty
		}
	}
	return false
}

func (b *unixBackend) Write(p []byte) (int, error) {
	return b.out.Write(p)
}

func (b *unixBackend) Size() (int, int, error) {
	return term.GetSize(int(b.out.Fd()))
}

// resetTerminalMode attempts to restore the controlling tty to cooked mode
// Best-effort for crash recovery; errors ignored
func resetTerminalMode() {
	// Try to restore via /dev/tty (works even if stdin redirected)
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return
	}
	termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Iflag |= unix.ICRNL
	termios.Oflag |= unix.OPOST
	_ = unix.IoctlSetTermios(fd, ioctlWriteTermios, termios)
}

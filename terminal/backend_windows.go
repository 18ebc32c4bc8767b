//go:build windows

package terminal

import (
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

// consoleState is one standard handle. A handle whose console mode cannot be
// queried is not a console (redirected) and ignores mode requests.
type consoleState struct {
	stream  Stream
	handle  windows.Handle
	console bool
	managed uint32 // Mode-owned bits for this handle

	restore uint32 // written back on Restore
	state   uint32 // currently applied
}

func newConsoleState(s Stream, h windows.Handle) *consoleState {
	st := &consoleState{stream: s, handle: h, managed: consoleManagedOutput}
	if s == Stdin {
		st.managed = consoleManagedInput
	}

	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return st
	}
	st.console = true
	st.restore = mode
	st.state = mode
	return st
}

// set applies flags to the live console handle
func (st *consoleState) set(flags uint32) error {
	if err := windows.SetConsoleMode(st.handle, flags); err != nil {
		return &ModeSetError{Stream: st.stream, Err: err}
	}
	st.state = flags
	return nil
}

func (st *consoleState) setMode(m Mode) error {
	if !st.console {
		return nil
	}
	in, out := consoleModes(m)
	requested := out
	if st.stream == Stdin {
		requested = in
	}
	return st.set(applyConsoleMode(st.state, requested, st.managed))
}

func (st *consoleState) restoreState() error {
	if !st.console {
		return nil
	}
	if err := windows.SetConsoleMode(st.handle, st.restore); err != nil {
		return err
	}
	st.state = st.restore
	return nil
}

type windowsBackend struct {
	out     *os.File
	streams []*consoleState // acquisition order
	log     zerolog.Logger
}

var stdHandles = map[Stream]uint32{
	Stdin:  windows.STD_INPUT_HANDLE,
	Stdout: windows.STD_OUTPUT_HANDLE,
	Stderr: windows.STD_ERROR_HANDLE,
}

// stdHandle resolves the OS handle for a stream; files other than the process
// standard files use their own handle
func stdHandle(sf streamFile) (windows.Handle, error) {
	if sf.f == nil {
		return 0, os.ErrInvalid
	}
	if sf.f != os.Stdin && sf.f != os.Stdout && sf.f != os.Stderr {
		return windows.Handle(sf.f.Fd()), nil
	}
	return windows.GetStdHandle(stdHandles[sf.s])
}

func newBackend(cfg config) (backend, error) {
	files := []streamFile{{Stdin, cfg.in}, {Stdout, cfg.out}}
	if cfg.stderr {
		files = append(files, streamFile{Stderr, os.Stderr})
	}

	// Acquire every handle before touching any console state
	handles := make([]windows.Handle, len(files))
	for i, sf := range files {
		h, err := stdHandle(sf)
		if err != nil {
			return nil, &SetupError{Stream: sf.s, Err: err}
		}
		handles[i] = h
	}

	b := &windowsBackend{out: cfg.out, log: cfg.log}
	for i, sf := range files {
		st := newConsoleState(sf.s, handles[i])
		b.streams = append(b.streams, st)
		b.log.Debug().Str("stream", sf.s.String()).Bool("console", st.console).Msg("stream acquired")
	}

	// Output consoles interpret ANSI escapes only with virtual terminal processing
	for _, st := range b.streams {
		if st.stream == Stdin || !st.console {
			continue
		}
		if err := st.set(st.state | consoleVirtualTerminalProcessing); err != nil {
			b.Restore()
			return nil, &SetupError{Stream: st.stream, Err: err}
		}
	}
	return b, nil
}

func (b *windowsBackend) SetMode(m Mode) error {
	for _, st := range b.streams {
		if err := st.setMode(m); err != nil {
			return err
		}
	}
	return nil
}

func (b *windowsBackend) Restore() {
	for i := len(b.streams) - 1; i >= 0; i-- {
		st := b.streams[i]
		if err := st.restoreState(); err != nil {
			b.log.Warn().Err(err).Str("stream", st.stream.String()).Msg("could not reset console state")
		}
	}
}

func (b *windowsBackend) IsTerminal(s Stream) bool {
	for _, st := range b.streams {
		if st.stream == s {
			return st.console
		}
	}
	return false
}

func (b *windowsBackend) Write(p []byte) (int, error) {
	return b.out.Write(p)
}

func (b *windowsBackend) Size() (int, int, error) {
	return term.GetSize(int(b.out.Fd()))
}

// resetTerminalMode turns input echo and line editing back on for the process console
// Best-effort for crash recovery; errors ignored
func resetTerminalMode() {
	h, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return
	}
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return
	}
	in, _ := consoleModes(Cooked())
	_ = windows.SetConsoleMode(h, applyConsoleMode(mode, in, consoleManagedInput))
}

package terminal

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend records calls in place of an OS backend
type fakeBackend struct {
	out      bytes.Buffer
	writes   int
	modes    []Mode
	restores int
	tty      bool

	modeErr  error
	writeErr error
}

func (b *fakeBackend) SetMode(m Mode) error {
	if b.modeErr != nil {
		return b.modeErr
	}
	b.modes = append(b.modes, m)
	return nil
}

func (b *fakeBackend) Restore() { b.restores++ }

func (b *fakeBackend) IsTerminal(Stream) bool { return b.tty }

func (b *fakeBackend) Write(p []byte) (int, error) {
	b.writes++
	if b.writeErr != nil {
		return 0, b.writeErr
	}
	return b.out.Write(p)
}

func (b *fakeBackend) Size() (int, int, error) { return 80, 24, nil }

func newFakeTerminal(t *testing.T, b *fakeBackend, opts ...Option) *Terminal {
	t.Helper()
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	term, err := newTerminal(b, cfg)
	require.NoError(t, err)
	return term
}

func TestNewAppliesCookedByDefault(t *testing.T) {
	b := &fakeBackend{}
	term := newFakeTerminal(t, b)

	assert.Equal(t, []Mode{Cooked()}, b.modes)
	assert.Equal(t, Cooked(), term.Mode())
}

func TestNewWithRawMode(t *testing.T) {
	b := &fakeBackend{}
	term := newFakeTerminal(t, b, WithMode(Raw()))

	assert.Equal(t, []Mode{Raw()}, b.modes)
	assert.True(t, term.Mode().IsRaw())
}

func TestNewInitialModeFailureRestores(t *testing.T) {
	osErr := errors.New("EIO")
	b := &fakeBackend{modeErr: &ModeSetError{Stream: Stdout, Err: osErr}}

	term, err := newTerminal(b, defaultConfig())
	require.Error(t, err)
	assert.Nil(t, term)
	assert.Equal(t, 1, b.restores)

	var setupErr *SetupError
	require.ErrorAs(t, err, &setupErr)
	assert.Equal(t, Stdout, setupErr.Stream)

	var modeErr *ModeSetError
	require.ErrorAs(t, err, &modeErr)
	assert.ErrorIs(t, err, osErr)
	assert.Contains(t, err.Error(), "initial terminal state")
}

func TestSetModeTransitions(t *testing.T) {
	b := &fakeBackend{}
	term := newFakeTerminal(t, b)

	require.NoError(t, term.SetMode(Raw()))
	require.NoError(t, term.SetMode(Raw()))
	require.NoError(t, term.SetMode(Cooked()))

	assert.Equal(t, []Mode{Cooked(), Raw(), Raw(), Cooked()}, b.modes)
	assert.Equal(t, Cooked(), term.Mode())
}

func TestSetModeErrorKeepsMode(t *testing.T) {
	b := &fakeBackend{}
	term := newFakeTerminal(t, b)

	modeErr := &ModeSetError{Stream: Stdin, Err: errors.New("EPERM")}
	b.modeErr = modeErr

	err := term.SetMode(Raw())
	assert.Same(t, modeErr, err)
	assert.Equal(t, Cooked(), term.Mode())
	assert.Equal(t, "terminal: unable to set flags on stdin: EPERM", err.Error())
}

func TestPrintWritesEachValueOnce(t *testing.T) {
	b := &fakeBackend{}
	term := newFakeTerminal(t, b)

	require.NoError(t, term.Print(CursorPreviousLine(3), Text("Hay sup!")))
	assert.Equal(t, 2, b.writes)
	assert.Equal(t, "\x1b[3FHay sup!", b.out.String())
}

func TestPrintSinkErrorVerbatim(t *testing.T) {
	sinkErr := errors.New("short write")
	b := &fakeBackend{writeErr: sinkErr}
	term := newFakeTerminal(t, b)

	err := term.Print(CursorUp(1), CursorDown(1))
	assert.Same(t, sinkErr, err)
	assert.Equal(t, 1, b.writes, "print stops at the first failure")

	_, err = term.Write([]byte("x"))
	assert.Same(t, sinkErr, err)
}

func TestWriteDoesNotChangeMode(t *testing.T) {
	b := &fakeBackend{}
	term := newFakeTerminal(t, b, WithMode(Raw()))

	_, err := term.Write([]byte("plain"))
	require.NoError(t, err)
	require.NoError(t, term.Flush())
	assert.True(t, term.Mode().IsRaw())
	assert.Len(t, b.modes, 1)
}

func TestFlushHasNothingPending(t *testing.T) {
	b := &fakeBackend{}
	term := newFakeTerminal(t, b)

	require.NoError(t, term.Print(Text("a")))
	writes := b.writes
	require.NoError(t, term.Flush())
	assert.Equal(t, writes, b.writes)
	assert.Equal(t, "a", b.out.String())
}

func TestCloseRestoresOnce(t *testing.T) {
	b := &fakeBackend{}
	term := newFakeTerminal(t, b)
	require.NoError(t, term.SetMode(Raw()))
	b.out.Reset()

	require.NoError(t, term.Close())
	require.NoError(t, term.Close())

	assert.Equal(t, 1, b.restores)
	assert.Equal(t, "\x1b[0m", b.out.String())
}

func TestClosedTerminalRejectsUse(t *testing.T) {
	b := &fakeBackend{}
	term := newFakeTerminal(t, b)
	require.NoError(t, term.Close())

	assert.ErrorIs(t, term.SetMode(Raw()), ErrClosed)
	assert.ErrorIs(t, term.Print(Text("x")), ErrClosed)
	assert.ErrorIs(t, term.Flush(), ErrClosed)
	_, err := term.Write([]byte("x"))
	assert.ErrorIs(t, err, ErrClosed)
	assert.Len(t, b.modes, 1)
}

func TestCloseLogsResetFailure(t *testing.T) {
	var logBuf bytes.Buffer
	b := &fakeBackend{}
	term := newFakeTerminal(t, b, WithLogger(zerolog.New(&logBuf)))

	b.writeErr = errors.New("EPIPE")
	assert.NoError(t, term.Close())
	assert.Equal(t, 1, b.restores)
	assert.Contains(t, logBuf.String(), "could not reset rendition")
	assert.Contains(t, logBuf.String(), `"level":"warn"`)
}

func TestIsTerminalAndSize(t *testing.T) {
	b := &fakeBackend{tty: true}
	term := newFakeTerminal(t, b)

	assert.True(t, term.IsTerminal(Stdin))
	w, h, err := term.Size()
	require.NoError(t, err)
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)
}

func TestSetupErrorMessages(t *testing.T) {
	err := &SetupError{Stream: Stdout, Err: errors.New("invalid handle")}
	assert.Equal(t, "terminal: unable to get stdout: invalid handle", err.Error())
	assert.Equal(t, "unknown", Stream(9).String())
}

func TestEmergencyReset(t *testing.T) {
	resets := 0
	orig := resetTTY
	resetTTY = func() { resets++ }
	defer func() { resetTTY = orig }()

	var buf bytes.Buffer
	EmergencyReset(&buf)
	assert.Equal(t, "\x1b[?25h\x1b[?1049l\x1b[0m", buf.String())
	assert.Equal(t, 1, resets)
}

func TestRunClosesOnPanic(t *testing.T) {
	b := &fakeBackend{}
	term := newFakeTerminal(t, b, WithMode(Raw()))

	assert.PanicsWithValue(t, "boom", func() {
		runWith(term, func(*Terminal) error { panic("boom") })
	})
	assert.Equal(t, 1, b.restores)
	assert.Equal(t, "\x1b[0m", b.out.String())
}

func TestRunClosesOnError(t *testing.T) {
	b := &fakeBackend{}
	term := newFakeTerminal(t, b)
	fnErr := errors.New("early exit")

	err := runWith(term, func(tm *Terminal) error {
		require.NoError(t, tm.SetMode(Raw()))
		return fnErr
	})
	assert.Same(t, fnErr, err)
	assert.Equal(t, 1, b.restores)
}

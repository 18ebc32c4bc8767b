// @lixen: #focus{sys[term,ansi,escape]}
package terminal

import (
	"io"
)

// Output is a value the terminal can write: an escape sequence, a rendition, or text.
// Append renders the value onto dst and returns the extended slice.
type Output interface {
	Append(dst []byte) []byte
}

// Encode returns the bytes of a single value
func Encode(o Output) []byte {
	return o.Append(make([]byte, 0, 16))
}

// WriteOutput writes one value to w with a single Write call.
// Errors from w are returned as-is.
func WriteOutput(w io.Writer, o Output) error {
	var buf [32]byte
	_, err := w.Write(o.Append(buf[:0]))
	return err
}

// Text is literal output written verbatim
type Text string

func (t Text) Append(dst []byte) []byte { return append(dst, t...) }

// Cursor motion, parameterised by a count

type (
	CursorUp                 uint16 // CUU
	CursorDown               uint16 // CUD
	CursorForward            uint16 // CUF
	CursorBack               uint16 // CUB
	CursorNextLine           uint16 // CNL
	CursorPreviousLine       uint16 // CPL
	CursorHorizontalAbsolute uint16 // CHA
)

func (n CursorUp) Append(dst []byte) []byte           { return appendCSI(dst, uint16(n), 'A') }
func (n CursorDown) Append(dst []byte) []byte         { return appendCSI(dst, uint16(n), 'B') }
func (n CursorForward) Append(dst []byte) []byte      { return appendCSI(dst, uint16(n), 'C') }
func (n CursorBack) Append(dst []byte) []byte         { return appendCSI(dst, uint16(n), 'D') }
func (n CursorNextLine) Append(dst []byte) []byte     { return appendCSI(dst, uint16(n), 'E') }
func (n CursorPreviousLine) Append(dst []byte) []byte { return appendCSI(dst, uint16(n), 'F') }
func (n CursorHorizontalAbsolute) Append(dst []byte) []byte {
	return appendCSI(dst, uint16(n), 'G')
}

func (n CursorUp) String() string                 { return string(n.Append(nil)) }
func (n CursorDown) String() string               { return string(n.Append(nil)) }
func (n CursorForward) String() string            { return string(n.Append(nil)) }
func (n CursorBack) String() string               { return string(n.Append(nil)) }
func (n CursorNextLine) String() string           { return string(n.Append(nil)) }
func (n CursorPreviousLine) String() string       { return string(n.Append(nil)) }
func (n CursorHorizontalAbsolute) String() string { return string(n.Append(nil)) }

// CursorPosition moves the cursor to an absolute 1-based row and column (CUP)
type CursorPosition struct {
	Row, Col uint16
}

func (p CursorPosition) Append(dst []byte) []byte { return appendCSI2(dst, p.Row, p.Col, 'H') }
func (p CursorPosition) String() string           { return string(p.Append(nil)) }

// Scrolling and line editing

type (
	ScrollUp   uint16 // SU
	ScrollDown uint16 // SD
	InsertLine uint16 // IL
	DeleteLine uint16 // DL
)

func (n ScrollUp) Append(dst []byte) []byte   { return appendCSI(dst, uint16(n), 'S') }
func (n ScrollDown) Append(dst []byte) []byte { return appendCSI(dst, uint16(n), 'T') }
func (n InsertLine) Append(dst []byte) []byte { return appendCSI(dst, uint16(n), 'L') }
func (n DeleteLine) Append(dst []byte) []byte { return appendCSI(dst, uint16(n), 'M') }

func (n ScrollUp) String() string   { return string(n.Append(nil)) }
func (n ScrollDown) String() string { return string(n.Append(nil)) }
func (n InsertLine) String() string { return string(n.Append(nil)) }
func (n DeleteLine) String() string { return string(n.Append(nil)) }

// Control is a parameterless escape
type Control uint8

const (
	SaveCursorPosition Control = iota
	RestoreCursorPosition
	ShowCursor
	HideCursor
	EnableCursorBlinking
	DisableCursorBlinking
	AlternateScreenBuffer
	MainScreenBuffer
)

var controlSeq = [...]string{
	SaveCursorPosition:    csiSavePosition,
	RestoreCursorPosition: csiRestorePosition,
	ShowCursor:            csiCursorShow,
	HideCursor:            csiCursorHide,
	EnableCursorBlinking:  csiCursorBlinkOn,
	DisableCursorBlinking: csiCursorBlinkOff,
	AlternateScreenBuffer: csiAltScreenEnter,
	MainScreenBuffer:      csiAltScreenExit,
}

func (c Control) Append(dst []byte) []byte {
	if int(c) >= len(controlSeq) {
		return dst
	}
	return append(dst, controlSeq[c]...)
}

func (c Control) String() string { return string(c.Append(nil)) }

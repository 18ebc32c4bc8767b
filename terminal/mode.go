// @lixen: #focus{sys[term,mode]}
package terminal

// Mode is a coarse terminal line-discipline request.
// The only constructors are Cooked and Raw; capabilities cannot be set individually.
// The zero value is Cooked.
type Mode struct {
	raw bool
}

// Cooked is the interactive discipline: echo, line buffering, signal keys, output CR/LF processing
func Cooked() Mode { return Mode{} }

// Raw is the program-controlled discipline: byte-at-a-time input, no echo, no output processing
func Raw() Mode { return Mode{raw: true} }

// IsRaw reports whether m is the raw preset
func (m Mode) IsRaw() bool { return m.raw }

func (m Mode) EchoInput() bool       { return !m.raw }
func (m Mode) LineInput() bool       { return !m.raw }
func (m Mode) ProcessedInput() bool  { return !m.raw }
func (m Mode) ProcessedOutput() bool { return !m.raw }
func (m Mode) WrapAtEOLOutput() bool { return !m.raw }

// DisableNewlineAutoReturn is the console's double negative: set only in raw mode
func (m Mode) DisableNewlineAutoReturn() bool { return m.raw }

func (m Mode) String() string {
	if m.raw {
		return "raw"
	}
	return "cooked"
}

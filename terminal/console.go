// @lixen: #focus{sys[term,mode,windows]}
package terminal

// Windows console mode bits. Values match the wincon.h constants; they are
// declared here so the translation is testable on every platform.
const (
	// Input handle
	consoleProcessedInput uint32 = 0x0001 // ENABLE_PROCESSED_INPUT
	consoleLineInput      uint32 = 0x0002 // ENABLE_LINE_INPUT
	consoleEchoInput      uint32 = 0x0004 // ENABLE_ECHO_INPUT

	// Output handle
	consoleProcessedOutput           uint32 = 0x0001 // ENABLE_PROCESSED_OUTPUT
	consoleWrapAtEOLOutput           uint32 = 0x0002 // ENABLE_WRAP_AT_EOL_OUTPUT
	consoleVirtualTerminalProcessing uint32 = 0x0004 // ENABLE_VIRTUAL_TERMINAL_PROCESSING
	consoleDisableNewlineAutoReturn  uint32 = 0x0008 // DISABLE_NEWLINE_AUTO_RETURN
)

// Bits owned by Mode on each handle; every other bit is left as found
const (
	consoleManagedInput  = consoleProcessedInput | consoleLineInput | consoleEchoInput
	consoleManagedOutput = consoleProcessedOutput | consoleWrapAtEOLOutput | consoleDisableNewlineAutoReturn
)

// consoleModes translates m into the managed bits for the input and output handles
func consoleModes(m Mode) (in, out uint32) {
	if m.EchoInput() {
		in |= consoleEchoInput
	}
	if m.LineInput() {
		in |= consoleLineInput
	}
	if m.ProcessedInput() {
		in |= consoleProcessedInput
	}
	if m.ProcessedOutput() {
		out |= consoleProcessedOutput
	}
	if m.WrapAtEOLOutput() {
		out |= consoleWrapAtEOLOutput
	}
	if m.DisableNewlineAutoReturn() {
		out |= consoleDisableNewlineAutoReturn
	}
	return in, out
}

// applyConsoleMode replaces the managed bits of current with requested
func applyConsoleMode(current, requested, managed uint32) uint32 {
	return current&^managed | requested
}

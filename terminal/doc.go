// @focus: #sys { term }
// Package terminal provides portable ANSI escape output and cooked/raw line-discipline control.
//
// Features:
//   - Typed escape values (cursor motion, scrolling, line editing, screen buffers)
//   - SGR renditions: 8/16 named colors, 256-color palette, 24-bit RGB, composite FontSpec
//   - Cooked and raw modes over POSIX termios and the Windows console
//   - Guaranteed restoration of the captured terminal state on Close/Run
//   - Redirected (non-terminal) streams degrade to no-op mode control
//   - Window resize notifications on POSIX (SIGWINCH)
//
// Every escape is emitted as a literal CSI sequence; terminfo/termcap is not consulted.
//
//	t, err := terminal.New()
//	if err != nil {
//		return err
//	}
//	defer t.Close()
//
//	if err := t.SetMode(terminal.Raw()); err != nil {
//		return err
//	}
//	t.Print(terminal.CursorPreviousLine(3), terminal.Text("Hay sup!"))
package terminal

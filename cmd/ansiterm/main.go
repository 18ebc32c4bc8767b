package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/ansiterm/terminal"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	// Panic Recovery: restore the terminal before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			// \r\n in case the line discipline could not be restored
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mANSITERM CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			code = 2
		}
	}()

	root, a := newRootCmd()
	defer a.close()

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/ansiterm/terminal"
)

const ctrlC = 0x03

func newRawCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "raw",
		Short: "Echo stdin bytes in hex under raw mode until q or Ctrl-C",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return terminal.Run(func(t *terminal.Terminal) error {
				return runRaw(t, os.Stdin)
			}, a.termOptions(terminal.WithMode(terminal.Raw()))...)
		},
	}
}

// runRaw prints each input byte as hex and each window resize, until q, Ctrl-C or EOF.
// Output uses \r\n; OPOST is off in raw mode.
func runRaw(t *terminal.Terminal, in io.Reader) error {
	if err := t.SetMode(terminal.Raw()); err != nil {
		return err
	}
	if err := t.Print(terminal.Text("raw mode: press q or Ctrl-C to exit\r\n")); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	input := readBytes(in, done)
	resizes := t.Resizes()

	for {
		select {
		case ev, ok := <-resizes:
			if !ok {
				resizes = nil
				continue
			}
			if _, err := fmt.Fprintf(t, "resize %dx%d\r\n", ev.Width, ev.Height); err != nil {
				return err
			}
		case r := <-input:
			if r.err != nil {
				if errors.Is(r.err, io.EOF) {
					return nil
				}
				return r.err
			}
			if _, err := fmt.Fprintf(t, "%02x\r\n", r.b); err != nil {
				return err
			}
			if r.b == 'q' || r.b == ctrlC {
				return nil
			}
		}
	}
}

type readResult struct {
	b   byte
	err error
}

// readBytes reads in one byte at a time on its own goroutine. A read error
// is the last result sent. A read blocked in the OS outlives done.
func readBytes(in io.Reader, done <-chan struct{}) <-chan readResult {
	ch := make(chan readResult)
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := in.Read(buf)
			if n == 1 {
				select {
				case ch <- readResult{b: buf[0]}:
				case <-done:
					return
				}
			}
			if err != nil {
				select {
				case ch <- readResult{err: err}:
				case <-done:
				}
				return
			}
		}
	}()
	return ch
}

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package terminal

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

func notifyResize(ch chan<- os.Signal) { signal.Notify(ch, unix.SIGWINCH) }
func stopResize(ch chan<- os.Signal)   { signal.Stop(ch) }

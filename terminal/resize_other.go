//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos)

package terminal

import "os"

// No window-change signal here; console resizes arrive as input records, which are not read
func notifyResize(chan<- os.Signal) {}
func stopResize(chan<- os.Signal)   {}

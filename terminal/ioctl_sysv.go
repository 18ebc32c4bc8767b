//go:build aix || linux || solaris || zos

package terminal

import "golang.org/x/sys/unix"

// TCSETS applies immediately, the ioctl form of tcsetattr(TCSANOW)
const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETS
)

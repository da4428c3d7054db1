//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package statshim

import (
	"syscall"

	"golang.org/x/sys/unix"
)

func kindOfErrno(errno syscall.Errno) (Kind, bool) {
	switch errno {
	case unix.ENOENT, unix.ENOTDIR:
		return KindNotFound, true
	case unix.EACCES, unix.EPERM:
		return KindPermissionDenied, true
	case unix.EBADF:
		return KindInvalidDescriptor, true
	}

	return 0, false
}

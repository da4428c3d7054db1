//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || windows || plan9)

package statshim

import "syscall"

// The fs.Err* matching in newError covers these hosts.
func kindOfErrno(_ syscall.Errno) (Kind, bool) {
	return 0, false
}

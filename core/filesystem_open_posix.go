//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package core

import (
	"os"

	"golang.org/x/sys/unix"
)

// openNoBlock opens fpath for descriptor-based queries.
// O_NONBLOCK keeps a FIFO without a writer from blocking the open.
func openNoBlock(fpath string) (*os.File, error) {
	return os.OpenFile(fpath, os.O_RDONLY|unix.O_NONBLOCK, 0)
}

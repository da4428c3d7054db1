//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package core

import "os"

func openNoBlock(fpath string) (*os.File, error) {
	return os.Open(fpath)
}

//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || windows || plan9)

package statshim

import "os"

func Stat(path string) (FileStatus, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return FileStatus{}, newPathError("stat", path, err)
	}

	return FromFileInfo(fi), nil
}

func Lstat(path string) (FileStatus, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return FileStatus{}, newPathError("lstat", path, err)
	}

	return FromFileInfo(fi), nil
}

func Fstat(_ uintptr) (FileStatus, error) {
	return FileStatus{}, unsupported("fstat", "")
}

func Mkdir(path string, mode Mode) error {
	if err := os.Mkdir(path, ToFileMode(mode.Perm())); err != nil {
		return newPathError("mkdir", path, err)
	}

	return nil
}

func Chmod(path string, mode Mode) error {
	if err := os.Chmod(path, ToFileMode(mode.Perm())); err != nil {
		return newPathError("chmod", path, err)
	}

	return nil
}

func Fchmod(_ uintptr, _ Mode) error {
	return unsupported("fchmod", "")
}

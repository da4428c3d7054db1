//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package statshim

import "golang.org/x/sys/unix"

func Stat(path string) (FileStatus, error) {
	var st unix.Stat_t

	if err := unix.Stat(path, &st); err != nil {
		return FileStatus{}, newPathError("stat", path, err)
	}

	return fromStat_t(&st), nil
}

// Lstat is like Stat but reports on a trailing symbolic link itself.
func Lstat(path string) (FileStatus, error) {
	var st unix.Stat_t

	if err := unix.Lstat(path, &st); err != nil {
		return FileStatus{}, newPathError("lstat", path, err)
	}

	return fromStat_t(&st), nil
}

func Fstat(fd uintptr) (FileStatus, error) {
	var st unix.Stat_t

	if err := unix.Fstat(int(fd), &st); err != nil {
		return FileStatus{}, newFdError("fstat", fd, err)
	}

	return fromStat_t(&st), nil
}

// Mkdir creates a directory. The mode is passed to the host as is,
// so the process umask applies.
func Mkdir(path string, mode Mode) error {
	if err := unix.Mkdir(path, uint32(mode)); err != nil {
		return newPathError("mkdir", path, err)
	}

	return nil
}

func Chmod(path string, mode Mode) error {
	if err := unix.Chmod(path, uint32(mode)); err != nil {
		return newPathError("chmod", path, err)
	}

	return nil
}

func Fchmod(fd uintptr, mode Mode) error {
	if err := unix.Fchmod(int(fd), uint32(mode)); err != nil {
		return newFdError("fchmod", fd, err)
	}

	return nil
}

// Field widths of unix.Stat_t differ between systems and architectures,
// every field is converted explicitly.
func fromStat_t(st *unix.Stat_t) FileStatus {
	return FileStatus{
		Dev:     uint64(st.Dev),
		Rdev:    uint64(st.Rdev),
		Ino:     uint64(st.Ino),
		Uid:     uint32(st.Uid),
		Gid:     uint32(st.Gid),
		Size:    int64(st.Size),
		Atime:   int64(st.Atim.Sec),
		Mtime:   int64(st.Mtim.Sec),
		Ctime:   int64(st.Ctim.Sec),
		Blocks:  int64(st.Blocks),
		Blksize: int64(st.Blksize),
		Nlink:   uint64(st.Nlink),
		Mode:    Mode(st.Mode),
	}
}

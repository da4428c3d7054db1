//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package statshim

import "golang.org/x/sys/unix"

const (
	ModeSetuid = Mode(unix.S_ISUID)
	ModeSetgid = Mode(unix.S_ISGID)
	ModeSticky = Mode(unix.S_ISVTX)

	ModeUserRead   = Mode(unix.S_IRUSR)
	ModeUserWrite  = Mode(unix.S_IWUSR)
	ModeUserExec   = Mode(unix.S_IXUSR)
	ModeGroupRead  = Mode(unix.S_IRGRP)
	ModeGroupWrite = Mode(unix.S_IWGRP)
	ModeGroupExec  = Mode(unix.S_IXGRP)
	ModeOtherRead  = Mode(unix.S_IROTH)
	ModeOtherWrite = Mode(unix.S_IWOTH)
	ModeOtherExec  = Mode(unix.S_IXOTH)

	// ModeTypeMask isolates the type bits. After masking, the result can be
	// compared with any of the other ModeType* values.
	ModeTypeMask    = Mode(unix.S_IFMT)
	ModeTypeSocket  = Mode(unix.S_IFSOCK)
	ModeTypeSymlink = Mode(unix.S_IFLNK)
	ModeTypeRegular = Mode(unix.S_IFREG)
	ModeTypeBlock   = Mode(unix.S_IFBLK)
	ModeTypeDir     = Mode(unix.S_IFDIR)
	ModeTypeChar    = Mode(unix.S_IFCHR)
	ModeTypeFifo    = Mode(unix.S_IFIFO)
)

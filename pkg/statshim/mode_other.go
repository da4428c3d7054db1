//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || windows || plan9)

package statshim

// Traditional POSIX values, used where no native table is available.
const (
	ModeSetuid Mode = 04000
	ModeSetgid Mode = 02000
	ModeSticky Mode = 01000

	ModeUserRead   Mode = 0400
	ModeUserWrite  Mode = 0200
	ModeUserExec   Mode = 0100
	ModeGroupRead  Mode = 0040
	ModeGroupWrite Mode = 0020
	ModeGroupExec  Mode = 0010
	ModeOtherRead  Mode = 0004
	ModeOtherWrite Mode = 0002
	ModeOtherExec  Mode = 0001

	ModeTypeMask    Mode = 0170000
	ModeTypeSocket  Mode = 0140000
	ModeTypeSymlink Mode = 0120000
	ModeTypeRegular Mode = 0100000
	ModeTypeBlock   Mode = 0060000
	ModeTypeDir     Mode = 0040000
	ModeTypeChar    Mode = 0020000
	ModeTypeFifo    Mode = 0010000
)

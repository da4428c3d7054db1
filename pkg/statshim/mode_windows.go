package statshim

// Values follow the C runtime's sys/stat.h. Windows has no setuid, setgid,
// sticky, socket or symlink mode bits, so those are 0.
const (
	ModeSetuid Mode = 0
	ModeSetgid Mode = 0
	ModeSticky Mode = 0

	ModeUserRead   Mode = 0400
	ModeUserWrite  Mode = 0200
	ModeUserExec   Mode = 0100
	ModeGroupRead  Mode = ModeUserRead >> 3
	ModeGroupWrite Mode = ModeUserWrite >> 3
	ModeGroupExec  Mode = ModeUserExec >> 3
	ModeOtherRead  Mode = ModeUserRead >> 6
	ModeOtherWrite Mode = ModeUserWrite >> 6
	ModeOtherExec  Mode = ModeUserExec >> 6

	ModeTypeMask    Mode = 0xf000
	ModeTypeSocket  Mode = 0
	ModeTypeSymlink Mode = 0
	ModeTypeRegular Mode = 0x8000
	ModeTypeBlock   Mode = 0x3000
	ModeTypeDir     Mode = 0x4000
	ModeTypeChar    Mode = 0x2000
	ModeTypeFifo    Mode = 0x1000
)

package statshim

import "io/fs"

// Mode is the raw st_mode value: file type bits and permission bits.
// The values of the Mode* constants depend on the host. A constant the host
// cannot represent is 0, use Symbol.Supported to tell it apart.
type Mode uint32

// Type returns the file type bits of m.
func (m Mode) Type() Mode {
	return m & ModeTypeMask
}

// Perm returns the permission bits of m including setuid, setgid and sticky.
func (m Mode) Perm() Mode {
	return m & 07777
}

func (m Mode) is(t Mode) bool {
	return t != 0 && m&ModeTypeMask == t
}

func (m Mode) IsDir() bool { return m.is(ModeTypeDir) }
func (m Mode) IsRegular() bool { return m.is(ModeTypeRegular) }
func (m Mode) IsCharDevice() bool { return m.is(ModeTypeChar) }
func (m Mode) IsBlockDevice() bool { return m.is(ModeTypeBlock) }
func (m Mode) IsFifo() bool { return m.is(ModeTypeFifo) }
func (m Mode) IsSymlink() bool { return m.is(ModeTypeSymlink) }
func (m Mode) IsSocket() bool { return m.is(ModeTypeSocket) }

func IsDirectory(m Mode) bool { return m.IsDir() }
func IsRegularFile(m Mode) bool { return m.IsRegular() }
func IsCharacterDevice(m Mode) bool { return m.IsCharDevice() }
func IsBlockDevice(m Mode) bool { return m.IsBlockDevice() }
func IsFifo(m Mode) bool { return m.IsFifo() }
func IsSymbolicLink(m Mode) bool { return m.IsSymlink() }
func IsSocket(m Mode) bool { return m.IsSocket() }

// String renders m the way ls -l does, e.g. "drwxr-xr-x".
func (m Mode) String() string {
	var b [10]byte

	switch {
	case m.IsRegular():
		b[0] = '-'
	case m.IsDir():
		b[0] = 'd'
	case m.IsSymlink():
		b[0] = 'l'
	case m.IsCharDevice():
		b[0] = 'c'
	case m.IsBlockDevice():
		b[0] = 'b'
	case m.IsFifo():
		b[0] = 'p'
	case m.IsSocket():
		b[0] = 's'
	default:
		b[0] = '?'
	}

	bit := func(pos int, mask Mode, c byte) {
		if mask != 0 && m&mask != 0 {
			b[pos] = c
		} else {
			b[pos] = '-'
		}
	}

	bit(1, ModeUserRead, 'r')
	bit(2, ModeUserWrite, 'w')
	bit(3, ModeUserExec, 'x')
	bit(4, ModeGroupRead, 'r')
	bit(5, ModeGroupWrite, 'w')
	bit(6, ModeGroupExec, 'x')
	bit(7, ModeOtherRead, 'r')
	bit(8, ModeOtherWrite, 'w')
	bit(9, ModeOtherExec, 'x')

	special := func(pos int, mask Mode, set, unset byte) {
		if mask == 0 || m&mask == 0 {
			return
		}
		if b[pos] == 'x' {
			b[pos] = set
		} else {
			b[pos] = unset
		}
	}

	special(3, ModeSetuid, 's', 'S')
	special(6, ModeSetgid, 's', 'S')
	special(9, ModeSticky, 't', 'T')

	return string(b[:])
}

var permBits = []struct {
	fm fs.FileMode
	m  Mode
}{
	{0400, ModeUserRead}, {0200, ModeUserWrite}, {0100, ModeUserExec},
	{0040, ModeGroupRead}, {0020, ModeGroupWrite}, {0010, ModeGroupExec},
	{0004, ModeOtherRead}, {0002, ModeOtherWrite}, {0001, ModeOtherExec},
	{fs.ModeSetuid, ModeSetuid}, {fs.ModeSetgid, ModeSetgid}, {fs.ModeSticky, ModeSticky},
}

// FromFileMode converts the portable fs.FileMode into host mode bits.
// Types the host cannot represent leave the type bits empty.
func FromFileMode(fm fs.FileMode) Mode {
	var m Mode

	switch fm.Type() {
	case 0:
		m = ModeTypeRegular
	case fs.ModeDir:
		m = ModeTypeDir
	case fs.ModeSymlink:
		m = ModeTypeSymlink
	case fs.ModeNamedPipe:
		m = ModeTypeFifo
	case fs.ModeSocket:
		m = ModeTypeSocket
	case fs.ModeDevice:
		m = ModeTypeBlock
	case fs.ModeDevice | fs.ModeCharDevice:
		m = ModeTypeChar
	}

	for _, p := range permBits {
		if fm&p.fm != 0 {
			m |= p.m
		}
	}

	return m
}

// ToFileMode is the inverse of FromFileMode for the permission bits
// including setuid, setgid and sticky. Type bits are ignored.
func ToFileMode(m Mode) fs.FileMode {
	var fm fs.FileMode

	for _, p := range permBits {
		if p.m != 0 && m&p.m != 0 {
			fm |= p.fm
		}
	}

	return fm
}

package statshim

import (
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows"
)

func Stat(path string) (FileStatus, error) {
	return statPath("stat", path)
}

// Lstat resolves to Stat: the mode table has no symlink type on Windows.
func Lstat(path string) (FileStatus, error) {
	return statPath("lstat", path)
}

// Fstat accepts an open file handle, as returned by (*os.File).Fd.
func Fstat(fd uintptr) (FileStatus, error) {
	st, err := statHandle(windows.Handle(fd), "")
	if err != nil {
		return FileStatus{}, newFdError("fstat", fd, err)
	}

	return st, nil
}

// Mkdir creates a directory. Only the owner-write bit has a Windows
// counterpart, it is applied as the read-only attribute.
func Mkdir(path string, mode Mode) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return newPathError("mkdir", path, err)
	}

	if err := windows.CreateDirectory(p, nil); err != nil {
		return newPathError("mkdir", path, err)
	}

	if mode&ModeUserWrite == 0 {
		return Chmod(path, mode)
	}

	return nil
}

// Chmod maps the owner-write bit to the read-only attribute, the same as
// the C runtime does.
func Chmod(path string, mode Mode) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return newPathError("chmod", path, err)
	}

	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return newPathError("chmod", path, err)
	}

	if mode&ModeUserWrite != 0 {
		attrs &^= windows.FILE_ATTRIBUTE_READONLY
	} else {
		attrs |= windows.FILE_ATTRIBUTE_READONLY
	}

	if err := windows.SetFileAttributes(p, attrs); err != nil {
		return newPathError("chmod", path, err)
	}

	return nil
}

func Fchmod(_ uintptr, _ Mode) error {
	return unsupported("fchmod", "")
}

func statPath(op, path string) (FileStatus, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return FileStatus{}, newPathError(op, path, err)
	}

	share := uint32(windows.FILE_SHARE_READ | windows.FILE_SHARE_WRITE | windows.FILE_SHARE_DELETE)

	h, err := windows.CreateFile(p, windows.FILE_READ_ATTRIBUTES, share, nil, windows.OPEN_EXISTING, windows.FILE_FLAG_BACKUP_SEMANTICS, 0)
	if err != nil {
		return FileStatus{}, newPathError(op, path, err)
	}
	defer windows.CloseHandle(h)

	st, err := statHandle(h, path)
	if err != nil {
		return FileStatus{}, newPathError(op, path, err)
	}

	return st, nil
}

func statHandle(h windows.Handle, name string) (FileStatus, error) {
	ft, err := windows.GetFileType(h)
	if err != nil {
		return FileStatus{}, err
	}

	switch ft {
	case windows.FILE_TYPE_CHAR:
		return FileStatus{Nlink: 1, Mode: ModeTypeChar | 0666}, nil
	case windows.FILE_TYPE_PIPE:
		return FileStatus{Nlink: 1, Mode: ModeTypeFifo | 0666}, nil
	}

	var d windows.ByHandleFileInformation

	if err := windows.GetFileInformationByHandle(h, &d); err != nil {
		return FileStatus{}, err
	}

	return FileStatus{
		Dev:   uint64(d.VolumeSerialNumber),
		Ino:   uint64(d.FileIndexHigh)<<32 | uint64(d.FileIndexLow),
		Size:  int64(d.FileSizeHigh)<<32 | int64(d.FileSizeLow),
		Atime: d.LastAccessTime.Nanoseconds() / 1e9,
		Mtime: d.LastWriteTime.Nanoseconds() / 1e9,
		// The C runtime reports the creation time as st_ctime.
		Ctime: d.CreationTime.Nanoseconds() / 1e9,
		Nlink: uint64(d.NumberOfLinks),
		Mode:  attrsToMode(d.FileAttributes, name),
	}, nil
}

func attrsToMode(attrs uint32, name string) Mode {
	var m Mode

	if attrs&windows.FILE_ATTRIBUTE_DIRECTORY != 0 {
		m = ModeTypeDir | ModeUserExec
	} else {
		m = ModeTypeRegular
	}

	m |= ModeUserRead

	if attrs&windows.FILE_ATTRIBUTE_READONLY == 0 {
		m |= ModeUserWrite
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".exe", ".com", ".bat", ".cmd":
		m |= ModeUserExec
	}

	owner := m & (ModeUserRead | ModeUserWrite | ModeUserExec)

	return m | owner>>3 | owner>>6
}

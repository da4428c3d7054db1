package statshim

import (
	"syscall"

	"golang.org/x/sys/windows"
)

func kindOfErrno(errno syscall.Errno) (Kind, bool) {
	switch errno {
	case windows.ERROR_FILE_NOT_FOUND, windows.ERROR_PATH_NOT_FOUND, windows.ERROR_INVALID_NAME:
		return KindNotFound, true
	case windows.ERROR_ACCESS_DENIED, windows.ERROR_SHARING_VIOLATION:
		return KindPermissionDenied, true
	case windows.ERROR_INVALID_HANDLE:
		return KindInvalidDescriptor, true
	case windows.ERROR_NOT_SUPPORTED, windows.ERROR_CALL_NOT_IMPLEMENTED:
		return KindUnsupported, true
	}

	return 0, false
}

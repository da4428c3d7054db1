package statshim

import (
	"errors"
	"io/fs"
	"strconv"
	"syscall"
)

// Kind classifies a host failure. Every failure maps to exactly one kind.
type Kind int

const (
	KindIO Kind = iota
	KindNotFound
	KindPermissionDenied
	KindInvalidDescriptor
	KindUnsupported
)

var (
	ErrIO                = errors.New("input/output error")
	ErrNotFound          = errors.New("no such file or directory")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrInvalidDescriptor = errors.New("bad file descriptor")
	ErrUnsupported       = errors.New("operation not supported on this platform")
)

func (k Kind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindPermissionDenied:
		return ErrPermissionDenied
	case KindInvalidDescriptor:
		return ErrInvalidDescriptor
	case KindUnsupported:
		return ErrUnsupported
	}

	return ErrIO
}

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindPermissionDenied:
		return "PermissionDenied"
	case KindInvalidDescriptor:
		return "InvalidDescriptor"
	case KindUnsupported:
		return "Unsupported"
	}

	return "IOError"
}

// Error records a failed host call. Errno holds the raw host error code,
// it is 0 when the failure did not come from the host.
type Error struct {
	Op    string
	Path  string
	Kind  Kind
	Errno syscall.Errno

	// underlying error when there is no errno, e.g. from the os package
	cause error
}

func (e *Error) Error() string {
	var msg string

	if e.Errno != 0 {
		msg = e.Errno.Error()
	} else {
		msg = e.Kind.sentinel().Error()
	}

	if len(e.Path) == 0 {
		return e.Op + ": " + msg
	}

	return e.Op + " " + e.Path + ": " + msg
}

func (e *Error) Unwrap() error {
	if e.Errno != 0 {
		return e.Errno
	}

	return e.cause
}

func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func newError(op, path string, err error) *Error {
	e := Error{
		Op:    op,
		Path:  path,
		Kind:  KindIO,
		cause: err,
	}

	var errno syscall.Errno

	if errors.As(err, &errno) {
		e.Errno = errno

		if k, ok := kindOfErrno(errno); ok {
			e.Kind = k
			return &e
		}
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		e.Kind = KindNotFound
	case errors.Is(err, fs.ErrPermission):
		e.Kind = KindPermissionDenied
	case errors.Is(err, fs.ErrClosed):
		e.Kind = KindInvalidDescriptor
	case errors.Is(err, errors.ErrUnsupported):
		e.Kind = KindUnsupported
	}

	return &e
}

func newPathError(op, path string, err error) error {
	return newError(op, path, err)
}

func newFdError(op string, fd uintptr, err error) error {
	return newError(op, "fd:"+strconv.FormatUint(uint64(fd), 10), err)
}

func unsupported(op, path string) error {
	return &Error{Op: op, Path: path, Kind: KindUnsupported}
}

// KindOf returns the kind of err, or KindIO if err did not come from this package.
func KindOf(err error) Kind {
	var e *Error

	if errors.As(err, &e) {
		return e.Kind
	}

	return KindIO
}

// Errno returns the raw host error code carried by err, or 0.
func Errno(err error) syscall.Errno {
	var e *Error

	if errors.As(err, &e) {
		return e.Errno
	}

	return 0
}

package main

import (
	"errors"
	"io/fs"

	"github.com/0xef53/statshim/pkg/statshim"
)

const (
	exitFailure           = 1
	exitNotFound          = 2
	exitPermissionDenied  = 3
	exitInvalidDescriptor = 4
	exitUnsupported       = 5
)

// exitCode maps an error to the process exit status. Errors that did not
// pass through statshim (e.g. from opening a file) are classified by the
// fs sentinel they wrap.
func exitCode(err error) int {
	var serr *statshim.Error

	if errors.As(err, &serr) {
		switch serr.Kind {
		case statshim.KindNotFound:
			return exitNotFound
		case statshim.KindPermissionDenied:
			return exitPermissionDenied
		case statshim.KindInvalidDescriptor:
			return exitInvalidDescriptor
		case statshim.KindUnsupported:
			return exitUnsupported
		}

		return exitFailure
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return exitNotFound
	case errors.Is(err, fs.ErrPermission):
		return exitPermissionDenied
	}

	return exitFailure
}

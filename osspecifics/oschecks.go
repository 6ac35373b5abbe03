package osspecifics

import (
	"runtime"

	"github.com/pkg/errors"
)

var (
	// ErrNotDiskFile is returned for paths that are neither a device nor a
	// regular file, e.g. directories or FIFOs.
	ErrNotDiskFile = errors.New("not a device or regular file")

	ErrMountCheckUnsupported = errors.New("mounted device check is not supported on this platform")
)

// The runtime package does not export GOOS names as constants, and
// misspelling one of them in a comparison goes unnoticed.

func IsWindows() bool {
	return runtime.GOOS == "windows"
}

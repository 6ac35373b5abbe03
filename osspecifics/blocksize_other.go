//go:build !linux && !darwin && !freebsd && !dragonfly && !netbsd && !solaris && !windows

package osspecifics

var nativeBlockSizeQuerier BlockSizeQuerier = unsupportedBlockSizeQuerier{}

// unsupportedBlockSizeQuerier never guesses a size.
type unsupportedBlockSizeQuerier struct{}

func (unsupportedBlockSizeQuerier) QueryLogicalBlockSize(uintptr) (uint64, error) {
	return 0, ErrUnsupportedPlatform
}

func (unsupportedBlockSizeQuerier) Name() string {
	return "unsupported"
}

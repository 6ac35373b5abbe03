package osspecifics

import "unsafe"

// mediaInfo mirrors struct dk_minfo from illumos sys/dkio.h. Field order
// and widths are the kernel ABI.
type mediaInfo struct {
	MediaType        uint32
	LogicalBlockSize uint32
	Capacity         uint64
}

const mediaInfoSize = 16

// Layout is pinned at compile time: any padding or reordering breaks the build.
var (
	_ [mediaInfoSize - unsafe.Sizeof(mediaInfo{})]byte
	_ [unsafe.Sizeof(mediaInfo{}) - mediaInfoSize]byte
	_ [4 - unsafe.Offsetof(mediaInfo{}.LogicalBlockSize)]byte
	_ [unsafe.Offsetof(mediaInfo{}.LogicalBlockSize) - 4]byte
	_ [8 - unsafe.Offsetof(mediaInfo{}.Capacity)]byte
	_ [unsafe.Offsetof(mediaInfo{}.Capacity) - 8]byte
)

//go:build freebsd || dragonfly

package osspecifics

// DIOCGSECTORSIZE, _IOR('d', 128, u_int) in sys/disk.h.
const diocGSectorSize = 0x40046480

var nativeBlockSizeQuerier BlockSizeQuerier = wideBlockSizeQuerier{
	name: "DIOCGSECTORSIZE",
	req:  diocGSectorSize,
}

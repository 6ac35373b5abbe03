//go:build netbsd

package osspecifics

// DIOCGSECTORSIZE, _IOR('d', 133, u_int) in sys/dkio.h.
const diocGSectorSize = 0x40046485

var nativeBlockSizeQuerier BlockSizeQuerier = wideBlockSizeQuerier{
	name: "DIOCGSECTORSIZE",
	req:  diocGSectorSize,
}

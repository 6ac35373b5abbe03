// GPT Toolbox - Logical block size probing for GUID Partition Table tooling.
// Copyright (c) 2023 The GPT Toolbox Authors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

//go:build solaris

package osspecifics

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// DKIOCGMEDIAINFO, (DKIOC|42) in sys/dkio.h.
const dkiocGMediaInfo = (0x04 << 8) | 42

var nativeBlockSizeQuerier BlockSizeQuerier = mediaInfoBlockSizeQuerier{}

// mediaInfoBlockSizeQuerier asks the driver for its media info record and
// only consults the logical block size field of it.
type mediaInfoBlockSizeQuerier struct{}

func (mediaInfoBlockSizeQuerier) QueryLogicalBlockSize(fd uintptr) (uint64, error) {
	// x/sys/unix has no pointer-taking ioctl for arbitrary records on
	// Solaris, so the record address goes in as the raw argument. It lives
	// in an mmap'd page, outside of the Go heap, so it cannot move while the
	// call is in flight. A page is always large and aligned enough for dk_minfo.
	buf, err := unix.Mmap(-1, 0, unix.Getpagesize(), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return 0, err
	}

	defer func() { _ = unix.Munmap(buf) }()

	err = unix.IoctlSetInt(int(fd), dkiocGMediaInfo, int(uintptr(unsafe.Pointer(&buf[0])))) // #nosec G103 See above.
	if err != nil {
		return 0, err
	}

	mi := (*mediaInfo)(unsafe.Pointer(&buf[0])) // #nosec G103 Size is pinned in mediainfo.go.

	return uint64(mi.LogicalBlockSize), nil
}

func (mediaInfoBlockSizeQuerier) Name() string {
	return "DKIOCGMEDIAINFO"
}

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

//go:build darwin

package osspecifics

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// DKIOCGETBLOCKSIZE, _IOR('d', 24, uint32_t) in IOKit/storage/IOMediaBSDClient.h.
const dkiocGetBlockSize = 0x40046418

var nativeBlockSizeQuerier BlockSizeQuerier = narrowBlockSizeQuerier{}

// narrowBlockSizeQuerier reads the block size as reported by Darwin,
// which is a 32-bit value.
type narrowBlockSizeQuerier struct{}

func (narrowBlockSizeQuerier) QueryLogicalBlockSize(fd uintptr) (uint64, error) {
	var bs uint32
	_, _, serr := unix.Syscall(unix.SYS_IOCTL, fd, dkiocGetBlockSize, uintptr(unsafe.Pointer(&bs))) // #nosec G103 The buffer outlives the call.
	if serr != 0 {
		return 0, serr
	}

	return uint64(bs), nil
}

func (narrowBlockSizeQuerier) Name() string {
	return "DKIOCGETBLOCKSIZE"
}

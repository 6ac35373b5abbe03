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

//go:build linux || freebsd || dragonfly || netbsd

package osspecifics

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// wideBlockSizeQuerier lets the kernel write the block size in place
// into a 64-bit buffer.
type wideBlockSizeQuerier struct {
	name string
	req  uintptr
}

func (q wideBlockSizeQuerier) QueryLogicalBlockSize(fd uintptr) (uint64, error) {
	// Must start zeroed: Linux and the BSDs only write a 32-bit int here.
	// That lands in the low half on little-endian hosts only; on big-endian
	// GOARCHes (s390x, ppc64, mips64) the result is shifted and rejected.
	var bs uint64
	_, _, serr := unix.Syscall(unix.SYS_IOCTL, fd, q.req, uintptr(unsafe.Pointer(&bs))) // #nosec G103 The buffer outlives the call.
	if serr != 0 {
		return 0, serr
	}

	return bs, nil
}

func (q wideBlockSizeQuerier) Name() string {
	return q.name
}

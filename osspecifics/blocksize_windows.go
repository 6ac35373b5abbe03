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

package osspecifics

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// IOCTL_DISK_GET_DRIVE_GEOMETRY in winioctl.h.
const ioctlDiskGetDriveGeometry = 0x70000

var nativeBlockSizeQuerier BlockSizeQuerier = driveGeometryBlockSizeQuerier{}

type driveGeometryBlockSizeQuerier struct{}

func (driveGeometryBlockSizeQuerier) QueryLogicalBlockSize(fd uintptr) (uint64, error) {
	var geo diskGeometry
	var returned uint32

	err := windows.DeviceIoControl(
		windows.Handle(fd),
		ioctlDiskGetDriveGeometry,
		nil, 0,
		(*byte)(unsafe.Pointer(&geo)), uint32(unsafe.Sizeof(geo)), // #nosec G103 Layout is pinned in diskgeometry.go.
		&returned,
		nil,
	)
	if err != nil {
		return 0, err
	}

	return uint64(geo.BytesPerSector), nil
}

func (driveGeometryBlockSizeQuerier) Name() string {
	return "IOCTL_DISK_GET_DRIVE_GEOMETRY"
}

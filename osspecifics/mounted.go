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

//go:build linux || darwin || freebsd || dragonfly || netbsd || solaris

package osspecifics

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/disk"
)

// CheckDeviceSeemsMounted is a best-effort check. A false result does not
// guarantee that nothing on the device is in use.
func CheckDeviceSeemsMounted(devPathPrefix string) (bool, error) {
	devPathPrefix = filepath.Clean(devPathPrefix)

	absDevPathPrefix, err := filepath.Abs(devPathPrefix)
	if err != nil {
		return false, errors.Wrap(err, "get abs path")
	}

	partitions, err := disk.Partitions(true)
	if err != nil {
		return false, errors.Wrap(err, "list mounted partitions")
	}

	for _, p := range partitions {
		// Prefix match so that /dev/sdz catches a mounted /dev/sdz1.
		if strings.HasPrefix(p.Device, devPathPrefix) || strings.HasPrefix(p.Device, absDevPathPrefix) {
			return true, nil
		}
	}

	return false, nil
}

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

//go:build !windows

package osspecifics

import (
	"os"
	"os/user"

	"github.com/pkg/errors"
)

// IsDevicePath reports whether the path points to a device special file
// rather than a regular (image) file. Anything else is ErrNotDiskFile.
func IsDevicePath(devPath string) (bool, error) {
	stat, err := os.Stat(devPath)
	if err != nil {
		return false, errors.Wrap(err, "stat path")
	}

	mode := stat.Mode()
	switch {
	case mode&os.ModeDevice != 0:
		return true, nil
	case mode.IsRegular():
		return false, nil
	default:
		return false, errors.Wrapf(ErrNotDiskFile, "file mode %v", mode)
	}
}

func CheckRunAsRoot() (bool, error) {
	currentUser, err := user.Current()
	if err != nil {
		return false, errors.Wrap(err, "get current user")
	}

	return currentUser.Username == "root", nil
}

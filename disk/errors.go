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

package disk

import (
	"fmt"
	"io/fs"

	"github.com/AlexSSD7/gpttoolbox/osspecifics"
	"github.com/pkg/errors"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnsupportedPlatform = osspecifics.ErrUnsupportedPlatform
)

// InvalidBlockSizeError is returned for sizes outside of
// [MinSectorSize, MaxSectorSize]. It matches ErrInvalidInput.
type InvalidBlockSizeError struct {
	Size uint64
}

func (e *InvalidBlockSizeError) Error() string {
	return fmt.Sprintf("logical block size %v is not in the range %v-%v", e.Size, MinSectorSize, MaxSectorSize)
}

func (e *InvalidBlockSizeError) Is(target error) bool {
	return target == ErrInvalidInput
}

// IOError is a failure to open, query or close a device. Err is the
// error reported by the OS, e.g. syscall.EACCES or syscall.ENOTTY.
type IOError struct {
	Op   string
	Path string
	Err  error
}

// NewIOError drops the *fs.PathError layer of err, if any, since
// the IOError already carries the path.
func NewIOError(op string, path string, err error) *IOError {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}

	return &IOError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%v '%v': %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

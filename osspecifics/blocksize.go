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

import "github.com/pkg/errors"

var ErrUnsupportedPlatform = errors.New("logical block size query is not supported on this platform")

// BlockSizeQuerier issues a single device-control query against an already
// open device handle and returns the raw logical block size in bytes.
//
// Implementations do not validate the returned value, and on failure they
// return the native OS error (syscall.Errno on Unix, windows.Errno on Windows)
// so that the cause stays diagnosable by the caller.
type BlockSizeQuerier interface {
	QueryLogicalBlockSize(fd uintptr) (uint64, error)

	// Name identifies the control operation, e.g. "BLKSSZGET".
	Name() string
}

// NativeBlockSizeQuerier returns the querier selected for the OS
// this binary was built for.
func NativeBlockSizeQuerier() BlockSizeQuerier {
	return nativeBlockSizeQuerier
}

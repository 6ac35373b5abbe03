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

package gpt

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/AlexSSD7/gpttoolbox/disk"
	"github.com/pkg/errors"
)

// Disk is an open disk or disk image.
type Disk struct {
	path string
	file *os.File

	blockSize disk.LogicalBlockSize
	writable  bool
}

func (d *Disk) Path() string {
	return d.path
}

func (d *Disk) LogicalBlockSize() disk.LogicalBlockSize {
	return d.blockSize
}

func (d *Disk) Writable() bool {
	return d.writable
}

// Size returns the size of the disk in bytes.
func (d *Disk) Size() (uint64, error) {
	// Seeking works for block devices too, where Stat reports zero.
	end, err := d.file.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, errors.Wrap(disk.NewIOError("seek", d.path, err), "seek to end")
	}

	return uint64(end), nil
}

// SectorCount returns the number of whole logical blocks on the disk.
func (d *Disk) SectorCount() (uint64, error) {
	size, err := d.Size()
	if err != nil {
		return 0, err
	}

	return size / d.blockSize.Uint64(), nil
}

// ReadLBA reads the logical block at index lba.
func (d *Disk) ReadLBA(lba uint64) ([]byte, error) {
	bs, ok := d.blockSize.Uint()
	if !ok {
		return nil, fmt.Errorf("logical block size %v does not fit in memory on this platform", d.blockSize)
	}

	if lba > math.MaxInt64/uint64(bs) {
		return nil, fmt.Errorf("lba %v is out of range", lba)
	}

	buf := make([]byte, bs)

	_, err := d.file.ReadAt(buf, int64(lba*uint64(bs)))
	if err != nil {
		// io.EOF here means a short read past the end of the disk.
		return nil, errors.Wrapf(disk.NewIOError("read", d.path, err), "read lba %v", lba)
	}

	return buf, nil
}

func (d *Disk) Close() error {
	err := d.file.Close()
	if err != nil {
		return disk.NewIOError("close", d.path, err)
	}

	return nil
}

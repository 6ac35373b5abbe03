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

// Package disk holds the logical block size of GPT disks and the probing
// of that size from live devices.
package disk

import (
	"strings"

	"github.com/AlexSSD7/gpttoolbox/utils"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

const (
	// MinSectorSize is the smallest logical block size GPT allows.
	MinSectorSize uint64 = 512

	// MaxSectorSize is the largest logical block size GPT allows (4 GiB, inclusive).
	MaxSectorSize uint64 = 1 << 32
)

type BlockSizeKind int

const (
	LbOther BlockSizeKind = iota
	Lb512
	Lb4096
)

func (k BlockSizeKind) String() string {
	switch k {
	case Lb512:
		return "512"
	case Lb4096:
		return "4096"
	default:
		return "other"
	}
}

// LogicalBlockSize is the size of one logical block (sector) of a GPT disk.
// Values are comparable with ==, two sizes are equal iff their magnitudes are.
//
// The zero value is not a valid size. Valid values are obtained from
// NewLogicalBlockSize, ParseLogicalBlockSize, UnmarshalText, the named
// values below, or by probing a device.
type LogicalBlockSize struct {
	size uint64
}

var (
	LB512  = LogicalBlockSize{size: 512}
	LB4096 = LogicalBlockSize{size: 4096}

	DefaultSectorSize = LB512
)

// NewLogicalBlockSize validates a byte count. Any value within
// [MinSectorSize, MaxSectorSize] is accepted, including ones that are not a
// power of two, as some hardware reports unusual sizes.
func NewLogicalBlockSize(size uint64) (LogicalBlockSize, error) {
	switch {
	case size == 512:
		return LB512, nil
	case size == 4096:
		return LB4096, nil
	case size >= MinSectorSize && size <= MaxSectorSize:
		return LogicalBlockSize{size: size}, nil
	default:
		return LogicalBlockSize{}, &InvalidBlockSizeError{Size: size}
	}
}

// ParseLogicalBlockSize accepts a plain byte count ("4096") or a human
// readable size ("4KiB", "4 KiB"). Note that SI suffixes are decimal,
// so "4kB" is 4000 bytes.
func ParseLogicalBlockSize(s string) (LogicalBlockSize, error) {
	size, err := humanize.ParseBytes(strings.TrimSpace(s))
	if err != nil {
		return LogicalBlockSize{}, errors.Wrapf(err, "parse size '%v'", s)
	}

	return NewLogicalBlockSize(size)
}

func (lb LogicalBlockSize) Kind() BlockSizeKind {
	switch lb.size {
	case 512:
		return Lb512
	case 4096:
		return Lb4096
	default:
		return LbOther
	}
}

func (lb LogicalBlockSize) IsZero() bool {
	return lb.size == 0
}

func (lb LogicalBlockSize) Uint64() uint64 {
	return lb.size
}

// Uint returns the size as a native word. ok is false only when the size does
// not fit, which can happen for MaxSectorSize on 32-bit platforms.
func (lb LogicalBlockSize) Uint() (v uint, ok bool) {
	v = uint(lb.size)
	return v, uint64(v) == lb.size
}

func (lb LogicalBlockSize) String() string {
	return utils.UintToStr(lb.size)
}

func (lb LogicalBlockSize) MarshalText() ([]byte, error) {
	return []byte(lb.String()), nil
}

func (lb *LogicalBlockSize) UnmarshalText(text []byte) error {
	v, err := ParseLogicalBlockSize(string(text))
	if err != nil {
		return err
	}

	*lb = v

	return nil
}

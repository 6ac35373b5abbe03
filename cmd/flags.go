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

package cmd

import (
	"fmt"

	"github.com/AlexSSD7/gpttoolbox/disk"
	"github.com/pkg/errors"
)

// blockSizeValue is a pflag.Value accepting "4096" as well as "4KiB".
// An unset flag leaves the zero LogicalBlockSize in place.
type blockSizeValue struct {
	lb *disk.LogicalBlockSize
}

func newBlockSizeValue(lb *disk.LogicalBlockSize) *blockSizeValue {
	return &blockSizeValue{lb: lb}
}

func (v *blockSizeValue) String() string {
	if v.lb == nil || v.lb.IsZero() {
		return ""
	}

	return v.lb.String()
}

func (v *blockSizeValue) Set(s string) error {
	lb, err := disk.ParseLogicalBlockSize(s)
	if err != nil {
		return errors.Wrap(err, "parse logical block size")
	}

	*v.lb = lb

	return nil
}

func (v *blockSizeValue) Type() string {
	return "size"
}

const (
	outputFormatTable = "table"
	outputFormatYAML  = "yaml"
)

var errUnknownOutputFormat = errors.New("unknown output format")

func checkOutputFormat(format string) error {
	switch format {
	case outputFormatTable, outputFormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: '%v'", errUnknownOutputFormat, format)
	}
}

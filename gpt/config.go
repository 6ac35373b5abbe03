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

// Package gpt opens disks for GPT tooling. Header and partition table
// handling live elsewhere; this package only provides the opened file
// together with its logical block size.
package gpt

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/AlexSSD7/gpttoolbox/disk"
	"github.com/AlexSSD7/gpttoolbox/osspecifics"
	"github.com/pkg/errors"
)

// ErrNotDiskFile is returned by Config.Open for paths that are neither a
// device nor a regular file.
var ErrNotDiskFile = osspecifics.ErrNotDiskFile

// Config describes how a disk is opened. The zero value and NewConfig are
// equivalent: read-only, block size resolved at open time.
type Config struct {
	logger *slog.Logger
	prober *disk.Prober

	writable  bool
	blockSize disk.LogicalBlockSize
}

func NewConfig() Config {
	return Config{}
}

func (c Config) Writable(writable bool) Config {
	c.writable = writable
	return c
}

// LogicalBlockSize pins the block size, skipping any probing on open.
func (c Config) LogicalBlockSize(lb disk.LogicalBlockSize) Config {
	c.blockSize = lb
	return c
}

func (c Config) Logger(logger *slog.Logger) Config {
	c.logger = logger
	return c
}

// Prober replaces the prober used for device special files.
func (c Config) Prober(p *disk.Prober) Config {
	c.prober = p
	return c
}

// Open opens the disk at path.
//
// Without an explicit block size, device special files are probed and any
// probing failure is returned as is. Regular files (disk images) have no
// device to query and get disk.DefaultSectorSize. Paths that are neither,
// such as directories or FIFOs, are rejected with ErrNotDiskFile before
// anything is opened.
func (c Config) Open(path string) (*Disk, error) {
	if path == "" {
		return nil, errors.Wrap(disk.ErrInvalidInput, "empty disk path")
	}

	path = filepath.Clean(path)

	logger := c.logger
	if logger == nil {
		logger = slog.Default().With("caller", "gpt")
	}

	isDev, err := osspecifics.IsDevicePath(path)
	if err != nil {
		if errors.Is(err, ErrNotDiskFile) {
			return nil, errors.Wrapf(err, "check disk path '%v'", path)
		}

		return nil, errors.Wrap(disk.NewIOError("stat", path, err), "check disk path")
	}

	lb := c.blockSize
	if lb.IsZero() {
		lb, err = c.resolveBlockSize(logger, path, isDev)
		if err != nil {
			return nil, errors.Wrap(err, "resolve logical block size")
		}
	}

	flag := os.O_RDONLY
	if c.writable {
		flag = os.O_RDWR
	}

	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, errors.Wrap(disk.NewIOError("open", path, err), "open disk file")
	}

	logger.Debug("Opened disk", "path", path, "block-size", lb, "writable", c.writable)

	return &Disk{
		path: path,
		file: f,

		blockSize: lb,
		writable:  c.writable,
	}, nil
}

func (c Config) resolveBlockSize(logger *slog.Logger, path string, isDev bool) (disk.LogicalBlockSize, error) {
	if !isDev {
		logger.Debug("Not a device, using default logical block size", "path", path, "block-size", disk.DefaultSectorSize)
		return disk.DefaultSectorSize, nil
	}

	prober := c.prober
	if prober == nil {
		prober = disk.NewNativeProber(logger)
	}

	lb, err := prober.Probe(path)
	if err != nil {
		return disk.LogicalBlockSize{}, errors.Wrap(err, "probe device")
	}

	return lb, nil
}

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
	"log/slog"
	"os"
	"path/filepath"

	"github.com/AlexSSD7/gpttoolbox/osspecifics"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Device is an open device handle. *os.File satisfies it.
type Device interface {
	Fd() uintptr
	Close() error
}

// Opener opens a device for reading. It must not return a non-nil Device
// together with an error.
type Opener func(path string) (Device, error)

func openDevice(path string) (Device, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	return f, nil
}

// Prober resolves the logical block size of a device. It holds no mutable
// state and can be used from multiple goroutines at once, every probe
// opening and closing its own handle.
type Prober struct {
	logger *slog.Logger

	open    Opener
	querier osspecifics.BlockSizeQuerier
}

// NewProber creates a prober that issues queries through querier.
// A nil logger means slog.Default().
func NewProber(logger *slog.Logger, querier osspecifics.BlockSizeQuerier) *Prober {
	if logger == nil {
		logger = slog.Default()
	}

	return &Prober{
		logger: logger,

		open:    openDevice,
		querier: querier,
	}
}

// NewNativeProber creates a prober using the query supported by the
// current OS.
func NewNativeProber(logger *slog.Logger) *Prober {
	return NewProber(logger, osspecifics.NativeBlockSizeQuerier())
}

// WithOpener returns a copy of the prober which opens devices with open.
func (p *Prober) WithOpener(open Opener) *Prober {
	cp := *p
	cp.open = open
	return &cp
}

// WithLogger returns a copy of the prober which logs to logger.
// A nil logger means slog.Default().
func (p *Prober) WithLogger(logger *slog.Logger) *Prober {
	if logger == nil {
		logger = slog.Default()
	}

	cp := *p
	cp.logger = logger
	return &cp
}

// Probe opens the device at path, issues exactly one block size query and
// validates the result. There are no retries and no fallback size: every
// failure is returned to the caller. The device is closed before Probe returns.
//
// Errors are *IOError for open/query/close failures, ErrUnsupportedPlatform
// when the OS has no known query, and *InvalidBlockSizeError when the
// device reports a size outside of [MinSectorSize, MaxSectorSize]. An empty
// path is ErrInvalidInput and is never opened.
func (p *Prober) Probe(path string) (lb LogicalBlockSize, err error) {
	if path == "" {
		return LogicalBlockSize{}, errors.Wrap(ErrInvalidInput, "empty device path")
	}

	path = filepath.Clean(path)

	dev, err := p.open(path)
	if err != nil {
		return LogicalBlockSize{}, NewIOError("open", path, err)
	}

	defer func() {
		closeErr := dev.Close()
		if closeErr == nil {
			return
		}

		lb = LogicalBlockSize{}
		err = multierr.Append(err, NewIOError("close", path, closeErr))
	}()

	raw, err := p.querier.QueryLogicalBlockSize(dev.Fd())
	if err != nil {
		if errors.Is(err, ErrUnsupportedPlatform) {
			return LogicalBlockSize{}, err
		}

		return LogicalBlockSize{}, NewIOError("ioctl "+p.querier.Name(), path, err)
	}

	lb, err = NewLogicalBlockSize(raw)
	if err != nil {
		return LogicalBlockSize{}, err
	}

	p.logger.Debug("Probed logical block size", "path", path, "query", p.querier.Name(), "size", lb)

	return lb, nil
}

// GetLogicalBlockSize probes the device at path with the native prober.
func GetLogicalBlockSize(path string) (LogicalBlockSize, error) {
	return NewNativeProber(nil).Probe(path)
}

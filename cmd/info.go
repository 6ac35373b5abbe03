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
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/AlexSSD7/gpttoolbox/disk"
	"github.com/AlexSSD7/gpttoolbox/gpt"
	"github.com/AlexSSD7/gpttoolbox/osspecifics"
	"github.com/AlexSSD7/gpttoolbox/utils"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type diskInfo struct {
	Path             string                `yaml:"path"`
	LogicalBlockSize disk.LogicalBlockSize `yaml:"logicalBlockSize"`
	Shape            string                `yaml:"shape"`
	SizeBytes        uint64                `yaml:"sizeBytes"`
	Sectors          uint64                `yaml:"sectors"`
	Device           bool                  `yaml:"device"`
	Mounted          bool                  `yaml:"mounted"`
}

var infoCmd = &cobra.Command{
	Use:   "info <path>",
	Short: "Open a disk or disk image and show its logical block size and geometry.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runInfo(args[0]))
	},
}

// runInfo returns the exit code so that the disk is closed before exiting.
func runInfo(path string) int {
	err := checkOutputFormat(infoOutputFlag)
	if err != nil {
		slog.Error("Bad output format", "error", err.Error())
		return 1
	}

	d, err := openDiskForInfo(path)
	if err != nil {
		slog.Error("Failed to open disk", "error", err.Error(), "path", utils.SanitizePath(path))
		return 1
	}

	defer func() { _ = d.Close() }()

	info, err := collectDiskInfo(d)
	if err != nil {
		slog.Error("Failed to collect disk info", "error", err.Error(), "path", utils.SanitizePath(path))
		return 1
	}

	err = printDiskInfo(info, infoOutputFlag)
	if err != nil {
		slog.Error("Failed to print disk info", "error", err.Error())
		return 1
	}

	if infoDumpLBAFlag >= 0 {
		buf, err := d.ReadLBA(uint64(infoDumpLBAFlag))
		if err != nil {
			slog.Error("Failed to read LBA", "error", err.Error(), "lba", infoDumpLBAFlag)
			return 1
		}

		fmt.Print(hex.Dump(buf))
	}

	return 0
}

var (
	infoBlockSize    disk.LogicalBlockSize
	infoOutputFlag   string
	infoDumpLBAFlag  int64
	infoWritableFlag bool
)

func init() {
	infoCmd.Flags().Var(newBlockSizeValue(&infoBlockSize), "block-size", `Use this logical block size instead of probing the device (e.g. "4096" or "4KiB").`)
	infoCmd.Flags().StringVarP(&infoOutputFlag, "output", "o", outputFormatTable, "Output format: table, yaml.")
	infoCmd.Flags().BoolVar(&infoWritableFlag, "writable", false, "Open the disk read-write. Nothing is written; this only checks that write access is possible.")
	infoCmd.Flags().Int64Var(&infoDumpLBAFlag, "dump-lba", -1, "Hex dump the logical block with this index after the info.")
}

func openDiskForInfo(path string) (*gpt.Disk, error) {
	if infoBlockSize.IsZero() && !infoWritableFlag {
		return gpt.ReadDisk(path)
	}

	return gpt.NewConfig().
		LogicalBlockSize(infoBlockSize).
		Writable(infoWritableFlag).
		Logger(slog.With("caller", "gpt")).
		Open(path)
}

func collectDiskInfo(d *gpt.Disk) (diskInfo, error) {
	size, err := d.Size()
	if err != nil {
		return diskInfo{}, errors.Wrap(err, "get disk size")
	}

	sectors, err := d.SectorCount()
	if err != nil {
		return diskInfo{}, errors.Wrap(err, "get sector count")
	}

	isDev, err := osspecifics.IsDevicePath(d.Path())
	if err != nil {
		return diskInfo{}, errors.Wrap(err, "check device path")
	}

	var mounted bool
	if isDev {
		mounted = warnIfMounted(d.Path())
	}

	lb := d.LogicalBlockSize()

	return diskInfo{
		Path:             utils.SanitizePath(d.Path()),
		LogicalBlockSize: lb,
		Shape:            lb.Kind().String(),
		SizeBytes:        size,
		Sectors:          sectors,
		Device:           isDev,
		Mounted:          mounted,
	}, nil
}

var (
	colorCanonical = color.New(color.FgGreen)
	colorUnusual   = color.New(color.FgYellow)
)

func printDiskInfo(info diskInfo, format string) error {
	switch format {
	case outputFormatYAML:
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		return enc.Encode(info)
	default:
		shape := colorCanonical.Sprint(info.Shape)
		if info.Shape == disk.LbOther.String() {
			shape = colorUnusual.Sprint(info.Shape)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)

		style := table.StyleLight
		style.Options.DrawBorder = false
		style.Format.Header = text.FormatUpper
		style.Format.HeaderAlign = text.AlignLeft
		t.SetStyle(style)

		t.AppendHeader(table.Row{"Property", "Value"})
		t.AppendRows([]table.Row{
			{"Path", info.Path},
			{"Logical block size", fmt.Sprintf("%v (%v)", info.LogicalBlockSize, humanize.IBytes(info.LogicalBlockSize.Uint64()))},
			{"Shape", shape},
			{"Size", fmt.Sprintf("%v (%v)", info.SizeBytes, humanize.IBytes(info.SizeBytes))},
			{"Sectors", info.Sectors},
			{"Device", info.Device},
			{"Mounted", info.Mounted},
		})
		t.Render()

		return nil
	}
}

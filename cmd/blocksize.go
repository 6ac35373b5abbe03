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
	"io/fs"
	"log/slog"
	"os"

	"github.com/AlexSSD7/gpttoolbox/disk"
	"github.com/AlexSSD7/gpttoolbox/utils"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var blockSizeCmd = &cobra.Command{
	Use:   "blocksize <device>",
	Short: "Print the logical block (sector) size of a device.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		devPath := args[0]

		lb, err := disk.NewNativeProber(slog.With("caller", "prober")).Probe(devPath)
		if err != nil {
			slog.Error("Failed to get logical block size", "error", err.Error(), "path", utils.SanitizePath(devPath))

			if errors.Is(err, fs.ErrPermission) {
				warnIfNotRoot()
			}

			if errors.Is(err, disk.ErrUnsupportedPlatform) {
				os.Exit(2)
			}

			os.Exit(1)
		}

		// Keep the output machine-readable when piped.
		if !blockSizeHumanFlag || !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Println(lb.String())
			return
		}

		fmt.Printf("%v (%v)\n", lb, humanize.IBytes(lb.Uint64()))
	},
}

var blockSizeHumanFlag bool

func init() {
	blockSizeCmd.Flags().BoolVarP(&blockSizeHumanFlag, "human", "H", false, "Also print the size in human-readable form when writing to a terminal.")
}

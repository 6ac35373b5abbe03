package cmd

import (
	"os"

	"log/slog"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gpttoolbox",
	Short: "Inspect the logical block (sector) size of disks and disk images for GPT tooling.",
	Long: `GPT Toolbox determines the logical block size of a storage device using the native device query of the host OS ` +
		`(BLKSSZGET on Linux, DKIOCGETBLOCKSIZE on macOS, DIOCGSECTORSIZE on the BSDs, DKIOCGMEDIAINFO on illumos and ` +
		`IOCTL_DISK_GET_DRIVE_GEOMETRY on Windows). The size is validated against the GPT limits of 512 bytes to 4 GiB.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var debugFlag bool

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.AddCommand(blockSizeCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(copyrightCmd)

	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enables debug logging.")
}

func initLogging() {
	level := slog.LevelInfo
	if debugFlag {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

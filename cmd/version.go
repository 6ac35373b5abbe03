package cmd

import (
	"fmt"
	"runtime"

	"github.com/AlexSSD7/gpttoolbox/constants"
	"github.com/AlexSSD7/gpttoolbox/osspecifics"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show GPT Toolbox version.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("GPT Toolbox %v %v/%v %v (block size query: %v)\n", constants.Version, runtime.GOOS, runtime.GOARCH, runtime.Version(), osspecifics.NativeBlockSizeQuerier().Name())
	},
}

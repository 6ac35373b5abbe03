package cmd

import (
	"log/slog"

	"github.com/AlexSSD7/gpttoolbox/osspecifics"
	"github.com/AlexSSD7/gpttoolbox/utils"
)

func warnIfNotRoot() {
	ok, err := osspecifics.CheckRunAsRoot()
	if err != nil {
		slog.Error("Failed to check whether the command is ran by root", "error", err.Error())
		return
	}

	if ok {
		return
	}

	if osspecifics.IsWindows() {
		slog.Warn("Reading physical drives on Windows requires this program to be ran as Administrator")
	} else {
		slog.Warn("Reading block devices usually requires this program to be ran as root")
	}
}

// warnIfMounted returns whether the check found the device mounted.
func warnIfMounted(devPath string) bool {
	seemsMounted, err := osspecifics.CheckDeviceSeemsMounted(devPath)
	if err != nil {
		slog.Warn("Failed to check whether the device seems to be mounted", "error", err.Error(), "path", utils.SanitizePath(devPath))
		return false
	}

	if seemsMounted {
		slog.Warn("Device seems to be mounted in the host system, the data read may be inconsistent", "path", utils.SanitizePath(devPath))
	}

	return seemsMounted
}

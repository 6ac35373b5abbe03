//go:build linux || darwin || freebsd || dragonfly || netbsd || solaris

package osspecifics

import (
	"path/filepath"
	"testing"
)

func TestCheckDeviceSeemsMountedUnknownDevice(t *testing.T) {
	mounted, err := CheckDeviceSeemsMounted(filepath.Join(t.TempDir(), "sdz"))
	if err != nil {
		t.Fatalf("CheckDeviceSeemsMounted: %v", err)
	}
	if mounted {
		t.Error("Expected a fresh temp path not to be mounted")
	}
}

//go:build !windows && !linux && !darwin && !freebsd && !dragonfly && !netbsd && !solaris

package osspecifics

import (
	"testing"

	"github.com/pkg/errors"
)

func TestCheckDeviceSeemsMountedUnsupported(t *testing.T) {
	mounted, err := CheckDeviceSeemsMounted("/dev/sd0c")
	if !errors.Is(err, ErrMountCheckUnsupported) {
		t.Errorf("Expected ErrMountCheckUnsupported, got %v", err)
	}
	if mounted {
		t.Error("Expected no mounted result without a partition source")
	}
}

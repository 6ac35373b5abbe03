//go:build !windows && !linux && !darwin && !freebsd && !dragonfly && !netbsd && !solaris

package osspecifics

// CheckDeviceSeemsMounted has no partition table source on this platform.
func CheckDeviceSeemsMounted(string) (bool, error) {
	return false, ErrMountCheckUnsupported
}

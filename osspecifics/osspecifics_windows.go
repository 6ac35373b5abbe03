package osspecifics

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var physicalDriveCheckRegexp = regexp.MustCompile(`^\\\\.\\PhysicalDrive(\d+)$`)
var physicalDriveFindRegexp = regexp.MustCompile(`PhysicalDrive(\d+)`)

// IsDevicePath reports whether the path has the \\.\PhysicalDriveN form.
// Anything else must be a regular (image) file, or ErrNotDiskFile is returned.
func IsDevicePath(devPath string) (bool, error) {
	if physicalDriveCheckRegexp.MatchString(devPath) {
		return true, nil
	}

	stat, err := os.Stat(devPath)
	if err != nil {
		return false, errors.Wrap(err, "stat path")
	}

	if !stat.Mode().IsRegular() {
		return false, errors.Wrapf(ErrNotDiskFile, "file mode %v", stat.Mode())
	}

	return false, nil
}

// CheckDeviceSeemsMounted is a best-effort check. A false result does not
// guarantee that nothing on the drive is in use.
func CheckDeviceSeemsMounted(path string) (bool, error) {
	matches := physicalDriveFindRegexp.FindAllStringSubmatch(path, 1)
	if len(matches) == 0 {
		return false, fmt.Errorf("bad device path '%v'", path)
	}

	match := matches[0]

	if want, have := 2, len(match); want != have {
		return false, fmt.Errorf("bad match items length: want %v, have %v (%v)", want, have, match)
	}

	out, err := exec.Command("wmic", "path", "Win32_LogicalDiskToPartition", "get", "Antecedent").Output()
	if err != nil {
		return false, errors.Wrap(err, "exec wmic cmd")
	}

	return strings.Contains(string(out), fmt.Sprintf("Disk #%v,", match[1])), nil
}

// CheckRunAsRoot reports Administrators group membership.
func CheckRunAsRoot() (bool, error) {
	var sid *windows.SID

	err := windows.AllocateAndInitializeSid(
		&windows.SECURITY_NT_AUTHORITY,
		2,
		windows.SECURITY_BUILTIN_DOMAIN_RID,
		windows.DOMAIN_ALIAS_RID_ADMINS,
		0, 0, 0, 0, 0, 0,
		&sid)
	if err != nil {
		return false, errors.Wrap(err, "allocate and initialize win sid")
	}

	defer func() { _ = windows.FreeSid(sid) }()

	member, err := windows.Token(0).IsMember(sid)
	if err != nil {
		return false, errors.Wrap(err, "check win sid membership")
	}

	return member, nil
}

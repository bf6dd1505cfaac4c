//go:build linux

package proc

import "golang.org/x/sys/unix"

// SameFile reports whether two paths name the same underlying file by
// comparing device and inode. Either stat failing (typically because a
// target vanished between enumeration and the probe) is returned as an
// error for the caller to decide on.
func SameFile(a, b string) (bool, error) {
	var sa, sb unix.Stat_t
	if err := unix.Stat(a, &sa); err != nil {
		return false, err
	}
	if err := unix.Stat(b, &sb); err != nil {
		return false, err
	}
	return sa.Dev == sb.Dev && sa.Ino == sb.Ino, nil
}

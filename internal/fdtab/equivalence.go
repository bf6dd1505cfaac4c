// Package fdtab decides which descriptors of a process point at the same
// underlying resource and folds them into groups.
package fdtab

import "github.com/oblaser/fdmonitor/pkg/model"

// SameFileFunc reports whether two paths name the same underlying file,
// typically by comparing device and inode. Implementations may fail
// transiently (a target can vanish between enumeration and the probe).
type SameFileFunc func(a, b string) (bool, error)

// Matcher decides target equivalence. The same-file probe is injected so the
// grouping logic stays a pure function of its input in tests.
type Matcher struct {
	sameFile SameFileFunc
}

func NewMatcher(sameFile SameFileFunc) Matcher {
	return Matcher{sameFile: sameFile}
}

// Equivalent reports whether a and b denote the same underlying resource.
// Path string equality always suffices. The same-file probe is consulted only
// for regular files and directories, the two types where distinct path
// strings can legitimately alias one file (hardlinks, bind mounts). A probe
// error counts as not equivalent: an extra group beats a wrong merge.
func (m Matcher) Equivalent(a, b model.FdTarget) bool {
	if a.Type != b.Type {
		return false
	}
	if a.Path == b.Path {
		return true
	}
	if a.Type != model.TypeRegular && a.Type != model.TypeDirectory {
		return false
	}
	if m.sameFile == nil {
		return false
	}
	same, err := m.sameFile(a.Path, b.Path)
	if err != nil {
		return false
	}
	return same
}

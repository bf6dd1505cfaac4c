package model

// FdTarget identifies the resource a descriptor points at: the path the
// /proc/<pid>/fd/<n> symlink resolves to plus the type of the entry behind
// it. Immutable once constructed; equality is plain struct comparison.
type FdTarget struct {
	Path string
	Type FileType
}

// Label is the display form used in reports, e.g. "/var/log/app.log (regular)".
func (t FdTarget) Label() string {
	return t.Path + " (" + string(t.Type) + ")"
}

// Descriptor is one raw observation from a process's descriptor table.
// FD is never negative.
type Descriptor struct {
	FD     int32
	Target FdTarget
}

// Group collects all descriptor numbers judged to refer to the same target.
// FDs is never empty and preserves the order the descriptors were observed in.
type Group struct {
	Target FdTarget
	FDs    []int32
}

// Count returns the number of descriptors in the group.
func (g Group) Count() int { return len(g.FDs) }

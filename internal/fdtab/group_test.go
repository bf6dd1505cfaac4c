package fdtab

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oblaser/fdmonitor/pkg/model"
)

func rec(fd int32, path string, typ model.FileType) model.Descriptor {
	return model.Descriptor{FD: fd, Target: model.FdTarget{Path: path, Type: typ}}
}

// noProbe fails the test if the same-file probe is ever consulted.
func noProbe(t *testing.T) SameFileFunc {
	return func(a, b string) (bool, error) {
		t.Fatalf("same-file probe consulted for %q vs %q", a, b)
		return false, nil
	}
}

func TestGroupSkipsEnumerationArtifact(t *testing.T) {
	m := NewMatcher(noProbe(t))

	groups := m.Group([]model.Descriptor{
		rec(0, "/dev/pts/3", model.TypeCharacter),
		rec(1, "/var/log/app.log", model.TypeRegular),
		rec(2, "/var/log/app.log", model.TypeRegular),
		rec(3, "/tmp/x", model.TypeFifo),
	})

	require.Len(t, groups, 2)
	assert.Equal(t, model.FdTarget{Path: "/var/log/app.log", Type: model.TypeRegular}, groups[0].Target)
	assert.Equal(t, []int32{1, 2}, groups[0].FDs)
	assert.Equal(t, model.FdTarget{Path: "/tmp/x", Type: model.TypeFifo}, groups[1].Target)
	assert.Equal(t, []int32{3}, groups[1].FDs)
}

func TestGroupMergesHardlinksViaProbe(t *testing.T) {
	m := NewMatcher(func(a, b string) (bool, error) {
		return true, nil // every regular-file pair is the same inode
	})

	groups := m.Group([]model.Descriptor{
		rec(0, "/a/fd0", model.TypeSymlink),
		rec(1, "/data/f1", model.TypeRegular),
		rec(2, "/data/hardlink-to-f1", model.TypeRegular),
	})

	require.Len(t, groups, 1)
	assert.Equal(t, "/data/f1", groups[0].Target.Path)
	assert.Equal(t, []int32{1, 2}, groups[0].FDs)
}

func TestGroupNeverProbesSymlinks(t *testing.T) {
	probed := false
	m := NewMatcher(func(a, b string) (bool, error) {
		probed = true
		return true, nil
	})

	groups := m.Group([]model.Descriptor{
		rec(0, "/skip", model.TypeCharacter),
		rec(1, "/proc/1/exe", model.TypeSymlink),
		rec(2, "/proc/2/exe", model.TypeSymlink),
	})

	require.Len(t, groups, 2)
	assert.False(t, probed, "probe must not be consulted for symlink targets")
}

func TestGroupEveryFDLandsInExactlyOneGroup(t *testing.T) {
	m := NewMatcher(func(a, b string) (bool, error) { return false, nil })

	records := []model.Descriptor{
		rec(0, "/skip", model.TypeDirectory),
		rec(1, "/var/log/app.log", model.TypeRegular),
		rec(2, "/dev/null", model.TypeCharacter),
		rec(3, "/var/log/app.log", model.TypeRegular),
		rec(4, "socket:[12345]", model.TypeSocket),
		rec(5, "/dev/null", model.TypeCharacter),
		rec(6, "pipe:[777]", model.TypeFifo),
	}

	groups := m.Group(records)

	seen := map[int32]int{}
	total := 0
	for _, g := range groups {
		require.NotEmpty(t, g.FDs)
		for _, fd := range g.FDs {
			seen[fd]++
			total++
		}
	}
	assert.Equal(t, len(records)-skipCount, total)
	for fd, n := range seen {
		assert.Equalf(t, 1, n, "fd %d appears %d times", fd, n)
	}
	_, skipped := seen[0]
	assert.False(t, skipped, "skipped record must not appear in any group")
}

func TestGroupIsOrderStable(t *testing.T) {
	m := NewMatcher(func(a, b string) (bool, error) { return false, nil })

	records := []model.Descriptor{
		rec(0, "/skip", model.TypeDirectory),
		rec(9, "/c", model.TypeRegular),
		rec(4, "/a", model.TypeRegular),
		rec(7, "/c", model.TypeRegular),
		rec(2, "/b", model.TypeFifo),
	}

	first := m.Group(records)
	second := m.Group(records)
	assert.Equal(t, first, second)

	require.Len(t, first, 3)
	assert.Equal(t, "/c", first[0].Target.Path)
	assert.Equal(t, []int32{9, 7}, first[0].FDs)
	assert.Equal(t, "/a", first[1].Target.Path)
	assert.Equal(t, "/b", first[2].Target.Path)
}

func TestGroupFirstMatchWins(t *testing.T) {
	// The probe claims every regular-file pair is the same file, so both
	// existing groups would match record 3; it must join only the first.
	m := NewMatcher(func(a, b string) (bool, error) { return true, nil })

	groups := m.Group([]model.Descriptor{
		rec(0, "/skip", model.TypeCharacter),
		rec(1, "/x", model.TypeRegular),
		rec(2, "/x", model.TypeRegular),
		rec(3, "/y", model.TypeRegular),
	})

	require.Len(t, groups, 1)
	assert.Equal(t, []int32{1, 2, 3}, groups[0].FDs)
}

func TestGroupProbeErrorKeepsTargetsSeparate(t *testing.T) {
	m := NewMatcher(func(a, b string) (bool, error) {
		return false, errors.New("stat: no such file or directory")
	})

	groups := m.Group([]model.Descriptor{
		rec(0, "/skip", model.TypeCharacter),
		rec(1, "/data/f1", model.TypeRegular),
		rec(2, "/data/f2", model.TypeRegular),
	})

	assert.Len(t, groups, 2)
}

func TestGroupEmptyAndSingleInput(t *testing.T) {
	m := NewMatcher(noProbe(t))

	assert.Empty(t, m.Group(nil))
	assert.Empty(t, m.Group([]model.Descriptor{}))
	// a lone record is the enumeration artifact itself
	assert.Empty(t, m.Group([]model.Descriptor{rec(0, "/only", model.TypeDirectory)}))
}

//go:build linux

package proc

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/oblaser/fdmonitor/pkg/model"
)

// ReadFdTable snapshots the descriptor table of a process by walking
// /proc/<pid>/fd. Each entry there is a symlink named after the descriptor
// number; the link text names the target and a stat on the entry (which
// follows that one symlink hop) yields its type.
//
// Entries that are not numeric or not readable as symlinks are returned as
// anomalies, not records, and never abort the pass. Raw directory order is
// kept so the caller can rely on the first entry being the handle the
// enumeration itself opened.
func ReadFdTable(pid int) (model.FdTable, error) {
	return readFdDir("/proc/" + strconv.Itoa(pid) + "/fd")
}

func readFdDir(fdDir string) (model.FdTable, error) {
	dir, err := os.Open(fdDir)
	if err != nil {
		return model.FdTable{}, fmt.Errorf("read descriptor table: %w", err)
	}
	defer dir.Close()

	// os.ReadDir would sort lexically; the unsorted form preserves the
	// order the kernel hands the entries out in.
	entries, err := dir.ReadDir(-1)
	if err != nil {
		return model.FdTable{}, fmt.Errorf("read descriptor table: %w", err)
	}

	var tab model.FdTable
	for _, e := range entries {
		entryPath := filepath.Join(fdDir, e.Name())

		n, err := strconv.ParseInt(e.Name(), 10, 32)
		if err != nil || n < 0 {
			tab.Anomalies = append(tab.Anomalies,
				fmt.Sprintf("entry %q is not a file descriptor", entryPath))
			continue
		}

		link, err := os.Readlink(entryPath)
		if err != nil {
			tab.Anomalies = append(tab.Anomalies,
				fmt.Sprintf("entry %q is not a symlink", entryPath))
			continue
		}

		typ := model.TypeUnknown
		if fi, err := os.Stat(entryPath); err == nil {
			typ = model.FileTypeFromMode(fi.Mode())
		} else if os.IsNotExist(err) {
			// target vanished between readlink and stat
			typ = model.TypeNotFound
		}

		tab.Records = append(tab.Records, model.Descriptor{
			FD:     int32(n),
			Target: model.FdTarget{Path: link, Type: typ},
		})
	}

	return tab, nil
}

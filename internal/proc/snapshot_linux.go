//go:build linux

package proc

import (
	"time"

	"github.com/oblaser/fdmonitor/internal/fdtab"
	"github.com/oblaser/fdmonitor/pkg/model"
)

// Snapshot runs one complete enumerate-and-group pass over a process's
// descriptor table. Every pass builds fresh state; nothing is shared with
// earlier passes.
func Snapshot(pid int) (model.Report, error) {
	tab, err := ReadFdTable(pid)
	if err != nil {
		return model.Report{}, err
	}

	m := fdtab.NewMatcher(SameFile)

	return model.Report{
		PID:         pid,
		Command:     GetComm(pid),
		TakenAt:     time.Now(),
		Groups:      m.Group(tab.Records),
		Anomalies:   tab.Anomalies,
		Descriptors: len(tab.Records),
	}, nil
}

// Package target resolves what the user asked for (a PID or a process name)
// into concrete PIDs.
package target

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/oblaser/fdmonitor/pkg/model"
)

// Parse classifies a positional argument: anything that parses as a positive
// integer is taken as a PID, everything else as a process name.
func Parse(arg string) model.Query {
	if pid, err := strconv.Atoi(arg); err == nil && pid > 0 {
		return model.Query{Kind: model.QueryPID, Value: arg}
	}
	return model.Query{Kind: model.QueryName, Value: arg}
}

// Resolve maps a query to the PIDs it matches. A name query can match more
// than one process; the caller decides how to handle ambiguity.
func Resolve(q model.Query) ([]int, error) {
	switch q.Kind {
	case model.QueryPID:
		return resolvePID(q.Value)
	case model.QueryName:
		return ResolveName(q.Value)
	}
	return nil, fmt.Errorf("unsupported query kind %q", q.Kind)
}

func resolvePID(value string) ([]int, error) {
	pid, err := strconv.Atoi(value)
	if err != nil || pid <= 0 {
		return nil, fmt.Errorf("%q is not a valid pid", value)
	}
	ok, err := process.PidExists(int32(pid))
	if err != nil {
		return nil, fmt.Errorf("check pid %d: %w", pid, err)
	}
	if !ok {
		return nil, fmt.Errorf("no process with pid %d", pid)
	}
	return []int{pid}, nil
}

// ResolveName finds processes whose name or command line contains the given
// string, case-insensitive. The monitor itself and its parent are excluded
// so that "fdmonitor go" style invocations never match their own toolchain.
func ResolveName(name string) ([]int, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}

	lowerName := strings.ToLower(name)
	selfPID := os.Getpid()
	parentPID := os.Getppid()

	var pids []int
	for _, p := range procs {
		pid := int(p.Pid)
		if pid == selfPID || pid == parentPID {
			continue
		}

		pname, err := p.Name()
		if err == nil && strings.Contains(strings.ToLower(pname), lowerName) {
			pids = append(pids, pid)
			continue
		}

		cmdline, err := p.Cmdline()
		if err == nil && cmdline != "" && strings.Contains(strings.ToLower(cmdline), lowerName) {
			pids = append(pids, pid)
		}
	}

	if len(pids) == 0 {
		return nil, fmt.Errorf("no running process named %q", name)
	}
	return pids, nil
}

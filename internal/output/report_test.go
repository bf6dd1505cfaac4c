package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oblaser/fdmonitor/pkg/model"
)

func TestRenderReport(t *testing.T) {
	r := model.Report{
		Groups: []model.Group{
			{Target: model.FdTarget{Path: "/var/log/app.log", Type: model.TypeRegular}, FDs: []int32{1, 2}},
			{Target: model.FdTarget{Path: "/tmp/x", Type: model.TypeFifo}, FDs: []int32{3}},
		},
	}

	var buf bytes.Buffer
	RenderReport(&buf, r, false)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, fmt.Sprintf("%-40s [%3d] 1, 2", "/var/log/app.log (regular)", 2), lines[0])
	assert.Equal(t, fmt.Sprintf("%-40s [%3d] 3", "/tmp/x (fifo)", 1), lines[1])
}

func TestRenderReportTruncatesLongFDLists(t *testing.T) {
	fds := make([]int32, 12)
	for i := range fds {
		fds[i] = int32(i + 3)
	}
	r := model.Report{
		Groups: []model.Group{
			{Target: model.FdTarget{Path: "socket:[999]", Type: model.TypeSocket}, FDs: fds},
		},
	}

	var buf bytes.Buffer
	RenderReport(&buf, r, false)

	out := buf.String()
	assert.Contains(t, out, "[ 12]")
	// only the last seven descriptors survive, behind the ellipsis
	assert.Contains(t, out, "..., 8, 9, 10, 11, 12, 13, 14")
	assert.NotContains(t, out, " 7,")
}

func TestRenderReportSanitizesHostilePaths(t *testing.T) {
	r := model.Report{
		Groups: []model.Group{
			{Target: model.FdTarget{Path: "/tmp/evil\x1b[2J", Type: model.TypeRegular}, FDs: []int32{4}},
		},
	}

	var buf bytes.Buffer
	RenderReport(&buf, r, false)

	assert.NotContains(t, buf.String(), "\x1b")
}

func TestRenderAnomalies(t *testing.T) {
	var buf bytes.Buffer
	RenderAnomalies(&buf, []string{`entry "/proc/7/fd/abc" is not a file descriptor`}, true)

	out := buf.String()
	assert.Contains(t, out, "\033[91m")
	assert.Contains(t, out, "is not a file descriptor")
}

func TestToJSON(t *testing.T) {
	r := model.Report{
		PID:     42,
		Command: "nginx",
		Groups: []model.Group{
			{Target: model.FdTarget{Path: "/dev/null", Type: model.TypeCharacter}, FDs: []int32{0, 1, 2}},
		},
		Descriptors: 4,
	}

	s, err := ToJSON(r)
	require.NoError(t, err)

	var back model.Report
	require.NoError(t, json.Unmarshal([]byte(s), &back))
	assert.Equal(t, r, back)
}

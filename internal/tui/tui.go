//go:build linux

package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/oblaser/fdmonitor/internal/output"
	"github.com/oblaser/fdmonitor/internal/proc"
	"github.com/oblaser/fdmonitor/pkg/model"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("57")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type tickMsg time.Time

// tableChromeRows is what the header, status, borders and help line take up
// around the table.
const tableChromeRows = 9

type watchModel struct {
	pid      int
	interval time.Duration

	table  table.Model
	report model.Report
	paused bool
	err    error
}

func newWatchModel(pid int, interval time.Duration) watchModel {
	m := watchModel{pid: pid, interval: interval}
	m.initTable()
	return m
}

func (m *watchModel) initTable() {
	columns := []table.Column{
		{Title: "Target", Width: 44},
		{Title: "Type", Width: 10},
		{Title: "Count", Width: 6},
		{Title: "FDs", Width: 28},
	}

	// sized properly once the first WindowSizeMsg arrives
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(true)
	t.SetStyles(s)

	m.table = t
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.refresh())
}

func (m watchModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refresh runs one full pass. Update processes the resulting message before
// the next tick is scheduled, so passes never overlap.
func (m watchModel) refresh() tea.Cmd {
	if m.paused {
		return nil
	}
	pid := m.pid
	return func() tea.Msg {
		report, err := proc.Snapshot(pid)
		if err != nil {
			return err
		}
		return report
	}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "p":
			m.paused = !m.paused
			return m, nil
		}
	case tickMsg:
		return m, tea.Batch(m.tick(), m.refresh())
	case model.Report:
		m.report = msg
		m.updateRows()
	case error:
		// the inspected process is gone; stop and let the driver report it
		m.err = msg
		return m, tea.Quit
	case tea.WindowSizeMsg:
		h := msg.Height - tableChromeRows
		if h < 3 {
			h = 3
		}
		m.table.SetHeight(h)
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *watchModel) updateRows() {
	rows := make([]table.Row, 0, len(m.report.Groups))
	for _, g := range m.report.Groups {
		rows = append(rows, table.Row{
			output.SanitizeTerminal(g.Target.Path),
			string(g.Target.Type),
			strconv.Itoa(g.Count()),
			formatFDs(g.FDs),
		})
	}
	m.table.SetRows(rows)
}

// formatFDs shows at most the trailing seven descriptors, matching the
// one-shot report's truncation.
func formatFDs(fds []int32) string {
	const maxShown = 7

	var b strings.Builder
	begin := 0
	if len(fds) > maxShown {
		begin = len(fds) - maxShown
		b.WriteString("... ")
	}
	for i := begin; i < len(fds); i++ {
		if i > begin {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(int(fds[i])))
	}
	return b.String()
}

func (m watchModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf(" fdmonitor · pid %d (%s) ", m.pid, output.SanitizeTerminal(m.report.Command))
	status := fmt.Sprintf("%d descriptors, %d targets", m.report.Descriptors, len(m.report.Groups))
	if m.paused {
		status += "  [paused]"
	}
	b.WriteString(headerStyle.Render(title) + "\n")
	b.WriteString("  " + status + "\n\n")

	b.WriteString(baseStyle.Render(m.table.View()) + "\n")

	for _, a := range m.report.Anomalies {
		b.WriteString(warningStyle.Render("  "+output.SanitizeTerminal(a)) + "\n")
	}

	b.WriteString(helpStyle.Render("\n  q: quit • p: pause") + "\n")

	return b.String()
}

// Run starts the live watch mode, refreshing the descriptor report on the
// given interval until the user quits or the process disappears.
func Run(pid int, interval time.Duration) error {
	p := tea.NewProgram(newWatchModel(pid, interval), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(watchModel); ok && m.err != nil {
		return m.err
	}
	return nil
}

//go:build linux

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/oblaser/fdmonitor/internal/output"
	procpkg "github.com/oblaser/fdmonitor/internal/proc"
	"github.com/oblaser/fdmonitor/internal/target"
	"github.com/oblaser/fdmonitor/internal/tui"
	"github.com/oblaser/fdmonitor/pkg/model"
)

var version = "dev"
var commit = ""
var buildDate = ""

func printHelp() {
	fmt.Println("Usage: fdmonitor (name | pid) [--watch] [--interval <dur>] [--json] [--no-color] [--help] [--version]")
	fmt.Println("  --watch           Live view, refreshed every interval")
	fmt.Println("  --interval <dur>  Refresh interval for --watch (default 1s)")
	fmt.Println("  --json            Output one report as JSON")
	fmt.Println("  --no-color        Disable colorized output")
	fmt.Println("  --help            Show this help message")
	fmt.Println("  --version         Show version and exit")
}

// Helper: which flags need a value (not bool flags)?
func flagNeedsValue(flag string) bool {
	switch flag {
	case "--interval", "-interval":
		return true
	}
	return false
}

// reorderArgs moves all flags (with their values) before positional arguments
// so the flag package accepts "fdmonitor nginx --watch" style invocations.
func reorderArgs(args []string) []string {
	reordered := []string{args[0]}
	var positionals []string
	i := 1
	for i < len(args) {
		arg := args[i]
		if len(arg) > 0 && arg[0] == '-' {
			reordered = append(reordered, arg)
			// an empty next argument is still a value, not a flag
			if flagNeedsValue(arg) && i+1 < len(args) && (len(args[i+1]) == 0 || args[i+1][0] != '-') {
				reordered = append(reordered, args[i+1])
				i++
			}
		} else {
			positionals = append(positionals, arg)
		}
		i++
	}
	return append(reordered, positionals...)
}

func main() {
	os.Args = reorderArgs(os.Args)

	watchFlag := flag.Bool("watch", false, "live view, refreshed every interval")
	intervalFlag := flag.Duration("interval", time.Second, "refresh interval for --watch")
	jsonFlag := flag.Bool("json", false, "output as JSON")
	noColorFlag := flag.Bool("no-color", false, "disable colorized output")
	helpFlag := flag.Bool("help", false, "show help")
	versionFlag := flag.Bool("version", false, "show version and exit")

	flag.Parse()

	if *versionFlag {
		fmt.Printf("fdmonitor %s (commit %s, built %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	if *helpFlag {
		printHelp()
		os.Exit(0)
	}

	if len(flag.Args()) != 1 {
		printHelp()
		os.Exit(1)
	}

	// warnings quote strings read from /proc, keep them terminal-safe
	logger := log.New(output.NewSafeTerminalWriter(os.Stderr))

	q := target.Parse(flag.Args()[0])

	pids, err := target.Resolve(q)
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}

	if len(pids) > 1 {
		fmt.Print("Multiple matching processes found:\n\n")
		p := output.NewPrinter(os.Stdout)
		for i, pid := range pids {
			p.Printf("[%d] PID %d   %s\n", i+1, pid, procpkg.GetCmdline(pid))
		}
		fmt.Println("\nRe-run with an explicit PID:")
		fmt.Println("  fdmonitor <pid>")
		os.Exit(1)
	}
	pid := pids[0]

	if q.Kind == model.QueryName && !*jsonFlag && !*watchFlag {
		p := output.NewPrinter(os.Stdout)
		p.Printf("found process %q with PID %d\n", q.Value, pid)
	}

	if *watchFlag {
		if err := tui.Run(pid, *intervalFlag); err != nil {
			logger.Error(err)
			os.Exit(1)
		}
		return
	}

	report, err := procpkg.Snapshot(pid)
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}

	// unreadable fd entries render like the report itself, red on stderr
	output.RenderAnomalies(os.Stderr, report.Anomalies, !*noColorFlag)

	if *jsonFlag {
		s, err := output.ToJSON(report)
		if err != nil {
			logger.Error(err)
			os.Exit(1)
		}
		fmt.Println(s)
		return
	}

	output.RenderReport(os.Stdout, report, !*noColorFlag)
}

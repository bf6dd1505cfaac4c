package output

import (
	"io"

	"github.com/oblaser/fdmonitor/pkg/model"
)

var (
	colorResetReport = ansiString("\033[0m")
	colorRedReport   = ansiString("\033[91m")
	colorBoldReport  = ansiString("\033[2m")
)

// maxShownFDs caps how many descriptor numbers are printed per group; longer
// lists keep only the trailing ones behind an ellipsis. Presentation only,
// the groups themselves always hold every descriptor.
const maxShownFDs = 7

// RenderReport writes one pass's groups, one line per target:
//
//	/var/log/app.log (regular)               [  2] 1, 2
func RenderReport(w io.Writer, r model.Report, colorEnabled bool) {
	p := NewPrinter(w)

	for _, g := range r.Groups {
		p.Printf("%-40s ", g.Target.Label())
		if colorEnabled {
			p.Printf("%s[%3d]%s ", colorBoldReport, g.Count(), colorResetReport)
		} else {
			p.Printf("[%3d] ", g.Count())
		}

		begin := 0
		if len(g.FDs) > maxShownFDs {
			begin = len(g.FDs) - maxShownFDs
			p.Print("...")
		}
		for i := begin; i < len(g.FDs); i++ {
			if i > 0 {
				p.Print(", ")
			}
			p.Printf("%d", g.FDs[i])
		}
		p.Println()
	}
}

// RenderAnomalies writes enumeration warnings, red when color is enabled.
func RenderAnomalies(w io.Writer, anomalies []string, colorEnabled bool) {
	p := NewPrinter(w)

	for _, a := range anomalies {
		if colorEnabled {
			p.Printf("%s%s%s\n", colorRedReport, a, colorResetReport)
		} else {
			p.Printf("%s\n", a)
		}
	}
}

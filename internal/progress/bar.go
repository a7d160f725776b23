// Package progress formats the lines drawn by the demo workloads.
package progress

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// BarWidth is the number of cells between the brackets.
const BarWidth = 50

// Bar renders label with a progress bar for fraction, clamped to [0, 1].
//
//	Download 3: [========================>                         ] 50.0%
func Bar(label string, fraction float64) string {
	fraction = min(max(fraction, 0), 1)
	filled := strings.Repeat("=", int(fraction*float64(BarWidth-1))) + ">"
	return fmt.Sprintf("%s: [%-*s] %.1f%%", label, BarWidth, filled, fraction*100)
}

// Complete renders the final line for label, colored when profile allows.
func Complete(label string, profile termenv.Profile) string {
	return termenv.String(label + ": Complete").Foreground(profile.Color("4")).String()
}

// Failed renders the line shown when a workload stops with err.
func Failed(label string, err error, profile termenv.Profile) string {
	return termenv.String(fmt.Sprintf("%s: %v", label, err)).Foreground(profile.Color("1")).String()
}

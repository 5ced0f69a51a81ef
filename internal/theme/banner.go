package theme

import (
	"fmt"
	"io"
)

// Banner returns the CLI banner. Color adds ANSI escapes for terminals.
func Banner(color bool) string {
	cyan, magenta, reset := "", "", ""
	if color {
		cyan, magenta, reset = "\033[36m", "\033[35m", "\033[0m"
	}

	return "" +
		"  " + magenta + "FOLLOWGRAPH" + reset + "\n" +
		cyan + "   @ ──▶ @ ──▶ @\n" + reset +
		cyan + "     ╲       ╱\n" + reset +
		cyan + "      ▶  @  ◀\n" + reset +
		"   who follows whom, guessed from @-mentions\n"
}

// PrintBanner writes the colored banner to w.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, Banner(true))
}

package display

import (
	"fmt"
	"os"

	"github.com/skyfold/fitspect/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, `  _____ _ _                       _
 |  ___(_) |_ ___ _ __   ___  ___| |_
 | |_  | | __/ __| '_ \ / _ \/ __| __|
 |  _| | | |_\__ \ |_) |  __/ (__| |_
 |_|   |_|\__|___/ .__/ \___|\___|\__|
                 |_|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}

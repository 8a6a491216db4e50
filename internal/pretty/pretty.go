// Terminal color handling for the report.
package pretty

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Theme holds the accent colors used by the renderer. The enabled state is
// decided once at startup and threaded through; nothing re-checks the
// terminal per row.
type Theme struct {
	Added   *color.Color
	Removed *color.Color
}

// NewTheme builds a theme according to the given color mode ("always",
// "never", or anything else for auto). Auto enables color only when stdout
// is a terminal and NO_COLOR is unset.
func NewTheme(mode string) Theme {
	var enabled bool
	switch mode {
	case "always":
		enabled = true
	case "never":
		enabled = false
	default:
		_, noColor := os.LookupEnv("NO_COLOR")
		enabled = !noColor && allowDynamic(os.Stdout)
	}

	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)

	if enabled {
		added.EnableColor()
		removed.EnableColor()
	} else {
		added.DisableColor()
		removed.DisableColor()
	}

	return Theme{
		Added:   added,
		Removed: removed,
	}
}

func allowDynamic(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

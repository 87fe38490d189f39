package display

import (
	"fmt"
	"io"

	"github.com/backmassage/webpsweep/internal/term"
)

// PrintBanner writes the ASCII art banner to w; uses Magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta)
	fmt.Fprint(w, `               _
__      _____| |__  _ __  _____      _____  ___ _ __
\ \ /\ / / _ \ '_ \| '_ \/ __\ \ /\ / / _ \/ _ \ '_ \
 \ V  V /  __/ |_) | |_) \__ \\ V  V /  __/  __/ |_) |
  \_/\_/ \___|_.__/| .__/|___/ \_/\_/ \___|\___| .__/
                   |_|                         |_|
`)
	fmt.Fprint(w, term.NC)
}

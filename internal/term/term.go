// Package term holds the ANSI escape state shared by logging and display.
//
// The color variables are empty until [Configure] enables them, so callers
// concatenate them unconditionally.
package term

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/backmassage/webpsweep/internal/config"
)

// Escape sequences in use. Empty when colors are off.
var (
	Red     string // ERROR level
	Green   string // success lines
	Yellow  string // WARN level
	Blue    string // INFO level
	Cyan    string // DEBUG level
	Magenta string // banner
	NC      string // reset
)

const (
	ansiRed     = "\033[1;91m"
	ansiGreen   = "\033[1;92m"
	ansiYellow  = "\033[1;93m"
	ansiBlue    = "\033[1;94m"
	ansiMagenta = "\033[1;95m"
	ansiCyan    = "\033[1;96m"
	ansiReset   = "\033[0m"
)

// Configure turns colors on or off for mode. Auto enables them only when
// stdout is a terminal, NO_COLOR is unset, and TERM is not "dumb".
func Configure(mode config.ColorMode) {
	on := mode == config.ColorAlways
	if mode == config.ColorAuto {
		on = IsTerminal(os.Stdout) && os.Getenv("NO_COLOR") == "" &&
			!strings.EqualFold(os.Getenv("TERM"), "dumb")
	}
	if !on {
		Red, Green, Yellow, Blue, Cyan, Magenta, NC = "", "", "", "", "", "", ""
		return
	}
	Red, Green, Yellow, Blue = ansiRed, ansiGreen, ansiYellow, ansiBlue
	Cyan, Magenta, NC = ansiCyan, ansiMagenta, ansiReset
}

// Enabled reports whether colors are on.
func Enabled() bool { return NC != "" }

// IsTerminal reports whether f is a TTY, Cygwin/MSYS pty included.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Package display formats sizes for progress lines and the run summary.
package display

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

const (
	kilobyte = 1024
	megabyte = 1024 * 1024
)

// FormatKB renders bytes as kilobytes with two decimals, e.g. "488.28KB".
// Negative values keep their sign.
func FormatKB(bytes int64) string {
	return fmt.Sprintf("%.2fKB", float64(bytes)/kilobyte)
}

// FormatMB renders bytes as megabytes with two decimals, e.g. "1.50 MB".
// Negative values keep their sign.
func FormatMB(bytes int64) string {
	return fmt.Sprintf("%.2f MB", float64(bytes)/megabyte)
}

// FormatBytes returns a human-readable IEC size (B, KiB, MiB, ...).
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		return "-" + humanize.IBytes(uint64(-bytes))
	}
	return humanize.IBytes(uint64(bytes))
}

// FormatBytesWithSign prefixes with + or - for delta display (e.g. "- 1.2 MiB").
func FormatBytesWithSign(bytes int64) string {
	switch {
	case bytes > 0:
		return "+ " + FormatBytes(bytes)
	case bytes < 0:
		return "- " + FormatBytes(-bytes)
	default:
		return FormatBytes(0)
	}
}

// FormatDimensions returns "WxH".
func FormatDimensions(w, h int) string {
	return fmt.Sprintf("%dx%d", w, h)
}

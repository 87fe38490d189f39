// Package config holds runtime configuration: defaults, positional argument
// handling, and validation. Defaults are a 1920px longest edge at WebP
// quality 85.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// OutputExt is the only supported output format: lossy WebP.
const OutputExt = ".webp"

// Config holds all runtime settings. It is populated by [DefaultConfig],
// completed by [ApplyArgs], and passed by pointer to packages that need it.
// It is the single source of truth for root, dimension cap, quality,
// allowed extensions, and output format.
type Config struct {
	// Scan root (set from the positional arg).
	Root string `validate:"required"`

	// Re-encode settings.
	MaxDimension int      `validate:"gt=0"`                // Default: 1920. Longest-edge cap in pixels.
	Quality      int      `validate:"gte=0,lte=100"`       // Default: 85.
	Extensions   []string `validate:"min=1,dive,required"` // Default: .png .jpg .jpeg .webp
	OutputExt    string   `validate:"required"`            // Fixed: ".webp".

	// Apply EXIF orientation on decode. Default: false, pixels are used as
	// stored.
	AutoOrient bool

	// Behavior flags.
	DryRun bool // Decode and plan only; write and delete nothing.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with the fixed batch parameters.
// Root defaults to the current directory.
func DefaultConfig() Config {
	return Config{
		Root:         ".",
		MaxDimension: 1920,
		Quality:      85,
		Extensions:   []string{".png", ".jpg", ".jpeg", ".webp"},
		OutputExt:    OutputExt,
		ColorMode:    ColorAuto,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks numeric ranges and enums, and canonicalizes extensions to
// lowercase with a leading dot.
func (c *Config) Validate() error {
	c.OutputExt = NormalizeExt(c.OutputExt)
	exts := make([]string, 0, len(c.Extensions))
	for _, e := range c.Extensions {
		if n := NormalizeExt(e); n != "" {
			exts = append(exts, n)
		}
	}
	c.Extensions = exts

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid %s: failed %q constraint (value %v)", fe.Field(), fe.ActualTag(), fe.Value())
		}
		return err
	}

	if c.OutputExt != OutputExt {
		return fmt.Errorf("invalid output format %q (only %s is supported)", c.OutputExt, OutputExt)
	}
	// Existing outputs are only protected from overwrite when discovery sees them.
	if !slices.Contains(c.Extensions, c.OutputExt) {
		return fmt.Errorf("extensions must include %s", c.OutputExt)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
	return nil
}

// ExtensionSet returns the allowed source extensions as a lookup set.
// Call after [Config.Validate] so entries are canonical.
func (c *Config) ExtensionSet() map[string]bool {
	set := make(map[string]bool, len(c.Extensions))
	for _, e := range c.Extensions {
		set[e] = true
	}
	return set
}

// NormalizeExt lowercases ext and ensures a single leading dot.
// Blank input yields "".
func NormalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	ext = strings.TrimLeft(ext, ".")
	if ext == "" {
		return ""
	}
	return "." + ext
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

package config

import (
	"fmt"
	"os"
	"strings"
)

// ApplyArgs sets the scan root from positional arguments (os.Args[1:]).
// There are no flags: zero args keeps the default root, one arg replaces
// it, anything else is an error. Environment overrides (NO_COLOR,
// WEBPSWEEP_LOG, WEBPSWEEP_VERBOSE, WEBPSWEEP_DRY_RUN, WEBPSWEEP_AUTO_ORIENT)
// are applied afterwards.
func ApplyArgs(cfg *Config, args []string) error {
	switch len(args) {
	case 0:
	case 1:
		if strings.HasPrefix(args[0], "-") {
			return fmt.Errorf("unexpected flag %q (usage: webpsweep [root_dir])", args[0])
		}
		cfg.Root = NormalizeDirArg(args[0])
	default:
		return fmt.Errorf("need at most one root_dir, got %d arguments", len(args))
	}

	if os.Getenv("NO_COLOR") != "" {
		cfg.ColorMode = ColorNever
	}
	if p := os.Getenv("WEBPSWEEP_LOG"); p != "" {
		cfg.LogFile = p
	}
	if os.Getenv("WEBPSWEEP_VERBOSE") != "" {
		cfg.Verbose = true
	}
	if os.Getenv("WEBPSWEEP_DRY_RUN") != "" {
		cfg.DryRun = true
	}
	if os.Getenv("WEBPSWEEP_AUTO_ORIENT") != "" {
		cfg.AutoOrient = true
	}
	return nil
}

// Command webpsweep re-encodes every PNG, JPEG and WebP image under a
// directory tree to size-capped lossy WebP, replacing originals in place.
//
// Usage:
//
//	webpsweep [DIR]
//
// DIR defaults to the current directory. There are no flags; behavior is
// tuned through the environment:
//
//	WEBPSWEEP_LOG          also append the log to this file
//	WEBPSWEEP_VERBOSE      per-file debug lines
//	WEBPSWEEP_DRY_RUN      decode and encode but write nothing
//	WEBPSWEEP_AUTO_ORIENT  apply EXIF orientation before resizing
//	NO_COLOR               disable ANSI colors
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/afero"

	"github.com/backmassage/webpsweep/internal/check"
	"github.com/backmassage/webpsweep/internal/codec"
	"github.com/backmassage/webpsweep/internal/config"
	"github.com/backmassage/webpsweep/internal/display"
	"github.com/backmassage/webpsweep/internal/logging"
	"github.com/backmassage/webpsweep/internal/pipeline"
)

// version is injected at build time via -ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. Errors go straight to stderr until the logger exists.
	cfg := config.DefaultConfig()
	if err := config.ApplyArgs(&cfg, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "webpsweep: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "webpsweep: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "webpsweep: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available.
	display.PrintBanner(os.Stdout)

	root, err := absPath(cfg.Root)
	if err != nil {
		log.Error("Directory not found: %s", cfg.Root)
		return 1
	}
	cfg.Root = root

	log.Info("=== webpsweep %s ===", version)
	log.Info("Dir: %s", cfg.Root)

	// Fail fast if the WebP encoder cannot round-trip a tiny image.
	c := codec.NewWebP(cfg.AutoOrient)
	if err := check.CheckCodec(c, cfg.Quality); err != nil {
		log.Error("%v", err)
		return 1
	}

	// Phase 3: Stop between files on SIGINT/SIGTERM.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file")
		cancel()
	}()

	// Phase 4: discover → probe → plan → encode → commit.
	stats, err := pipeline.Run(ctx, &cfg, afero.NewOsFs(), c, log)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	if stats.Interrupted {
		return 130
	}
	return 0
}

// absPath returns the absolute, symlink-resolved form of path.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

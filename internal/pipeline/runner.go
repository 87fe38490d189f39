package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/backmassage/webpsweep/internal/check"
	"github.com/backmassage/webpsweep/internal/codec"
	"github.com/backmassage/webpsweep/internal/config"
	"github.com/backmassage/webpsweep/internal/display"
	"github.com/backmassage/webpsweep/internal/logging"
	"github.com/backmassage/webpsweep/internal/naming"
	"github.com/backmassage/webpsweep/internal/planner"
	"github.com/backmassage/webpsweep/internal/probe"
)

// batch carries the collaborators shared by every file in a run.
type batch struct {
	cfg    *config.Config
	fs     afero.Fs
	codec  codec.Codec
	log    *logging.Logger
	claims *naming.TargetClaims
}

// Run is the top-level batch entry point. It validates the scan root,
// discovers candidates, processes each one sequentially, logs the summary,
// and returns aggregate stats.
//
// The returned error is non-nil only when the root cannot be scanned; every
// per-file failure is recorded in the stats instead. Cancelling ctx stops
// the run between files and sets RunStats.Interrupted.
func Run(ctx context.Context, cfg *config.Config, fs afero.Fs, c codec.Codec, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	if err := check.CheckRoot(fs, cfg.Root); err != nil {
		return stats, err
	}

	files, unreadable, err := Discover(fs, cfg.Root, cfg.ExtensionSet())
	if err != nil {
		return stats, fmt.Errorf("discover %s: %w", cfg.Root, err)
	}
	for _, dir := range unreadable {
		log.Warn("Cannot read directory, skipping: %s", dir)
	}

	stats.Total = len(files)
	b := &batch{
		cfg:    cfg,
		fs:     fs,
		codec:  c,
		log:    log,
		claims: naming.NewTargetClaims(files, cfg.OutputExt),
	}

	logBatchHeader(cfg, log, &stats)

	for i, path := range files {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			stats.Interrupted = true
			break
		}
		stats.Current = i + 1
		stats.Add(b.processFile(path, &stats))
	}

	logSummary(cfg, log, &stats)
	return stats, nil
}

// processFile handles one candidate: stat → probe → plan → decode → resize
// → normalize → encode → commit → remove original. The original is only
// touched after the target has been committed.
func (b *batch) processFile(path string, stats *RunStats) Outcome {
	out := Outcome{Path: path}
	name := filepath.Base(path)

	fi, err := b.fs.Stat(path)
	if err != nil {
		return b.fail(out, StageStat, err)
	}
	out.OriginalSize = fi.Size()

	info, err := probe.InspectFile(b.fs, path)
	if err != nil {
		return b.fail(out, StageDecode, err)
	}
	out.Width, out.Height = info.Width, info.Height
	b.log.Debug("[%d/%d] %s (%s %s)", stats.Current, stats.Total, name, info.Format, info.Resolution())

	plan := planner.BuildPlan(b.cfg, path, info)
	out.Target = plan.TargetPath
	if plan.Action == planner.ActionSkip {
		return b.skip(out, plan.SkipReason, false)
	}
	if owner, ok := b.claims.Claim(path, plan.TargetPath); !ok {
		return b.skip(out, fmt.Sprintf("%s already targeted by %s", filepath.Base(plan.TargetPath), filepath.Base(owner)), true)
	}

	data, err := afero.ReadFile(b.fs, path)
	if err != nil {
		return b.fail(out, StageDecode, err)
	}
	img, err := b.codec.Decode(data)
	if err != nil {
		return b.fail(out, StageDecode, err)
	}

	// EXIF orientation may have swapped the header's axes, so the target
	// geometry is taken from the decoded pixels.
	tw, th, resize := planner.TargetDimensions(img.Width(), img.Height(), b.cfg.MaxDimension)
	if resize {
		b.log.Debug("  Resize %s -> %s", display.FormatDimensions(img.Width(), img.Height()),
			display.FormatDimensions(tw, th))
		img = b.codec.Resize(img, tw, th)
	}
	if plan.NormalizeAlpha {
		if img, err = b.codec.ConvertMode(img, probe.ModeAlpha); err != nil {
			return b.fail(out, StageNormalize, err)
		}
	}
	out.NewWidth, out.NewHeight = img.Width(), img.Height()

	var buf bytes.Buffer
	opts := codec.EncodeOptions{Quality: plan.Quality, Optimize: true}
	if err := b.codec.Encode(&buf, img, opts); err != nil {
		return b.fail(out, StageEncode, err)
	}

	if b.cfg.DryRun {
		out.Status = StatusConverted
		out.DryRun = true
		out.NewSize = int64(buf.Len())
		b.log.Success("[DRY] Would compress %s: %s -> %s (~%s)", name,
			display.FormatKB(out.OriginalSize), display.FormatKB(out.NewSize), filepath.Base(plan.TargetPath))
		return out
	}

	if err := commitFile(b.fs, plan.TargetPath, buf.Bytes(), fi.Mode().Perm()); err != nil {
		return b.fail(out, StageCommit, err)
	}

	out.Status = StatusConverted
	out.NewSize = int64(buf.Len())
	if ti, err := b.fs.Stat(plan.TargetPath); err == nil {
		out.NewSize = ti.Size()
	}
	b.log.Success("Compressed %s: %s -> %s (Saved %s)", name,
		display.FormatKB(out.OriginalSize), display.FormatKB(out.NewSize), display.FormatKB(out.Saved()))

	if !plan.InPlace {
		if err := b.fs.Remove(path); err != nil {
			out.CleanupErr = &StageError{Stage: StageCleanup, Path: path, Err: err}
			b.log.Warn("Converted %s but could not remove original: %v", name, err)
		}
	}
	return out
}

func (b *batch) fail(out Outcome, stage Stage, err error) Outcome {
	out.Status = StatusFailed
	out.Err = &StageError{Stage: stage, Path: out.Path, Err: err}
	b.log.Error("Error processing %s: %s: %v", filepath.Base(out.Path), stage, err)
	return out
}

func (b *batch) skip(out Outcome, reason string, warn bool) Outcome {
	out.Status = StatusSkipped
	out.SkipReason = reason
	if warn {
		b.log.Warn("Skip %s: %s", filepath.Base(out.Path), reason)
	} else {
		b.log.Debug("Skip %s: %s", filepath.Base(out.Path), reason)
	}
	return out
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Found %d images under %s", stats.Total, cfg.Root)
	log.Info("Output: %s, quality %d, max dimension %dpx",
		strings.ToUpper(strings.TrimPrefix(cfg.OutputExt, ".")), cfg.Quality, cfg.MaxDimension)
	if cfg.AutoOrient {
		log.Info("Orientation: apply EXIF rotation before resizing")
	}
	if cfg.DryRun {
		log.Info("Dry run: nothing will be written or removed")
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d converted, %d skipped, %d failed", stats.Converted, stats.Skipped, stats.Failed)
	log.Info("  Total files processed: %d of %d", stats.Current, stats.Total)

	for _, o := range stats.Failures {
		log.Info("  Failed: %s (%s)", o.Path, o.Err.Stage)
	}
	if stats.CleanupFailed > 0 {
		log.Warn("  %d original(s) could not be removed after conversion", stats.CleanupFailed)
	}

	if cfg.DryRun {
		log.Info("Compression complete. Total space saved: n/a (dry run)")
		return
	}

	saved := stats.SpaceSaved()
	if saved >= 0 {
		log.Success("Compression complete. Total space saved: %s", display.FormatMB(saved))
	} else {
		log.Warn("Compression complete. Total space saved: %s (overall output is larger)", display.FormatMB(saved))
	}
	log.Info("  Input %s -> output %s (%s)",
		display.FormatBytes(stats.TotalInputBytes), display.FormatBytes(stats.TotalOutputBytes),
		display.FormatBytesWithSign(stats.TotalOutputBytes-stats.TotalInputBytes))
}

package planner

import (
	"fmt"
	"strings"

	"github.com/backmassage/webpsweep/internal/config"
	"github.com/backmassage/webpsweep/internal/naming"
	"github.com/backmassage/webpsweep/internal/probe"
)

// BuildPlan produces a complete FilePlan for the image at path. This is the
// decision matrix the pipeline calls for every candidate.
//
// Flow:
//  1. Resolve target path (extension swap, same-path for existing WebP)
//  2. Compute target geometry under the longest-edge cap
//  3. Decide alpha normalization from the color mode
//  4. Skip in-place WebP that is already within the cap, so reruns are
//     idempotent
func BuildPlan(cfg *config.Config, path string, info *probe.ImageInfo) *FilePlan {
	plan := &FilePlan{
		Action:       ActionConvert,
		SourceFormat: info.Format,
		Mode:         info.Mode,
		Width:        info.Width,
		Height:       info.Height,
		Quality:      cfg.Quality,
		InputPath:    path,
	}

	// --- 1. Target path ---
	plan.TargetPath = naming.TargetPath(path, cfg.OutputExt)
	plan.InPlace = plan.TargetPath == path

	// --- 2. Geometry ---
	plan.TargetWidth, plan.TargetHeight, plan.Resize = TargetDimensions(info.Width, info.Height, cfg.MaxDimension)

	// --- 3. Color mode ---
	plan.NormalizeAlpha = NeedsAlphaNormalization(info.Mode)

	// --- 4. Idempotent rerun ---
	if plan.InPlace && !plan.Resize && strings.EqualFold(info.Format, strings.TrimPrefix(cfg.OutputExt, ".")) {
		plan.Action = ActionSkip
		plan.SkipReason = fmt.Sprintf("already %s within %dpx", info.Format, cfg.MaxDimension)
	}
	return plan
}

// NeedsAlphaNormalization reports whether images in mode must be converted
// to a full-alpha pixel format before resize and encode.
func NeedsAlphaNormalization(mode probe.ColorMode) bool {
	return mode == probe.ModeAlpha || mode == probe.ModePalette
}

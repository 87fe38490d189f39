package planner

import "github.com/backmassage/webpsweep/internal/probe"

// Action describes the per-file processing decision.
type Action int

const (
	ActionConvert Action = iota
	ActionSkip
)

func (a Action) String() string {
	switch a {
	case ActionConvert:
		return "convert"
	case ActionSkip:
		return "skip"
	}
	return "unknown"
}

// FilePlan holds the complete set of decisions for processing one image.
// It is produced by BuildPlan from config and header data and consumed by
// the pipeline.
type FilePlan struct {
	Action     Action
	SkipReason string

	// Source (from probe).
	SourceFormat string
	Mode         probe.ColorMode
	Width        int
	Height       int

	// Geometry. TargetWidth/TargetHeight equal Width/Height unless Resize.
	Resize       bool
	TargetWidth  int
	TargetHeight int

	// Convert palette/alpha sources to NRGBA before encoding so transparency
	// survives resampling and the encoder.
	NormalizeAlpha bool

	// Encoding.
	Quality int

	// Paths. InPlace means TargetPath == InputPath and the original must not
	// be deleted after commit.
	InputPath  string
	TargetPath string
	InPlace    bool
}

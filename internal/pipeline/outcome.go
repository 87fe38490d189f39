package pipeline

import "fmt"

// Status is the terminal state of one candidate.
type Status int

const (
	StatusConverted Status = iota
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusConverted:
		return "converted"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Stage names the processing step a failure happened in.
type Stage int

const (
	StageStat      Stage = iota // Reading the original's size.
	StageDecode                 // Header probe, read, or pixel decode.
	StageNormalize              // Color mode conversion.
	StageEncode                 // Encoding to the output format.
	StageCommit                 // Temp write + rename onto the target.
	StageCleanup                // Removing the original after commit.
)

var stageNames = map[Stage]string{
	StageStat:      "stat",
	StageDecode:    "decode",
	StageNormalize: "normalize",
	StageEncode:    "encode",
	StageCommit:    "commit",
	StageCleanup:   "cleanup",
}

func (s Stage) String() string {
	if n, ok := stageNames[s]; ok {
		return n
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// StageError is a per-file failure tagged with the stage it happened in.
type StageError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Outcome is the typed result of processing one candidate.
//
// A Converted outcome with a non-nil CleanupErr means the target is valid
// and counted, but the original could not be removed.
type Outcome struct {
	Path       string
	Target     string
	Status     Status
	SkipReason string

	OriginalSize int64
	NewSize      int64

	Width     int
	Height    int
	NewWidth  int
	NewHeight int

	DryRun     bool
	Err        *StageError // Set when Status == StatusFailed.
	CleanupErr *StageError // Set when the original could not be removed.
}

// Saved returns OriginalSize - NewSize for committed conversions, which may
// be negative when the output grew. It is zero for every other outcome.
func (o *Outcome) Saved() int64 {
	if o.Status != StatusConverted || o.DryRun {
		return 0
	}
	return o.OriginalSize - o.NewSize
}

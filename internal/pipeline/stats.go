package pipeline

// RunStats tracks aggregate counters and byte totals across a batch run.
// It is built by folding each Outcome in with Add.
type RunStats struct {
	Total         int
	Current       int
	Converted     int
	Skipped       int
	Failed        int
	CleanupFailed int
	Interrupted   bool

	TotalInputBytes  int64
	TotalOutputBytes int64

	// Failures keeps failed outcomes in processing order for the summary.
	Failures []Outcome
}

// Add folds one outcome into the tally. Byte totals only include committed
// conversions, so SpaceSaved equals the sum of per-file Saved values.
func (s *RunStats) Add(o Outcome) {
	switch o.Status {
	case StatusConverted:
		s.Converted++
		if !o.DryRun {
			s.TotalInputBytes += o.OriginalSize
			s.TotalOutputBytes += o.NewSize
		}
		if o.CleanupErr != nil {
			s.CleanupFailed++
		}
	case StatusSkipped:
		s.Skipped++
	case StatusFailed:
		s.Failed++
		s.Failures = append(s.Failures, o)
	}
}

// SpaceSaved returns the aggregate byte difference between inputs and outputs.
// Positive means outputs are smaller; negative means they grew.
func (s *RunStats) SpaceSaved() int64 {
	return s.TotalInputBytes - s.TotalOutputBytes
}

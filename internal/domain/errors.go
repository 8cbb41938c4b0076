package domain

import "fmt"

// MalformedIntervalError reports an interval whose start/end fields are
// non-numeric or reversed (start >= end). Raised in every validation mode:
// the affected day's path and summary computation aborts rather than
// producing partially wrong geometry.
type MalformedIntervalError struct {
	Index int
	Start float64
	End   float64
}

func (e *MalformedIntervalError) Error() string {
	return fmt.Sprintf("malformed interval at index %d: start=%v end=%v", e.Index, e.Start, e.End)
}

// OutOfBoundsError reports an interval outside the 24-hour day frame.
// Only raised in strict validation mode; permissive mode renders such
// intervals as-is, possibly outside the nominal frame.
type OutOfBoundsError struct {
	Index int
	Start float64
	End   float64
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("interval at index %d outside 24-hour frame: start=%v end=%v", e.Index, e.Start, e.End)
}

// OverlapError reports two intervals overlapping in time. Only raised in
// strict validation mode; permissive mode tolerates overlap, double-counting
// it in summaries.
type OverlapError struct {
	FirstIndex  int
	SecondIndex int
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("intervals at indexes %d and %d overlap", e.FirstIndex, e.SecondIndex)
}

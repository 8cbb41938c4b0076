package services

import (
	"hos-log-service/internal/domain"
	"math"
	"slices"
)

// ValidationMode selects how much bad interval data the engine rejects.
//
// Permissive is the default: overlapping and out-of-frame intervals pass
// through and render as given, which may produce a visually contradictory
// path. Strict rejects them up front for callers that want to fail fast on
// data-quality problems. Reversed or non-numeric intervals are rejected in
// both modes.
type ValidationMode int

const (
	Permissive ValidationMode = iota
	Strict
)

// OrderIntervals establishes the canonical ordering of a day's duty
// intervals: ascending by start, stable on ties so colliding starts (bad
// data) still render deterministically. The input slice is not mutated.
func OrderIntervals(intervals []domain.DutyInterval, mode ValidationMode) ([]domain.DutyInterval, error) {
	for i, iv := range intervals {
		if math.IsNaN(iv.Start) || math.IsNaN(iv.End) || iv.Start >= iv.End {
			return nil, &domain.MalformedIntervalError{Index: i, Start: iv.Start, End: iv.End}
		}

		if mode == Strict && (iv.Start < 0 || iv.End > 24) {
			return nil, &domain.OutOfBoundsError{Index: i, Start: iv.Start, End: iv.End}
		}
	}

	ordered := make([]domain.DutyInterval, len(intervals))
	copy(ordered, intervals)

	slices.SortStableFunc(ordered, func(a, b domain.DutyInterval) int {
		if a.Start < b.Start {
			return -1
		}
		if a.Start > b.Start {
			return 1
		}
		return 0
	})

	if mode == Strict {
		for i := 1; i < len(ordered); i++ {
			if ordered[i-1].End > ordered[i].Start {
				return nil, &domain.OverlapError{FirstIndex: i - 1, SecondIndex: i}
			}
		}
	}

	return ordered, nil
}

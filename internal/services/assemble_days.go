package services

import (
	"fmt"
	"hos-log-service/internal/domain"
	"slices"
)

// DayView packages one day's computed log artifacts for the presentation
// layer: the original day labeling plus the derived path and summary.
type DayView struct {
	DayNumber int
	Date      string
	Path      domain.TimelinePath
	Summary   domain.DailySummary
}

// AssembleOptions carries the validation and path policies applied per day.
type AssembleOptions struct {
	Mode ValidationMode
	Path PathOptions
}

// AssembleDays runs the full per-day pipeline (order, path, summary) over a
// trip's day logs and returns views in day order. Days are re-sorted by day
// number defensively in case the transport layer reordered them. The
// assembler holds no state between calls: every run recomputes fully from
// the supplied logs, which is fine at trip scale (a handful of days, dozens
// of intervals each).
//
// A bad day aborts the whole assembly; deciding whether to skip it instead
// belongs to the caller rendering the result.
func AssembleDays(dayLogs []domain.DayLog, ctx domain.TripContext, opts AssembleOptions) ([]DayView, error) {
	days := make([]domain.DayLog, len(dayLogs))
	copy(days, dayLogs)

	slices.SortStableFunc(days, func(a, b domain.DayLog) int {
		return a.DayNumber - b.DayNumber
	})

	views := make([]DayView, 0, len(days))
	for _, day := range days {
		ordered, err := OrderIntervals(day.Intervals, opts.Mode)
		if err != nil {
			return nil, fmt.Errorf("assemble days: day %d: %w", day.DayNumber, err)
		}

		summary, err := Summarize(ordered, ctx)
		if err != nil {
			return nil, fmt.Errorf("assemble days: day %d: %w", day.DayNumber, err)
		}

		views = append(views, DayView{
			DayNumber: day.DayNumber,
			Date:      day.Date,
			Path:      BuildPath(ordered, opts.Path),
			Summary:   summary,
		})
	}

	return views, nil
}

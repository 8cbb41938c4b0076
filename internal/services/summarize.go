package services

import (
	"hos-log-service/internal/domain"
	"math"
)

// Summarize folds a day's intervals into reportable duty totals.
//
// Durations accumulate per canonical status; overlapping intervals, if the
// caller let them through, double-count their overlapped region. On-duty time
// is driving plus on-duty-not-driving per the regulatory definition. Cycle
// hours remaining is reported unclamped, so an overdrawn cycle shows up as a
// negative number rather than being masked.
func Summarize(intervals []domain.DutyInterval, ctx domain.TripContext) (domain.DailySummary, error) {
	totals := make(map[domain.DutyStatus]float64, domain.LaneCount)

	for i, iv := range intervals {
		if math.IsNaN(iv.Start) || math.IsNaN(iv.End) || iv.Start >= iv.End {
			return domain.DailySummary{}, &domain.MalformedIntervalError{Index: i, Start: iv.Start, End: iv.End}
		}
		totals[domain.NormalizeStatus(iv.Status)] += iv.Hours()
	}

	return domain.DailySummary{
		TotalDrivingHours:   domain.Round2(totals[domain.StatusDriving]),
		TotalOnDutyHours:    domain.Round2(totals[domain.StatusDriving] + totals[domain.StatusOn]),
		CycleHoursRemaining: domain.Round2(domain.CycleLimitHours - ctx.CycleHoursUsedBeforeTrip),
	}, nil
}

package domain

import "math"

// CycleLimitHours is the rolling 8-day on-duty limit for property-carrying
// drivers under the 70-hour rule.
const CycleLimitHours = 70.0

// DailySummary holds one day's reportable duty totals. All values are rounded
// to two decimals for display consistency. CycleHoursRemaining is reported
// as-is and may go negative when the cycle is overdrawn.
type DailySummary struct {
	TotalDrivingHours   float64
	TotalOnDutyHours    float64
	CycleHoursRemaining float64
}

// Round2 rounds an hour value to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

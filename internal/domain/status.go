package domain

// DutyStatus is one of the four regulator-defined driver activity categories.
// Raw upstream labels are mapped into this vocabulary by NormalizeStatus.
type DutyStatus string

const (
	StatusOff     DutyStatus = "OFF"
	StatusSleeper DutyStatus = "SLEEPER"
	StatusDriving DutyStatus = "DRIVING"
	StatusOn      DutyStatus = "ON"
)

// LaneCount is the number of duty-status lanes on a daily log grid.
const LaneCount = 4

// NormalizeStatus maps heterogeneous upstream status labels into the canonical
// four-value vocabulary. Matching is case-sensitive. Anything unrecognized,
// including the empty string, maps to OFF rather than failing: a single bad
// label must not abort rendering of an otherwise valid day.
func NormalizeStatus(raw string) DutyStatus {
	switch raw {
	case "SLEEPER", "SB":
		return StatusSleeper
	case "ON-DUTY", "ON":
		return StatusOn
	case "DRIVING":
		return StatusDriving
	default:
		return StatusOff
	}
}

// Lane returns the fixed vertical lane index for a status on the log grid.
// Order is fixed by regulatory convention, top to bottom.
func (s DutyStatus) Lane() int {
	switch s {
	case StatusSleeper:
		return 1
	case StatusDriving:
		return 2
	case StatusOn:
		return 3
	default:
		return 0
	}
}

package domain

// DutyInterval is one contiguous period of a single duty status within a day.
// Status carries the raw upstream label; Start and End are fractional hour
// offsets from day start (0 <= Start < End <= 24 for well-formed data).
// Intervals are immutable once received and consumed read-only by the engine.
type DutyInterval struct {
	Status string
	Start  float64
	End    float64
}

// Hours returns the interval duration in fractional hours.
func (i DutyInterval) Hours() float64 { return i.End - i.Start }

// DayLog is the unit of work for one 24-hour period: a day number, a calendar
// label supplied by the trip-planning collaborator (opaque to the engine), and
// the day's duty intervals. Path and summary are derived on demand, never stored.
type DayLog struct {
	DayNumber int
	Date      string
	Intervals []DutyInterval
}

// TripContext is read-only ambient data borrowed from the trip record.
// The engine never mutates it.
type TripContext struct {
	CycleHoursUsedBeforeTrip float64
}

package services

import (
	"fmt"
	"hos-log-service/internal/domain"
	"math"
)

// HOS simulation constants for property-carrying drivers.
const (
	maxDrivingHours  = 11.0   // driving allowed per duty period
	dutyWindowHours  = 14.0   // on-duty window after coming on duty
	restHours        = 10.0   // sleeper-berth rest that resets both limits
	fuelIntervalMi   = 1000.0 // miles between fuel stops
	fuelStopHours    = 0.5
	serviceStopHours = 1.0 // pickup / dropoff handling time
	averageSpeedMph  = 60.0
	dayStartHour     = 8.0 // driver comes on duty at 08:00 on day 1

	simEpsilon = 0.001
)

// tripSimulator advances a single driver through a two-segment trip under
// HOS limits, accumulating per-day duty intervals and stop markers.
// currentTime is absolute hours from day 1 midnight, e.g. 26.5 = day 2, 02:30.
type tripSimulator struct {
	days  []domain.DayLog
	stops []domain.Stop

	currentTime float64
	day         int

	drivingToday    float64
	dutyWindowStart float64

	tripDistMi     float64
	milesSinceFuel float64
}

func newTripSimulator() *tripSimulator {
	s := &tripSimulator{
		currentTime:     dayStartHour,
		day:             1,
		dutyWindowStart: dayStartHour,
	}

	// The log sheet must account for the full day, so day 1 opens with the
	// off-duty block before the 08:00 start.
	s.appendInterval(1, domain.DutyInterval{Status: string(domain.StatusOff), Start: 0, End: dayStartHour})
	return s
}

func (s *tripSimulator) appendInterval(day int, iv domain.DutyInterval) {
	for i := range s.days {
		if s.days[i].DayNumber == day {
			s.days[i].Intervals = append(s.days[i].Intervals, iv)
			return
		}
	}

	s.days = append(s.days, domain.DayLog{
		DayNumber: day,
		Date:      fmt.Sprintf("Day %d", day),
		Intervals: []domain.DutyInterval{iv},
	})
}

// addLog records a duty period of the given duration, splitting it across
// day boundaries so every stored interval stays within one 24-hour frame.
func (s *tripSimulator) addLog(status domain.DutyStatus, duration float64) {
	remaining := duration
	for remaining > simEpsilon {
		localTime := math.Mod(s.currentTime, 24)

		// Float residue can leave currentTime a hair short of midnight;
		// snap to the day boundary instead of logging a sliver interval.
		if space := 24 - localTime; space <= simEpsilon {
			s.currentTime += space
			continue
		}

		if d := int(s.currentTime/24) + 1; d > s.day {
			s.day = d
		}

		chunk := math.Min(remaining, 24-localTime)

		start := domain.Round2(localTime)
		end := domain.Round2(localTime + chunk)
		if start < end {
			s.appendInterval(s.day, domain.DutyInterval{
				Status: string(status),
				Start:  start,
				End:    end,
			})
		}

		s.currentTime += chunk
		if status == domain.StatusDriving {
			s.drivingToday += chunk
		}
		remaining -= chunk
	}
}

// takeRest records a 10-hour sleeper-berth break, which resets the driving
// total and opens a fresh 14-hour duty window.
func (s *tripSimulator) takeRest() {
	s.stops = append(s.stops, domain.Stop{Type: domain.StopRest, DistanceMiles: s.tripDistMi})

	s.addLog(domain.StatusSleeper, restHours)
	s.drivingToday = 0
	s.dutyWindowStart = s.currentTime
}

// drive advances the trip by the given mileage, interleaving fuel stops and
// rest breaks as the HOS limits demand.
func (s *tripSimulator) drive(milesToGo float64) {
	for milesToGo > simEpsilon {
		hoursDriveLeft := maxDrivingHours - s.drivingToday
		hoursWindowLeft := (s.dutyWindowStart + dutyWindowHours) - s.currentTime

		if hoursDriveLeft <= simEpsilon || hoursWindowLeft <= simEpsilon {
			s.takeRest()
			continue
		}

		distToFuel := fuelIntervalMi - s.milesSinceFuel
		maxDriveMiles := math.Min(hoursDriveLeft, hoursWindowLeft) * averageSpeedMph

		chunk := math.Min(milesToGo, math.Min(distToFuel, maxDriveMiles))

		s.addLog(domain.StatusDriving, chunk/averageSpeedMph)
		s.tripDistMi += chunk
		s.milesSinceFuel += chunk
		milesToGo -= chunk

		if s.milesSinceFuel >= fuelIntervalMi-simEpsilon {
			s.stops = append(s.stops, domain.Stop{Type: domain.StopFuel, DistanceMiles: s.tripDistMi})
			s.addLog(domain.StatusOn, fuelStopHours)
			s.milesSinceFuel = 0
		}
	}
}

// serviceStop records a one-hour on-duty stop (pickup or dropoff), resting
// first if the stop would not fit in the remaining duty window.
func (s *tripSimulator) serviceStop() {
	if (s.currentTime-s.dutyWindowStart)+serviceStopHours > dutyWindowHours {
		s.takeRest()
	}
	s.addLog(domain.StatusOn, serviceStopHours)
}

// SimulateTrip plays a two-segment trip (start -> pickup -> dropoff) through
// the HOS simulator and returns the per-day duty logs and the fuel/rest stops
// encountered along the way. The final day is padded with off-duty time to
// midnight so every sheet covers a full 24 hours.
func SimulateTrip(segment1Miles, segment2Miles float64) ([]domain.DayLog, []domain.Stop) {
	s := newTripSimulator()

	s.drive(segment1Miles)
	s.serviceStop()

	s.drive(segment2Miles)
	s.serviceStop()

	s.addLog(domain.StatusOff, 24-math.Mod(s.currentTime, 24))

	if s.stops == nil {
		s.stops = []domain.Stop{}
	}
	return s.days, s.stops
}

package dto

import "time"

type PlanTripRequest struct {
	StartLocation    string  `json:"start_location"`
	PickupLocation   string  `json:"pickup_location"`
	DropoffLocation  string  `json:"dropoff_location"`
	CurrentCycleUsed float64 `json:"current_cycle_used"`
	Segment1Miles    float64 `json:"segment1_miles"`
	Segment2Miles    float64 `json:"segment2_miles"`
	DistanceMiles    float64 `json:"distance_miles"`
}

type IntervalResponse struct {
	Status string  `json:"status"`
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
}

type PathPointResponse struct {
	Hour float64 `json:"hour"`
	Lane int     `json:"lane"`
}

type SummaryResponse struct {
	TotalDrivingHours   float64 `json:"total_driving_hours"`
	TotalOnDutyHours    float64 `json:"total_on_duty_hours"`
	CycleHoursRemaining float64 `json:"cycle_hours_remaining"`
}

type DayViewResponse struct {
	Day       int                 `json:"day"`
	Date      string              `json:"date"`
	Intervals []IntervalResponse  `json:"intervals"`
	Path      []PathPointResponse `json:"path"`
	Summary   SummaryResponse     `json:"summary"`
}

type StopResponse struct {
	Type          string  `json:"type"`
	DistanceMiles float64 `json:"distance_miles"`
}

type TripResponse struct {
	TripID           string            `json:"trip_id"`
	StartLocation    string            `json:"start_location"`
	PickupLocation   string            `json:"pickup_location"`
	DropoffLocation  string            `json:"dropoff_location"`
	CurrentCycleUsed float64           `json:"current_cycle_used"`
	CreatedAt        time.Time         `json:"created_at"`
	Days             []DayViewResponse `json:"days"`
	Stops            []StopResponse    `json:"stops"`
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stop types recorded by the trip simulator.
const (
	StopFuel = "FUEL"
	StopRest = "REST"
)

// Stop marks a fuel or rest break at a cumulative distance along the trip
// route. Interpolating the stop onto map coordinates belongs to the routing
// collaborator, not this service.
type Stop struct {
	Type          string
	DistanceMiles float64
}

// Trip is the durable record of one planned trip: the submitted locations and
// cycle hours plus the simulated day logs and stops. Day paths and summaries
// are view artifacts recomputed from DayLogs on read, never persisted.
type Trip struct {
	TripID           uuid.UUID
	StartLocation    string
	PickupLocation   string
	DropoffLocation  string
	CurrentCycleUsed float64
	DayLogs          []DayLog
	Stops            []Stop
	CreatedAt        time.Time
}

package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"hos-log-service/internal/domain"
	"hos-log-service/internal/platform/obs"
	"hos-log-service/internal/ports"

	"github.com/google/uuid"
)

// Postgres-backed implementation of the TripRepository port.
//
// Day logs and stops are stored as JSONB documents: they are written and read
// wholesale with the trip, never queried field-by-field, so a relational
// breakout would buy nothing.
type PostgresTripRepository struct{ DB *sql.DB }

func NewPostgresTripRepository(db *sql.DB) *PostgresTripRepository {
	return &PostgresTripRepository{DB: db}
}

type dayLogDoc struct {
	Day       int           `json:"day"`
	Date      string        `json:"date"`
	Intervals []intervalDoc `json:"logs"`
}

type intervalDoc struct {
	Status string  `json:"status"`
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
}

type stopDoc struct {
	Type          string  `json:"type"`
	DistanceMiles float64 `json:"distance_miles"`
}

// Persist a new trip record.
func (p *PostgresTripRepository) CreateTrip(ctx context.Context, trip *domain.Trip) (err error) {
	defer obs.Time(ctx, "trips.repo.CreateTrip")(&err)

	if p.DB == nil {
		return errors.New("trip repository: DB is nil")
	}
	if trip == nil {
		return errors.New("create trip: trip must be non-nil")
	}

	dayLogs, err := json.Marshal(toDayLogDocs(trip.DayLogs))
	if err != nil {
		return fmt.Errorf("create trip: marshal day logs: %w", err)
	}

	stops, err := json.Marshal(toStopDocs(trip.Stops))
	if err != nil {
		return fmt.Errorf("create trip: marshal stops: %w", err)
	}

	q := `
	INSERT INTO trips (
		trip_id,
		start_location,
		pickup_location,
		dropoff_location,
		current_cycle_used,
		day_logs,
		stops,
		created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err = p.DB.ExecContext(ctx, q,
		trip.TripID,
		trip.StartLocation,
		trip.PickupLocation,
		trip.DropoffLocation,
		trip.CurrentCycleUsed,
		dayLogs,
		stops,
		trip.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create trip: insert trip_id=%s: %w", trip.TripID, err)
	}

	return nil
}

// Retrieve a trip by id.
func (p *PostgresTripRepository) GetTrip(ctx context.Context, id uuid.UUID) (_ *domain.Trip, err error) {
	defer obs.Time(ctx, "trips.repo.GetTrip")(&err)

	if p.DB == nil {
		return nil, errors.New("trip repository: DB is nil")
	}

	q := `
	SELECT
		trip_id,
		start_location,
		pickup_location,
		dropoff_location,
		current_cycle_used,
		day_logs,
		stops,
		created_at
	FROM trips
	WHERE trip_id = $1;
	`

	trip := &domain.Trip{}
	var dayLogs, stops []byte

	row := p.DB.QueryRowContext(ctx, q, id)
	err = row.Scan(
		&trip.TripID,
		&trip.StartLocation,
		&trip.PickupLocation,
		&trip.DropoffLocation,
		&trip.CurrentCycleUsed,
		&dayLogs,
		&stops,
		&trip.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrTripNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get trip: query trip_id=%s: %w", id, err)
	}

	var dayDocs []dayLogDoc
	if err := json.Unmarshal(dayLogs, &dayDocs); err != nil {
		return nil, fmt.Errorf("get trip: parse day logs for trip_id=%s: %w", id, err)
	}
	trip.DayLogs = fromDayLogDocs(dayDocs)

	var stopDocs []stopDoc
	if err := json.Unmarshal(stops, &stopDocs); err != nil {
		return nil, fmt.Errorf("get trip: parse stops for trip_id=%s: %w", id, err)
	}
	trip.Stops = fromStopDocs(stopDocs)

	return trip, nil
}

func toDayLogDocs(days []domain.DayLog) []dayLogDoc {
	docs := make([]dayLogDoc, 0, len(days))
	for _, d := range days {
		intervals := make([]intervalDoc, 0, len(d.Intervals))
		for _, iv := range d.Intervals {
			intervals = append(intervals, intervalDoc{Status: iv.Status, Start: iv.Start, End: iv.End})
		}
		docs = append(docs, dayLogDoc{Day: d.DayNumber, Date: d.Date, Intervals: intervals})
	}
	return docs
}

func fromDayLogDocs(docs []dayLogDoc) []domain.DayLog {
	days := make([]domain.DayLog, 0, len(docs))
	for _, d := range docs {
		intervals := make([]domain.DutyInterval, 0, len(d.Intervals))
		for _, iv := range d.Intervals {
			intervals = append(intervals, domain.DutyInterval{Status: iv.Status, Start: iv.Start, End: iv.End})
		}
		days = append(days, domain.DayLog{DayNumber: d.Day, Date: d.Date, Intervals: intervals})
	}
	return days
}

func toStopDocs(stops []domain.Stop) []stopDoc {
	docs := make([]stopDoc, 0, len(stops))
	for _, s := range stops {
		docs = append(docs, stopDoc{Type: s.Type, DistanceMiles: s.DistanceMiles})
	}
	return docs
}

func fromStopDocs(docs []stopDoc) []domain.Stop {
	stops := make([]domain.Stop, 0, len(docs))
	for _, d := range docs {
		stops = append(stops, domain.Stop{Type: d.Type, DistanceMiles: d.DistanceMiles})
	}
	return stops
}

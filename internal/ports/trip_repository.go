package ports

import (
	"context"
	"errors"
	"hos-log-service/internal/domain"

	"github.com/google/uuid"
)

// ErrTripNotFound is returned when no trip exists for the requested id.
var ErrTripNotFound = errors.New("trip not found")

// Port: a boundary for storing and retrieving Trip records.
type TripRepository interface {
	// Persist a new trip record.
	CreateTrip(ctx context.Context, trip *domain.Trip) error
	// Retrieve a trip by id. Returns ErrTripNotFound when absent.
	GetTrip(ctx context.Context, id uuid.UUID) (*domain.Trip, error)
}

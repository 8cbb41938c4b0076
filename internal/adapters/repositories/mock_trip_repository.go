package repositories

import (
	"context"
	"hos-log-service/internal/domain"
	"hos-log-service/internal/ports"
	"sync"

	"github.com/google/uuid"
)

// In-memory TripRepository used by handler and service tests.
type MockTripRepository struct {
	mu    sync.Mutex
	trips map[uuid.UUID]*domain.Trip
}

func NewMockTripRepository() *MockTripRepository {
	return &MockTripRepository{trips: make(map[uuid.UUID]*domain.Trip)}
}

func (m *MockTripRepository) CreateTrip(ctx context.Context, trip *domain.Trip) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *trip
	m.trips[trip.TripID] = &cp
	return nil
}

func (m *MockTripRepository) GetTrip(ctx context.Context, id uuid.UUID) (*domain.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	trip, ok := m.trips[id]
	if !ok {
		return nil, ports.ErrTripNotFound
	}

	cp := *trip
	return &cp, nil
}

package services

import (
	"errors"
	"hos-log-service/internal/domain"
	"testing"
)

func TestAssembleDaysOrdersAndComputes(t *testing.T) {
	dayLogs := []domain.DayLog{
		{
			DayNumber: 2,
			Date:      "Day 2",
			Intervals: []domain.DutyInterval{
				{Status: "SB", Start: 0, End: 10},
				{Status: "DRIVING", Start: 10, End: 14},
				{Status: "OFF", Start: 14, End: 24},
			},
		},
		{
			DayNumber: 1,
			Date:      "Day 1",
			Intervals: fullDay(),
		},
	}

	views, err := AssembleDays(dayLogs, domain.TripContext{CycleHoursUsedBeforeTrip: 20}, AssembleOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(views) != 2 {
		t.Fatalf("expected 2 day views, got %d", len(views))
	}

	// Days arrive out of order and come back sorted by day number.
	if views[0].DayNumber != 1 || views[1].DayNumber != 2 {
		t.Fatalf("day order = %d, %d; want 1, 2", views[0].DayNumber, views[1].DayNumber)
	}

	if views[0].Summary.TotalDrivingHours != 8 {
		t.Errorf("day 1 driving = %v, want 8", views[0].Summary.TotalDrivingHours)
	}
	if views[1].Summary.TotalDrivingHours != 4 {
		t.Errorf("day 2 driving = %v, want 4", views[1].Summary.TotalDrivingHours)
	}
	if views[1].Summary.CycleHoursRemaining != 50 {
		t.Errorf("cycle remaining = %v, want 50", views[1].Summary.CycleHoursRemaining)
	}

	if len(views[0].Path) != 8 {
		t.Errorf("day 1 path has %d vertices, want 8", len(views[0].Path))
	}
	if len(views[1].Path) != 6 {
		t.Errorf("day 2 path has %d vertices, want 6", len(views[1].Path))
	}
}

func TestAssembleDaysSortsIntervalsWithinDay(t *testing.T) {
	dayLogs := []domain.DayLog{
		{
			DayNumber: 1,
			Intervals: []domain.DutyInterval{
				{Status: "DRIVING", Start: 6, End: 8},
				{Status: "OFF", Start: 0, End: 6},
			},
		},
	}

	views, err := AssembleDays(dayLogs, domain.TripContext{}, AssembleOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := views[0].Path
	if path[0].Hour != 0 || path[0].Lane != 0 {
		t.Errorf("first vertex = %+v, want (0, 0)", path[0])
	}
	if path[len(path)-1].Hour != 8 || path[len(path)-1].Lane != 2 {
		t.Errorf("last vertex = %+v, want (8, 2)", path[len(path)-1])
	}
}

func TestAssembleDaysAbortsOnBadDay(t *testing.T) {
	dayLogs := []domain.DayLog{
		{DayNumber: 1, Intervals: fullDay()},
		{DayNumber: 2, Intervals: []domain.DutyInterval{{Status: "ON", Start: 5, End: 3}}},
	}

	_, err := AssembleDays(dayLogs, domain.TripContext{}, AssembleOptions{})

	var malformed *domain.MalformedIntervalError
	if !errors.As(err, &malformed) {
		t.Fatalf("got %v, want wrapped MalformedIntervalError", err)
	}
}

func TestAssembleDaysDoesNotMutateInput(t *testing.T) {
	dayLogs := []domain.DayLog{
		{DayNumber: 2, Intervals: fullDay()},
		{DayNumber: 1, Intervals: fullDay()},
	}

	if _, err := AssembleDays(dayLogs, domain.TripContext{}, AssembleOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dayLogs[0].DayNumber != 2 {
		t.Fatalf("input day order was mutated")
	}
}

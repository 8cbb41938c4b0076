package services

import (
	"hos-log-service/internal/domain"
	"testing"
)

func fullDay() []domain.DutyInterval {
	return []domain.DutyInterval{
		{Status: "OFF", Start: 0, End: 6},
		{Status: "DRIVING", Start: 6, End: 14},
		{Status: "ON", Start: 14, End: 15},
		{Status: "OFF", Start: 15, End: 24},
	}
}

func TestBuildPathFullDay(t *testing.T) {
	path := BuildPath(fullDay(), PathOptions{})

	if len(path) != 8 {
		t.Fatalf("expected 8 vertices, got %d", len(path))
	}

	first, last := path[0], path[len(path)-1]
	if first.Hour != 0 || first.Lane != 0 {
		t.Errorf("first vertex = (%v, %d), want (0, 0)", first.Hour, first.Lane)
	}
	if last.Hour != 24 || last.Lane != 0 {
		t.Errorf("last vertex = (%v, %d), want (24, 0)", last.Hour, last.Lane)
	}

	want := domain.TimelinePath{
		{Hour: 0, Lane: 0}, {Hour: 6, Lane: 0},
		{Hour: 6, Lane: 2}, {Hour: 14, Lane: 2},
		{Hour: 14, Lane: 3}, {Hour: 15, Lane: 3},
		{Hour: 15, Lane: 0}, {Hour: 24, Lane: 0},
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("vertex %d = %+v, want %+v", i, path[i], want[i])
		}
	}
}

func TestBuildPathEmpty(t *testing.T) {
	path := BuildPath(nil, PathOptions{})
	if len(path) != 0 {
		t.Fatalf("expected empty path, got %d vertices", len(path))
	}
}

func TestBuildPathNormalizesSynonyms(t *testing.T) {
	path := BuildPath([]domain.DutyInterval{{Status: "SB", Start: 0, End: 10}}, PathOptions{})

	if len(path) != 2 {
		t.Fatalf("expected 2 vertices, got %d", len(path))
	}
	if path[0].Lane != domain.StatusSleeper.Lane() {
		t.Errorf("lane = %d, want sleeper lane %d", path[0].Lane, domain.StatusSleeper.Lane())
	}
}

func TestBuildPathOmitsGapsByDefault(t *testing.T) {
	intervals := []domain.DutyInterval{
		{Status: "DRIVING", Start: 2, End: 5},
		{Status: "ON", Start: 9, End: 10},
	}

	path := BuildPath(intervals, PathOptions{})
	if len(path) != 4 {
		t.Fatalf("expected 4 vertices with the gap omitted, got %d", len(path))
	}
	if path[1].Hour != 5 || path[2].Hour != 9 {
		t.Errorf("gap edges = %v and %v, want 5 and 9", path[1].Hour, path[2].Hour)
	}
}

func TestBuildPathFillGaps(t *testing.T) {
	intervals := []domain.DutyInterval{
		{Status: "DRIVING", Start: 2, End: 5},
		{Status: "ON", Start: 9, End: 10},
	}

	path := BuildPath(intervals, PathOptions{FillGaps: true})
	if len(path) != 6 {
		t.Fatalf("expected 6 vertices with the gap filled, got %d", len(path))
	}

	// Gap renders as an OFF-lane segment between the two intervals.
	gapStart, gapEnd := path[2], path[3]
	if gapStart.Lane != 0 || gapEnd.Lane != 0 {
		t.Errorf("gap lanes = %d and %d, want OFF lane 0", gapStart.Lane, gapEnd.Lane)
	}
	if gapStart.Hour != 5 || gapEnd.Hour != 9 {
		t.Errorf("gap span = %v to %v, want 5 to 9", gapStart.Hour, gapEnd.Hour)
	}
}

func TestBuildPathScaleInvariance(t *testing.T) {
	intervals := fullDay()

	scaled := make([]domain.DutyInterval, len(intervals))
	for i, iv := range intervals {
		scaled[i] = domain.DutyInterval{Status: iv.Status, Start: iv.Start * 2, End: iv.End * 2}
	}

	base := BuildPath(intervals, PathOptions{})
	doubled := BuildPath(scaled, PathOptions{})

	if len(base) != len(doubled) {
		t.Fatalf("vertex counts differ: %d vs %d", len(base), len(doubled))
	}
	for i := range base {
		if doubled[i].Hour != base[i].Hour*2 {
			t.Errorf("vertex %d hour = %v, want %v", i, doubled[i].Hour, base[i].Hour*2)
		}
		if doubled[i].Lane != base[i].Lane {
			t.Errorf("vertex %d lane changed under scaling", i)
		}
	}
}

package render

import (
	"hos-log-service/internal/domain"
	"hos-log-service/internal/services"
	"strings"
	"testing"
)

func TestLogSheet(t *testing.T) {
	view := services.DayView{
		DayNumber: 1,
		Date:      "Day 1",
		Path: domain.TimelinePath{
			{Hour: 0, Lane: 0}, {Hour: 6, Lane: 0},
			{Hour: 6, Lane: 2}, {Hour: 24, Lane: 2},
		},
		Summary: domain.DailySummary{
			TotalDrivingHours:   18,
			TotalOnDutyHours:    18,
			CycleHoursRemaining: 52,
		},
	}

	var b strings.Builder
	if err := LogSheet(&b, view); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svg := b.String()

	if !strings.Contains(svg, "<svg") {
		t.Fatal("output is not SVG")
	}
	for _, label := range []string{"OFF DUTY", "SLEEPER BERTH", "DRIVING", "ON DUTY"} {
		if !strings.Contains(svg, label) {
			t.Errorf("missing lane label %q", label)
		}
	}

	// Hour 0 at x=0, hour 24 at the full grid width; lanes on row centers.
	if !strings.Contains(svg, `d="M 0.00 20.00 L 200.00 20.00 L 200.00 100.00 L 800.00 100.00"`) {
		t.Errorf("unexpected path data in output:\n%s", svg)
	}
	if !strings.Contains(svg, "Driving: 18.00h") {
		t.Error("missing driving total caption")
	}
}

func TestLogSheetEmptyPath(t *testing.T) {
	var b strings.Builder
	if err := LogSheet(&b, services.DayView{DayNumber: 1, Date: "Day 1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(b.String(), "<path") {
		t.Error("empty day should render no path element")
	}
}
